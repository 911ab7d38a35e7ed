package level

import (
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OCharnyshevich/minecraft-world/internal/nbt"
	"github.com/OCharnyshevich/minecraft-world/internal/world"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	l := New("test world", -123456789)
	l.WorldType = WorldFlat
	l.GeneratorOptions = "bedrock,2*dirt,grass"
	l.Spawn = world.Pos{X: 1, Y: 4, Z: -3}

	path := filepath.Join(t.TempDir(), "nested", "level.dat")
	if err := l.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(l, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeHeader(t *testing.T) {
	data, err := New("a", 1).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if v := binary.LittleEndian.Uint32(data[0:4]); v != nbt.FileVersion {
		t.Fatalf("expected version %d, got %d", nbt.FileVersion, v)
	}
	if n := binary.LittleEndian.Uint32(data[4:8]); int(n) != len(data)-8 {
		t.Fatalf("expected body length %d, got %d", len(data)-8, n)
	}
	if data[8] != nbt.TagCompound {
		t.Fatalf("expected root compound, got tag %d", data[8])
	}
}

func TestDecodeErrors(t *testing.T) {
	good, err := New("a", 1).Encode()
	if err != nil {
		t.Fatal(err)
	}

	bad := append([]byte(nil), good...)
	bad[0] = 2
	if _, err := Decode(bad); !errors.Is(err, nbt.ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
	if _, err := Decode(good[:len(good)-1]); !errors.Is(err, nbt.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "level.dat")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStrings(t *testing.T) {
	if Creative.String() != "creative" || GameMode(9).String() != "gamemode_9" {
		t.Errorf("GameMode strings: %v %v", Creative, GameMode(9))
	}
	if WorldFlat.String() != "flat" {
		t.Errorf("WorldFlat = %v", WorldFlat)
	}
}
