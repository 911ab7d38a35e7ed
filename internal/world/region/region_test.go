package region

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
)

// slotChunks lists each slot's chunk, nil for Empty slots.
func slotChunks(w *world.World) []*world.Chunk {
	out := make([]*world.Chunk, world.SlotCount)
	for i, s := range w.Slots() {
		out[i], _ = s.Chunk()
	}
	return out
}

func mixedWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New()
	for i, pos := range []world.ChunkPos{{X: 0, Z: 0}, {X: 0, Z: 31}, {X: 7, Z: 3}, {X: 31, Z: 31}} {
		if err := w.SetChunk(pos, randomChunk(t, uint64(i+1))); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := mixedWorld(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "chunks.dat")

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.NonEmptyCount() != 4 {
		t.Errorf("NonEmptyCount() = %d, want 4", got.NonEmptyCount())
	}
	if diff := cmp.Diff(slotChunks(want), slotChunks(got)); diff != "" {
		t.Fatalf("world mismatch after round trip (-want +got):\n%s", diff)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if wantSize := int64(IndexSize + 4*RecordBlocks*BlockSize); info.Size() != wantSize {
		t.Errorf("file size = %d, want %d", info.Size(), wantSize)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.dat")
	if err := Save(path, mixedWorld(t)); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, world.New()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != IndexSize {
		t.Errorf("empty world file = %d bytes, want %d", len(data), IndexSize)
	}
}

func TestEncodeEntriesMatchRecords(t *testing.T) {
	data, err := Encode(mixedWorld(t))
	if err != nil {
		t.Fatal(err)
	}
	ix, err := ParseIndex(data)
	if err != nil {
		t.Fatal(err)
	}
	prevEnd := uint32(1)
	for i, e := range ix {
		if e.Empty() {
			continue
		}
		if e.DataIndex != prevEnd || e.Reserved != RecordBlocks {
			t.Fatalf("slot %d entry %+v, want start %d reserved %d", i, e, prevEnd, RecordBlocks)
		}
		if n := binary.LittleEndian.Uint32(data[e.Offset():]); n != headerSize+PayloadSize {
			t.Fatalf("slot %d record header = %d", i, n)
		}
		prevEnd = e.DataIndex + uint32(e.Reserved)
	}
}

func TestDecodeBlankRecordHeader(t *testing.T) {
	data, err := Encode(mixedWorld(t))
	if err != nil {
		t.Fatal(err)
	}
	ix, _ := ParseIndex(data)
	off := ix[world.SlotIndex(world.ChunkPos{X: 7, Z: 3})].Offset()
	binary.LittleEndian.PutUint32(data[off:], 0)

	w, err := Decode(data)
	if !errors.Is(err, ErrCorruptChunk) {
		t.Fatalf("Decode error = %v, want ErrCorruptChunk", err)
	}
	if w != nil {
		t.Error("Decode returned a partial world")
	}
}

func TestDecodeCorruptFiles(t *testing.T) {
	valid, err := Encode(mixedWorld(t))
	if err != nil {
		t.Fatal(err)
	}

	mutate := func(f func([]byte) []byte) []byte {
		return f(append([]byte(nil), valid...))
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"short index", valid[:100]},
		{"truncated record", valid[:len(valid)-BlockSize*RecordBlocks/2]},
		{"data index past end", mutate(func(b []byte) []byte {
			b[1], b[2], b[3] = 0xFF, 0xFF, 0x00
			return b
		})},
		{"zero reserved", mutate(func(b []byte) []byte {
			b[0] = 0
			return b
		})},
		{"record overruns reservation", mutate(func(b []byte) []byte {
			b[0] = RecordBlocks - 1
			return b
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); !errors.Is(err, ErrCorruptChunk) {
				t.Fatalf("Decode error = %v, want ErrCorruptChunk", err)
			}
		})
	}
}

func TestDecodeEmptyEntryIgnoresReserved(t *testing.T) {
	data := make([]byte, IndexSize)
	data[0] = RecordBlocks // reserved set, data index 0
	w, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w.NonEmptyCount() != 0 {
		t.Errorf("NonEmptyCount() = %d, want 0", w.NonEmptyCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.dat"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v, want fs.ErrNotExist", err)
	}
}
