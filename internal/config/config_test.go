package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldtool.yaml")
	data := "world_dir: saves/demo\ngenerator: terrain\nseed: -42\nchunks_per_side: 4\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.WorldDir = "saves/demo"
	want.Generator = "terrain"
	want.Seed = -42
	want.ChunksPerSide = 4
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	if l, _ := got.Level(); l != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", l)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	for name, data := range map[string]string{
		"syntax.yaml": "seed: [1,\n",
		"range.yaml":  "chunks_per_side: 33\n",
		"level.yaml":  "log_level: loud\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.WorldDir = "cli"

	fromFile := DefaultConfig()
	fromFile.Seed = 99
	fromFile.WorldDir = "file"
	fromFile.Generator = "terrain"

	Merge(cfg, fromFile, map[string]bool{"seed": true})
	if cfg.Seed != 5 {
		t.Errorf("Seed = %d, want 5", cfg.Seed)
	}
	if cfg.WorldDir != "file" {
		t.Errorf("WorldDir = %q, want file", cfg.WorldDir)
	}
	if cfg.Generator != "terrain" {
		t.Errorf("Generator = %q, want terrain", cfg.Generator)
	}
}
