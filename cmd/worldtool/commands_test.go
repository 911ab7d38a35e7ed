package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OCharnyshevich/minecraft-world/internal/config"
)

func testTool(t *testing.T) (*tool, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	root := t.TempDir()
	cfg.WorldDir = filepath.Join(root, "demo")
	cfg.ChunksPerSide = 2
	cfg.HeightMapPath = filepath.Join(root, "images", "height.png")
	cfg.BackupDir = filepath.Join(root, "backups")
	var out bytes.Buffer
	return &tool{cfg: cfg, log: slog.New(slog.NewTextHandler(io.Discard, nil)), out: &out}, &out
}

func TestNewInfoGetSet(t *testing.T) {
	tl, out := testTool(t)
	ctx := context.Background()

	if err := tl.run(ctx, "new", nil); err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := tl.run(ctx, "new", nil); err == nil {
		t.Fatal("second new without overwrite succeeded")
	}

	if err := tl.run(ctx, "info", nil); err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"demo", "flat", "3;bedrock,2*dirt,grass;1;", "4 occupied", "1020 empty"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("info output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := tl.run(ctx, "get", []string{"1", "3", "1"}); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out.String(), "grass") {
		t.Errorf("get output = %q, want grass", out.String())
	}

	if err := tl.run(ctx, "set", []string{"1", "3", "1", "wool", "14"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	out.Reset()
	if err := tl.run(ctx, "get", []string{"1", "3", "1"}); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out.String(), "wool") {
		t.Errorf("get after set = %q, want wool", out.String())
	}

	if err := tl.run(ctx, "get", []string{"100", "3", "1"}); err == nil {
		t.Error("get in an empty chunk succeeded")
	}
	if err := tl.run(ctx, "set", []string{"1", "3", "1", "unobtainium"}); err == nil {
		t.Error("set with unknown material succeeded")
	}
}

func TestHeightmapBackupRestore(t *testing.T) {
	tl, _ := testTool(t)
	ctx := context.Background()
	if err := tl.run(ctx, "new", nil); err != nil {
		t.Fatal(err)
	}
	if err := tl.run(ctx, "heightmap", nil); err != nil {
		t.Fatalf("heightmap: %v", err)
	}
	if _, err := os.Stat(tl.cfg.HeightMapPath); err != nil {
		t.Fatalf("height map not written: %v", err)
	}

	archive := filepath.Join(tl.cfg.BackupDir, "demo.tar.zst")
	if err := tl.run(ctx, "backup", []string{archive}); err != nil {
		t.Fatalf("backup: %v", err)
	}
	if err := os.RemoveAll(tl.cfg.WorldDir); err != nil {
		t.Fatal(err)
	}
	if err := tl.run(ctx, "restore", []string{archive}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if err := tl.run(ctx, "info", nil); err != nil {
		t.Fatalf("info after restore: %v", err)
	}
}

func TestRunArgumentErrors(t *testing.T) {
	tl, _ := testTool(t)
	ctx := context.Background()
	for _, tt := range []struct {
		cmd  string
		args []string
	}{
		{"explode", nil},
		{"get", []string{"1", "2"}},
		{"get", []string{"a", "b", "c"}},
		{"restore", nil},
	} {
		if err := tl.run(ctx, tt.cmd, tt.args); err == nil {
			t.Errorf("run(%q, %v) succeeded", tt.cmd, tt.args)
		}
	}
}
