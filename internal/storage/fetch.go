package storage

import (
	"context"
	"fmt"
	"maps"
	"os"

	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/minecraft-world/internal/world/region"
)

// Fetch downloads a world file from src (any go-getter source: local path,
// http(s), s3, git...) and installs it as chunks.dat once it decodes cleanly.
// The previous chunks.dat is left untouched on failure.
func (s *Storage) Fetch(ctx context.Context, src string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", s.dir, err)
	}
	pwd, err := os.Getwd()
	if err != nil {
		return err
	}

	getters := maps.Clone(getter.Getters)
	getters["file"] = &getter.FileGetter{Copy: true}

	tmp := s.path(ChunksFile + ".fetch")
	defer os.Remove(tmp)

	s.log.Info("start downloading world", "src", src)
	client := &getter.Client{
		Ctx:     ctx,
		Src:     src,
		Dst:     tmp,
		Pwd:     pwd,
		Mode:    getter.ClientModeFile,
		Getters: getters,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch %s: %w", src, err)
	}

	w, err := region.Load(tmp)
	if err != nil {
		return fmt.Errorf("fetched file: %w", err)
	}
	if err := os.Rename(tmp, s.path(ChunksFile)); err != nil {
		return fmt.Errorf("install world: %w", err)
	}
	s.log.Info("done downloading world", "path", s.path(ChunksFile), "chunks", w.NonEmptyCount())
	return nil
}
