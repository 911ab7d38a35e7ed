package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/minecraft-world/internal/level"
	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/region"
)

// File names inside a game directory.
const (
	LevelFile    = "level.dat"
	ChunksFile   = "chunks.dat"
	EntitiesFile = "entities.dat"
)

// ErrGameExists is returned by SaveGame when the game directory already
// exists and overwriting was not requested.
var ErrGameExists = errors.New("game directory already exists")

// Game is the content of one game directory.
type Game struct {
	Level *level.Level
	World *world.World
}

// Storage handles persistence of one game directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a Storage for the game directory dir. Nothing is touched on
// disk until a save.
func New(dir string, log *slog.Logger) *Storage {
	return &Storage{dir: dir, log: log}
}

// Dir returns the game directory.
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dir, name)
}

// SaveOptions controls SaveGame.
type SaveOptions struct {
	Overwrite bool
}

// SaveGame writes level.dat, chunks.dat and an empty entities.dat.
func (s *Storage) SaveGame(g *Game, opts SaveOptions) error {
	if _, err := os.Stat(s.dir); err == nil && !opts.Overwrite {
		return fmt.Errorf("%s: %w", s.dir, ErrGameExists)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", s.dir, err)
	}

	levelData, err := g.Level.Encode()
	if err != nil {
		return err
	}
	if err := s.atomicWrite(s.path(LevelFile), levelData); err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	if err := s.SaveWorld(g.World); err != nil {
		return err
	}
	if err := s.atomicWrite(s.path(EntitiesFile), nil); err != nil {
		return fmt.Errorf("save entities: %w", err)
	}
	s.log.Info("saved game", "dir", s.dir, "level", g.Level.Name, "chunks", g.World.NonEmptyCount())
	return nil
}

// SaveWorld replaces chunks.dat only.
func (s *Storage) SaveWorld(w *world.World) error {
	data, err := region.Encode(w)
	if err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	if err := s.atomicWrite(s.path(ChunksFile), data); err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	s.log.Debug("wrote chunk file", "path", s.path(ChunksFile), "bytes", len(data))
	return nil
}

// LoadGame reads all three files of the game directory. A missing
// entities.dat is tolerated; its content is not modelled.
func (s *Storage) LoadGame() (*Game, error) {
	lvl, err := level.Load(s.path(LevelFile))
	if err != nil {
		return nil, err
	}
	w, err := region.Load(s.path(ChunksFile))
	if err != nil {
		return nil, err
	}
	if fi, err := os.Stat(s.path(EntitiesFile)); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read entities: %w", err)
		}
		s.log.Debug("no entities file", "dir", s.dir)
	} else {
		s.log.Debug("ignoring entities file", "bytes", fi.Size())
	}
	s.log.Info("loaded game", "dir", s.dir, "level", lvl.Name, "chunks", w.NonEmptyCount())
	return &Game{Level: lvl, World: w}, nil
}

// atomicWrite writes data using a temp file + rename.
func (s *Storage) atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
