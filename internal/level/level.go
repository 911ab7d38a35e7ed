// Package level reads and writes the level descriptor (level.dat) of a game
// directory.
package level

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/minecraft-world/internal/nbt"
	"github.com/OCharnyshevich/minecraft-world/internal/world"
)

// GameMode of a level.
type GameMode int32

const (
	Survival GameMode = 0
	Creative GameMode = 1
)

func (m GameMode) String() string {
	switch m {
	case Survival:
		return "survival"
	case Creative:
		return "creative"
	}
	return fmt.Sprintf("gamemode_%d", int32(m))
}

// WorldType is the generator family recorded in the descriptor.
type WorldType int32

const (
	WorldOld      WorldType = 0
	WorldInfinite WorldType = 1
	WorldFlat     WorldType = 2
)

func (t WorldType) String() string {
	switch t {
	case WorldOld:
		return "old"
	case WorldInfinite:
		return "infinite"
	case WorldFlat:
		return "flat"
	}
	return fmt.Sprintf("type_%d", int32(t))
}

// GeneratorVersion written for new levels.
const GeneratorVersion = 1

// Level is the descriptor stored next to the chunk file.
type Level struct {
	Name             string
	Seed             int64
	Spawn            world.Pos
	GameMode         GameMode
	Difficulty       int32
	WorldType        WorldType
	GeneratorVersion int32
	// GeneratorOptions holds the flat layer list for flat worlds.
	GeneratorOptions string
}

// New returns a descriptor with defaults: creative, normal difficulty,
// old world type, spawn above the centre of the grid.
func New(name string, seed int64) *Level {
	return &Level{
		Name:             name,
		Seed:             seed,
		Spawn:            world.Pos{X: world.ChunksPerDirection * world.XSize / 2, Y: 64, Z: world.ChunksPerDirection * world.ZSize / 2},
		GameMode:         Creative,
		Difficulty:       2,
		WorldType:        WorldOld,
		GeneratorVersion: GeneratorVersion,
	}
}

// Tag names inside the root compound.
const (
	tagName       = "LevelName"
	tagSeed       = "RandomSeed"
	tagSpawnX     = "SpawnX"
	tagSpawnY     = "SpawnY"
	tagSpawnZ     = "SpawnZ"
	tagGameType   = "GameType"
	tagDifficulty = "Difficulty"
	tagGenerator  = "Generator"
	tagGenVersion = "GeneratorVersion"
	tagGenOptions = "GeneratorOptions"
	tagStorage    = "StorageVersion"
)

// Encode serializes l to the on-disk form: file header plus a little-endian
// tag tree.
func (l *Level) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := nbt.NewWriter(&buf, binary.LittleEndian)
	w.BeginCompound("")
	w.WriteString(tagName, l.Name)
	w.WriteLong(tagSeed, l.Seed)
	w.WriteInt(tagSpawnX, int32(l.Spawn.X))
	w.WriteInt(tagSpawnY, int32(l.Spawn.Y))
	w.WriteInt(tagSpawnZ, int32(l.Spawn.Z))
	w.WriteInt(tagGameType, int32(l.GameMode))
	w.WriteInt(tagDifficulty, l.Difficulty)
	w.WriteInt(tagGenerator, int32(l.WorldType))
	w.WriteInt(tagGenVersion, l.GeneratorVersion)
	if l.GeneratorOptions != "" {
		w.WriteString(tagGenOptions, l.GeneratorOptions)
	}
	w.WriteInt(tagStorage, nbt.FileVersion)
	w.EndCompound()
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode level: %w", err)
	}
	return nbt.WrapFile(buf.Bytes()), nil
}

// Decode parses the on-disk form. Missing tags keep their zero value.
func Decode(data []byte) (*Level, error) {
	body, err := nbt.UnwrapFile(data)
	if err != nil {
		return nil, err
	}
	_, root, err := nbt.NewReader(bytes.NewReader(body), binary.LittleEndian).ReadRoot()
	if err != nil {
		return nil, err
	}

	l := &Level{}
	l.Name, _ = root.String(tagName)
	l.GeneratorOptions, _ = root.String(tagGenOptions)
	l.Seed, _ = root.Int(tagSeed)
	i32 := func(name string) int32 {
		v, _ := root.Int(name)
		return int32(v)
	}
	l.Spawn = world.Pos{X: int(i32(tagSpawnX)), Y: int(i32(tagSpawnY)), Z: int(i32(tagSpawnZ))}
	l.GameMode = GameMode(i32(tagGameType))
	l.Difficulty = i32(tagDifficulty)
	l.WorldType = WorldType(i32(tagGenerator))
	l.GeneratorVersion = i32(tagGenVersion)
	return l, nil
}

// Load reads a level descriptor from path.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	l, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return l, nil
}

// Save writes l to path, creating the parent directory.
func (l *Level) Save(path string) error {
	data, err := l.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}

func (l *Level) String() string {
	return fmt.Sprintf("level{name=%q seed=%d spawn=%v mode=%v type=%v}", l.Name, l.Seed, l.Spawn, l.GameMode, l.WorldType)
}
