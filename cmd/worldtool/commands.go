package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/OCharnyshevich/minecraft-world/internal/config"
	"github.com/OCharnyshevich/minecraft-world/internal/level"
	"github.com/OCharnyshevich/minecraft-world/internal/render"
	"github.com/OCharnyshevich/minecraft-world/internal/storage"
	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
	"github.com/OCharnyshevich/minecraft-world/internal/world/gen"
)

type tool struct {
	cfg       *config.Config
	log       *slog.Logger
	overwrite bool
	out       io.Writer
}

func (t *tool) storage() *storage.Storage {
	return storage.New(t.cfg.WorldDir, t.log)
}

func (t *tool) stdout() io.Writer {
	if t.out != nil {
		return t.out
	}
	return color.Output
}

func (t *tool) run(ctx context.Context, cmd string, args []string) error {
	want := map[string][2]int{
		"new":       {0, 0},
		"info":      {0, 0},
		"get":       {3, 3},
		"set":       {4, 5},
		"heightmap": {0, 0},
		"backup":    {0, 1},
		"restore":   {1, 1},
		"fetch":     {1, 1},
	}
	n, ok := want[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	if len(args) < n[0] || len(args) > n[1] {
		return fmt.Errorf("%s: expected %d to %d arguments, got %d", cmd, n[0], n[1], len(args))
	}

	switch cmd {
	case "new":
		return t.newGame()
	case "info":
		return t.info()
	case "get":
		return t.get(args)
	case "set":
		return t.set(args)
	case "heightmap":
		return t.heightmap()
	case "backup":
		return t.backup(args)
	case "restore":
		return t.storage().Restore(args[0])
	default:
		return t.storage().Fetch(ctx, args[0])
	}
}

func (t *tool) newGame() error {
	g, err := gen.New(t.cfg.Generator, t.cfg.Seed, t.cfg.Layers)
	if err != nil {
		return err
	}
	w, err := world.FromChunks(gen.Fill(g, t.cfg.ChunksPerSide))
	if err != nil {
		return err
	}

	lvl := level.New(filepath.Base(t.cfg.WorldDir), t.cfg.Seed)
	if flat, ok := g.(*gen.FlatGenerator); ok {
		lvl.WorldType = level.WorldFlat
		lvl.GameMode = level.Survival
		lvl.GeneratorOptions = fmt.Sprintf("3;%s;1;", flat.Layers())
	}
	side := t.cfg.ChunksPerSide
	lvl.Spawn = world.Pos{X: side * world.XSize / 2, Z: side * world.ZSize / 2}
	lvl.Spawn.Y = g.HeightAt(lvl.Spawn.X, lvl.Spawn.Z) + 1

	return t.storage().SaveGame(&storage.Game{Level: lvl, World: w}, storage.SaveOptions{Overwrite: t.overwrite})
}

func (t *tool) info() error {
	g, err := t.storage().LoadGame()
	if err != nil {
		return err
	}
	out := t.stdout()
	key := color.New(color.FgCyan).SprintFunc()
	l := g.Level
	fmt.Fprintf(out, "%s %s\n", key("name:      "), l.Name)
	fmt.Fprintf(out, "%s %d\n", key("seed:      "), l.Seed)
	fmt.Fprintf(out, "%s %v\n", key("spawn:     "), l.Spawn)
	fmt.Fprintf(out, "%s %v\n", key("game mode: "), l.GameMode)
	fmt.Fprintf(out, "%s %v\n", key("world type:"), l.WorldType)
	if l.GeneratorOptions != "" {
		fmt.Fprintf(out, "%s %s\n", key("generator: "), l.GeneratorOptions)
	}
	fmt.Fprintf(out, "%s %s\n", key("chunks:    "),
		color.GreenString("%d", g.World.NonEmptyCount())+" occupied, "+color.YellowString("%d", g.World.EmptyCount())+" empty")
	return nil
}

func parsePos(args []string) (world.Pos, error) {
	var v [3]int
	for i := range v {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return world.Pos{}, fmt.Errorf("coordinate %q: %w", args[i], err)
		}
		v[i] = n
	}
	return world.Pos{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (t *tool) get(args []string) error {
	p, err := parsePos(args)
	if err != nil {
		return err
	}
	g, err := t.storage().LoadGame()
	if err != nil {
		return err
	}
	v, err := g.World.Voxel(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(t.stdout(), v)
	return nil
}

func (t *tool) set(args []string) error {
	p, err := parsePos(args)
	if err != nil {
		return err
	}
	material, ok := block.ByName(args[3])
	if !ok {
		return fmt.Errorf("unknown material %q", args[3])
	}
	var meta []uint8
	if len(args) == 5 {
		m, err := strconv.ParseUint(args[4], 10, 8)
		if err != nil {
			return fmt.Errorf("meta %q: %w", args[4], err)
		}
		meta = append(meta, uint8(m))
	}

	s := t.storage()
	g, err := s.LoadGame()
	if err != nil {
		return err
	}
	if err := g.World.UpdateVoxel(p, material, meta...); err != nil {
		return err
	}
	if err := s.SaveWorld(g.World); err != nil {
		return err
	}
	t.log.Info("voxel updated", "pos", p, "material", material)
	return nil
}

func (t *tool) heightmap() error {
	g, err := t.storage().LoadGame()
	if err != nil {
		return err
	}
	if err := render.SaveHeightMap(g.World, t.cfg.HeightMapPath); err != nil {
		return err
	}
	t.log.Info("saved height map", "path", t.cfg.HeightMapPath)
	return nil
}

func (t *tool) backup(args []string) error {
	dst := filepath.Join(t.cfg.BackupDir,
		fmt.Sprintf("%s-%s.tar.zst", filepath.Base(t.cfg.WorldDir), time.Now().Format("20060102-150405")))
	if len(args) == 1 {
		dst = args[0]
	}
	if _, err := os.Stat(t.cfg.WorldDir); err != nil {
		return err
	}
	return t.storage().Backup(dst)
}
