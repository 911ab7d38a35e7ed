package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/minecraft-world/internal/config"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: worldtool [flags] <command> [args]

commands:
  new                        create a game directory
  info                       print the level descriptor and world summary
  get x y z                  print one voxel
  set x y z material [meta]  change one voxel and save
  heightmap                  write the height map image
  backup [archive]           archive the game directory
  restore archive            restore the game directory from an archive
  fetch src                  download a chunk file into the game directory

flags:
`)
	flag.PrintDefaults()
}

func main() {
	cfg := config.DefaultConfig()
	var (
		configPath = flag.String("config", "", "YAML config file")
		overwrite  = flag.Bool("overwrite", false, "let new replace an existing game directory")
	)
	flag.StringVar(&cfg.WorldDir, "dir", cfg.WorldDir, "game directory")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "generator for new worlds (flat, terrain)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Layers, "layers", cfg.Layers, "flat world layers, bottom up")
	flag.IntVar(&cfg.ChunksPerSide, "chunks", cfg.ChunksPerSide, "chunks per side of a new world")
	flag.StringVar(&cfg.HeightMapPath, "heightmap", cfg.HeightMapPath, "height map output path")
	flag.StringVar(&cfg.BackupDir, "backup-dir", cfg.BackupDir, "directory for backup archives")
	flag.Usage = usage
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	t := &tool{cfg: cfg, log: log, overwrite: *overwrite}
	if err := t.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Error(flag.Arg(0)+" failed", "error", err)
		os.Exit(1)
	}
}
