// Package main provides the adventure binary: a single-player text
// adventure played over standard input and output.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/eldara/internal/config"
	"github.com/cory-johannsen/eldara/internal/frontend/render"
	"github.com/cory-johannsen/eldara/internal/game/engine"
	"github.com/cory-johannsen/eldara/internal/game/world"
	"github.com/cory-johannsen/eldara/internal/observability"
	"github.com/cory-johannsen/eldara/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and ADVENTURE_* environment only")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zone := world.Build()
	logger.Info("world loaded",
		zap.String("zone", zone.ID),
		zap.Int("rooms", len(zone.Rooms)),
	)

	scripts := scripting.NewManager(logger, scripting.DefaultInstructionLimit)
	defer scripts.Close()
	if err := scripts.LoadZone(zone.ID, world.Scripts()); err != nil {
		logger.Warn("room scripts disabled", zap.String("zone", zone.ID), zap.Error(err))
		scripts = nil
	}

	renderer := render.New(cfg.Game.Color, cfg.Game.WrapWidth)
	game := engine.New(zone, scripts, renderer, logger)

	logger.Info("adventure starting",
		zap.String("run", game.Adventurer().UID),
		zap.Duration("startup", time.Since(start)),
	)

	if cfg.Game.Banner {
		if _, err := os.Stdout.WriteString(game.Intro()); err != nil {
			logger.Error("writing banner", zap.Error(err))
			return
		}
	}

	if err := game.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error("session ended with error", zap.Error(err))
		return
	}

	logger.Info("adventure finished",
		zap.Int("moves", game.Adventurer().Moves),
		zap.Bool("treasure", game.Adventurer().HasTreasure),
		zap.Duration("elapsed", time.Since(start)),
	)
}
