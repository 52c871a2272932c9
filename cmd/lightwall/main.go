package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"lightwall/internal/camera"
	"lightwall/internal/config"
	"lightwall/internal/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "lightwall.toml", "path to the TOML config file")
	flag.Parse()
	// A relative path that exists in the current directory wins over one next
	// to the executable.
	if *configPath != "" && !filepath.IsAbs(*configPath) {
		if abs, err := filepath.Abs(*configPath); err == nil && fileExists(abs) {
			*configPath = abs
		}
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := run(*configPath); err != nil {
		slog.Error("lightwall", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.Log.SlogLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	app, err := game.New(cfg, log)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := config.Watch(ctx, configPath, log)
	if err != nil {
		log.Warn("config hot reload disabled", "err", err)
	} else {
		defer watcher.Close()
		app.Reloads = watcher
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("open window: no GL context")
	}
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	app.Window = game.RaylibWindow{}
	app.Input = &camera.MouseInput{}
	app.Clock = &game.RaylibClock{}

	err = app.Run(ctx, &game.RaylibScheduler{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
