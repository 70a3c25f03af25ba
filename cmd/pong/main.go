//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/amorcar/cpong/internal/app"
	"github.com/amorcar/cpong/internal/config"
	"github.com/amorcar/cpong/internal/logging"
	"github.com/amorcar/cpong/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	fs := pflag.NewFlagSet("pong", pflag.ExitOnError)
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LoggingOptions())
	defer logging.Close(logger)

	match := pong.NewWithRules(cfg.GameRules(), cfg.Seed)
	entry := logger.WithField("match", match.ID())
	for key, p := range match.Parameters().Flatten() {
		entry.WithField(key, p.Value).Debug("rule")
	}

	game := app.New(match, entry)
	size := match.Size()

	ebiten.SetWindowTitle("pong")
	ebiten.SetWindowDecorated(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(int(float64(size.W)*cfg.Scale), int(float64(size.H)*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		entry.WithError(err).Error("game loop failed")
		logging.Close(logger)
		os.Exit(1)
	}
}
