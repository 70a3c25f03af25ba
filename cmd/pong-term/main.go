package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/amorcar/cpong/internal/app"
	"github.com/amorcar/cpong/internal/config"
	"github.com/amorcar/cpong/internal/core"
	"github.com/amorcar/cpong/internal/logging"
	"github.com/amorcar/cpong/internal/pong"
	"github.com/amorcar/cpong/internal/term"
)

// defaultLogFile keeps log lines off the screen tcell draws on.
const defaultLogFile = "pong-term.log"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("pong-term", pflag.ExitOnError)
	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	logger := logging.New(cfg.LoggingOptions())
	defer logging.Close(logger)

	match := pong.NewWithRules(cfg.GameRules(), cfg.Seed)
	entry := logger.WithField("match", match.ID())

	screen, err := term.Open()
	if err != nil {
		entry.WithError(err).Error("terminal unavailable")
		return err
	}
	defer screen.Close()

	driver := app.NewDriver(match, screen, screen, core.SystemClock{}, entry)
	if err := driver.Run(); err != nil {
		entry.WithError(err).Error("frame loop failed")
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
