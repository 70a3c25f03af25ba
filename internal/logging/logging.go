// Package logging builds the logrus loggers used by the front ends. File
// output goes through lumberjack so long sessions rotate their logs.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the destination, rotation and level of a logger.
type Options struct {
	// Level is a logrus level name, case-insensitive. Empty means info.
	Level string
	// File, when set, receives JSON lines instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New returns a logger configured from opts.
func New(opts Options) *logrus.Logger {
	l := logrus.New()
	if opts.File != "" {
		l.SetOutput(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		})
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetOutput(os.Stderr)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	l.SetLevel(ParseLevel(opts.Level))
	return l
}

// ParseLevel maps a level name to a logrus level, falling back to info.
func ParseLevel(name string) logrus.Level {
	name = strings.TrimSpace(name)
	if name == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(name))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Close releases the logger's output if it holds a file.
func Close(l *logrus.Logger) error {
	if l == nil {
		return nil
	}
	if c, ok := l.Out.(io.Closer); ok && l.Out != os.Stderr && l.Out != os.Stdout {
		return c.Close()
	}
	return nil
}
