// Package config loads runtime settings from flags, PONG_ environment
// variables and an optional config file.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/amorcar/cpong/internal/logging"
	"github.com/amorcar/cpong/internal/pong"
)

// EnvPrefix prefixes every environment override, e.g. PONG_FPS.
const EnvPrefix = "PONG"

// Config represents the runtime parameters shared by the front ends.
type Config struct {
	ConfigFile string
	FPS        int
	Scale      float64
	Seed       int64

	ClampBounce    bool
	SweptCollision bool
	MaxDeltaMS     int

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool

	// Rules holds gameplay overrides keyed like pong.FromMap.
	Rules map[string]string
}

// NewConfig returns a Config populated with the default rules.
func NewConfig() *Config {
	r := pong.DefaultRules()
	return &Config{
		FPS:            r.FPS,
		Scale:          1,
		ClampBounce:    r.ClampBounce,
		SweptCollision: r.SweptCollision,
		MaxDeltaMS:     int(r.MaxDelta.Milliseconds()),
		LogLevel:       "info",
		LogMaxSizeMB:   10,
		LogMaxBackups:  3,
		LogMaxAgeDays:  28,
		Rules:          map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "config file (yaml, toml, json or properties)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame rate cap")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.BoolVar(&c.ClampBounce, "clamp-bounce", c.ClampBounce, "limit bounce angles to the maximum")
	fs.BoolVar(&c.SweptCollision, "swept", c.SweptCollision, "test paddle hits where the ball crosses the plane")
	fs.IntVar(&c.MaxDeltaMS, "max-delta-ms", c.MaxDeltaMS, "largest frame delta in milliseconds (0 disables)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log file (rotated); stderr when empty")
	fs.IntVar(&c.LogMaxSizeMB, "log-max-size", c.LogMaxSizeMB, "log file size before rotation in megabytes")
	fs.IntVar(&c.LogMaxBackups, "log-max-backups", c.LogMaxBackups, "rotated log files to keep")
	fs.IntVar(&c.LogMaxAgeDays, "log-max-age", c.LogMaxAgeDays, "days to keep rotated log files")
	fs.BoolVar(&c.LogCompress, "log-compress", c.LogCompress, "gzip rotated log files")
}

// Load parses args into a fresh Config. Values resolve in the order flag,
// environment, config file, default.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", c.ConfigFile, err)
		}
	}

	c.FPS = cast.ToInt(v.Get("fps"))
	c.Scale = cast.ToFloat64(v.Get("scale"))
	c.Seed = cast.ToInt64(v.Get("seed"))
	c.ClampBounce = cast.ToBool(v.Get("clamp-bounce"))
	c.SweptCollision = cast.ToBool(v.Get("swept"))
	c.MaxDeltaMS = cast.ToInt(v.Get("max-delta-ms"))
	c.LogLevel = cast.ToString(v.Get("log-level"))
	c.LogFile = cast.ToString(v.Get("log-file"))
	c.LogMaxSizeMB = cast.ToInt(v.Get("log-max-size"))
	c.LogMaxBackups = cast.ToInt(v.Get("log-max-backups"))
	c.LogMaxAgeDays = cast.ToInt(v.Get("log-max-age"))
	c.LogCompress = cast.ToBool(v.Get("log-compress"))
	if c.Scale <= 0 {
		c.Scale = 1
	}

	for key, val := range cast.ToStringMap(v.Get("rules")) {
		c.Rules[strings.ToLower(key)] = cast.ToString(val)
	}
	// Top-level settings beat the rules table only when set explicitly.
	for flagKey, ruleKey := range map[string]string{
		"fps":          "fps",
		"clamp-bounce": "clamp_bounce",
		"swept":        "swept_collision",
		"max-delta-ms": "max_delta_ms",
	} {
		if _, inRules := c.Rules[ruleKey]; v.IsSet(flagKey) || !inRules {
			c.Rules[ruleKey] = cast.ToString(v.Get(flagKey))
		}
	}
	if n, err := strconv.Atoi(c.Rules["fps"]); err == nil {
		c.FPS = n
	}
	return c, nil
}

// GameRules returns the gameplay rules described by the configuration.
func (c *Config) GameRules() pong.Rules {
	return pong.FromMap(c.Rules)
}

// LoggingOptions returns the logger settings.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
		Compress:   c.LogCompress,
	}
}
