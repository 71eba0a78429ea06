// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/ik5/loopplay/output"
)

const appName = "loopplay"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	File            string        `koanf:"file"`
	Duration        time.Duration `koanf:"duration"` // "2s", "1m30s"; 0 loops until interrupted
	Sink            string        `koanf:"sink"`     // "portaudio", "speaker" or "null"
	Device          string        `koanf:"device"`   // empty selects the default output device
	Latency         string        `koanf:"latency"`  // "high" or "low"
	FramesPerBuffer int           `koanf:"frames_per_buffer"`
	LogLevel        string        `koanf:"log_level"`
}

// Default matches running the player without any configuration.
func Default() Config {
	return Config{
		File:     "test.wav",
		Duration: 2 * time.Second,
		Sink:     "portaudio",
		Latency:  string(output.LatencyHigh),
		LogLevel: "info",
	}
}

// Load reads the config files from Paths on top of Default.
func Load() (*Config, error) {
	return LoadFiles(Paths()...)
}

// LoadFiles reads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.File = expandPath(cfg.File)

	return &cfg, nil
}

// Paths lists the config files in order of priority, last wins:
// the user config under XDG_CONFIG_HOME, then ./loopplay.toml.
func Paths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		appName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks every field that can be checked without opening anything.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("%w: file is empty", ErrInvalidConfig)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: negative duration %s", ErrInvalidConfig, c.Duration)
	}
	if c.FramesPerBuffer < 0 {
		return fmt.Errorf("%w: negative frames_per_buffer %d", ErrInvalidConfig, c.FramesPerBuffer)
	}
	if c.Sink == "" {
		return fmt.Errorf("%w: sink is empty", ErrInvalidConfig)
	}
	if _, err := output.ParseLatency(c.Latency); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, or info if it does not parse.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Params builds the sink parameters. Channels and sample rate are left for
// the session to fill from the source.
func (c *Config) Params() output.Params {
	lat, err := output.ParseLatency(c.Latency)
	if err != nil {
		lat = output.LatencyHigh
	}

	return output.Params{
		Device:          c.Device,
		Latency:         lat,
		FramesPerBuffer: c.FramesPerBuffer,
	}
}
