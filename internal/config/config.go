// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from NEURONEST_* variables. Command-line flags
// override them.
type Config struct {
	DBPath   string `env:"NEURONEST_DB"`
	TimeZone string `env:"NEURONEST_TZ"`
	Seed     int64  `env:"NEURONEST_SEED"`
	Verbose  bool   `env:"NEURONEST_VERBOSE" envDefault:"false"`
}

// Load parses the environment. An unset database path falls back to
// ~/.neuronest/neuronest.db.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	return cfg, nil
}

// DefaultDBPath returns the database location used when none is configured.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".neuronest", "neuronest.db")
}

// Location returns the zone used for calendar days. Empty means local time.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Rand returns the random source for rotation and replies. A zero seed is
// replaced with the current time.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Logger returns a logger writing to w when verbose, or discarding otherwise.
func (c Config) Logger(w io.Writer) *log.Logger {
	if !c.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "neuronest: ", 0)
}
