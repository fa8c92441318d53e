// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	HistoryPath    string        `env:"HANGMAN_HISTORY_PATH" envDefault:"./hangman_history.db"`
	WordsFile      string        `env:"HANGMAN_WORDS_FILE"`
	WordSeed       string        `env:"HANGMAN_WORD_SEED"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.HistoryPath) == "" {
		return Config{}, fmt.Errorf("HANGMAN_HISTORY_PATH must not be empty")
	}
	if _, _, err := cfg.Seed(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Seed returns the fixed word-selection seed, if one is configured.
func (c Config) Seed() (uint64, bool, error) {
	s := strings.TrimSpace(c.WordSeed)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("HANGMAN_WORD_SEED: %w", err)
	}
	return n, true, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
