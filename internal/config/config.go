// Package config loads game settings from the environment (and an optional
// .env file), with command-line flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/secret"
)

// Secret modes.
const (
	ModeRandom = "random"
	ModeFixed  = "fixed"
	ModeDaily  = "daily"
)

// Config holds the settings for one run.
type Config struct {
	MaxGuesses uint   `env:"MASTERMIND_MAX_GUESSES" envDefault:"10"`
	Games      uint   `env:"MASTERMIND_GAMES" envDefault:"1"`
	SecretMode string `env:"MASTERMIND_SECRET_MODE" envDefault:"random"`
	Secret     string `env:"MASTERMIND_SECRET" envDefault:"1234"`
	DailySalt  string `env:"MASTERMIND_DAILY_SALT" envDefault:"local_dev_salt"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and parses the environment into a Config.
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers flags on fs that override the loaded values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.UintVar(&c.MaxGuesses, "max-guesses", c.MaxGuesses, "maximum guesses per game")
	fs.UintVar(&c.Games, "games", c.Games, "number of games to play")
	fs.StringVar(&c.SecretMode, "mode", c.SecretMode, "secret mode: random, fixed or daily")
	fs.StringVar(&c.Secret, "secret", c.Secret, "secret used by -mode=fixed")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "zerolog level")
}

// Validate checks ranges and that a fixed secret is usable.
func (c Config) Validate() error {
	if c.MaxGuesses == 0 || c.MaxGuesses > math.MaxUint32 {
		return errors.New("max guesses must be between 1 and 4294967295")
	}
	if c.Games == 0 {
		return errors.New("games must be at least 1")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.SecretMode {
	case ModeRandom, ModeDaily:
	case ModeFixed:
		code, err := secret.ParseCode(c.Secret)
		if err != nil {
			return fmt.Errorf("secret: %w", err)
		}
		if _, err := game.New(code, 1); err != nil {
			return fmt.Errorf("secret %s: %w", c.Secret, err)
		}
	default:
		return fmt.Errorf("unknown secret mode %q", c.SecretMode)
	}
	return nil
}
