package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/secret"
	"github.com/robalobadob/mastermind/internal/store"
)

func main() {
	// Logs go to stderr so stdout carries only the game transcript.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src, err := secretSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up secret source")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := console.New(console.Options{
		MaxGuesses: uint32(cfg.MaxGuesses),
		Games:      int(cfg.Games),
	}, store.NewMemoryStore(), src)

	log.Debug().Str("mode", cfg.SecretMode).Uint("maxGuesses", cfg.MaxGuesses).Msg("starting mastermind")
	sum, err := sess.Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("session exited")
	}
	log.Info().Int("games", sum.Games).Int("wins", sum.Wins).Msg("session finished")
}

// secretSource maps the configured mode to a secret.Source.
func secretSource(cfg config.Config) (secret.Source, error) {
	switch cfg.SecretMode {
	case config.ModeFixed:
		code, err := secret.ParseCode(cfg.Secret)
		if err != nil {
			return nil, err
		}
		return secret.Fixed(code), nil
	case config.ModeDaily:
		return daily.NewSource(cfg.DailySalt), nil
	default:
		return secret.Random(), nil
	}
}
