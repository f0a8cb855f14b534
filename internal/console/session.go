// internal/console/session.go
//
// Line-oriented console shell around the game engine.
// Responsibilities:
//   - Start games with secrets from a secret.Source.
//   - Read one guess per line, parse it, and report hints.
//   - Stop early on a win, announce exhaustion, always reveal the secret.
//   - Record finished games in the session store and summarize them.
//
// Notes:
//   - Malformed lines never reach the engine and do not cost an attempt.
//   - End of input ends the session after revealing the current secret.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/secret"
	"github.com/robalobadob/mastermind/internal/store"
)

// Options configures a Session.
type Options struct {
	MaxGuesses uint32
	Games      int
	Logger     *zerolog.Logger // defaults to the global logger
}

// Summary describes the games recorded in the session store.
type Summary struct {
	Games   int
	Wins    int
	Guesses int
}

// Session plays one or more games over a reader/writer pair.
type Session struct {
	opts  Options
	store store.Store
	src   secret.Source
	log   zerolog.Logger
}

// New constructs a Session.
func New(opts Options, st store.Store, src secret.Source) *Session {
	if opts.Games <= 0 {
		opts.Games = 1
	}
	l := log.Logger
	if opts.Logger != nil {
		l = *opts.Logger
	}
	return &Session{opts: opts, store: st, src: src, log: l}
}

// errNoInput marks a game cut short by end of input.
var errNoInput = errors.New("no more input")

// Run plays up to opts.Games games, reading guesses from in and writing the
// transcript to out. It stops early when input runs out.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	sc := bufio.NewScanner(in)
	for i := 0; i < s.opts.Games; i++ {
		err := s.playGame(ctx, sc, out)
		if errors.Is(err, errNoInput) {
			break
		}
		if err != nil {
			return Summary{}, err
		}
	}
	if err := sc.Err(); err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}

	sum, err := s.summarize(ctx)
	if err != nil {
		return Summary{}, err
	}
	if s.opts.Games > 1 {
		fmt.Fprintf(out, "> Played %d games, won %d, %d guesses in total\n", sum.Games, sum.Wins, sum.Guesses)
	}
	return sum, nil
}

// playGame runs a single game to completion (win, exhaustion or end of input).
func (s *Session) playGame(ctx context.Context, sc *bufio.Scanner, out io.Writer) error {
	code, err := s.src.Next(ctx)
	if err != nil {
		return fmt.Errorf("next secret: %w", err)
	}
	g, err := game.New(code, s.opts.MaxGuesses)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	logger := s.log.With().Str("gameId", g.ID).Logger()
	logger.Debug().Uint32("maxGuesses", g.MaxGuesses()).Msg("game started")
	fmt.Fprintln(out, "Starting a new game")

	var playErr error
	for g.State() == game.StateActive {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(out, "> Make your guess")
		if !sc.Scan() {
			playErr = errNoInput
			break
		}
		guess, err := secret.ParseCode(sc.Text())
		if err != nil {
			logger.Debug().Err(err).Msg("rejected input")
			fmt.Fprintf(out, "> Invalid guess (%v); enter %d digits\n", err, game.CodeLength)
			continue
		}
		hint, err := g.Guess(guess)
		if err != nil {
			logger.Warn().Err(err).Msg("guess refused")
			fmt.Fprintf(out, "> Error while playing: %v\n", err)
			break
		}
		logger.Debug().
			Uint32("guesses", g.GuessesMade()).
			Uint32("right", hint.InRightPosition).
			Uint32("wrong", hint.InWrongPosition).
			Msg("guess scored")
		writeHint(out, hint)
	}

	if !g.IsResolved() && playErr == nil {
		fmt.Fprintln(out, "> You have no more remaining guesses :(")
	}
	fmt.Fprintf(out, "> Secret was: %s\n", secret.FormatCode(g.Secret()))

	if err := s.store.Save(ctx, g); err != nil {
		logger.Error().Err(err).Msg("save game")
		return fmt.Errorf("save game: %w", err)
	}
	logger.Info().
		Str("state", string(g.State())).
		Uint32("guesses", g.GuessesMade()).
		Msg("game finished")
	return playErr
}

// writeHint prints a hint; four digits in place is a win.
func writeHint(out io.Writer, h game.Hint) {
	if h.InRightPosition == game.CodeLength {
		fmt.Fprintln(out, "> You won!")
		return
	}
	fmt.Fprintf(out, "> You have %d numbers in right position and %d in wrong position\n",
		h.InRightPosition, h.InWrongPosition)
}

func (s *Session) summarize(ctx context.Context) (Summary, error) {
	games, err := s.store.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list games: %w", err)
	}
	var sum Summary
	for _, g := range games {
		sum.Games++
		sum.Guesses += int(g.GuessesMade())
		if g.IsResolved() {
			sum.Wins++
		}
	}
	return sum, nil
}
