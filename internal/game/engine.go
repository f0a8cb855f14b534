// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Create new games from a validated secret and an attempt budget.
//   - Apply guesses, enforcing the attempt limit.
//   - Score guesses with the cross-product hint algorithm.
//   - Track state transitions: active → resolved/exhausted.
//
// Notes:
//   - Guesses are never validated; parsing belongs to the caller.
//   - Resolution does not block further guesses, only the budget does.
package game

import "github.com/google/uuid"

// New constructs a new game for secret with at most maxGuesses attempts.
// Returns ErrInvalidSecret if any two digits of secret are equal.
func New(secret Code, maxGuesses uint32) (*Game, error) {
	if !validSecret(secret) {
		return nil, ErrInvalidSecret
	}
	return &Game{
		ID:         uuid.NewString(),
		secret:     secret,
		maxGuesses: maxGuesses,
	}, nil
}

// Guess scores guess against the secret, mutating the game state.
//
// Once the budget is spent it returns ErrMaxGuessesExceeded and leaves the
// game untouched. Otherwise the attempt is counted, the game is marked
// resolved on an exact match, and the hint is returned either way.
func (g *Game) Guess(guess Code) (Hint, error) {
	if g.guessesMade >= g.maxGuesses {
		return Hint{}, ErrMaxGuessesExceeded
	}
	g.guessesMade++
	if guess == g.secret {
		g.resolved = true
	}
	return scoreGuess(g.secret, guess), nil
}

// Secret returns a copy of the secret.
func (g *Game) Secret() Code { return g.secret }

// IsResolved reports whether some guess has matched the secret.
func (g *Game) IsResolved() bool { return g.resolved }

// GuessesMade returns the number of accepted guesses.
func (g *Game) GuessesMade() uint32 { return g.guessesMade }

// MaxGuesses returns the attempt budget.
func (g *Game) MaxGuesses() uint32 { return g.maxGuesses }

// Remaining returns how many guesses are still accepted.
func (g *Game) Remaining() uint32 { return g.maxGuesses - g.guessesMade }

// State reports the coarse lifecycle state. Resolved wins over exhausted
// when the last allowed guess was the correct one.
func (g *Game) State() State {
	switch {
	case g.resolved:
		return StateResolved
	case g.guessesMade >= g.maxGuesses:
		return StateExhausted
	default:
		return StateActive
	}
}

// scoreGuess compares every guess position against every secret position.
//
// A match at the same index counts as right position, a match at a different
// index as wrong position. There is no consumption bookkeeping: a guess that
// repeats a secret digit is counted once per matching comparison, so
// InWrongPosition can exceed what classic scoring would report.
func scoreGuess(secret, guess Code) Hint {
	var h Hint
	for i, gd := range guess {
		for j, sd := range secret {
			if gd != sd {
				continue
			}
			if i == j {
				h.InRightPosition++
			} else {
				h.InWrongPosition++
			}
		}
	}
	return h
}

// validSecret checks that all digits are pairwise distinct.
func validSecret(c Code) bool {
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if c[i] == c[j] {
				return false
			}
		}
	}
	return true
}
