// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Code: a fixed four-digit sequence (used for both secrets and guesses).
//   - Hint: feedback for a single guess (right position / wrong position).
//   - State: coarse lifecycle state of a game (active/resolved/exhausted).
//   - Game: state for a single in-progress or finished game.

package game

import "errors"

// CodeLength is the number of digits in a secret or a guess.
const CodeLength = 4

// Code is an ordered sequence of CodeLength digits.
// Secrets must hold pairwise-distinct values; guesses may repeat digits.
type Code [CodeLength]uint32

// Hint is the outcome of comparing one guess against the secret.
type Hint struct {
	InRightPosition uint32 `json:"inRightPosition"`
	InWrongPosition uint32 `json:"inWrongPosition"`
}

// State represents where a game is in its lifecycle.
//   - "active":    guesses remain and the secret has not been found.
//   - "resolved":  some guess matched the secret exactly.
//   - "exhausted": the attempt budget is spent without a match.
type State string

const (
	StateActive    State = "active"
	StateResolved  State = "resolved"
	StateExhausted State = "exhausted"
)

var (
	// ErrInvalidSecret is returned by New when the secret repeats a digit.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrMaxGuessesExceeded is returned by Guess once the attempt budget is spent.
	ErrMaxGuessesExceeded = errors.New("max guesses exceeded")
)

// Game holds the state of a single Mastermind game.
// It is not safe for concurrent use; hosts must serialize access.
type Game struct {
	ID string // Unique game identifier (uuid), used by session stores.

	secret      Code
	resolved    bool
	guessesMade uint32
	maxGuesses  uint32
}
