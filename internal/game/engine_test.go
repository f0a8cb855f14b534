package game

import (
	"errors"
	"math/rand"
	"testing"
)

func mustNew(t *testing.T, secret Code, max uint32) *Game {
	t.Helper()
	g, err := New(secret, max)
	if err != nil {
		t.Fatalf("New(%v, %d): %v", secret, max, err)
	}
	return g
}

func TestNewReturnsSecret(t *testing.T) {
	g := mustNew(t, Code{1, 2, 3, 4}, 1)

	if got := g.Secret(); got != (Code{1, 2, 3, 4}) {
		t.Fatalf("expected secret [1 2 3 4], got %v", got)
	}
	if g.IsResolved() {
		t.Fatal("new game should not be resolved")
	}
	if g.GuessesMade() != 0 {
		t.Fatalf("expected 0 guesses, got %d", g.GuessesMade())
	}
	if g.State() != StateActive {
		t.Fatalf("expected state %q, got %q", StateActive, g.State())
	}
	if g.ID == "" {
		t.Fatal("expected game ID to be set")
	}
}

func TestNewRejectsRepeatedDigits(t *testing.T) {
	secrets := []Code{
		{1, 1, 1, 1},
		{1, 2, 3, 1},
		{1, 1, 2, 3},
		{1, 2, 2, 3},
		{1, 2, 3, 3},
		{0, 2, 0, 3},
		{4, 0, 5, 0},
	}
	for _, s := range secrets {
		g, err := New(s, 1)
		if !errors.Is(err, ErrInvalidSecret) {
			t.Fatalf("New(%v): expected ErrInvalidSecret, got %v", s, err)
		}
		if g != nil {
			t.Fatalf("New(%v): expected nil game on error", s)
		}
	}
}

func TestNewCopiesSecret(t *testing.T) {
	secret := Code{1, 2, 3, 4}
	g := mustNew(t, secret, 1)
	secret[0] = 9

	if got := g.Secret(); got[0] != 1 {
		t.Fatalf("engine secret aliased caller array: %v", got)
	}
	out := g.Secret()
	out[1] = 9
	if got := g.Secret(); got[1] != 2 {
		t.Fatalf("Secret() exposed internal state: %v", got)
	}
}

func TestGuessExactMatchResolves(t *testing.T) {
	g := mustNew(t, Code{1, 2, 3, 4}, 1)

	hint, err := g.Guess(Code{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if hint != (Hint{InRightPosition: 4, InWrongPosition: 0}) {
		t.Fatalf("expected {4 0}, got %+v", hint)
	}
	if !g.IsResolved() {
		t.Fatal("expected game to be resolved")
	}
	if g.State() != StateResolved {
		t.Fatalf("expected state %q, got %q", StateResolved, g.State())
	}
}

func TestGuessHints(t *testing.T) {
	tests := []struct {
		name   string
		secret Code
		guess  Code
		want   Hint
	}{
		{"one in right position", Code{1, 5, 6, 7}, Code{1, 2, 3, 4}, Hint{1, 0}},
		{"one in wrong position", Code{5, 2, 6, 7}, Code{2, 1, 3, 4}, Hint{0, 1}},
		{"one right one wrong", Code{5, 2, 6, 7}, Code{2, 1, 6, 4}, Hint{1, 1}},
		{"no match", Code{1, 2, 3, 4}, Code{5, 6, 7, 8}, Hint{0, 0}},
		{"all permuted", Code{1, 2, 3, 4}, Code{4, 3, 2, 1}, Hint{0, 4}},
		{"repeated digit inflates wrong position", Code{1, 2, 3, 4}, Code{2, 2, 2, 2}, Hint{1, 3}},
		{"repeated digit never in place", Code{1, 2, 3, 4}, Code{1, 1, 9, 9}, Hint{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, tt.secret, 1)
			got, err := g.Guess(tt.guess)
			if err != nil {
				t.Fatalf("Guess: %v", err)
			}
			if got != tt.want {
				t.Fatalf("secret %v guess %v: expected %+v, got %+v", tt.secret, tt.guess, tt.want, got)
			}
		})
	}
}

func TestGuessStopsAfterMaximum(t *testing.T) {
	g := mustNew(t, Code{4, 5, 6, 7}, 2)

	for i := 0; i < 2; i++ {
		if _, err := g.Guess(Code{1, 2, 3, 4}); err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
	}
	if g.State() != StateExhausted {
		t.Fatalf("expected state %q, got %q", StateExhausted, g.State())
	}

	hint, err := g.Guess(Code{4, 5, 6, 7})
	if !errors.Is(err, ErrMaxGuessesExceeded) {
		t.Fatalf("expected ErrMaxGuessesExceeded, got %v", err)
	}
	if hint != (Hint{}) {
		t.Fatalf("expected zero hint on error, got %+v", hint)
	}
	if g.GuessesMade() != 2 {
		t.Fatalf("expected guesses to stay at 2, got %d", g.GuessesMade())
	}
	if g.IsResolved() {
		t.Fatal("rejected guess must not resolve the game")
	}
	if g.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", g.Remaining())
	}
}

func TestGuessWithZeroBudget(t *testing.T) {
	g := mustNew(t, Code{1, 2, 3, 4}, 0)

	if _, err := g.Guess(Code{1, 2, 3, 4}); !errors.Is(err, ErrMaxGuessesExceeded) {
		t.Fatalf("expected ErrMaxGuessesExceeded, got %v", err)
	}
	if g.IsResolved() {
		t.Fatal("expected unresolved game")
	}
}

func TestGuessAfterResolutionIsAccepted(t *testing.T) {
	g := mustNew(t, Code{1, 2, 3, 4}, 3)

	if _, err := g.Guess(Code{1, 2, 3, 4}); err != nil {
		t.Fatalf("winning guess: %v", err)
	}
	hint, err := g.Guess(Code{5, 6, 7, 8})
	if err != nil {
		t.Fatalf("guess after resolution: %v", err)
	}
	if hint != (Hint{}) {
		t.Fatalf("expected {0 0}, got %+v", hint)
	}
	if !g.IsResolved() {
		t.Fatal("resolution must be sticky")
	}
	if g.GuessesMade() != 2 {
		t.Fatalf("expected 2 guesses, got %d", g.GuessesMade())
	}
	if _, err := g.Guess(Code{1, 2, 3, 4}); err != nil {
		t.Fatalf("third guess: %v", err)
	}
	if _, err := g.Guess(Code{1, 2, 3, 4}); !errors.Is(err, ErrMaxGuessesExceeded) {
		t.Fatalf("expected budget to still apply, got %v", err)
	}
	if g.State() != StateResolved {
		t.Fatalf("expected state %q, got %q", StateResolved, g.State())
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	g := mustNew(t, Code{9, 8, 7, 6}, 5)
	if _, err := g.Guess(Code{9, 1, 2, 3}); err != nil {
		t.Fatalf("Guess: %v", err)
	}

	s1, r1 := g.Secret(), g.IsResolved()
	s2, r2 := g.Secret(), g.IsResolved()
	if s1 != s2 || r1 != r2 {
		t.Fatalf("queries changed between calls: %v/%v vs %v/%v", s1, r1, s2, r2)
	}
	if g.GuessesMade() != 1 {
		t.Fatalf("queries must not count as guesses, got %d", g.GuessesMade())
	}
}

// TestScoreGuessBounds checks random secrets/guesses against the counting rule.
func TestScoreGuessBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 5000; n++ {
		perm := rng.Perm(10)
		var secret, guess Code
		for i := range secret {
			secret[i] = uint32(perm[i])
			guess[i] = uint32(rng.Intn(10))
		}

		h := scoreGuess(secret, guess)

		var shared, inPlace uint32
		for i, gd := range guess {
			for _, sd := range secret {
				if gd == sd {
					shared++
				}
			}
			if gd == secret[i] {
				inPlace++
			}
		}
		if h.InRightPosition+h.InWrongPosition != shared {
			t.Fatalf("secret %v guess %v: total %+v, want %d", secret, guess, h, shared)
		}
		if h.InRightPosition+h.InWrongPosition > CodeLength {
			t.Fatalf("secret %v guess %v: total exceeds %d: %+v", secret, guess, CodeLength, h)
		}
		if h.InRightPosition != inPlace {
			t.Fatalf("secret %v guess %v: right %d, want %d", secret, guess, h.InRightPosition, inPlace)
		}
	}
}
