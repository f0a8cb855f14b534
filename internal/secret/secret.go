// internal/secret/secret.go
//
// Provides secret selection for the game engine.
//
// Responsibilities:
//   - Enumerate every valid secret (4 pairwise-distinct digits, 5040 codes).
//   - Supply Source implementations: Random (crypto/rand) and Fixed.
//   - Parse player input into a game.Code (see parse.go).
//
// The enumeration is built lazily exactly once (sync.Once) and is shared
// read-only by every caller.

package secret

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/robalobadob/mastermind/internal/game"
)

// Source yields the secret for the next game.
type Source interface {
	Next(ctx context.Context) (game.Code, error)
}

var (
	allOnce sync.Once
	all     []game.Code // every valid secret, lexical order
)

// All returns every valid secret in lexical order.
// The returned slice must not be modified.
func All() []game.Code {
	allOnce.Do(func() {
		all = make([]game.Code, 0, 10*9*8*7)
		var c game.Code
		var used [10]bool
		var fill func(pos int)
		fill = func(pos int) {
			if pos == game.CodeLength {
				all = append(all, c)
				return
			}
			for d := uint32(0); d < 10; d++ {
				if used[d] {
					continue
				}
				used[d] = true
				c[pos] = d
				fill(pos + 1)
				used[d] = false
			}
		}
		fill(0)
	})
	return all
}

// random draws from All using crypto/rand.
type random struct{}

// Random returns a Source producing cryptographically random secrets.
func Random() Source { return random{} }

func (random) Next(ctx context.Context) (game.Code, error) {
	if err := ctx.Err(); err != nil {
		return game.Code{}, err
	}
	codes := All()
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(codes))))
	if err != nil {
		return game.Code{}, fmt.Errorf("random secret: %w", err)
	}
	return codes[nBig.Int64()], nil
}

// fixed always yields the same code.
type fixed struct{ code game.Code }

// Fixed returns a Source that always yields code. The code is not validated
// here; game.New rejects it if it repeats a digit.
func Fixed(code game.Code) Source { return fixed{code: code} }

func (f fixed) Next(ctx context.Context) (game.Code, error) {
	return f.code, ctx.Err()
}
