// Package daily derives a deterministic "secret of the day" so every player
// on a given UTC date faces the same code.
package daily

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/secret"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// SecretFor returns the secret of the day for date.
func SecretFor(date time.Time, salt string) game.Code {
	codes := secret.All()
	return codes[Index(date, salt, len(codes))]
}

// Source yields the secret of the day. Every call on the same date returns
// the same code.
type Source struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// NewSource returns a Source keyed by salt using the wall clock.
func NewSource(salt string) *Source {
	return &Source{Salt: salt, Now: time.Now}
}

// Next implements secret.Source.
func (s *Source) Next(ctx context.Context) (game.Code, error) {
	if err := ctx.Err(); err != nil {
		return game.Code{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return SecretFor(now(), s.Salt), nil
}
