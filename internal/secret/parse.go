package secret

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/mastermind/internal/game"
)

// ErrMalformedCode reports input that is not exactly four decimal digits.
var ErrMalformedCode = errors.New("malformed code")

// ParseCode converts a line such as "1234" into a game.Code.
// Surrounding whitespace is ignored; anything other than exactly
// game.CodeLength ASCII digits is rejected with ErrMalformedCode.
func ParseCode(s string) (game.Code, error) {
	var c game.Code
	s = strings.TrimSpace(s)
	if len(s) != game.CodeLength {
		return c, fmt.Errorf("%w: %q: want %d digits", ErrMalformedCode, s, game.CodeLength)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return c, fmt.Errorf("%w: %q: %q is not a digit", ErrMalformedCode, s, s[i])
		}
		c[i] = uint32(s[i] - '0')
	}
	return c, nil
}

// FormatCode renders c the way players type it ("1234").
func FormatCode(c game.Code) string {
	var b strings.Builder
	for _, d := range c {
		b.WriteString(strconv.FormatUint(uint64(d), 10))
	}
	return b.String()
}
