// Package radix converts digit strings in bases 2 through 36 to and from
// bignum.Int values.
package radix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/izouxv/hashira/bignum"
)

const (
	// MinBase is the smallest supported radix.
	MinBase = 2
	// MaxBase is the largest supported radix: ten digits plus 26 letters.
	MaxBase = 36

	glyphs = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	// ErrInvalidBase is returned for a radix outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidCharacter is returned for a character that is not a digit glyph.
	ErrInvalidCharacter = errors.New("invalid character for base conversion")
	// ErrInvalidDigitForBase is returned for a digit whose value is not below the radix.
	ErrInvalidDigitForBase = errors.New("invalid digit for given base")
)

// digitValue maps '0'-'9' to 0-9 and letters of either case to 10-35.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return nil
}

// ParseBase reads a decimal radix such as "16" and checks its range.
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBase, s)
	}
	if err := checkBase(base); err != nil {
		return 0, err
	}
	return base, nil
}

// Decode interprets s as an unsigned number written in the given base.
// The empty string decodes to zero.
func Decode(s string, base int) (bignum.Int, error) {
	if err := checkBase(base); err != nil {
		return bignum.Int{}, err
	}
	b := bignum.NewInt(int64(base))
	var acc bignum.Int
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok {
			return bignum.Int{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		if d >= base {
			return bignum.Int{}, fmt.Errorf("%w: %q at position %d in base %d", ErrInvalidDigitForBase, s[i], i, base)
		}
		acc = acc.Mul(b).Add(bignum.NewInt(int64(d)))
	}
	return acc, nil
}

// Encode writes x in the given base using lowercase letters, with a leading
// '-' for negative values.
func Encode(x bignum.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if x.IsZero() {
		return "0", nil
	}
	b := bignum.NewInt(int64(base))
	v := x.Abs()
	var out []byte
	for !v.IsZero() {
		q, r, err := v.QuoRem(b)
		if err != nil {
			return "", err
		}
		d, _ := strconv.Atoi(r.String())
		out = append(out, glyphs[d])
		v = q
	}
	if x.Sign() < 0 {
		out = append(out, '-')
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
