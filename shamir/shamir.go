package shamir

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/izouxv/hashira/bignum"
)

var (
	// ErrNoShares is returned when interpolation is asked for with no points.
	ErrNoShares = errors.New("no shares provided")
	// ErrInvalidThreshold is returned for a threshold below one or above the share count.
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// Share represents a share of a secret: the point (X, Y) on the sharing
// polynomial. X is the share's 1-based index.
type Share struct {
	X bignum.Int
	Y bignum.Int
}

// NewShare builds a share from a machine-sized index.
func NewShare(index int, y bignum.Int) Share {
	return Share{X: bignum.NewInt(int64(index)), Y: y}
}

func (s Share) String() string {
	return fmt.Sprintf("(%s, %s)", s.X, s.Y)
}

// Evaluate returns the polynomial with the given coefficients, lowest
// degree first, evaluated at x.
func Evaluate(coeffs []bignum.Int, x bignum.Int) bignum.Int {
	var y bignum.Int
	// Horner's method
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y.Mul(x).Add(coeffs[i])
	}
	return y
}

// Split takes a secret and splits it into n shares, with a threshold of t.
// The arithmetic is exact over the integers; the t-1 random coefficients
// are drawn uniformly from [0, 2^coeffBits).
func Split(secret bignum.Int, n, t int, coeffBits uint) ([]Share, error) {
	if t < 1 || n < t {
		return nil, fmt.Errorf("%w: n must be >= t and t must be >= 1, got n=%d t=%d", ErrInvalidThreshold, n, t)
	}

	// f(x) = secret + a_1*x + a_2*x^2 + ... + a_{t-1}*x^{t-1}
	bound := new(big.Int).Lsh(big.NewInt(1), coeffBits)
	coeffs := make([]bignum.Int, t)
	coeffs[0] = secret
	for i := 1; i < t; i++ {
		c, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, err
		}
		coeffs[i] = bignum.MustParse(c.String())
	}

	shares := make([]Share, n)
	for i := 1; i <= n; i++ {
		x := bignum.NewInt(int64(i))
		shares[i-1] = Share{X: x, Y: Evaluate(coeffs, x)}
	}
	return shares, nil
}

// Combine reconstructs the secret f(0) from exactly the polynomial's
// degree+1 shares using Lagrange interpolation at zero:
//
//	f(0) = Σ_i y_i · Π_{j≠i} (−x_j) / (x_i − x_j)
//
// The sum is accumulated as an exact fraction. Combine fails with
// bignum.ErrDivisionByZero if two shares have the same X, and with
// bignum.ErrNonInteger if the shares do not lie on an integer polynomial.
func Combine(shares []Share) (bignum.Int, error) {
	if len(shares) == 0 {
		return bignum.Int{}, ErrNoShares
	}

	var total bignum.Rat
	for i, shareI := range shares {
		num := bignum.NewInt(1)
		den := bignum.NewInt(1)
		for j, shareJ := range shares {
			if i == j {
				continue
			}
			num = num.Mul(shareJ.X.Neg())
			den = den.Mul(shareI.X.Sub(shareJ.X))
		}

		term, err := bignum.NewRat(num.Mul(shareI.Y), den)
		if err != nil {
			return bignum.Int{}, fmt.Errorf("basis for x=%s: %w", shareI.X, err)
		}
		total = total.Add(term)
	}

	return total.Int()
}
