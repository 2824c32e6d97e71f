package bignum

import "errors"

// ErrNonInteger is returned when a fraction does not divide exactly.
var ErrNonInteger = errors.New("result is not a whole number")

// Rat is an exact fraction of two Ints. Fractions are never reduced, so
// denominators grow with every addition.
type Rat struct {
	num Int
	den Int
}

// NewRat returns num/den. It fails with ErrDivisionByZero if den is zero.
func NewRat(num, den Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{num: num, den: den}, nil
}

// RatFromInt returns x/1.
func RatFromInt(x Int) Rat {
	return Rat{num: x, den: NewInt(1)}
}

// Num returns the numerator.
func (r Rat) Num() Int { return r.num }

// Denom returns the denominator. The zero Rat reports a denominator of 1.
func (r Rat) Denom() Int {
	if r.den.IsZero() {
		return NewInt(1)
	}
	return r.den
}

// Add returns r + s by cross multiplication.
func (r Rat) Add(s Rat) Rat {
	rd, sd := r.Denom(), s.Denom()
	return Rat{
		num: r.num.Mul(sd).Add(s.num.Mul(rd)),
		den: rd.Mul(sd),
	}
}

// Int returns r as an integer if the division is exact, and ErrNonInteger
// otherwise.
func (r Rat) Int() (Int, error) {
	q, rem, err := r.num.QuoRem(r.Denom())
	if err != nil {
		return Int{}, err
	}
	if !rem.IsZero() {
		return Int{}, ErrNonInteger
	}
	return q, nil
}

func (r Rat) String() string {
	return r.num.String() + "/" + r.Denom().String()
}
