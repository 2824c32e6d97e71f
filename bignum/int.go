package bignum

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidSyntax is returned when a decimal string cannot be parsed.
	ErrInvalidSyntax = errors.New("invalid decimal integer syntax")
	// ErrDivisionByZero is returned when a divisor or denominator is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Int is an arbitrary-precision signed decimal integer.
//
// Digits are kept most-significant first, one decimal digit (0-9) per byte.
// The representation is canonical: no leading zeros, and zero is never
// negative. The zero value is a valid zero. Values are immutable: every
// operation returns a new Int and never writes to an operand's digits.
type Int struct {
	neg    bool
	digits []byte
}

var zeroDigits = []byte{0}

// NewInt returns the Int holding n.
func NewInt(n int64) Int {
	s := strconv.FormatInt(n, 10)
	x, _ := Parse(s)
	return x
}

// Parse reads a decimal integer with an optional leading minus sign.
// The empty string parses as zero.
func Parse(s string) (Int, error) {
	if s == "" {
		return Int{}, nil
	}
	neg := false
	body := s
	if body[0] == '-' {
		neg = true
		body = body[1:]
		if body == "" {
			return Int{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
		}
	}
	digits := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
		}
		digits[i] = c - '0'
	}
	return normalize(neg, digits), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// normalize strips leading zeros and clears the sign of zero. It takes
// ownership of digits.
func normalize(neg bool, digits []byte) Int {
	i := 0
	for i < len(digits) && digits[i] == 0 {
		i++
	}
	if i == len(digits) {
		return Int{}
	}
	return Int{neg: neg, digits: digits[i:]}
}

func (x Int) digs() []byte {
	if len(x.digits) == 0 {
		return zeroDigits
	}
	return x.digits
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return len(x.digits) == 0
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Len returns the number of decimal digits in |x|.
func (x Int) Len() int {
	return len(x.digs())
}

// Digits returns the decimal digits of |x| as an ASCII string.
func (x Int) Digits() string {
	d := x.digs()
	b := make([]byte, len(d))
	for i, v := range d {
		b[i] = v + '0'
	}
	return string(b)
}

// String returns the canonical signed decimal form of x.
func (x Int) String() string {
	if x.neg {
		return "-" + x.Digits()
	}
	return x.Digits()
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, digits: x.digits}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{digits: x.digits}
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x Int) CmpAbs(y Int) int {
	return cmpMag(x.digs(), y.digs())
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := x.CmpAbs(y)
	if xs < 0 {
		return -c
	}
	return c
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return normalize(x.neg, addMag(x.digs(), y.digs()))
	}
	switch cmpMag(x.digs(), y.digs()) {
	case 0:
		return Int{}
	case -1:
		return normalize(y.neg, subMag(y.digs(), x.digs()))
	default:
		return normalize(x.neg, subMag(x.digs(), y.digs()))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	return normalize(x.neg != y.neg, mulMag(x.digs(), y.digs()))
}

// QuoRem returns the truncated quotient and remainder of x / y, so that
// x = q*y + r and |r| < |y|. The remainder takes the sign of x.
//
// The division is schoolbook long division where each quotient digit is
// found by repeatedly subtracting |y| from the running partial dividend.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	quo, rem := quoRemMag(x.digs(), y.digs())
	return normalize(x.neg != y.neg, quo), normalize(x.neg, rem), nil
}

// cmpMag compares two canonical magnitudes: shorter is smaller, equal
// lengths compare digit by digit.
func cmpMag(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func addMag(a, b []byte) []byte {
	n := max(len(a), len(b)) + 1
	out := make([]byte, n)
	carry := byte(0)
	for i := 0; i < n; i++ {
		sum := carry
		if i < len(a) {
			sum += a[len(a)-1-i]
		}
		if i < len(b) {
			sum += b[len(b)-1-i]
		}
		out[n-1-i] = sum % 10
		carry = sum / 10
	}
	return out
}

// subMag returns larger - smaller. The caller guarantees larger >= smaller.
func subMag(larger, smaller []byte) []byte {
	out := make([]byte, len(larger))
	borrow := 0
	for i := 0; i < len(larger); i++ {
		d := int(larger[len(larger)-1-i]) - borrow
		if i < len(smaller) {
			d -= int(smaller[len(smaller)-1-i])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[len(out)-1-i] = byte(d)
	}
	return out
}

func mulMag(a, b []byte) []byte {
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			acc[i+j+1] += int(a[i]) * int(b[j])
		}
	}
	out := make([]byte, len(acc))
	carry := 0
	for i := len(acc) - 1; i >= 0; i-- {
		v := acc[i] + carry
		out[i] = byte(v % 10)
		carry = v / 10
	}
	return out
}

// quoRemMag divides canonical magnitudes. divisor must be non-zero.
func quoRemMag(dividend, divisor []byte) (quo, rem []byte) {
	quo = make([]byte, len(dividend))
	var part []byte
	for i, d := range dividend {
		part = trimZeros(append(part, d))
		count := byte(0)
		for cmpMag(part, divisor) >= 0 {
			part = trimZeros(subMag(part, divisor))
			count++
		}
		quo[i] = count
	}
	return quo, part
}

func trimZeros(d []byte) []byte {
	i := 0
	for i < len(d) && d[i] == 0 {
		i++
	}
	return d[i:]
}
