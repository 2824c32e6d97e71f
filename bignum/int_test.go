package bignum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genInt() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.NumString()).Map(func(values []interface{}) Int {
		s := values[1].(string)
		if s == "" {
			s = "0"
		}
		if values[0].(bool) {
			s = "-" + s
		}
		return MustParse(s)
	})
}

func toBig(x Int) *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad Int string " + x.String())
	}
	return b
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"0", "0"},
		{"-0", "0"},
		{"000", "0"},
		{"-000", "0"},
		{"007", "7"},
		{"-0042", "-42"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		x, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, x.String(), tt.in)
	}

	for _, bad := range []string{"-", "12a", "+5", " 1", "1-"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidSyntax, bad)
	}
	assert.Panics(t, func() { MustParse("x") })
}

func TestZeroIsCanonical(t *testing.T) {
	var zero Int
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, 0, zero.Sign())
	assert.True(t, zero.Neg().IsZero())
	assert.Equal(t, "0", zero.Neg().String())

	x := MustParse("-12345")
	assert.Equal(t, "0", x.Add(x.Neg()).String())
	assert.Equal(t, "0", x.Sub(x).String())
	assert.Equal(t, "0", x.Mul(zero).String())
	assert.Equal(t, "0", zero.Mul(x).String())
	assert.Equal(t, "0", NewInt(0).String())
	assert.Equal(t, 1, zero.Len())
	assert.Equal(t, 5, x.Len())
	assert.Equal(t, "12345", x.Digits())
}

func TestArithmeticExamples(t *testing.T) {
	tests := []struct {
		a, b           string
		sum, diff, prd string
	}{
		{"999", "1", "1000", "998", "999"},
		{"1", "999", "1000", "-998", "999"},
		{"-5", "3", "-2", "-8", "-15"},
		{"5", "-3", "2", "8", "-15"},
		{"-5", "-3", "-8", "-2", "15"},
		{"3", "-5", "-2", "8", "-15"},
		{"100000000000000000000", "-1", "99999999999999999999", "100000000000000000001", "-100000000000000000000"},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		assert.Equal(t, tt.sum, a.Add(b).String(), "%s+%s", tt.a, tt.b)
		assert.Equal(t, tt.diff, a.Sub(b).String(), "%s-%s", tt.a, tt.b)
		assert.Equal(t, tt.prd, a.Mul(b).String(), "%s*%s", tt.a, tt.b)
	}
}

func TestCompare(t *testing.T) {
	assert.True(t, MustParse("-10").Less(MustParse("-9")))
	assert.True(t, MustParse("-1").Less(NewInt(0)))
	assert.True(t, MustParse("9").Less(MustParse("10")))
	assert.False(t, MustParse("10").Less(MustParse("10")))
	assert.Equal(t, 1, MustParse("-10").CmpAbs(MustParse("9")))
	assert.Equal(t, 0, MustParse("-10").CmpAbs(MustParse("10")))
	assert.True(t, MustParse("-10").Equal(NewInt(-10)))
}

func TestQuoRem(t *testing.T) {
	tests := []struct {
		a, b, q, r string
	}{
		{"0", "7", "0", "0"},
		{"6", "7", "0", "6"},
		{"144", "12", "12", "0"},
		{"1000000", "7", "142857", "1"},
		{"-1000000", "7", "-142857", "-1"},
		{"1000000", "-7", "-142857", "1"},
		{"-1000000", "-7", "142857", "-1"},
		{"123456789123456789", "987654321", "124999998", "973765431"},
	}
	for _, tt := range tests {
		q, r, err := MustParse(tt.a).QuoRem(MustParse(tt.b))
		require.NoError(t, err)
		assert.Equal(t, tt.q, q.String(), "%s/%s", tt.a, tt.b)
		assert.Equal(t, tt.r, r.String(), "%s%%%s", tt.a, tt.b)
	}

	_, _, err := NewInt(5).QuoRem(Int{})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestNegAbsShareDigits(t *testing.T) {
	x := MustParse("-909")
	neg, abs := x.Neg(), x.Abs()

	_ = neg.Add(NewInt(91))
	_ = abs.Sub(NewInt(909))
	_, _, _ = abs.QuoRem(NewInt(7))
	_ = neg.Mul(abs)

	assert.Equal(t, "-909", x.String())
	assert.Equal(t, "909", neg.String())
	assert.Equal(t, "909", abs.String())
}

func TestNewIntExtremes(t *testing.T) {
	assert.Equal(t, "-9223372036854775808", NewInt(-1<<63).String())
	assert.Equal(t, "9223372036854775807", NewInt(1<<63-1).String())
}

func TestIntProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a + (-b) equals a - b", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b.Neg()).Equal(a.Sub(b))
		},
		genInt(), genInt(),
	))

	properties.Property("a + (-a) is canonical zero", prop.ForAll(
		func(a Int) bool {
			z := a.Add(a.Neg())
			return z.IsZero() && z.String() == "0" && z.Sign() == 0
		},
		genInt(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b Int) bool {
			return a.Mul(b).Equal(b.Mul(a))
		},
		genInt(), genInt(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c Int) bool {
			return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("multiplying by zero yields zero", prop.ForAll(
		func(a Int) bool {
			return a.Mul(Int{}).String() == "0" && a.Neg().Mul(NewInt(0)).String() == "0"
		},
		genInt(),
	))

	properties.Property("add, sub and mul agree with math/big", prop.ForAll(
		func(a, b Int) bool {
			ba, bb := toBig(a), toBig(b)
			return a.Add(b).String() == new(big.Int).Add(ba, bb).String() &&
				a.Sub(b).String() == new(big.Int).Sub(ba, bb).String() &&
				a.Mul(b).String() == new(big.Int).Mul(ba, bb).String() &&
				a.Cmp(b) == ba.Cmp(bb)
		},
		genInt(), genInt(),
	))

	properties.Property("quotient and remainder agree with math/big", prop.ForAll(
		func(a, b Int) bool {
			if b.IsZero() {
				return true
			}
			q, r, err := a.QuoRem(b)
			if err != nil {
				return false
			}
			bq, br := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
			return q.String() == bq.String() && r.String() == br.String()
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}
