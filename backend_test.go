package rpncalc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntegerPow(t *testing.T) {
	cases := []struct {
		x, y string
		want string
		err  error
	}{
		{"2", "10", "1024", nil},
		{"-2", "3", "-8", nil},
		{"-2", "4", "16", nil},
		{"0", "0", "1", nil},
		{"7", "-1", "", ErrNegativeExponent},
		{"1", "2147483647", "1", nil},
		{"1", "2147483648", "", ErrExponentTooLarge},
		{"1", "-99999999999999999999", "", ErrNegativeExponent},
	}
	var b Integer
	for _, c := range cases {
		x, _ := new(big.Int).SetString(c.x, 10)
		y, _ := new(big.Int).SetString(c.y, 10)
		r, err := b.Pow(x, y)
		if !errors.Is(err, c.err) {
			t.Errorf("%s^%s: want error %v, got %v", c.x, c.y, c.err, err)
			continue
		}
		if err == nil && r.String() != c.want {
			t.Errorf("%s^%s: want %s, got %v", c.x, c.y, c.want, r)
		}
	}
}

func TestIntegerImmutable(t *testing.T) {
	var b Integer
	x, y := big.NewInt(6), big.NewInt(4)
	b.Add(x, y)
	b.Sub(x, y)
	b.Mul(x, y)
	b.Quo(x, y)
	b.Pow(x, y)
	b.Neg(x)
	if x.Int64() != 6 || y.Int64() != 4 {
		t.Errorf("operands modified: x=%v y=%v", x, y)
	}
}

func TestDecimalPow(t *testing.T) {
	cases := []struct {
		x, y string
		want string
		err  error
	}{
		{"0.1", "3", "0.001", nil},
		{"-0.5", "3", "-0.125", nil},
		{"10", "-3", "0.001", nil},
		{"5", "0", "1", nil},
		{"0", "2.5", "0", nil},
		{"0", "-2.5", "", ErrZeroNegativePower},
		{"-4", "0.5", "", ErrPowerOverflow},
		{"4", "2147483648", "", ErrExponentTooLarge},
		{"10", "12345678.5", "", ErrPowerOverflow},
		{"10", "308.5", "", ErrPowerOverflow},
		{"1.001", "1000000.5", "", ErrPowerOverflow},
		{"0.1", "12345678.5", "0", nil},
		{"10", "-12345678.5", "0", nil},
	}
	var b Decimal
	for _, c := range cases {
		x := decimal.RequireFromString(c.x)
		y := decimal.RequireFromString(c.y)
		r, err := b.Pow(x, y)
		if !errors.Is(err, c.err) {
			t.Errorf("%s^%s: want error %v, got %v", c.x, c.y, c.err, err)
			continue
		}
		if err == nil && b.Format(r) != c.want {
			t.Errorf("%s^%s: want %s, got %s", c.x, c.y, c.want, b.Format(r))
		}
	}
}

func TestDecimalPowExponentOverflow(t *testing.T) {
	// The exponent of the result would not fit in 32 bits.
	var b Decimal
	x := decimal.RequireFromString("0.0000000001")
	y := decimal.RequireFromString("1000000000")
	if _, err := b.Pow(x, y); !errors.Is(err, ErrPowerOverflow) {
		t.Errorf("want %v, got %v", ErrPowerOverflow, err)
	}
}
