package rpncalc

import (
	"math"
	"math/big"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// Default settings for the decimal backend.
const (
	DefaultDivisionDigits = 28
	DefaultPowPrecision   = 128
)

// maxPowBits bounds the binary exponent of fractional powers to the range of
// a float64. Larger results are overflow; smaller ones are zero.
const maxPowBits = 1024

// Decimal is the arbitrary-precision decimal backend. Addition, subtraction,
// multiplication, and exponentiation by integers are exact. Division rounds
// to Digits fractional digits. Exponentiation by a non-integer goes through a
// binary floating-point intermediate with Prec bits of precision, so it is
// lossy.
type Decimal struct {
	// Digits is the number of fractional digits kept by division and by
	// negative integer powers. If zero, DefaultDivisionDigits is used.
	Digits int32
	// Prec is the precision in bits of the intermediate used for fractional
	// exponents. If zero, DefaultPowPrecision is used.
	Prec uint
}

var _ Backend[decimal.Decimal] = Decimal{}

func (d Decimal) digits() int32 {
	if d.Digits <= 0 {
		return DefaultDivisionDigits
	}
	return d.Digits
}

func (d Decimal) prec() uint {
	if d.Prec == 0 {
		return DefaultPowPrecision
	}
	return d.Prec
}

func (Decimal) Literal(lit string) (decimal.Decimal, error) {
	x, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, errMalformedNumber
	}
	return x, nil
}

func (Decimal) Neg(x decimal.Decimal) decimal.Decimal {
	return x.Neg()
}

func (Decimal) Add(x, y decimal.Decimal) decimal.Decimal {
	return x.Add(y)
}

func (Decimal) Sub(x, y decimal.Decimal) decimal.Decimal {
	return x.Sub(y)
}

func (Decimal) Mul(x, y decimal.Decimal) decimal.Decimal {
	return x.Mul(y)
}

func (d Decimal) Quo(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return x.DivRound(y, d.digits()), nil
}

func (d Decimal) Pow(x, y decimal.Decimal) (decimal.Decimal, error) {
	if x.IsZero() && y.Sign() < 0 {
		return decimal.Zero, ErrZeroNegativePower
	}
	if y.IsInteger() {
		return d.powInt(x, y)
	}
	return d.powFrac(x, y)
}

// powInt computes x^y exactly for integer y. Negative exponents divide one by
// the exact positive power.
func (d Decimal) powInt(x, y decimal.Decimal) (decimal.Decimal, error) {
	n, err := powerArg(y.BigInt())
	if err != nil {
		return decimal.Zero, err
	}
	k := int64(n)
	if k < 0 {
		k = -k
	}
	// x = c * 10^e, so x^k = c^k * 10^(e*k).
	e, err := safecast.Conv[int32](int64(x.Exponent()) * k)
	if err != nil {
		return decimal.Zero, ErrPowerOverflow
	}
	c := new(big.Int).Exp(x.Coefficient(), big.NewInt(k), nil)
	r := decimal.NewFromBigInt(c, e)
	if n < 0 {
		return decimal.New(1, 0).DivRound(r, d.digits()), nil
	}
	return r, nil
}

// powFrac computes x^y for non-integer y through a big.Float intermediate.
func (d Decimal) powFrac(x, y decimal.Decimal) (r decimal.Decimal, err error) {
	// A negative base has no real power for non-integer exponents.
	if x.Sign() < 0 {
		return decimal.Zero, ErrPowerOverflow
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	prec := d.prec()
	fx, ok := new(big.Float).SetPrec(prec).SetString(x.String())
	if !ok {
		return decimal.Zero, ErrPowerOverflow
	}
	fy, ok := new(big.Float).SetPrec(prec).SetString(y.Abs().String())
	if !ok {
		return decimal.Zero, ErrPowerOverflow
	}
	switch b := powBits(fx, y); {
	case b > maxPowBits:
		return decimal.Zero, ErrPowerOverflow
	case b < -maxPowBits:
		return decimal.Zero, nil
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		r, err = decimal.Zero, ErrPowerOverflow
	}()
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), fx, fy)
	if z.IsInf() {
		return decimal.Zero, ErrPowerOverflow
	}
	if y.Sign() < 0 {
		if z.Sign() == 0 {
			return decimal.Zero, ErrPowerOverflow
		}
		z.Quo(new(big.Float).SetPrec(prec).SetInt64(1), z)
	}
	// Bases near one can escape the estimate.
	switch e := z.MantExp(nil); {
	case e > maxPowBits:
		return decimal.Zero, ErrPowerOverflow
	case e < -maxPowBits:
		return decimal.Zero, nil
	}
	r, err = decimal.NewFromString(z.Text('g', int(prec/3)))
	if err != nil {
		return decimal.Zero, ErrPowerOverflow
	}
	return r.Round(d.digits()), nil
}

// powBits estimates log2(x^y).
func powBits(x *big.Float, y decimal.Decimal) float64 {
	var mant big.Float
	e := x.MantExp(&mant)
	m, _ := mant.Float64()
	yf, _ := y.Float64()
	return (float64(e) + math.Log2(m)) * yf
}

func (Decimal) Format(x decimal.Decimal) string {
	return x.String()
}

func (Decimal) Fractional() bool {
	return true
}
