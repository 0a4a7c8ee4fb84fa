package rpncalc

import (
	"math/big"

	"fortio.org/safecast"
)

// Integer is the arbitrary-precision integer backend. Division truncates
// toward zero.
type Integer struct{}

var _ Backend[*big.Int] = Integer{}

func (Integer) Literal(lit string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return nil, errMalformedNumber
	}
	return x, nil
}

func (Integer) Neg(x *big.Int) *big.Int {
	return new(big.Int).Neg(x)
}

func (Integer) Add(x, y *big.Int) *big.Int {
	return new(big.Int).Add(x, y)
}

func (Integer) Sub(x, y *big.Int) *big.Int {
	return new(big.Int).Sub(x, y)
}

func (Integer) Mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

func (Integer) Quo(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	// Quo, not Div: big.Int.Div is Euclidean.
	return new(big.Int).Quo(x, y), nil
}

func (Integer) Pow(x, y *big.Int) (*big.Int, error) {
	if y.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if _, err := powerArg(y); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(x, y, nil), nil
}

func (Integer) Format(x *big.Int) string {
	return x.String()
}

func (Integer) Fractional() bool {
	return false
}

// powerArg narrows an exponent to the range accepted for exponentiation.
func powerArg(y *big.Int) (int32, error) {
	if !y.IsInt64() {
		return 0, ErrExponentTooLarge
	}
	n, err := safecast.Conv[int32](y.Int64())
	if err != nil {
		return 0, ErrExponentTooLarge
	}
	return n, nil
}
