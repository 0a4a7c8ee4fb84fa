package rpncalc

import (
	"fmt"
	"strings"
)

// Mode selects the numeric backend used by a Calculator.
type Mode int

const (
	// ModeInteger evaluates over arbitrary-precision integers. Division
	// truncates toward zero, and decimal points are rejected.
	ModeInteger Mode = iota
	// ModeDecimal evaluates over arbitrary-precision decimals.
	ModeDecimal
)

func (m Mode) String() string {
	switch m {
	case ModeInteger:
		return "integer"
	case ModeDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. Names are case-insensitive; "int" and "dec"
// are accepted as abbreviations.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer", "int":
		return ModeInteger, nil
	case "decimal", "dec":
		return ModeDecimal, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want integer or decimal)", s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption()
}

type (
	digitsopt int32
	precopt   uint
)

func (digitsopt) calcOption() {}
func (precopt) calcOption()   {}

// DivisionDigits sets the number of fractional digits kept by decimal
// division. It has no effect in integer mode.
func DivisionDigits(n int32) Option {
	return digitsopt(n)
}

// PowPrecision sets the precision in bits of the floating-point intermediate
// used for fractional exponents in decimal mode. It has no effect in integer
// mode.
func PowPrecision(bits uint) Option {
	return precopt(bits)
}

// decimalBackend applies options to a decimal backend. Later options override
// earlier ones.
func decimalBackend(opts []Option) Decimal {
	var d Decimal
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case digitsopt:
			d.Digits = int32(opt)
		case precopt:
			d.Prec = uint(opt)
		default:
			panic("rpncalc: unknown option type")
		}
	}
	return d
}
