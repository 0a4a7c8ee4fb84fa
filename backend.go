package rpncalc

import "errors"

// Backend is the arithmetic used to evaluate expressions. Values of type N
// are treated as immutable: no method may modify its arguments.
type Backend[N any] interface {
	// Literal converts an unsigned numeric literal to a value. The literal
	// contains only ASCII digits and, if Fractional reports true, at most one
	// '.' with at least one digit.
	Literal(lit string) (N, error)

	Neg(x N) N
	Add(x, y N) N
	Sub(x, y N) N
	Mul(x, y N) N

	// Quo returns x/y. It returns ErrDivisionByZero if y is zero.
	Quo(x, y N) (N, error)

	// Pow returns x^y.
	Pow(x, y N) (N, error)

	// Format returns the canonical base-10 representation of x.
	Format(x N) string

	// Fractional reports whether literals may contain a decimal point.
	Fractional() bool
}

// Reasons for arithmetic failures. Evaluation wraps these in an
// ArithmeticError which records the operator that failed.
var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNegativeExponent  = errors.New("negative exponents are not supported")
	ErrExponentTooLarge  = errors.New("exponent is too large")
	ErrZeroNegativePower = errors.New("cannot raise zero to a negative power")
	ErrPowerOverflow     = errors.New("power operation resulted in overflow or invalid result")
)

// errMalformedNumber is returned by backends for literals they cannot
// represent. The tokenizer turns it into a LexError.
var errMalformedNumber = errors.New("malformed number")
