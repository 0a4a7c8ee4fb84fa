package rpncalc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ErrEmpty is returned when an expression contains nothing but whitespace.
var ErrEmpty = errors.New("expression cannot be empty")

// Calculator evaluates expressions to display strings. It is implemented by
// *Engine for each backend.
type Calculator interface {
	// Calculate evaluates src and formats the result. Failures are formatted
	// as "Error - " followed by the reason; Calculate never panics.
	Calculate(src string) string
	// IsValid evaluates src, discarding the result. If evaluation fails, the
	// second result is the reason.
	IsValid(src string) (bool, string)
	// RPN returns the postfix form of src, separated by spaces.
	RPN(src string) (string, error)
}

// New creates a Calculator using the backend for the given mode.
func New(mode Mode, opts ...Option) Calculator {
	switch mode {
	case ModeInteger:
		return NewEngine[*big.Int](Integer{})
	case ModeDecimal:
		return NewEngine[decimal.Decimal](decimalBackend(opts))
	default:
		panic("rpncalc: unknown mode " + mode.String())
	}
}

// Engine runs the pipeline of Tokenize, Postfix, and Evaluate over a single
// backend. An Engine holds no mutable state and is safe for concurrent use.
type Engine[N any] struct {
	b Backend[N]
}

// NewEngine creates an engine using b for arithmetic.
func NewEngine[N any](b Backend[N]) *Engine[N] {
	return &Engine[N]{b: b}
}

// Postfix tokenizes src and converts it to postfix order.
func (e *Engine[N]) Postfix(src string) ([]Token[N], error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}
	toks, err := Tokenize(e.b, src)
	if err != nil {
		return nil, err
	}
	return Postfix(toks)
}

// Eval evaluates src.
func (e *Engine[N]) Eval(src string) (N, error) {
	post, err := e.Postfix(src)
	if err != nil {
		var zero N
		return zero, err
	}
	return Evaluate(e.b, post)
}

func (e *Engine[N]) Calculate(src string) (r string) {
	defer func() {
		if p := recover(); p != nil {
			r = "Error - " + fmt.Sprint(p)
		}
	}()
	v, err := e.Eval(src)
	if err != nil {
		return Message(err)
	}
	return e.b.Format(v)
}

func (e *Engine[N]) IsValid(src string) (ok bool, reason string) {
	defer func() {
		if p := recover(); p != nil {
			ok, reason = false, fmt.Sprint(p)
		}
	}()
	if _, err := e.Eval(src); err != nil {
		return false, Reason(err)
	}
	return true, ""
}

func (e *Engine[N]) RPN(src string) (string, error) {
	post, err := e.Postfix(src)
	if err != nil {
		return "", err
	}
	return FormatTokens(e.b, post), nil
}

// Reason describes an evaluation error for display: the error's message
// with its first letter capitalized.
func Reason(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	r, n := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[n:]
}

// Message formats an evaluation error the way Calculate does.
func Message(err error) string {
	return "Error - " + Reason(err)
}

var integerEngine = NewEngine[*big.Int](Integer{})

// EvalString is a shortcut to evaluate an integer expression.
func EvalString(src string) (*big.Int, error) {
	return integerEngine.Eval(src)
}

// Calculate is a shortcut to evaluate an integer expression and format the
// result as Calculator.Calculate does.
func Calculate(src string) string {
	return integerEngine.Calculate(src)
}
