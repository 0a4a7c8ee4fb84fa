package rpncalc

import (
	"errors"
	"strconv"
)

// Error classes. Every error from invalid syntax matches ErrSyntax under
// errors.Is, and every error from arithmetic on valid syntax matches
// ErrArithmetic.
var (
	ErrSyntax     = errors.New("syntax error")
	ErrArithmetic = errors.New("arithmetic error")
)

// LexError indicates an invalid character or malformed number. It implements
// InputError.
type LexError struct {
	// Text is the offending character, or the literal text for numbers.
	Text string
	// Kind is "number" for malformed literals, "decimal" for a decimal point
	// given to an integer backend, "sign" for a unary sign not followed by a
	// number, or the empty string for an invalid character.
	Kind string
	// Col is the byte offset of the error.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case "number":
		return errpos(err.Col, "invalid number format "+strconv.Quote(err.Text))
	case "decimal":
		return errpos(err.Col, "invalid character '.'") + ": decimal numbers are not supported"
	case "sign":
		return errpos(err.Col, "expected digit after unary '"+err.Text+"'")
	default:
		return errpos(err.Col, "invalid character '"+err.Text+"'")
	}
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrSyntax
}

// BracketError indicates mismatched parentheses. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an opening one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "mismatched parentheses: unclosed opening parenthesis")
	}
	return errpos(err.Col, "mismatched parentheses: no opening parenthesis for closing parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrSyntax
}

// OperandError indicates an expression with the wrong number of operands.
// It implements InputError.
type OperandError struct {
	// Col is the position of the operator lacking operands, or of the end of
	// the input if the expression did not reduce to exactly one value.
	Col int
	// Op is the operator lacking operands, or zero if the error is about the
	// whole expression.
	Op Operator
	// Left is the number of values left after evaluation when Op is zero.
	Left int
}

func (err *OperandError) Error() string {
	switch {
	case err.Op != 0:
		return errpos(err.Col, "invalid expression: not enough operands for operator '"+err.Op.String()+"'")
	case err.Left == 0:
		return "invalid expression: too few operands"
	default:
		return "invalid expression: too many operands"
	}
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Is(target error) bool {
	return target == ErrSyntax
}

// ArithmeticError is an error from applying an operator to values outside its
// domain. It unwraps to one of ErrDivisionByZero, ErrNegativeExponent,
// ErrExponentTooLarge, ErrZeroNegativePower, or ErrPowerOverflow.
type ArithmeticError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator that failed.
	Op Operator
	// Err is the reason for the failure.
	Err error
}

func (err *ArithmeticError) Error() string {
	return err.Err.Error()
}

func (err *ArithmeticError) Pos() int {
	return err.Col
}

func (err *ArithmeticError) Unwrap() error {
	return err.Err
}

func (err *ArithmeticError) Is(target error) bool {
	return target == ErrArithmetic
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return msg + " at position " + strconv.Itoa(pos)
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based byte offset of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ArithmeticError)(nil)
)
