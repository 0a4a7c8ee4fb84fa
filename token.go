package rpncalc

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is a lexical element of an expression. The concrete type of a Token
// is one of Num[N], Op, LParen, RParen, or End.
type Token[N any] interface {
	// Pos is the zero-based byte offset of the token in the source text.
	Pos() int
	token()
}

// Num is a numeric literal, including any unary sign that preceded it.
type Num[N any] struct {
	Value N
	Col   int
}

// Op is a binary operator.
type Op struct {
	Sym Operator
	Col int
}

// LParen is an opening parenthesis.
type LParen struct{ Col int }

// RParen is a closing parenthesis.
type RParen struct{ Col int }

// End marks the end of the input. A tokenized expression has exactly one End,
// and it is the last token.
type End struct{ Col int }

func (t Num[N]) Pos() int { return t.Col }
func (t Op) Pos() int     { return t.Col }
func (t LParen) Pos() int { return t.Col }
func (t RParen) Pos() int { return t.Col }
func (t End) Pos() int    { return t.Col }
func (Num[N]) token()     {}
func (Op) token()         {}
func (LParen) token()     {}
func (RParen) token()     {}
func (End) token()        {}

func (t Num[N]) String() string { return fmt.Sprint(t.Value) + "@" + strconv.Itoa(t.Col) }
func (t Op) String() string     { return t.Sym.String() + "@" + strconv.Itoa(t.Col) }
func (t LParen) String() string { return "(@" + strconv.Itoa(t.Col) }
func (t RParen) String() string { return ")@" + strconv.Itoa(t.Col) }
func (t End) String() string    { return "EOF@" + strconv.Itoa(t.Col) }

// Operator is a binary operator symbol.
type Operator byte

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpPow Operator = '^'
)

// Prec returns the binding strength of the operator. Higher binds tighter.
func (op Operator) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

// RightAssoc reports whether a chain of the operator groups from the right.
func (op Operator) RightAssoc() bool {
	return op == OpPow
}

func (op Operator) String() string {
	return string(rune(op))
}

// FormatTokens writes a token sequence in source notation, separated by
// spaces, using b to format numbers. End tokens are omitted.
func FormatTokens[N any](b Backend[N], toks []Token[N]) string {
	var s strings.Builder
	for _, tok := range toks {
		var t string
		switch tok := tok.(type) {
		case Num[N]:
			t = b.Format(tok.Value)
		case Op:
			t = tok.Sym.String()
		case LParen:
			t = "("
		case RParen:
			t = ")"
		case End:
			continue
		default:
			panic("rpncalc: invalid token " + fmt.Sprint(tok))
		}
		if s.Len() > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(t)
	}
	return s.String()
}
