package rpncalc

import "fmt"

// Evaluate computes the value of a postfix token sequence, as produced by
// Postfix, using b for arithmetic. Operators take their right operand from the
// top of the stack and their left operand from beneath it.
//
// Arithmetic failures are returned as *ArithmeticError. A sequence that does
// not reduce to exactly one value gives an *OperandError.
func Evaluate[N any](b Backend[N], postfix []Token[N]) (N, error) {
	var zero N
	stack := make([]N, 0, len(postfix)/2+1)
	end := 0
	for _, tok := range postfix {
		switch tok := tok.(type) {
		case Num[N]:
			stack = append(stack, tok.Value)
		case Op:
			if len(stack) < 2 {
				return zero, &OperandError{Col: tok.Col, Op: tok.Sym}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := apply(b, tok.Sym, l, r)
			if err != nil {
				return zero, &ArithmeticError{Col: tok.Col, Op: tok.Sym, Err: err}
			}
			stack = append(stack, v)
		case End:
			// End carries no value.
		default:
			panic(fmt.Sprintf("rpncalc: invalid postfix token %v", tok))
		}
		if p := tok.Pos(); p > end {
			end = p
		}
	}
	if len(stack) != 1 {
		return zero, &OperandError{Col: end, Left: len(stack)}
	}
	return stack[0], nil
}

func apply[N any](b Backend[N], op Operator, l, r N) (N, error) {
	switch op {
	case OpAdd:
		return b.Add(l, r), nil
	case OpSub:
		return b.Sub(l, r), nil
	case OpMul:
		return b.Mul(l, r), nil
	case OpDiv:
		return b.Quo(l, r)
	case OpPow:
		return b.Pow(l, r)
	default:
		panic("rpncalc: unknown operator " + op.String())
	}
}
