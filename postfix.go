package rpncalc

import "fmt"

// Postfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Parentheses are removed, and the End token is
// dropped. Operators of equal precedence group from the left except ^, which
// groups from the right.
//
// If a closing parenthesis has no match, the error is a *BracketError at that
// parenthesis. If opening parentheses are unclosed, the error is a
// *BracketError at the first of them.
func Postfix[N any](toks []Token[N]) ([]Token[N], error) {
	out := make([]Token[N], 0, len(toks))
	var stack []Token[N]
	for _, tok := range toks {
		switch tok := tok.(type) {
		case Num[N]:
			out = append(out, tok)
		case Op:
			for len(stack) > 0 {
				top, ok := stack[len(stack)-1].(Op)
				if !ok || !yields(tok.Sym, top.Sym) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case LParen:
			stack = append(stack, tok)
		case RParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if _, ok := top.(LParen); ok {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, &BracketError{Col: tok.Col}
			}
		case End:
			// Popping proceeds right to left, so the last opener seen is the
			// leftmost unclosed one.
			var open *BracketError
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if p, ok := top.(LParen); ok {
					open = &BracketError{Col: p.Col, Open: true}
					continue
				}
				out = append(out, top)
			}
			if open != nil {
				return nil, open
			}
		default:
			panic(fmt.Sprintf("rpncalc: invalid token %v", tok))
		}
	}
	return out, nil
}

// yields reports whether an operator top already on the stack must be output
// before op is pushed.
func yields(op, top Operator) bool {
	if op.RightAssoc() {
		return top.Prec() > op.Prec()
	}
	return top.Prec() >= op.Prec()
}
