package rpncalc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits src into tokens, converting numeric literals with b. On
// success, the last token is the only End token.
//
// A + or - is a unary sign when it is the first token or follows an operator
// or opening parenthesis. A unary sign must be followed by a numeric literal,
// possibly after whitespace, and the resulting Num token is positioned at the
// sign.
func Tokenize[N any](b Backend[N], src string) ([]Token[N], error) {
	var toks []Token[N]
	at := skipSpace(src, 0)
	for at < len(src) {
		tok, next, err := scanToken(b, src, at, signAllowed(toks))
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		at = skipSpace(src, next)
	}
	return append(toks, End{Col: at}), nil
}

// signAllowed reports whether a + or - following toks is a unary sign.
func signAllowed[N any](toks []Token[N]) bool {
	if len(toks) == 0 {
		return true
	}
	switch toks[len(toks)-1].(type) {
	case Op, LParen:
		return true
	}
	return false
}

// scanToken scans the token beginning at src[at], which is not whitespace.
// It returns the token and the offset following it.
func scanToken[N any](b Backend[N], src string, at int, sign bool) (Token[N], int, error) {
	r, sz := utf8.DecodeRuneInString(src[at:])
	switch {
	case r == '(':
		return LParen{Col: at}, at + sz, nil
	case r == ')':
		return RParen{Col: at}, at + sz, nil
	case sign && (r == '+' || r == '-'):
		return scanSigned(b, src, at)
	case strings.ContainsRune(Operators, r):
		return Op{Sym: Operator(r), Col: at}, at + sz, nil
	case isDigit(r), r == '.':
		v, next, err := scanNum(b, src, at)
		if err != nil {
			return nil, next, err
		}
		return Num[N]{Value: v, Col: at}, next, nil
	default:
		return nil, at, &LexError{Text: string(r), Col: at}
	}
}

// scanSigned scans a unary sign, any following whitespace, and the numeric
// literal that must follow.
func scanSigned[N any](b Backend[N], src string, at int) (Token[N], int, error) {
	sign := src[at]
	next := skipSpace(src, at+1)
	if next >= len(src) || !isDigit(rune(src[next])) && src[next] != '.' {
		return nil, next, &LexError{Text: string(sign), Kind: "sign", Col: next}
	}
	v, next, err := scanNum(b, src, next)
	if err != nil {
		return nil, next, err
	}
	if sign == '-' {
		v = b.Neg(v)
	}
	return Num[N]{Value: v, Col: at}, next, nil
}

// scanNum scans a numeric literal beginning at src[at]. It returns the value
// and the offset following the literal.
func scanNum[N any](b Backend[N], src string, at int) (N, int, error) {
	var zero N
	end, digits, dot := at, 0, false
scan:
	for ; end < len(src); end++ {
		switch c := src[end]; {
		case isDigit(rune(c)):
			digits++
		case c == '.':
			if !b.Fractional() {
				return zero, end, &LexError{Text: ".", Kind: "decimal", Col: end}
			}
			if dot {
				return zero, end, &LexError{Text: src[at : end+1], Kind: "number", Col: at}
			}
			dot = true
		default:
			break scan
		}
	}
	lit := src[at:end]
	if digits == 0 {
		return zero, end, &LexError{Text: lit, Kind: "number", Col: at}
	}
	v, err := b.Literal(lit)
	if err != nil {
		return zero, end, &LexError{Text: lit, Kind: "number", Col: at}
	}
	return v, end, nil
}

// skipSpace returns the offset of the first non-whitespace rune in src at or
// after at.
func skipSpace(src string, at int) int {
	for at < len(src) {
		r, sz := utf8.DecodeRuneInString(src[at:])
		if !unicode.IsSpace(r) {
			break
		}
		at += sz
	}
	return at
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
