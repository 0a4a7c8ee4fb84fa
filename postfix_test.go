package rpncalc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"prec", "2 + 3 * 2", "2 3 2 * +"},
		{"parens", "(2+3)*2", "2 3 + 2 *"},
		{"left-sub", "8-3-2", "8 3 - 2 -"},
		{"left-div", "8/4/2", "8 4 / 2 /"},
		{"left-mixed", "1+2-3", "1 2 + 3 -"},
		{"right-pow", "2^3^2", "2 3 2 ^ ^"},
		{"forced-pow", "(2^3)^2", "2 3 ^ 2 ^"},
		{"pow-over-mul", "2*3^2", "2 3 2 ^ *"},
		{"pow-under-neg", "-2^2", "-2 2 ^"},
		{"nested", "((1+2)*(3-4))/5", "1 2 + 3 4 - * 5 /"},
		{"empty-parens", "()", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize[*big.Int](Integer{}, c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			post, err := Postfix(toks)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := FormatTokens[*big.Int](Integer{}, post); got != c.want {
				t.Errorf("%q gave wrong postfix: want %q, got %q", c.src, c.want, got)
			}
			for _, tok := range post {
				switch tok.(type) {
				case LParen, RParen, End:
					t.Errorf("%q: postfix contains %v", c.src, tok)
				}
			}
		})
	}
}

func TestPostfixKeepsTokens(t *testing.T) {
	toks, err := Tokenize[*big.Int](Integer{}, "(1 + 2) * 3")
	if err != nil {
		t.Fatal(err)
	}
	post, err := Postfix(toks)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token[*big.Int]{inum("1", 1), inum("2", 5), Op{'+', 3}, inum("3", 10), Op{'*', 8}}
	if diff := cmp.Diff(want, post, bigIntEq); diff != "" {
		t.Errorf("wrong postfix (-want +got):\n%s", diff)
	}
}

func TestPostfixBrackets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want BracketError
	}{
		{"close", "2+3)", BracketError{Col: 3}},
		{"close-first", ")(", BracketError{Col: 0}},
		{"close-late", "(1)+2)*3", BracketError{Col: 5}},
		{"open", "(2+3", BracketError{Col: 0, Open: true}},
		{"open-inner", "1*(2+(3", BracketError{Col: 2, Open: true}},
		{"open-nested", "((1)", BracketError{Col: 0, Open: true}},
		{"open-second", "(1)(2", BracketError{Col: 3, Open: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize[*big.Int](Integer{}, c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			_, err = Postfix(toks)
			var got *BracketError
			if !errors.As(err, &got) {
				t.Fatalf("%q gave %v, not BracketError", c.src, err)
			}
			if *got != c.want {
				t.Errorf("%q gave wrong error: want %+v, got %+v", c.src, c.want, *got)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("%v is not a syntax error", err)
			}
		})
	}
}
