package rpncalc_test

import (
	"fmt"
	"math/big"

	"github.com/zephyrtronium/rpncalc"
)

func ExampleCalculate() {
	fmt.Println(rpncalc.Calculate("2 + 3 * 2"))
	fmt.Println(rpncalc.Calculate("2^3^2"))
	fmt.Println(rpncalc.Calculate("999999999999999999999 + 1"))
	fmt.Println(rpncalc.Calculate("5/0"))

	// Output:
	// 8
	// 512
	// 1000000000000000000000
	// Error - Division by zero
}

func ExampleNew() {
	calc := rpncalc.New(rpncalc.ModeDecimal, rpncalc.DivisionDigits(6))
	fmt.Println(calc.Calculate("1/7"))
	fmt.Println(calc.Calculate("1.25 * 4"))
	fmt.Println(calc.IsValid("(1.5"))

	// Output:
	// 0.142857
	// 5
	// false Mismatched parentheses: unclosed opening parenthesis at position 0
}

func ExamplePostfix() {
	b := rpncalc.Integer{}
	toks, _ := rpncalc.Tokenize[*big.Int](b, "(1 + 2) * -3 ^ 2")
	post, _ := rpncalc.Postfix(toks)
	fmt.Println(rpncalc.FormatTokens[*big.Int](b, post))
	v, _ := rpncalc.Evaluate[*big.Int](b, post)
	fmt.Println(v)

	// Output:
	// 1 2 + -3 2 ^ *
	// 27
}
