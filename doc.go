// Package rpncalc implements an arbitrary-precision calculator for arithmetic
// expressions.
//
// Expressions contain numbers, the binary operators + - * / ^, parentheses,
// and unary signs. "^" is exponentiation and groups from the right, so
// "2^3^2" is "2^(3^2)". A unary sign belongs to the literal it precedes, so
// "-2^2" is 4.
//
// Evaluation runs in three stages: Tokenize converts text to tokens, Postfix
// reorders them with the shunting-yard algorithm, and Evaluate reduces the
// postfix sequence with a value stack. The arithmetic is supplied by a
// Backend: Integer for arbitrary-precision integers, or Decimal for
// arbitrary-precision decimals. An Engine ties the stages together for one
// backend and formats results for display.
package rpncalc
