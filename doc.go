// Package calc implements a four-function calculator for infix expressions.
//
// An expression is a sequence of decimal numbers separated by the operators
// +, -, × and ÷. "2+3×4" is 14 because × and ÷ bind more tightly than + and -;
// "8-3-2" is 3 because operators of equal precedence group from the left.
// There are no brackets, no unary minus, and no functions. Anything that isn't
// a digit, a decimal point, or an operator is ignored, so spaces are fine.
//
// Internally, Evaluate scans the expression into tokens, reorders them into
// postfix with the shunting-yard algorithm, and reduces the postfix sequence
// with a stack. Results are float64.
package calc
