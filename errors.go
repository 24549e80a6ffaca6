package calc

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression is matched by every error returned from Evaluate.
var ErrInvalidExpression = errors.New("invalid expression")

// InvalidExpressionError is the only kind of error Evaluate returns. It
// deliberately carries no cause: a division by zero, a missing operand, and an
// overflowing result all look the same to the caller.
type InvalidExpressionError struct {
	// Expr is the expression that failed to evaluate.
	Expr string
}

func (err *InvalidExpressionError) Error() string {
	return "invalid expression: " + strconv.Quote(err.Expr)
}

// Is reports whether target is ErrInvalidExpression.
func (err *InvalidExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// SyntaxError indicates a malformed expression: an operator without two
// operands, leftover operands, or no expression at all. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the operator that lacked operands, or one past
	// the last token when the expression didn't reduce to one value.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "syntax error: "+err.Reason)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a ÷ whose right operand is zero. It implements
// InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatFloat(err.X, 'g', -1, 64)+" ÷ 0")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// InvalidResultError indicates an expression whose value is NaN or infinite.
type InvalidResultError struct {
	// X is the offending result.
	X float64
}

func (err *InvalidResultError) Error() string {
	return "invalid result " + strconv.FormatFloat(err.X, 'g', -1, 64)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
