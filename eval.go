package calc

import (
	"math"
)

// Evaluate computes the value of an infix expression of decimal numbers and
// the operators +, -, ×, and ÷. × and ÷ bind more tightly than + and -, and
// operators of equal precedence group left to right.
//
// Runes other than digits, decimal points, and operators are ignored, so
// "5 + 3" is 8. Any failure, whether malformed input, division by zero, or a
// result that is NaN or infinite, is reported as an *InvalidExpressionError.
//
// Evaluate holds no state between calls and is safe to call concurrently.
func Evaluate(expr string) (float64, error) {
	r, err := evaluate(expr)
	if err != nil {
		return 0, &InvalidExpressionError{Expr: expr}
	}
	return r, nil
}

// evaluate is Evaluate without normalizing errors.
func evaluate(expr string) (float64, error) {
	r, err := evalPostfix(toPostfix(tokenize(expr)))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &InvalidResultError{X: r}
	}
	return r, nil
}

// evalPostfix reduces a postfix token sequence to a single value.
func evalPostfix(toks []Token) (float64, error) {
	stack := make([]float64, 0, len(toks)/2+1)
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Num)
		case TokenOp:
			if len(stack) < 2 {
				return 0, &SyntaxError{Col: tok.Pos, Reason: "missing operand for " + string(tok.Op)}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := apply(tok, l, r)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return 0, &SyntaxError{Col: endpos(toks), Reason: "no expression"}
	default:
		return 0, &SyntaxError{Col: endpos(toks), Reason: "missing operator"}
	}
}

// apply computes l op r.
func apply(op Token, l, r float64) (float64, error) {
	switch op.Op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '×':
		return l * r, nil
	case '÷':
		if r == 0 {
			return 0, &DivisionByZeroError{Col: op.Pos, X: l}
		}
		return l / r, nil
	default:
		return 0, &SyntaxError{Col: op.Pos, Reason: "unknown operator " + string(op.Op)}
	}
}

// endpos gets the position just past the rightmost token of a sequence. Since
// postfix order moves operators rightward, this is the maximum position rather
// than that of the last token.
func endpos(toks []Token) int {
	p := 0
	for _, tok := range toks {
		if tok.Pos > p {
			p = tok.Pos
		}
	}
	return p + 1
}
