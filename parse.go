package calc

import (
	"strings"
)

// prec gets the binding strength of an operator. Higher is more binding. All
// operators are left-associative.
func prec(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '×', '÷':
		return 2
	default:
		return 0
	}
}

// toPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. The input is not validated; a malformed sequence
// stays malformed and is caught during evaluation.
func toPostfix(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	// ops holds operators whose right operands haven't been fully scanned.
	// Precedences never increase from bottom to top.
	var ops []Token
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOp:
			// >= rather than > because everything is left-associative:
			// a-b-c is (a-b)-c.
			for len(ops) > 0 && prec(ops[len(ops)-1].Op) >= prec(tok.Op) {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return out
}

// Postfix returns the postfix (reverse Polish) form of an expression as
// space-separated tokens, e.g. "2 3 4 × +" for "2+3×4". The result is the
// sequence Evaluate would reduce, so it may describe a malformed expression.
func Postfix(expr string) string {
	toks := toPostfix(tokenize(expr))
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
