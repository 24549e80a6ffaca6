package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Token is a single element of an expression: either a number or one of the
// binary operators.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Num is the value of a TokenNum.
	Num float64
	// Op is the operator rune of a TokenOp.
	Op rune
	// Pos is the rune column at which the token starts, counting from 1.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOp:
		return string(t.Op)
	default:
		return t.Kind.String() + "@" + strconv.Itoa(t.Pos)
	}
}

// TokenKind distinguishes numbers from operators.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a decimal number literal.
	TokenNum
	// TokenOp is one of the binary operators.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-×÷"

// IsOperator reports whether r is one of Operators.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// tokenize scans an expression into numbers and operators. Runes that are
// neither digits, decimal points, nor operators are dropped without ending
// the number being scanned, so "1 000" is the number 1000. Literals that
// aren't valid decimal numbers, like "." or "1.2.3", produce no token.
func tokenize(expr string) []Token {
	var (
		toks  []Token
		buf   strings.Builder
		start int
		col   int
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		defer buf.Reset()
		// ParseFloat gives ±Inf along with ErrRange for literals too large
		// for a float64. Keep those; the result check rejects them.
		v, err := strconv.ParseFloat(buf.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return
		}
		toks = append(toks, Token{Kind: TokenNum, Num: v, Pos: start})
	}
	for _, r := range expr {
		col++
		switch {
		case '0' <= r && r <= '9', r == '.':
			if buf.Len() == 0 {
				start = col
			}
			buf.WriteRune(r)
		case IsOperator(r):
			flush()
			toks = append(toks, Token{Kind: TokenOp, Op: r, Pos: col})
		default:
			// Anything else is ignored.
		}
	}
	flush()
	return toks
}
