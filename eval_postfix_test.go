package calc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvalPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		// err is a pointer to the type of error expected.
		err interface{}
		col int
	}{
		{"empty", "", new(*SyntaxError), 1},
		{"lone-op", "+", new(*SyntaxError), 1},
		{"trailing-op", "5+", new(*SyntaxError), 2},
		{"leading-op", "×5", new(*SyntaxError), 1},
		{"div-zero", "5÷0", new(*DivisionByZeroError), 2},
		{"div-zero-late", "1+2+3÷0", new(*DivisionByZeroError), 6},
		{"zero-zero", "0÷0", new(*DivisionByZeroError), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := evalPostfix(toPostfix(tokenize(c.src)))
			if err == nil {
				t.Fatalf("%q gave no error and result %g", c.src, r)
			}
			if !errors.As(err, c.err) {
				t.Fatalf("%q gave %#v, want %T", c.src, err, c.err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: wrong position: want %d, got %d (%v)", c.src, c.col, ie.Pos(), err)
			}
		})
	}
}

func TestEvalPostfixLeftover(t *testing.T) {
	// Without operators between them, numbers can only come from separate
	// literals if an operator was dropped after scanning, which the
	// tokenizer never does. Build the sequence directly.
	toks := []Token{num(1, 1), num(2, 3)}
	_, err := evalPostfix(toks)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %#v, want *SyntaxError", err)
	}
	if se.Col != 4 {
		t.Errorf("wrong position: want 4, got %d", se.Col)
	}
}

func TestEvalPostfixUnknownOperator(t *testing.T) {
	toks := []Token{num(1, 1), num(2, 3), op('^', 2)}
	_, err := evalPostfix(toks)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %#v, want *SyntaxError", err)
	}
	if !strings.Contains(se.Error(), "^") {
		t.Errorf("%q doesn't mention the operator", se.Error())
	}
}

func TestEvaluateInvalidResult(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"overflow-mul", "1" + strings.Repeat("0", 200) + "×1" + strings.Repeat("0", 200)},
		{"overflow-literal", "1" + strings.Repeat("0", 400) + "+1"},
		{"overflow-div", "1" + strings.Repeat("0", 300) + "÷0.0000000001"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := evaluate(c.src)
			var ir *InvalidResultError
			if !errors.As(err, &ir) {
				t.Fatalf("%q gave %#v, want *InvalidResultError", c.src, err)
			}
			if !math.IsInf(ir.X, 1) {
				t.Errorf("%q: want +Inf, got %g", c.src, ir.X)
			}
		})
	}
}

func TestEvaluateDiscardsCause(t *testing.T) {
	for _, src := range []string{"5÷0", "5+", "1" + strings.Repeat("0", 400)} {
		_, err := Evaluate(src)
		for _, target := range []interface{}{new(*SyntaxError), new(*DivisionByZeroError), new(*InvalidResultError)} {
			if errors.As(err, target) {
				t.Errorf("%q: error %#v exposes %T", src, err, target)
			}
		}
	}
}
