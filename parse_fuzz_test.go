package calc

import (
	"testing"
)

func FuzzPostfix(f *testing.F) {
	f.Add("2+3×4")
	f.Add("+-×÷")
	f.Add("1 2 3")
	f.Fuzz(func(t *testing.T, s string) {
		in := tokenize(s)
		out := toPostfix(in)
		if len(in) != len(out) {
			t.Errorf("%q: %d tokens in, %d out", s, len(in), len(out))
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("1.5 + 2.5")
	f.Add("1.2.3×.")
	f.Add("9e999")
	f.Fuzz(func(t *testing.T, s string) {
		last := 0
		for _, tok := range tokenize(s) {
			if tok.Pos <= last {
				t.Errorf("%q: token %v at %d after %d", s, tok, tok.Pos, last)
			}
			last = tok.Pos
			if tok.Kind == TokenOp && !IsOperator(tok.Op) {
				t.Errorf("%q: non-operator %q tokenized as operator", s, tok.Op)
			}
		}
	})
}
