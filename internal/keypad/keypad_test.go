package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press types keys on the keypad. Digits and decimal points go to Digit,
// operators to Operator, '=' to Calculate, and 'C' to Clear.
func press(k *Keypad, keys string) {
	for _, r := range keys {
		switch r {
		case '=':
			k.Calculate()
		case 'C':
			k.Clear()
		case '+', '-', '×', '÷':
			k.Operator(r)
		default:
			k.Digit(string(r))
		}
	}
}

func TestNew(t *testing.T) {
	k := New()
	assert.Equal(t, "0", k.Display())
	assert.False(t, k.Err())
	assert.True(t, k.CanCalculate())
}

func TestKeys(t *testing.T) {
	cases := []struct {
		name string
		keys string
		want string
		err  bool
	}{
		{"first-digit-replaces-zero", "7", "7", false},
		{"digits", "123", "123", false},
		{"leading-dot", ".5", "0.5", false},
		{"one-dot", "1.5.2", "1.52", false},
		{"dot-per-number", "1.5+2.5", "1.5+2.5", false},
		{"operator-after-zero", "+", "0+", false},
		{"operator-replaces", "5+×-÷", "5÷", false},
		{"calculate", "1.5+2.5=", "4", false},
		{"precedence", "2+3×4=", "14", false},
		{"left-assoc", "8-3-2=", "3", false},
		{"trailing-operator-ignored", "5+=", "5+", false},
		{"digit-after-result", "2+2=7", "7", false},
		{"dot-after-result", "2+2=.", "0.", false},
		{"operator-after-result", "2+2=+1=", "5", false},
		{"divide-by-zero", "5÷0=", ErrorText, true},
		{"digit-after-error", "5÷0=7", "7", false},
		{"operator-after-error", "5÷0=+", "0+", false},
		{"calculate-after-error", "5÷0==", ErrorText, true},
		{"clear", "12+3C", "0", false},
		{"decimal-result", "1÷4=", "0.25", false},
		{"large-result", "1000×1000=", "1000000", false},
		{"large-chain", "1000×1000=+1=", "1000001", false},
		{"small-result", "1÷100000=", "0.00001", false},
		{"small-chain", "1÷100000=+1=", "1.00001", false},
		// A negative result starts with an operator, so it can't be extended.
		{"negative-chain", "3-5=+1=", ErrorText, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := New()
			press(k, c.keys)
			assert.Equal(t, c.want, k.Display())
			assert.Equal(t, c.err, k.Err())
		})
	}
}

func TestIgnoredInput(t *testing.T) {
	k := New()
	press(k, "12")
	k.Digit("a")
	k.Digit("34")
	k.Digit("")
	k.Operator('*')
	k.Operator('/')
	assert.Equal(t, "12", k.Display())
}

func TestCanCalculate(t *testing.T) {
	k := New()
	press(k, "5+")
	assert.False(t, k.CanCalculate())

	r, ok := k.Calculate()
	assert.False(t, ok)
	assert.Zero(t, r)
	assert.Equal(t, "5+", k.Display())

	press(k, "3")
	require.True(t, k.CanCalculate())
	r, ok = k.Calculate()
	assert.True(t, ok)
	assert.Equal(t, 8.0, r)
	assert.Equal(t, "8", k.Display())
}
