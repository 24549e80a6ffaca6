// Package keypad models a four-function calculator's display as a user types
// on its keys. It decides what the display shows; package calc does the math.
package keypad

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

// ErrorText is shown on the display after a failed calculation.
const ErrorText = "Error"

// Keypad is the state of a calculator display.
type Keypad struct {
	display string
	// fresh means the next digit starts a new number instead of extending
	// the display.
	fresh bool
	// failed means the display shows ErrorText.
	failed bool
}

// New creates a cleared keypad.
func New() *Keypad {
	k := new(Keypad)
	k.Clear()
	return k
}

// Display returns the text on the display.
func (k *Keypad) Display() string {
	return k.display
}

// Err reports whether the last calculation failed.
func (k *Keypad) Err() bool {
	return k.failed
}

// Clear resets the display to 0.
func (k *Keypad) Clear() {
	k.display = "0"
	k.fresh = true
	k.failed = false
}

// Digit enters a digit or a decimal point. Any other input is ignored. A
// second decimal point in the same number is ignored.
func (k *Keypad) Digit(d string) {
	if len(d) != 1 || !(d[0] == '.' || '0' <= d[0] && d[0] <= '9') {
		return
	}
	if k.failed {
		k.Clear()
	}
	if k.fresh {
		if d == "." {
			d = "0."
		}
		k.display = d
		k.fresh = false
		return
	}
	if d == "." && strings.Contains(k.current(), ".") {
		return
	}
	k.display += d
}

// Operator enters one of calc.Operators. If the display already ends with an
// operator, op replaces it. Other runes are ignored.
func (k *Keypad) Operator(op rune) {
	if !calc.IsOperator(op) {
		return
	}
	if k.failed {
		k.Clear()
	}
	k.fresh = false
	d := strings.TrimSpace(k.display)
	if last, ok := lastRune(d); ok && calc.IsOperator(last) {
		d = strings.TrimSuffix(d, string(last))
	}
	k.display = d + string(op)
}

// CanCalculate reports whether the display holds something to calculate.
func (k *Keypad) CanCalculate() bool {
	d := strings.TrimSpace(k.display)
	if d == "" || k.display == ErrorText {
		return false
	}
	last, _ := lastRune(d)
	return !calc.IsOperator(last)
}

// Calculate evaluates the display and shows the result, or ErrorText if the
// expression is invalid. It does nothing if !CanCalculate(). The result is
// returned along with whether the calculation happened and succeeded.
func (k *Keypad) Calculate() (float64, bool) {
	if !k.CanCalculate() {
		return 0, false
	}
	// The next digit always starts a new number.
	k.fresh = true
	r, err := calc.Evaluate(k.display)
	if err != nil {
		k.display = ErrorText
		k.failed = true
		return 0, false
	}
	// No exponent, since the display is evaluated again when it's extended.
	k.display = strconv.FormatFloat(r, 'f', -1, 64)
	return r, true
}

// current gets the number being entered, i.e. everything after the last
// operator.
func (k *Keypad) current() string {
	i := strings.LastIndexFunc(k.display, calc.IsOperator)
	if i < 0 {
		return k.display
	}
	return k.display[i:]
}

func lastRune(s string) (rune, bool) {
	r, sz := utf8.DecodeLastRuneInString(s)
	return r, sz > 0
}
