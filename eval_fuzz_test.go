//go:build go1.18
// +build go1.18

package calc_test

import (
	"math"
	"testing"

	"github.com/pinktrink/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("2 ^ 3 ^ 2")
	f.Add("-3.5")
	f.Add("1 / 0")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.EvalString(s)
		if err != nil {
			if _, ok := err.(*calc.ParseError); !ok {
				t.Errorf("%q: error %#v is not *calc.ParseError", s, err)
			}
			return
		}
		// Valid inputs evaluate the same way every time.
		again, err := calc.EvalString(s)
		if err != nil {
			t.Fatalf("%q: parsed once but not twice: %v", s, err)
		}
		if r != again && !(math.IsNaN(r) && math.IsNaN(again)) {
			t.Errorf("%q: evaluated to %g, then %g", s, r, again)
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("1+2*3-4/2")
	f.Add("2 . . 3")
	f.Add("9876543210.")
	f.Fuzz(func(t *testing.T, s string) {
		seq, err := calc.TokenizeString(s)
		if err != nil {
			return
		}
		if len(seq)%2 != 1 {
			t.Fatalf("%q: sequence %v has even length %d", s, seq, len(seq))
		}
	})
}
