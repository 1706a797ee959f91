package calc

import (
	"io"
	"strings"
)

// Eval is a shortcut to tokenize an expression and reduce it to its
// value.
func Eval(src io.RuneScanner) (float64, error) {
	s, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	return Reduce(s), nil
}

// EvalString is a shortcut to tokenize and reduce a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
