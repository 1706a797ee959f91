package calc

import (
	"strconv"
	"strings"
)

// Op identifies one of the five binary operators.
type Op int8

const (
	opNone Op = iota

	OpPow // a raised to the power b
	OpMul
	OpDiv
	OpAdd
	OpSub
)

// String returns the operator's glyph.
func (op Op) String() string {
	switch op {
	case OpPow:
		return "^"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Token is a single lexical element of an expression: either a number
// or an operator.
type Token struct {
	val float64
	op  Op
}

// Number creates a number token.
func Number(v float64) Token {
	return Token{val: v}
}

// Operator creates an operator token.
func Operator(op Op) Token {
	return Token{op: op}
}

func (t Token) String() string {
	if t.op != opNone {
		return t.op.String()
	}
	// The 'f' format never uses an exponent, so a number token always
	// prints in a form the tokenizer accepts back.
	return strconv.FormatFloat(t.val, 'f', -1, 64)
}

// Seq is the flat operand/operator sequence produced by tokenizing an
// expression. A valid sequence strictly alternates numbers and
// operators, beginning and ending with a number, so its length is
// always odd. Reducing preserves the invariant while shrinking the
// sequence by one window at a time.
type Seq []Token

// String reconstitutes the expression text with a single space between
// tokens.
func (s Seq) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
