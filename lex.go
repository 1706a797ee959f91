package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators.
const Operators = "^*/+-"

// oper maps a rune to its operator kind, or opNone.
func oper(r rune) Op {
	switch r {
	case '^':
		return OpPow
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '+':
		return OpAdd
	case '-':
		return OpSub
	default:
		return opNone
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// Tokenize scans an expression into its flat token sequence. The
// language is
//
//	Number (Operator Number)*
//
// with no brackets and no grouping, so the sequence records the
// expression exactly as written and precedence is applied later by
// Reduce. Whitespace separates tokens and is otherwise insignificant.
//
// A number is an optional sign, one or more decimal digits, and an
// optional fraction; a trailing bare decimal point denotes an integral
// value. A sign is only a sign where a number is expected, immediately
// before its first digit; anywhere else + and - are operators. Any
// input that does not match the language yields a *ParseError.
func Tokenize(src io.RuneScanner) (Seq, error) {
	l := lexer{src: src, rune: 1}
	var s Seq
	for {
		n, err := l.scanNumber()
		if err != nil {
			return nil, err
		}
		s = append(s, n)
		op, ok, err := l.scanOperator()
		if err != nil {
			return nil, err
		}
		if !ok {
			return s, nil
		}
		s = append(s, op)
	}
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) (Seq, error) {
	return Tokenize(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position
// info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's
// position info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// skipSpace consumes whitespace and returns the first rune after it.
func (l *lexer) skipSpace() (rune, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// scanNumber scans the next token, which must be a number.
func (l *lexer) scanNumber() (Token, error) {
	defer l.buf.Reset()
	r, err := l.skipSpace()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty input, or an operator with nothing after it.
			return Token{}, l.error("number")
		}
		return Token{}, err
	}
	if r == '+' || r == '-' {
		l.buf.WriteRune(r)
		r, err = l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{}, l.error("number")
			}
			return Token{}, err
		}
	}
	var dig, dot bool
	for {
		switch {
		case '0' <= r && r <= '9':
			dig = true
			l.buf.WriteRune(r)
		case r == '.':
			l.buf.WriteRune(r)
			if dot || !dig {
				return Token{}, l.error("number")
			}
			dot = true
		case unicode.IsSpace(r), strings.ContainsRune(Operators, r):
			// The number ends here; the rune belongs to the next token.
			l.unreadRune()
			return l.number()
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{}, l.error("number")
		}
		r, err = l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.number()
			}
			return Token{}, err
		}
	}
}

// number converts the scanned text to a number token. The scan admits
// only digits, one dot, and a leading sign, so the conversion can fail
// only by being out of range, which saturates to an infinity.
func (l *lexer) number() (Token, error) {
	text := l.buf.String()
	if !strings.ContainsAny(text, "0123456789") {
		return Token{}, l.error("number")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calc: invalid number: " + text + " (" + err.Error() + ")")
	}
	return Number(v), nil
}

// scanOperator scans the next token, which must be an operator. The
// boolean result is false at the end of the input.
func (l *lexer) scanOperator() (Token, bool, error) {
	defer l.buf.Reset()
	r, err := l.skipSpace()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{}, false, nil
		}
		return Token{}, false, err
	}
	op := oper(r)
	if op == opNone {
		l.buf.WriteRune(r)
		return Token{}, false, l.error("operator")
	}
	return Operator(op), true, nil
}

func (l *lexer) error(kind string) error {
	return &ParseError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// ParseError indicates input that does not match the expression
// grammar. It is the only error kind Tokenize returns.
type ParseError struct {
	// Text is the token the lexer was scanning when it failed, plus the
	// invalid rune, if any. It is empty when the input ended where a
	// number was expected.
	Text string
	// Kind is the type of token the lexer was scanning, "number" or
	// "operator".
	Kind string
	// Col is the rune column at which the lexer stopped, counting from
	// one.
	Col int
}

func (err *ParseError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Text == "" {
		return "missing " + err.Kind + " token at " + pos
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *ParseError) Pos() int {
	return err.Col
}
