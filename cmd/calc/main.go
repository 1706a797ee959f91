package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/pinktrink/calc"
)

var cli struct {
	Echo bool     `help:"Print the token sequence along with each result."`
	Expr []string `arg:"" optional:"" help:"Expression to evaluate. With no expression, read one per line from standard input."`
}

var errprint = color.New(color.FgRed).FprintlnFunc()

func main() {
	log.SetFlags(0)
	kong.Parse(&cli, kong.Description(`
calc evaluates arithmetic expressions over the operators ^ * / + -.
Exponentiation binds tightest, then multiplication and division, then
addition and subtraction; operators of equal precedence evaluate left
to right. There is no grouping.

With no expression on the command line, calc reads one expression per
line from standard input.`))
	if len(cli.Expr) > 0 {
		// The shell already split the words; put the expression back
		// together.
		eval(strings.Join(cli.Expr, " "))
		return
	}
	repl()
}

// repl reads and evaluates expressions line by line until the input
// ends or the user interrupts.
func repl() {
	var history string
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".calc_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: history,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C and Ctrl-D end the session quietly.
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatal(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		eval(line)
	}
}

// eval evaluates one expression and prints its result. Malformed input
// prints a message instead; it is an expected outcome, not a process
// failure.
func eval(src string) {
	s, err := calc.TokenizeString(src)
	if err != nil {
		errprint(os.Stderr, "unable to parse:", err)
		return
	}
	if cli.Echo {
		fmt.Printf("%v : ", s)
	}
	fmt.Println(format(calc.Reduce(s)))
}

// format renders a result with trailing zeros and any bare decimal
// point trimmed, so an integral value prints without a fraction.
// Infinities and NaN print as strconv renders them.
func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
