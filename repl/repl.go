// Package repl contains the top-level drivers for the interpreter: an
// interactive read-eval-print loop and a non-interactive stream evaluator.
package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/luthersystems/minilisp/lisp"
	"github.com/luthersystems/minilisp/parser"
	"github.com/luthersystems/minilisp/parser/token"
)

// NewEnv returns a root environment initialized for top-level use.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// RunStream reads one form at a time from r, evaluates it in env, and
// prints the rendered result followed by a newline to w.  RunStream returns
// nil on clean end-of-input and the first read or evaluation error
// otherwise.
func RunStream(env *lisp.LEnv, name string, r io.Reader, w io.Writer) error {
	p := parser.New(env.Runtime.Registry, token.NewScanner(name, r))
	for {
		form, err := p.ParseExpression()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		v, err := env.Eval(form)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, v)
		if err != nil {
			return err
		}
	}
}

// Run starts an interactive session reading expressions from the terminal.
// Incomplete expressions continue on the following line.  Unlike the
// non-interactive drivers, errors are printed and the session continues.
func Run(prompt string) error {
	env, err := NewEnv()
	if err != nil {
		return err
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, line...)
		if len(bytes.TrimSpace(buf)) == 0 {
			buf = nil
			continue
		}

		p := parser.New(env.Runtime.Registry, token.NewScanner("repl", bytes.NewReader(buf)))
		forms, err := p.ParseProgram()
		if lisp.Condition(err) == "unmatched-syntax" {
			// The expression continues on the next line.
			rl.SetPrompt(contPrompt)
			continue
		}
		if err != nil {
			fmt.Fprintln(env.Runtime.Stderr, err)
		} else {
			for _, form := range forms {
				v, err := env.Eval(form)
				if err != nil {
					fmt.Fprintln(env.Runtime.Stderr, err)
					break
				}
				fmt.Fprintln(os.Stdout, v)
			}
		}
		buf = nil
		rl.SetPrompt(prompt)
	}
}
