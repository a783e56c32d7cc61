// Package lisptest provides a table-driven harness for testing the
// interpreter end to end, from source text through the reader and the
// evaluator.
package lisptest

import (
	"io"
	"strings"
	"testing"

	"github.com/luthersystems/minilisp/lisp"
	"github.com/luthersystems/minilisp/parser"
)

// Runner constructs isolated environments for test sequences.
type Runner struct {
	// Configs are applied to every environment the Runner creates, after
	// the default reader, stdout, and exit configuration.
	Configs []lisp.Config
}

// NewEnv returns a fresh root environment for one test sequence.  The
// environment discards println output and its exit builtin returns instead
// of terminating the test process.
func (r *Runner) NewEnv() (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config := append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(io.Discard),
		lisp.WithStderr(io.Discard),
		lisp.WithExitFunc(func(int) {}),
	}, r.Configs...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.LEnv.  Result holds the rendering of the
// expression's value, or the full error message when evaluation fails.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated environments.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, err := r.NewEnv()
		if err != nil {
			t.Fatalf("test %d %q: failed to initialize environment: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			result := evalString(env, expr.Expr)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// RunTestSuite runs tests with a default Runner.
func RunTestSuite(t *testing.T, tests TestSuite) {
	(&Runner{}).RunTestSuite(t, tests)
}

func evalString(env *lisp.LEnv, source string) string {
	v, err := env.Load("test", strings.NewReader(source))
	if err != nil {
		return err.Error()
	}
	return v.String()
}
