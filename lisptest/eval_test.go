package lisptest

import (
	"testing"

	"github.com/luthersystems/minilisp/lisp"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"self evaluating", TestSequence{
			{"3", "3"},
			{"-12", "-12"},
			{"()", "()"},
			{"t", "t"},
		}},
		{"quotes", TestSequence{
			{"'3", "3"},
			{"'foo", "foo"},
			{"'(+ 1 2)", "(+ 1 2)"},
			{"''3", "(quote 3)"},
			{"(quote (1 2))", "(1 2)"},
		}},
		{"arithmetic", TestSequence{
			{"(+)", "0"},
			{"(+ 1)", "1"},
			{"(+ 1 2 3)", "6"},
			{"(+ 1 (+ 2 3) 4)", "10"},
			{"(+ -5 5)", "0"},
		}},
		{"comparison", TestSequence{
			{"(= 1 1)", "t"},
			{"(= 1 2)", "()"},
			{"(= (+ 1 2) 3)", "t"},
		}},
		{"truthiness", TestSequence{
			{"(if () 1 2)", "2"},
			{"(if 5 1 2)", "1"},
			{"(if (= 1 1) 1 2)", "1"},
			{"(if () 1)", "()"},
			{"(if () 1 2 3)", "3"},
			{"(if t 1 (undefined-function))", "1"},
			{"(if () (undefined-function) 2)", "2"},
		}},
		{"lists", TestSequence{
			{"(list)", "()"},
			{"(list 1 2 3)", "(1 2 3)"},
			{"(list 1 (+ 1 1) 3)", "(1 2 3)"},
			{"'(1 . 2)", "(1 . 2)"},
			{"'(1 2 . 3)", "(1 2 . 3)"},
			{"(list (list 1) (list))", "((1) ())"},
		}},
		{"definition and mutation", TestSequence{
			{"(define x 5)", "5"},
			{"x", "5"},
			{"(setvalue x 6)", "6"},
			{"x", "6"},
			{"(define x 7)", "7"},
			{"x", "7"},
		}},
		{"function basics", TestSequence{
			{"((lambda (x) x) 1)", "1"},
			{"((lambda () (+ 1 1)))", "2"},
			{"((lambda (n) (+ n 1)) 1)", "2"},
			{"((lambda (x y) (+ x y)) 1 2)", "3"},
			{"((lambda (x) (+ x 1) (+ x 2)) 1)", "3"},
		}},
		{"closures capture environment", TestSequence{
			{"(define makeadd (lambda (n) (lambda (x) (+ x n))))", "<function>"},
			{"(define add5 (makeadd 5))", "<function>"},
			{"(add5 10)", "15"},
			{"(add5 0)", "5"},
			{"((makeadd 2) 3)", "5"},
		}},
		{"lexical scope", TestSequence{
			{"(define x 1)", "1"},
			{"(define f (lambda () x))", "<function>"},
			{"((lambda (x) (f)) 99)", "1"},
			{"((lambda (x) x) 99)", "99"},
			{"x", "1"},
		}},
		{"set through closure", TestSequence{
			{"(define n 0)", "0"},
			{"(define bump (lambda () (setvalue n (+ n 1))))", "<function>"},
			{"(bump)", "1"},
			{"(bump)", "2"},
			{"n", "2"},
		}},
		{"recursion", TestSequence{
			{"(define count (lambda (n) (if (= n 0) 0 (+ 1 (count (+ n -1))))))", "<function>"},
			{"(count 0)", "0"},
			{"(count 10)", "10"},
			{"(count 100)", "100"},
		}},
		{"function display", TestSequence{
			{"+", "<builtin-function ``+''>"},
			{"(lambda (x) x)", "<function>"},
		}},
		{"println and exit return nil", TestSequence{
			{"(println 1)", "()"},
			{"(println '(1 2))", "()"},
			{"(exit)", "()"},
		}},
		{"comments", TestSequence{
			{"; nothing but a comment\n5", "5"},
			{"(+ 1 ; the rest of the line\n2)", "3"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestEvalDeepRecursion(t *testing.T) {
	r := &Runner{Configs: []lisp.Config{lisp.WithMaximumStackHeight(100)}}
	r.RunTestSuite(t, TestSuite{
		{"recursion beyond the stack limit", TestSequence{
			{"(define loop (lambda (n) (loop (+ n 1))))", "<function>"},
			{"(loop 0)", "stack-overflow: call stack exceeds 100 frames"},
		}},
		{"recursion within the stack limit", TestSequence{
			{"(define count (lambda (n) (if (= n 0) 0 (+ 1 (count (+ n -1))))))", "<function>"},
			{"(count 20)", "20"},
		}},
	})
}

func TestEvalIsolatedSessions(t *testing.T) {
	r := &Runner{}
	env1, err := r.NewEnv()
	if err != nil {
		t.Fatal(err)
	}
	env2, err := r.NewEnv()
	if err != nil {
		t.Fatal(err)
	}
	if res := evalString(env1, "(define x 1)"); res != "1" {
		t.Fatalf("define: %s", res)
	}
	if res := evalString(env2, "x"); res != "unbound-symbol: undefined symbol: x" {
		t.Fatalf("sessions share definitions: %s", res)
	}
}
