package lisptest

import "testing"

func TestEvalErrors(t *testing.T) {
	tests := TestSuite{
		{"undefined symbols", TestSequence{
			{"a", "unbound-symbol: undefined symbol: a"},
			{"(define a 1)", "1"},
			{"a", "1"},
			{"b", "unbound-symbol: undefined symbol: b"},
		}},
		{"assignment to unbound symbols", TestSequence{
			{"(setvalue y 1)", "unbound-symbol: unbound variable: y"},
			{"(define y 0)", "0"},
			{"(setvalue y 1)", "1"},
		}},
		{"arithmetic type errors", TestSequence{
			{"(+ 1 t)", "type-error: +: argument is not an integer: t"},
			{"(+ 1 '(2))", "type-error: +: argument is not an integer: (2)"},
			{"(= 1 t)", "type-error: =: argument is not an integer"},
			{"(= t t)", "type-error: =: argument is not an integer"},
		}},
		{"callable errors", TestSequence{
			{"(1 2)", "not-callable: head of list must be a function: int"},
			{"(t)", "not-callable: head of list must be a function: true"},
			{"('(1 2) 3)", "not-callable: head of list must be a function: cons"},
		}},
		{"dotted argument lists", TestSequence{
			{"(+ 1 . 2)", "type-error: argument list must be a proper list"},
		}},
		{"special form shapes", TestSequence{
			{"(quote)", "arity-error: quote: one argument expected (got 0)"},
			{"(quote 1 2)", "arity-error: quote: one argument expected (got 2)"},
			{"(define x)", "arity-error: define: two arguments expected (got 1)"},
			{"(define 1 2)", "type-error: define: first argument is not a symbol: int"},
			{"(setvalue 1 2)", "type-error: setvalue: first argument is not a symbol: int"},
			{"(if 1)", "arity-error: if: at least two arguments expected (got 1)"},
			{"(lambda)", "arity-error: lambda: formal parameter list expected"},
			{"(lambda (x))", "arity-error: lambda: function body cannot be empty"},
			{"(lambda (1) x)", "type-error: lambda: parameter is not a symbol: 1"},
			{"(lambda x x)", "type-error: lambda: parameter list is not a flat list"},
			{"(println)", "arity-error: println: one argument expected (got 0)"},
		}},
		{"closure arity", TestSequence{
			{"(define f (lambda (x y) (+ x y)))", "<function>"},
			{"(f 1)", "arity-error: expected 2 arguments (got 1)"},
			{"(f 1 2 3)", "arity-error: expected 2 arguments (got 3)"},
			{"(f 1 2)", "3"},
		}},
		{"errors abort evaluation", TestSequence{
			{"(define x 1)", "1"},
			{"(+ (setvalue x 2) missing)", "unbound-symbol: undefined symbol: missing"},
			// The first argument was evaluated before the error.
			{"x", "2"},
		}},
	}
	RunTestSuite(t, tests)
}
