package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		v      *LVal
		expect string
	}{
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Nil, "()"},
		{True, "t"},
		{reg.Intern("foo"), "foo"},
		{List(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{Cons(Int(1), Int(2)), "(1 . 2)"},
		{Cons(Int(1), Cons(Int(2), Int(3))), "(1 2 . 3)"},
		{List(List(Int(1)), Nil), "((1) ())"},
		{Primitive("quote", builtinQuote), "<builtin-function ``quote''>"},
		{Lambda(Nil, List(Int(1)), NewEnv(nil)), "<function>"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expect, test.v.String())
	}
}

func TestLValLen(t *testing.T) {
	n, err := Nil.Len()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = List(Int(1), Int(2)).Len()
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Cons(Int(1), Int(2)).Len()
	assert.Error(t, err)

	_, err = Int(1).Len()
	assert.Error(t, err)
}

func TestSingletons(t *testing.T) {
	assert.True(t, Bool(true) == True)
	assert.True(t, Bool(false) == Nil)
	assert.True(t, List() == Nil)
	assert.True(t, Nil.IsNil())
	assert.True(t, Nil.IsList())
	assert.True(t, Cons(Int(1), Nil).IsList())
	assert.False(t, Int(1).IsList())
}
