package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvPutGet(t *testing.T) {
	env := NewEnv(nil)
	x := env.Runtime.Registry.Intern("x")

	_, ok := env.Get(x)
	assert.False(t, ok)

	env.Put(x, Int(1))
	v, ok := env.Get(x)
	require.True(t, ok)
	assert.Equal(t, 1, v.Int)

	// Put shadows within the same frame.
	env.Put(x, Int(2))
	v, _ = env.Get(x)
	assert.Equal(t, 2, v.Int)
}

func TestEnvChain(t *testing.T) {
	root := NewEnv(nil)
	child := NewEnv(root)
	x := root.Runtime.Registry.Intern("x")
	y := root.Runtime.Registry.Intern("y")

	root.Put(x, Int(1))

	// Lookups search the parent chain.
	v, ok := child.Get(x)
	require.True(t, ok)
	assert.Equal(t, 1, v.Int)

	// Put binds in the child's own frame without touching the parent.
	child.Put(x, Int(2))
	v, _ = child.Get(x)
	assert.Equal(t, 2, v.Int)
	v, _ = root.Get(x)
	assert.Equal(t, 1, v.Int)

	// Update mutates the innermost existing binding.
	root.Put(y, Int(10))
	err := child.Update(y, Int(11))
	require.NoError(t, err)
	v, _ = root.Get(y)
	assert.Equal(t, 11, v.Int)
}

func TestEnvUpdateUnbound(t *testing.T) {
	env := NewEnv(nil)
	y := env.Runtime.Registry.Intern("y")

	err := env.Update(y, Int(1))
	require.Error(t, err)
	assert.Equal(t, "unbound-symbol", Condition(err))
}

func TestEnvExtend(t *testing.T) {
	env := NewEnv(nil)
	reg := env.Runtime.Registry
	params := List(reg.Intern("a"), reg.Intern("b"))

	child, err := env.Extend(params, List(Int(1), Int(2)))
	require.NoError(t, err)
	assert.Equal(t, env, child.Parent)
	a, ok := child.Get(reg.Intern("a"))
	require.True(t, ok)
	assert.Equal(t, 1, a.Int)
	b, ok := child.Get(reg.Intern("b"))
	require.True(t, ok)
	assert.Equal(t, 2, b.Int)

	_, err = env.Extend(params, List(Int(1)))
	require.Error(t, err)
	assert.Equal(t, "arity-error", Condition(err))

	_, err = env.Extend(params, List(Int(1), Int(2), Int(3)))
	require.Error(t, err)
	assert.Equal(t, "arity-error", Condition(err))
}

func TestEnvAddBuiltins(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()
	reg := env.Runtime.Registry

	v, ok := env.Get(reg.Intern("quote"))
	require.True(t, ok)
	assert.Equal(t, LPrimitive, v.Type)

	v, ok = env.Get(reg.Intern("t"))
	require.True(t, ok)
	assert.True(t, v == True)
}
