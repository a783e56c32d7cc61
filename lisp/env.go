package lisp

import "io"

// LEnv is one frame in a chain of lexical scopes.  Scope is keyed by symbol
// identity, which the Registry guarantees is unique per name.
type LEnv struct {
	Scope   map[*LVal]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv initializes and returns a new LEnv with the given parent frame.  A
// root environment (nil parent) is given a fresh Runtime with its own
// symbol Registry; child frames share the Runtime of their parent.
func NewEnv(parent *LEnv) *LEnv {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	} else {
		rt = StandardRuntime()
	}
	return &LEnv{
		Scope:   make(map[*LVal]*LVal),
		Parent:  parent,
		Runtime: rt,
	}
}

func (env *LEnv) root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Get takes a symbol k and returns the LVal it is bound to, searching the
// frame chain from innermost to outermost.  The second return is false when
// no binding exists anywhere in the chain.
func (env *LEnv) Get(k *LVal) (*LVal, bool) {
	if k.Type != LSymbol {
		return nil, false
	}
	for ; env != nil; env = env.Parent {
		if v, ok := env.Scope[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Put takes a symbol k and binds it to v in env's own frame, shadowing any
// binding of k held by a parent frame.  Put never searches parents.
func (env *LEnv) Put(k, v *LVal) {
	if k.Type != LSymbol {
		panic("key is not a symbol: " + k.Type.String())
	}
	if v == nil {
		panic("nil value")
	}
	env.Scope[k] = v
}

// Update takes a symbol k, locates its existing binding searching the full
// frame chain, and mutates the stored value in place.  Update returns an
// error if k is not bound anywhere in the chain.
func (env *LEnv) Update(k, v *LVal) error {
	if k.Type != LSymbol {
		return ErrorConditionf("type-error", "not a symbol: %v", k.Type)
	}
	for ; env != nil; env = env.Parent {
		if _, ok := env.Scope[k]; ok {
			env.Scope[k] = v
			return nil
		}
	}
	return ErrorConditionf("unbound-symbol", "unbound variable: %s", k.Str)
}

// Extend returns a new child frame of env binding the symbols in params
// positionally to the values in args, both proper lists.  Extend returns an
// arity error when the lists differ in length.
func (env *LEnv) Extend(params, args *LVal) (*LEnv, error) {
	nparam, err := params.Len()
	if err != nil {
		return nil, err
	}
	narg, err := args.Len()
	if err != nil {
		return nil, err
	}
	if nparam != narg {
		return nil, ErrorConditionf("arity-error", "expected %d arguments (got %d)", nparam, narg)
	}
	child := NewEnv(env)
	for p, a := params, args; p != Nil; p, a = p.Rest, a.Rest {
		child.Put(p.First, a.First)
	}
	return child, nil
}

// AddBuiltins binds the given funs to their names in env and binds the
// constant t.  When called with no arguments AddBuiltins adds the
// DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	reg := env.Runtime.Registry
	for _, f := range funs {
		k := reg.Intern(f.Name())
		if _, ok := env.Get(k); ok {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(k, Primitive(f.Name(), f.Eval))
	}
	env.Put(reg.Intern("t"), True)
}

// Load reads forms from r using the session's Reader and evaluates them in
// order, returning the value of the last form.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, Errorf("no reader configured for the environment")
	}
	forms, err := env.Runtime.Reader.Read(name, r, env.Runtime.Registry)
	if err != nil {
		return nil, err
	}
	res := Nil
	for _, form := range forms {
		res, err = env.Eval(form)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
