package lisp

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Evaluation is not tail recursive; the depth of nested function
// calls is bounded by the runtime's CallStack (see DefaultMaxStackHeight).
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LInt, LPrimitive, LClosure, LNil, LTrue:
		// Self-evaluating values
		return v, nil
	case LSymbol:
		res, ok := env.Get(v)
		if !ok {
			return nil, ErrorConditionf("unbound-symbol", "undefined symbol: %s", v.Str)
		}
		return res, nil
	case LCons:
		return env.evalCons(v)
	case LDot, LParen:
		// Parser sentinels must never escape the reader.
		return nil, Errorf("parser sentinel passed to eval: %v", v.Type)
	default:
		return nil, Errorf("invalid value type: %v", v.Type)
	}
}

// evalCons evaluates a list form, a function call or special form.
func (env *LEnv) evalCons(v *LVal) (*LVal, error) {
	if expand := env.Runtime.Expander; expand != nil {
		expanded, err := expand(env, v)
		if err != nil {
			return nil, err
		}
		if expanded != v {
			return env.Eval(expanded)
		}
	}
	f, err := env.Eval(v.First)
	if err != nil {
		return nil, err
	}
	if !f.IsFun() {
		return nil, ErrorConditionf("not-callable", "head of list must be a function: %v", f.Type)
	}
	return env.Call(f, v.Rest)
}

// Call invokes the function f with the list args.  Builtin primitives
// receive args unevaluated; closures have their arguments evaluated
// left-to-right in env before their body runs in a frame extending the
// closure's captured environment.
func (env *LEnv) Call(f *LVal, args *LVal) (*LVal, error) {
	if _, err := args.Len(); err != nil {
		return nil, ErrorConditionf("type-error", "argument list must be a proper list")
	}
	switch f.Type {
	case LPrimitive:
		err := env.Runtime.Stack.Push(f.Str)
		if err != nil {
			return nil, err
		}
		defer env.Runtime.Stack.Pop()
		return f.Builtin(env, args)
	case LClosure:
		vals, err := env.EvalList(args)
		if err != nil {
			return nil, err
		}
		fenv, err := f.Env.Extend(f.Formals, vals)
		if err != nil {
			return nil, err
		}
		err = env.Runtime.Stack.Push("")
		if err != nil {
			return nil, err
		}
		defer env.Runtime.Stack.Pop()
		return fenv.progn(f.Body)
	default:
		return nil, ErrorConditionf("not-callable", "not callable: %v", f.Type)
	}
}

// EvalList evaluates every element of the proper list v from left to right
// and returns the results as a new proper list.
func (env *LEnv) EvalList(v *LVal) (*LVal, error) {
	var head, tail *LVal
	for ; v != Nil; v = v.Rest {
		if v.Type != LCons {
			return nil, ErrorConditionf("type-error", "cannot evaluate a dotted argument list")
		}
		res, err := env.Eval(v.First)
		if err != nil {
			return nil, err
		}
		cell := Cons(res, Nil)
		if head == nil {
			head, tail = cell, cell
		} else {
			tail.Rest = cell
			tail = cell
		}
	}
	if head == nil {
		return Nil, nil
	}
	return head, nil
}

// progn evaluates the forms of the proper list v in order and returns the
// value of the last one.  Forms before the last are evaluated solely for
// effect.  An empty list evaluates to Nil.
func (env *LEnv) progn(v *LVal) (*LVal, error) {
	res := Nil
	for ; v != Nil; v = v.Rest {
		var err error
		res, err = env.Eval(v.First)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
