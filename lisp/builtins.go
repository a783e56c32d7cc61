package lisp

import "fmt"

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) (*LVal, error) {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"quote", builtinQuote},
	{"list", builtinList},
	{"setvalue", builtinSetValue},
	{"+", builtinAdd},
	{"define", builtinDefine},
	{"lambda", builtinLambda},
	{"if", builtinIf},
	{"=", builtinEqNum},
	{"println", builtinPrintln},
	{"exit", builtinExit},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, fn})
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, 0, len(langBuiltins)+len(userBuiltins))
	for _, f := range langBuiltins {
		funs = append(funs, f)
	}
	for _, f := range userBuiltins {
		funs = append(funs, f)
	}
	return funs
}

func berrf(name string, condition string, format string, v ...interface{}) error {
	return ErrorConditionf(condition, "%s: %s", name, fmt.Sprintf(format, v...))
}

func builtinQuote(env *LEnv, args *LVal) (*LVal, error) {
	n, _ := args.Len()
	if n != 1 {
		return nil, berrf("quote", "arity-error", "one argument expected (got %d)", n)
	}
	return args.First, nil
}

func builtinList(env *LEnv, args *LVal) (*LVal, error) {
	return env.EvalList(args)
}

func builtinSetValue(env *LEnv, args *LVal) (*LVal, error) {
	n, _ := args.Len()
	if n != 2 {
		return nil, berrf("setvalue", "arity-error", "two arguments expected (got %d)", n)
	}
	sym := args.First
	if sym.Type != LSymbol {
		return nil, berrf("setvalue", "type-error", "first argument is not a symbol: %v", sym.Type)
	}
	val, err := env.Eval(args.Rest.First)
	if err != nil {
		return nil, err
	}
	err = env.Update(sym, val)
	if err != nil {
		return nil, err
	}
	return val, nil
}

func builtinAdd(env *LEnv, args *LVal) (*LVal, error) {
	vals, err := env.EvalList(args)
	if err != nil {
		return nil, err
	}
	sum := 0
	for v := vals; v != Nil; v = v.Rest {
		if v.First.Type != LInt {
			return nil, berrf("+", "type-error", "argument is not an integer: %s", v.First)
		}
		sum += v.First.Int
	}
	return Int(sum), nil
}

func builtinDefine(env *LEnv, args *LVal) (*LVal, error) {
	n, _ := args.Len()
	if n != 2 {
		return nil, berrf("define", "arity-error", "two arguments expected (got %d)", n)
	}
	sym := args.First
	if sym.Type != LSymbol {
		return nil, berrf("define", "type-error", "first argument is not a symbol: %v", sym.Type)
	}
	val, err := env.Eval(args.Rest.First)
	if err != nil {
		return nil, err
	}
	env.Put(sym, val)
	return val, nil
}

func builtinLambda(env *LEnv, args *LVal) (*LVal, error) {
	if args.Type != LCons {
		return nil, berrf("lambda", "arity-error", "formal parameter list expected")
	}
	formals := args.First
	for p := formals; p != Nil; p = p.Rest {
		if p.Type != LCons {
			return nil, berrf("lambda", "type-error", "parameter list is not a flat list")
		}
		if p.First.Type != LSymbol {
			return nil, berrf("lambda", "type-error", "parameter is not a symbol: %s", p.First)
		}
	}
	body := args.Rest
	if body == Nil {
		return nil, berrf("lambda", "arity-error", "function body cannot be empty")
	}
	if _, err := body.Len(); err != nil {
		return nil, berrf("lambda", "type-error", "function body is not a proper list")
	}
	return Lambda(formals, body, env), nil
}

func builtinIf(env *LEnv, args *LVal) (*LVal, error) {
	n, _ := args.Len()
	if n < 2 {
		return nil, berrf("if", "arity-error", "at least two arguments expected (got %d)", n)
	}
	cond, err := env.Eval(args.First)
	if err != nil {
		return nil, err
	}
	if cond != Nil {
		return env.Eval(args.Rest.First)
	}
	return env.progn(args.Rest.Rest)
}

func builtinEqNum(env *LEnv, args *LVal) (*LVal, error) {
	n, _ := args.Len()
	if n != 2 {
		return nil, berrf("=", "arity-error", "two arguments expected (got %d)", n)
	}
	vals, err := env.EvalList(args)
	if err != nil {
		return nil, err
	}
	x, y := vals.First, vals.Rest.First
	if x.Type != LInt || y.Type != LInt {
		return nil, berrf("=", "type-error", "argument is not an integer")
	}
	return Bool(x.Int == y.Int), nil
}

func builtinPrintln(env *LEnv, args *LVal) (*LVal, error) {
	n, _ := args.Len()
	if n != 1 {
		return nil, berrf("println", "arity-error", "one argument expected (got %d)", n)
	}
	val, err := env.Eval(args.First)
	if err != nil {
		return nil, err
	}
	_, err = fmt.Fprintln(env.Runtime.Stdout, val)
	if err != nil {
		return nil, err
	}
	return Nil, nil
}

func builtinExit(env *LEnv, args *LVal) (*LVal, error) {
	env.Runtime.Exit(0)
	// Only reached when the session was configured with an Exit function
	// that returns, as test environments are.
	return Nil, nil
}
