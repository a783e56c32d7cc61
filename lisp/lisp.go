package lisp

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LInt
	LSymbol
	LCons
	LPrimitive
	LClosure
	LNil
	LTrue
	LDot
	LParen
)

var ltypeStrings = []string{
	LInvalid:   "INVALID",
	LInt:       "int",
	LSymbol:    "symbol",
	LCons:      "cons",
	LPrimitive: "primitive",
	LClosure:   "function",
	LNil:       "nil",
	LTrue:      "true",
	LDot:       "dot",
	LParen:     "close-paren",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LBuiltin is a native function implementing a lisp primitive.  A builtin
// receives its argument list unevaluated and decides internally whether and
// how to evaluate each operand, which is what allows builtins to implement
// special forms like quote and if.
type LBuiltin func(env *LEnv, args *LVal) (*LVal, error)

// LBuiltinDef is a named builtin function definition.
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) (*LVal, error)
}

// LVal is a lisp value.  The fields used depend on Type.
type LVal struct {
	Type LType

	Int int    // LInt
	Str string // LSymbol name, LPrimitive display name

	// First and Rest form a cons cell.  A chain of cells terminated by Nil
	// is a proper list; a chain terminated by any other value is dotted.
	First *LVal
	Rest  *LVal

	// Fields used by function values
	Builtin LBuiltin // LPrimitive
	Formals *LVal    // LClosure parameter list
	Body    *LVal    // LClosure body forms
	Env     *LEnv    // LClosure captured environment
}

// Singleton values compared by identity.  Dot and CloseParen are sentinels
// returned by the parser while reading a list and must never appear inside a
// cons cell or reach the evaluator.
var (
	Nil        = &LVal{Type: LNil}
	True       = &LVal{Type: LTrue}
	Dot        = &LVal{Type: LDot}
	CloseParen = &LVal{Type: LParen}
)

// Int returns an LVal representing the integer x.
func Int(x int) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Cons returns a cell with the given first and rest values.
func Cons(first, rest *LVal) *LVal {
	return &LVal{
		Type:  LCons,
		First: first,
		Rest:  rest,
	}
}

// symbol returns a fresh symbol with the given name.  Symbols are only
// created through a Registry so that identity equality can be used to
// compare them anywhere in the system.
func symbol(name string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  name,
	}
}

// Primitive returns an LVal representing the builtin function fn.
func Primitive(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LPrimitive,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns a function value with the given formal parameters and body
// which captures env by reference.
func Lambda(formals *LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LClosure,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// Bool returns True if b is true and Nil otherwise.
func Bool(b bool) *LVal {
	if b {
		return True
	}
	return Nil
}

// List returns a proper list containing the given values in order.
func List(vs ...*LVal) *LVal {
	list := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		list = Cons(vs[i], list)
	}
	return list
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v == Nil
}

// IsList returns true if v is a list structure, either a cons cell or the
// empty list.
func (v *LVal) IsList() bool {
	return v == Nil || v.Type == LCons
}

// IsFun returns true if v can appear at the head of an evaluated expression.
func (v *LVal) IsFun() bool {
	return v.Type == LPrimitive || v.Type == LClosure
}

// Len returns the number of elements in the proper list v.  Len returns an
// error if v is a dotted list or not a list at all.
func (v *LVal) Len() (int, error) {
	n := 0
	for {
		if v == Nil {
			return n, nil
		}
		if v.Type != LCons {
			return n, ErrorConditionf("type-error", "not a proper list: %v", v.Type)
		}
		v = v.Rest
		n++
	}
}
