package lisp

import (
	"io"
	"os"
)

// MacroExpander is a hook invoked on every list form before evaluation.  An
// expander returns a replacement form, or its argument unchanged when no
// expansion applies.  There is no default macro system; when Runtime.Expander
// is nil every form passes through unexpanded.
type MacroExpander func(env *LEnv, form *LVal) (*LVal, error)

// Runtime holds the mutable state shared by all environment frames of one
// interpreter session.  Every session owns its Runtime, including its symbol
// Registry, so independent sessions can coexist in one process without
// interference.
type Runtime struct {
	Registry *Registry
	Reader   Reader
	Stack    *CallStack
	Expander MacroExpander
	Stdout   io.Writer
	Stderr   io.Writer
	Exit     func(status int)
}

// StandardRuntime returns a Runtime connected to the process's standard
// file descriptors and exit routine.
func StandardRuntime() *Runtime {
	return &Runtime{
		Registry: NewRegistry(),
		Stack:    &CallStack{MaxHeight: DefaultMaxStackHeight},
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Exit:     os.Exit,
	}
}
