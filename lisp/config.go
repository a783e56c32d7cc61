package lisp

import "io"

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes println write to w instead of the
// default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging
// output to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stderr = w
		return nil
	}
}

// WithExitFunc returns a Config that makes the exit builtin call fn instead
// of os.Exit.
func WithExitFunc(fn func(status int)) Config {
	return func(env *LEnv) error {
		env.Runtime.Exit = fn
		return nil
	}
}

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the call stack height to exceed n.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) error {
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}

// WithMacroExpander returns a Config that installs fn as the session's
// macro-expansion hook.
func WithMacroExpander(fn MacroExpander) Config {
	return func(env *LEnv) error {
		env.Runtime.Expander = fn
		return nil
	}
}

// InitializeUserEnv installs the builtin primitives and the constant t into
// env and applies the given configs.  It must be called once on a root
// environment before evaluating expressions.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	env.AddBuiltins()
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}
