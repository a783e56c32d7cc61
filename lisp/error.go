package lisp

import "fmt"

// Error is the error type produced by the reader and the evaluator.  The
// Condition field holds a short machine-checkable tag classifying the error
// while Message holds human readable detail.
type Error struct {
	Condition string
	Message   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Condition == "" {
		return e.Message
	}
	return e.Condition + ": " + e.Message
}

// Errorf returns an error with a formatted message and no condition.
func Errorf(format string, v ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, v...)}
}

// ErrorConditionf returns an error with the given condition and a formatted
// message.
func ErrorConditionf(condition string, format string, v ...interface{}) error {
	return &Error{
		Condition: condition,
		Message:   fmt.Sprintf(format, v...),
	}
}

// Condition returns the condition tag of err if err is an Error and the
// empty string otherwise.
func Condition(err error) string {
	if lerr, ok := err.(*Error); ok {
		return lerr.Condition
	}
	return ""
}
