package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxStackHeight is the call stack height limit used by environments
// that were not configured with WithMaximumStackHeight.  Evaluation is not
// tail recursive so every nested function call consumes a frame; the limit
// bounds user-level recursion depth.
const DefaultMaxStackHeight = 10000

// CallStack is a function call stack.
type CallStack struct {
	Frames    []CallFrame
	MaxHeight int
}

// CallFrame is one frame in the CallStack.
type CallFrame struct {
	Name string
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push adds a frame for the named function to the top of the stack.  Push
// returns an error if the stack has reached its maximum height.
func (s *CallStack) Push(name string) error {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return ErrorConditionf("stack-overflow", "call stack exceeds %d frames", s.MaxHeight)
	}
	s.Frames = append(s.Frames, CallFrame{Name: name})
	return nil
}

// Pop removes the top CallFrame from the stack and returns it.  Pop panics
// if the stack is empty.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// Copy creates a copy of the current stack so that it can be attached to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// DebugPrint prints s.
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	for i := len(s.Frames) - 1; i >= 0; i-- {
		name := s.Frames[i].Name
		if name == "" {
			name = "<anonymous function>"
		}
		_n, err := fmt.Fprintf(w, "  height %d: %s\n", i, name)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
