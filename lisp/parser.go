package lisp

import "io"

// Reader abstracts a parser implementation so that it may be implemented in
// a separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.  Symbols are interned into reg so the produced values can
	// be evaluated by the session owning reg.
	Read(name string, r io.Reader, reg *Registry) ([]*LVal, error)
}
