package lisp

import "sync"

// Registry interns symbols for one interpreter session.  Interning
// guarantees that two symbols with equal text are the same *LVal, so
// identity comparison is sufficient and correct for symbols everywhere in
// the system.  Each Runtime owns its own Registry so that independent
// sessions never share symbol identities.
type Registry struct {
	mu   sync.RWMutex
	syms map[string]*LVal
}

// NewRegistry initializes and returns a new Registry.
func NewRegistry() *Registry {
	return &Registry{
		syms: make(map[string]*LVal),
	}
}

// Intern returns the canonical symbol with the given name, creating and
// registering it if the name has not been seen before.
func (r *Registry) Intern(name string) *LVal {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sym, ok := r.syms[name]; ok {
		return sym
	}
	sym := symbol(name)
	r.syms[name] = sym
	return sym
}

// Peek retrieves the symbol with the given name without interning it.  Peek
// returns true iff the name has been interned into the registry.
func (r *Registry) Peek(name string) (*LVal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sym, ok := r.syms[name]
	return sym, ok
}

// Len returns the number of symbols interned in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.syms)
}
