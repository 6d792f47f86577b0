package mython

// Scope is an unordered name-to-value binding table (spec.md's
// "Closure"): one is created at program start, one fresh per method
// invocation, and one as the field table of each instance. Lookup does
// not chain to an enclosing scope — Mython has no lexical nesting beyond
// the single scope a method body or the program top level runs in, so
// unlike the teacher's Env this carries no parent link.
type Scope struct {
	values map[string]ObjectHolder
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]ObjectHolder)}
}

// Get looks up name, returning ok=false if it is unbound.
func (s *Scope) Get(name string) (ObjectHolder, bool) {
	h, ok := s.values[name]
	return h, ok
}

// Set binds name to h, overwriting any existing binding
// (last-write-wins, per spec.md §3).
func (s *Scope) Set(name string, h ObjectHolder) {
	s.values[name] = h
}
