package mython

// Statement is an executable AST node that produces no value of its
// own interest to its caller, but may still return a holder — Return
// uses that channel to carry its operand out through the enclosing
// MethodBody (spec.md §4.A/§5).
type Statement interface {
	Execute(scope *Scope, ctx Context) (ObjectHolder, error)
}

// Expression is an executable AST node that yields a value. Every
// expression is also a Statement: evaluating one at statement position
// (a bare expression line) discards the result, same as the grammar
// allows.
type Expression interface {
	Statement
}

// returnSignal is the non-local control-flow value Return produces. It
// is caught only by the MethodBody that directly wraps the return
// statement's method; anything else propagates it as an ordinary error.
type returnSignal struct {
	value ObjectHolder
}

func (s *returnSignal) Error() string { return "return outside method body" }

// NumericConst is a literal integer.
type NumericConst struct {
	Value int64
}

func (n *NumericConst) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	return Own(numberObject(n.Value)), nil
}

// StringConst is a literal string.
type StringConst struct {
	Value string
}

func (s *StringConst) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	return Own(stringObject(s.Value)), nil
}

// BoolConst is a literal True/False.
type BoolConst struct {
	Value bool
}

func (b *BoolConst) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	return Own(boolObject(b.Value)), nil
}

// NoneConst is the None literal: always the empty holder.
type NoneConst struct{}

func (n *NoneConst) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	return None(), nil
}

// VariableValue looks up a dotted identifier chain (x, or x.y.z) in
// scope: the head name resolves against scope, then each following
// name walks one level into the current value's fields, which must be
// a class instance (spec.md §4.C). A missing name anywhere along the
// walk reports the original's "invalid argument name" message; stepping
// into a value that is not an instance reports its own message.
type VariableValue struct {
	Names []string
}

func (v *VariableValue) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	h, ok := scope.Get(v.Names[0])
	if !ok {
		return None(), newRuntimeError("invalid argument name in VariableValue::Execute(): " + v.Names[0])
	}
	for _, field := range v.Names[1:] {
		inst, ok := h.TryInstance()
		if !ok {
			return None(), newRuntimeError("can't access field " + field + " of a non-instance value")
		}
		h, ok = inst.Fields.Get(field)
		if !ok {
			return None(), newRuntimeError("invalid argument name in VariableValue::Execute(): " + field)
		}
	}
	return h, nil
}
