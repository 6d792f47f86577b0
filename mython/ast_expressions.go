package mython

import "strconv"

// BinaryOp tags the arithmetic/comparison/logical operator a node
// evaluates.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
)

// Arithmetic is a +, -, *, or / expression. Add is polymorphic across
// Number, String (concatenation), and instance __add__ (spec.md §4.C);
// the other three operators work only on two Numbers.
type Arithmetic struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (a *Arithmetic) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	lh, err := a.Left.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	rh, err := a.Right.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}

	if a.Op == OpAdd {
		return evalAdd(lh, rh, ctx)
	}

	ln, ok := lh.TryNumber()
	if !ok {
		return None(), newRuntimeError("arithmetic operand is not a number")
	}
	rn, ok := rh.TryNumber()
	if !ok {
		return None(), newRuntimeError("arithmetic operand is not a number")
	}

	switch a.Op {
	case OpSub:
		return Own(numberObject(ln - rn)), nil
	case OpMul:
		return Own(numberObject(ln * rn)), nil
	case OpDiv:
		if rn == 0 {
			return None(), newRuntimeError("division by zero")
		}
		return Own(numberObject(ln / rn)), nil
	}
	return None(), newRuntimeError("unsupported arithmetic operator")
}

// Stringify is the str(x) builtin: it renders Arg's value as a String
// object, routing instance rendering through __str__ via a scratch
// sink rather than the program's real output stream (spec.md §4.C).
type Stringify struct {
	Arg Expression
}

func (s *Stringify) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	h, err := s.Arg.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	text, err := stringifyHolder(h, ctx)
	if err != nil {
		return None(), err
	}
	return Own(stringObject(text)), nil
}

// evalAdd implements Add's three-way polymorphism: Number+Number,
// String+String, and instance+anything dispatched to __add__.
func evalAdd(lh, rh ObjectHolder, ctx Context) (ObjectHolder, error) {
	if ln, ok := lh.TryNumber(); ok {
		if rn, ok := rh.TryNumber(); ok {
			return Own(numberObject(ln + rn)), nil
		}
		return None(), newRuntimeError("can't add number and non-number")
	}
	if ls, ok := lh.TryString(); ok {
		if rs, ok := rh.TryString(); ok {
			return Own(stringObject(ls + rs)), nil
		}
		return None(), newRuntimeError("can't add string and non-string")
	}
	if inst, ok := lh.TryInstance(); ok {
		m, ok := inst.Class.Method(dunderAdd)
		if !ok {
			return None(), newRuntimeError(inst.Class.Name + " has no " + dunderAdd + " method")
		}
		return callMethod(inst, m, []ObjectHolder{rh}, ctx)
	}
	return None(), newRuntimeError("unsupported operand type for +")
}

// LogicalOp is a short-circuiting `and`/`or` expression. Both operands
// are evaluated for their truthiness only; the result is always a
// freshly minted Bool, never one of the operands themselves.
type LogicalOp struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (l *LogicalOp) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	lh, err := l.Left.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	lt := isTruthy(lh)

	if l.Op == OpAnd && !lt {
		return Own(boolObject(false)), nil
	}
	if l.Op == OpOr && lt {
		return Own(boolObject(true)), nil
	}

	rh, err := l.Right.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	return Own(boolObject(isTruthy(rh))), nil
}

// Not negates a condition's truthiness.
type Not struct {
	Operand Expression
}

func (n *Not) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	h, err := n.Operand.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	return Own(boolObject(!isTruthy(h))), nil
}

// Comparison evaluates ==, !=, <, <=, >, or >= (spec.md §4.C). Equality
// is structural for Number/String/Bool and dispatches to __eq__ for
// instances; Class values and instances without __eq__ are a fatal
// error (see valuesEqual).
// Ordering compares Number/String natively and dispatches to __lt__
// for instances; there is no native ordering for Bool or Class.
type Comparison struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (c *Comparison) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	lh, err := c.Left.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	rh, err := c.Right.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}

	switch c.Op {
	case OpEq:
		eq, err := valuesEqual(lh, rh, ctx)
		if err != nil {
			return None(), err
		}
		return Own(boolObject(eq)), nil
	case OpNotEq:
		eq, err := valuesEqual(lh, rh, ctx)
		if err != nil {
			return None(), err
		}
		return Own(boolObject(!eq)), nil
	}

	less, err := valueLess(lh, rh, ctx)
	if err != nil {
		return None(), err
	}
	switch c.Op {
	case OpLess:
		return Own(boolObject(less)), nil
	case OpGreaterEq:
		return Own(boolObject(!less)), nil
	}

	eq, err := valuesEqual(lh, rh, ctx)
	if err != nil {
		return None(), err
	}
	switch c.Op {
	case OpLessEq:
		return Own(boolObject(less || eq)), nil
	case OpGreater:
		return Own(boolObject(!less && !eq)), nil
	}
	return None(), newRuntimeError("unsupported comparison operator")
}

// valuesEqual implements spec.md §4.C's Equal rules in order: two empty
// holders are equal; same built-in kind compares by value; an instance
// with __eq__ of arity 1 dispatches to it; anything else (mixed kinds,
// Class/Class, an instance without __eq__) is a fatal runtime error,
// matching the original's Equal() throwing "Cannot compare objects for
// equality" in exactly these cases.
func valuesEqual(lh, rh ObjectHolder, ctx Context) (bool, error) {
	if lh.IsEmpty() && rh.IsEmpty() {
		return true, nil
	}
	if lh.IsEmpty() || rh.IsEmpty() {
		return false, newRuntimeError("cannot compare objects for equality")
	}
	lo, ro := lh.Object(), rh.Object()
	if lo.Kind() != ro.Kind() {
		return false, newRuntimeError("cannot compare objects for equality")
	}
	switch lo.Kind() {
	case KindNumber:
		return lo.Number() == ro.Number(), nil
	case KindString:
		return lo.Str() == ro.Str(), nil
	case KindBool:
		return lo.Bool() == ro.Bool(), nil
	case KindInstance:
		inst := lo.Instance()
		if m, ok := inst.Class.Method(dunderEq); ok && len(m.Params) == 1 {
			res, err := callMethod(inst, m, []ObjectHolder{rh}, ctx)
			if err != nil {
				return false, err
			}
			return isTruthy(res), nil
		}
	}
	return false, newRuntimeError("cannot compare objects for equality")
}

func valueLess(lh, rh ObjectHolder, ctx Context) (bool, error) {
	if ln, ok := lh.TryNumber(); ok {
		rn, ok := rh.TryNumber()
		if !ok {
			return false, newRuntimeError("can't compare number and non-number")
		}
		return ln < rn, nil
	}
	if ls, ok := lh.TryString(); ok {
		rs, ok := rh.TryString()
		if !ok {
			return false, newRuntimeError("can't compare string and non-string")
		}
		return ls < rs, nil
	}
	if inst, ok := lh.TryInstance(); ok {
		m, ok := inst.Class.Method(dunderLt)
		if !ok {
			return false, newRuntimeError(inst.Class.Name + " has no " + dunderLt + " method")
		}
		res, err := callMethod(inst, m, []ObjectHolder{rh}, ctx)
		if err != nil {
			return false, err
		}
		return isTruthy(res), nil
	}
	return false, newRuntimeError("unsupported operand type for comparison")
}

// NewInstance constructs a class instance: it evaluates ClassExpr to a
// Class value, allocates a fresh Instance, and dispatches __init__ with
// Args if the class defines one of matching arity (spec.md §4.C, §9). A
// class whose __init__ takes a different number of arguments than Args
// is constructed uninitialized rather than raising an error, mirroring
// the original's HasMethod(INIT_METHOD, args_.size()) gate.
type NewInstance struct {
	ClassExpr Expression
	Args      []Expression
}

func (n *NewInstance) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	ch, err := n.ClassExpr.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	cls, ok := ch.TryClass()
	if !ok {
		return None(), newRuntimeError("can't instantiate a non-class value")
	}

	inst := newInstance(cls)
	args, err := evalArgs(n.Args, scope, ctx)
	if err != nil {
		return None(), err
	}

	if m, ok := cls.Method(dunderInit); ok && len(m.Params) == len(args) {
		if _, err := callMethod(inst, m, args, ctx); err != nil {
			return None(), err
		}
	}
	return Own(instanceObject(inst)), nil
}

// MethodCall evaluates Receiver and dispatches MethodName against its
// vtable with the evaluated Args. Calling on a None receiver is a
// RuntimeError here rather than the silent None the source returned
// (spec.md §9's recommended fix).
type MethodCall struct {
	Receiver   Expression
	MethodName string
	Args       []Expression
}

func (c *MethodCall) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	rh, err := c.Receiver.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	if rh.IsEmpty() {
		return None(), newRuntimeError("can't call method " + c.MethodName + " on None")
	}
	inst, ok := rh.TryInstance()
	if !ok {
		return None(), newRuntimeError("can't call method " + c.MethodName + " on a non-instance value")
	}
	m, ok := inst.Class.Method(c.MethodName)
	if !ok {
		return None(), newRuntimeError(inst.Class.Name + " has no method " + c.MethodName)
	}
	args, err := evalArgs(c.Args, scope, ctx)
	if err != nil {
		return None(), err
	}
	return callMethod(inst, m, args, ctx)
}

func evalArgs(exprs []Expression, scope *Scope, ctx Context) ([]ObjectHolder, error) {
	args := make([]ObjectHolder, len(exprs))
	for i, e := range exprs {
		h, err := e.Execute(scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = h
	}
	return args, nil
}

// callMethod runs m against inst: it builds a fresh scope binding self
// and each formal parameter, then executes the body. A param-count
// mismatch is a RuntimeError; Mython has no default-argument support
// (spec.md Non-goals).
func callMethod(inst *Instance, m *Method, args []ObjectHolder, ctx Context) (ObjectHolder, error) {
	if len(args) != len(m.Params) {
		return None(), newRuntimeError(m.Name + " expects " + strconv.Itoa(len(m.Params)) + " arguments, got " + strconv.Itoa(len(args)))
	}
	scope := NewScope()
	scope.Set("self", Share(inst))
	for i, p := range m.Params {
		scope.Set(p, args[i])
	}
	body, ok := m.Body.(*MethodBody)
	if !ok {
		body = &MethodBody{Body: m.Body}
	}
	return body.Execute(scope, ctx)
}
