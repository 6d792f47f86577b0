package mython

import (
	"fmt"
	"strconv"
)

// Assignment binds the result of evaluating Value to Name in scope
// (spec.md §4.A). Mython has no declaration step: assigning to an
// unbound name creates it.
type Assignment struct {
	Name  string
	Value Expression
}

func (a *Assignment) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	h, err := a.Value.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	scope.Set(a.Name, h)
	return None(), nil
}

// FieldAssignment evaluates Object (which must resolve to an instance)
// and Value, then binds Value into the instance's field table under
// Field. This is the only way a field comes into existence.
type FieldAssignment struct {
	Object Expression
	Field  string
	Value  Expression
}

func (a *FieldAssignment) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	oh, err := a.Object.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	if oh.IsEmpty() {
		return None(), nil
	}
	inst, ok := oh.TryInstance()
	if !ok {
		return None(), newRuntimeError("can't assign field " + a.Field + " on a non-instance value")
	}
	vh, err := a.Value.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	inst.Fields.Set(a.Field, vh)
	return None(), nil
}

// Print evaluates a list of expressions, writes their Stringify
// renderings space-separated, and terminates the line with a newline
// (spec.md §4.A). An empty Args list still prints the newline.
type Print struct {
	Args []Expression
}

// NewPrintVariable builds a Print statement for a single bare variable
// reference, the shorthand the original's Print::Variable constructor
// offers alongside the general expression-list form.
func NewPrintVariable(name string) *Print {
	return &Print{Args: []Expression{&VariableValue{Names: []string{name}}}}
}

func (p *Print) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	for i, arg := range p.Args {
		if i > 0 {
			if _, err := ctx.Write([]byte(" ")); err != nil {
				return None(), err
			}
		}
		h, err := arg.Execute(scope, ctx)
		if err != nil {
			return None(), err
		}
		s, err := stringifyHolder(h, ctx)
		if err != nil {
			return None(), err
		}
		if _, err := ctx.Write([]byte(s)); err != nil {
			return None(), err
		}
	}
	_, err := ctx.Write([]byte("\n"))
	return None(), err
}

// Compound is a sequence of statements run one after another. It
// stands for both a program body and a block under if/else/def.
type Compound struct {
	Statements []Statement
}

func (c *Compound) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	for _, s := range c.Statements {
		if _, err := s.Execute(scope, ctx); err != nil {
			return None(), err
		}
	}
	return None(), nil
}

// Return evaluates Value (if present) and unwinds to the nearest
// enclosing MethodBody via returnSignal, Mython's only non-local
// control-flow construct.
type Return struct {
	Value Expression
}

func (r *Return) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	if r.Value == nil {
		return None(), &returnSignal{value: None()}
	}
	h, err := r.Value.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	return None(), &returnSignal{value: h}
}

// MethodBody wraps a method's statement list and is the sole catcher
// of returnSignal: a method that runs off the end without hitting
// Return yields None, matching the original's implicit-None-return
// behavior.
type MethodBody struct {
	Body Statement
}

func (m *MethodBody) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	_, err := m.Body.Execute(scope, ctx)
	if err == nil {
		return None(), nil
	}
	if sig, ok := err.(*returnSignal); ok {
		return sig.value, nil
	}
	return None(), err
}

// IfElse runs Then when Cond is truthy, Else otherwise. Else may be
// nil (bare if). spec.md's Non-goals exclude elif; an else-if chain is
// expressed as a single-statement Compound wrapping a nested IfElse.
type IfElse struct {
	Cond Expression
	Then Statement
	Else Statement
}

func (s *IfElse) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	h, err := s.Cond.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	if isTruthy(h) {
		return s.Then.Execute(scope, ctx)
	}
	if s.Else != nil {
		return s.Else.Execute(scope, ctx)
	}
	return None(), nil
}

// isTruthy reports whether a holder counts as true in a condition:
// None and false are falsy, a zero Number is falsy, an empty string is
// falsy, everything else (including any class instance) is truthy.
func isTruthy(h ObjectHolder) bool {
	if h.IsEmpty() {
		return false
	}
	switch h.Object().Kind() {
	case KindBool:
		return h.Object().Bool()
	case KindNumber:
		return h.Object().Number() != 0
	case KindString:
		return h.Object().Str() != ""
	default:
		return true
	}
}

// ClassDefinition builds a ClassDescriptor from a name, an optional
// parent lookup, and a list of method declarations, then binds it to
// Name in scope as a first-class Class value (spec.md §4.A, §3).
type ClassDefinition struct {
	Name       string
	ParentName string
	HasParent  bool
	Methods    []MethodDecl
}

// MethodDecl is a parsed method signature paired with its body,
// carried separately from the runtime Method until class definition
// executes and builds the vtable.
type MethodDecl struct {
	Name   string
	Params []string
	Body   Statement
}

func (c *ClassDefinition) Execute(scope *Scope, ctx Context) (ObjectHolder, error) {
	var parent *ClassDescriptor
	if c.HasParent {
		ph, ok := scope.Get(c.ParentName)
		if !ok {
			return None(), newRuntimeError("unknown class " + c.ParentName)
		}
		parent, ok = ph.TryClass()
		if !ok {
			return None(), newRuntimeError(c.ParentName + " is not a class")
		}
	}

	methods := make([]Method, len(c.Methods))
	for i, md := range c.Methods {
		methods[i] = Method{Name: md.Name, Params: md.Params, Body: md.Body}
	}

	cls := NewClassDescriptor(c.Name, methods, parent)
	scope.Set(c.Name, Own(classObject(cls)))
	return None(), nil
}

// stringifyHolder renders a holder the way Print and str-context
// coercion need: None -> "None", Bool -> "True"/"False", Number ->
// decimal, String -> itself, Class -> "Class <name>", Instance ->
// __str__'s Print output when defined with arity 0, otherwise a
// "<name object at 0x...>" address token.
func stringifyHolder(h ObjectHolder, ctx Context) (string, error) {
	if h.IsEmpty() {
		return "None", nil
	}
	switch h.Object().Kind() {
	case KindNumber:
		return strconv.FormatInt(h.Object().Number(), 10), nil
	case KindString:
		return h.Object().Str(), nil
	case KindBool:
		if h.Object().Bool() {
			return "True", nil
		}
		return "False", nil
	case KindClass:
		return h.Object().Class().String(), nil
	case KindInstance:
		return stringifyInstance(h.Object().Instance(), ctx)
	}
	return "", nil
}

// stringifyInstance dispatches to __str__ when the instance's class
// defines one with arity 0, capturing its Print output via a scratch
// context; otherwise it falls back to an opaque per-instance address
// token, the closest Go equivalent to the original's unspecified object
// address.
func stringifyInstance(inst *Instance, ctx Context) (string, error) {
	m, ok := inst.Class.Method(dunderStr)
	if !ok || len(m.Params) != 0 {
		return fmt.Sprintf("<%s object at %p>", inst.Class.Name, inst), nil
	}
	scratch := newScratchContext()
	if _, err := callMethod(inst, m, nil, scratch); err != nil {
		return "", err
	}
	out := scratch.String()
	for len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	return out, nil
}
