package mython

// Method is a class's named, callable body: a formal parameter list and
// a statement to execute. It is immutable once a ClassDescriptor is built.
type Method struct {
	Name    string
	Params  []string
	Body    Statement
}

// ClassDescriptor is a Mython class: a name, its own methods, an
// optional parent, and a vtable resolving method names to the Method
// that actually runs (spec.md §3).
//
// spec.md §9's open question on multi-level inheritance is resolved
// here in favor of the "correct design" it names: the child's vtable is
// seeded from the parent's full *composed* vtable (so a grandparent
// method the parent never overrode is still visible), then overwritten
// by the child's own methods.
type ClassDescriptor struct {
	Name    string
	Own     []Method
	Parent  *ClassDescriptor
	vtable  map[string]*Method
}

// NewClassDescriptor builds the vtable for a class with the given own
// methods and optional parent, and returns it.
func NewClassDescriptor(name string, own []Method, parent *ClassDescriptor) *ClassDescriptor {
	c := &ClassDescriptor{Name: name, Own: own, Parent: parent}
	c.vtable = make(map[string]*Method)
	if parent != nil {
		for name, m := range parent.vtable {
			c.vtable[name] = m
		}
	}
	for i := range c.Own {
		c.vtable[c.Own[i].Name] = &c.Own[i]
	}
	return c
}

// Method looks up name in the class's vtable. Lookup is deterministic:
// the same Method pointer is returned across invocations for a fixed
// hierarchy (spec.md §8 invariant 6).
func (c *ClassDescriptor) Method(name string) (*Method, bool) {
	m, ok := c.vtable[name]
	return m, ok
}

// String renders the class the way spec.md §4.C requires: "Class <name>".
func (c *ClassDescriptor) String() string {
	return "Class " + c.Name
}

// Instance is a class value paired with a per-object field table,
// created lazily by assignment to self.name (spec.md §3).
type Instance struct {
	Class  *ClassDescriptor
	Fields *Scope
}

// newInstance allocates a fresh instance of cls with an empty field
// table. spec.md §9's open question on instance lifetime is resolved
// by this always allocating fresh: every evaluation of a constructor
// call produces its own *Instance, so holders over it never alias an
// unrelated evaluation the way the source's single stored field did.
func newInstance(cls *ClassDescriptor) *Instance {
	return &Instance{Class: cls, Fields: NewScope()}
}
