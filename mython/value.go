package mython

// ObjectKind tags the dynamic variant stored in an Object.
type ObjectKind int

const (
	KindNumber ObjectKind = iota
	KindString
	KindBool
	KindClass
	KindInstance
)

// Object is Mython's dynamic value: a closed tagged union of Number,
// String, Bool, Class, and ClassInstance. There is no variant for None —
// None is represented by an empty ObjectHolder (spec.md §3).
type Object struct {
	kind ObjectKind
	num  int64
	str  string
	b    bool
	cls  *ClassDescriptor
	inst *Instance
}

func numberObject(v int64) Object       { return Object{kind: KindNumber, num: v} }
func stringObject(v string) Object      { return Object{kind: KindString, str: v} }
func boolObject(v bool) Object          { return Object{kind: KindBool, b: v} }
func classObject(c *ClassDescriptor) Object { return Object{kind: KindClass, cls: c} }
func instanceObject(i *Instance) Object { return Object{kind: KindInstance, inst: i} }

// Kind reports the dynamic variant held by o.
func (o Object) Kind() ObjectKind { return o.kind }

// Number returns the numeric payload; valid only when Kind() == KindNumber.
func (o Object) Number() int64 { return o.num }

// Str returns the string payload; valid only when Kind() == KindString.
func (o Object) Str() string { return o.str }

// Bool returns the bool payload; valid only when Kind() == KindBool.
func (o Object) Bool() bool { return o.b }

// Class returns the class payload; valid only when Kind() == KindClass.
func (o Object) Class() *ClassDescriptor { return o.cls }

// Instance returns the instance payload; valid only when Kind() == KindInstance.
func (o Object) Instance() *Instance { return o.inst }
