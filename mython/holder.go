package mython

// ObjectHolder is a handle that either wraps a live Object or represents
// None by being empty (spec.md §3). Two holders that wrap the same
// class instance observe each other's mutations through the instance's
// shared field table — Go's garbage collector is what makes that sharing
// safe without manual reference counting.
//
// Own and Share mirror the two constructors spec.md calls for: Own
// produces an independent holder around a freshly computed value;
// Share produces a borrowing holder used only to bind self for the
// duration of one method call. Share sets a borrowed flag that no code
// reads — both wrap the same Object representation and behave the
// same — but Share exists
// as its own constructor so call sites read the way the spec describes
// them, and so a future cycle-aware allocator has a single seam to hook.
type ObjectHolder struct {
	object   Object
	present  bool
	borrowed bool
}

// Own returns an owning holder around a freshly produced object.
func Own(obj Object) ObjectHolder {
	return ObjectHolder{object: obj, present: true}
}

// Share returns a borrowing holder over an instance already owned
// elsewhere — used exclusively to bind self inside method invocation.
func Share(inst *Instance) ObjectHolder {
	return ObjectHolder{object: instanceObject(inst), present: true, borrowed: true}
}

// None returns the empty holder.
func None() ObjectHolder {
	return ObjectHolder{}
}

// IsEmpty reports whether the holder represents None.
func (h ObjectHolder) IsEmpty() bool { return !h.present }

// Object returns the wrapped object. Calling it on an empty holder
// returns the zero Object; callers must check IsEmpty first.
func (h ObjectHolder) Object() Object { return h.object }

// TryNumber returns the numeric payload and true iff the holder wraps a
// Number.
func (h ObjectHolder) TryNumber() (int64, bool) {
	if h.present && h.object.kind == KindNumber {
		return h.object.num, true
	}
	return 0, false
}

// TryString returns the string payload and true iff the holder wraps a
// String.
func (h ObjectHolder) TryString() (string, bool) {
	if h.present && h.object.kind == KindString {
		return h.object.str, true
	}
	return "", false
}

// TryBool returns the bool payload and true iff the holder wraps a Bool.
func (h ObjectHolder) TryBool() (bool, bool) {
	if h.present && h.object.kind == KindBool {
		return h.object.b, true
	}
	return false, false
}

// TryClass returns the class payload and true iff the holder wraps a Class.
func (h ObjectHolder) TryClass() (*ClassDescriptor, bool) {
	if h.present && h.object.kind == KindClass {
		return h.object.cls, true
	}
	return nil, false
}

// TryInstance returns the instance payload and true iff the holder wraps
// a ClassInstance.
func (h ObjectHolder) TryInstance() (*Instance, bool) {
	if h.present && h.object.kind == KindInstance {
		return h.object.inst, true
	}
	return nil, false
}
