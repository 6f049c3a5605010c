// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ujson

// Equal reports whether a and b have the same structure and contents. Member
// names and order are significant. Source lines and the seen state of object
// members are ignored.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.value == y.value
	case *Int:
		y, ok := b.(*Int)
		return ok && x.value == y.value
	case *Float:
		y, ok := b.(*Float)
		return ok && x.value == y.value
	case *String:
		y, ok := b.(*String)
		return ok && x.value == y.value
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.elems) != len(y.elems) {
			return false
		}
		for i, elt := range x.elems {
			if !Equal(elt, y.elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || len(x.members) != len(y.members) {
			return false
		}
		for i, m := range x.members {
			n := &y.members[i]
			if m.name != n.name || m.dup != n.dup || !Equal(m.value, n.value) {
				return false
			}
		}
		return true
	}
	return false
}
