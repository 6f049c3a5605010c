// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ujson

import (
	"fmt"
	"math"
)

// The get* functions narrow a value and convert it to a native type,
// reporting an error if the value has the wrong type or is out of range.

func getBool(v Value) (bool, error) {
	b, err := v.AsBool()
	if err != nil {
		return false, err
	}
	return b.Get(), nil
}

func getI64In(lo, hi int64) func(Value) (int64, error) {
	return func(v Value) (int64, error) {
		z, err := v.AsInt()
		if err != nil {
			return 0, err
		}
		return z.GetIn(lo, hi)
	}
}

func getI32In(lo, hi int32) func(Value) (int32, error) {
	return func(v Value) (int32, error) {
		z, err := v.AsInt()
		if err != nil {
			return 0, err
		}
		return z.I32In(lo, hi)
	}
}

func getU32In(lo, hi uint32) func(Value) (uint32, error) {
	return func(v Value) (uint32, error) {
		z, err := v.AsInt()
		if err != nil {
			return 0, err
		}
		return z.U32In(lo, hi)
	}
}

func getF64In(lo, hi float64) func(Value) (float64, error) {
	return func(v Value) (float64, error) {
		f, err := v.AsFloat()
		if err != nil {
			return 0, err
		}
		return f.GetIn(lo, hi)
	}
}

func getStr(v Value) (string, error) {
	s, err := v.AsString()
	if err != nil {
		return "", err
	}
	return s.Get(), nil
}

func getEnum[T any](names []string, values []T) func(Value) (T, error) {
	checkEnum(names, values)
	return func(v Value) (T, error) {
		s, err := v.AsString()
		if err != nil {
			var zero T
			return zero, err
		}
		return Enum(s, names, values)
	}
}

func getArr(v Value) (*Array, error) { return v.AsArray() }
func getObj(v Value) (*Object, error) { return v.AsObject() }

var (
	allI64 = getI64In(math.MinInt64, math.MaxInt64)
	allI32 = getI32In(math.MinInt32, math.MaxInt32)
	allU32 = getU32In(0, math.MaxUint32)
	allF64 = getF64In(math.Inf(-1), math.Inf(1))
)

// Array element accessors.

// GetBool returns element i of a as a Boolean.
func (a *Array) GetBool(i int) (bool, error) { return getBool(a.Element(i)) }

// GetI32 returns element i of a as an int32.
func (a *Array) GetI32(i int) (int32, error) { return allI32(a.Element(i)) }

// GetI32In returns element i of a as an int32 in the closed interval [lo, hi].
func (a *Array) GetI32In(i int, lo, hi int32) (int32, error) {
	return getI32In(lo, hi)(a.Element(i))
}

// GetU32 returns element i of a as a uint32.
func (a *Array) GetU32(i int) (uint32, error) { return allU32(a.Element(i)) }

// GetU32In returns element i of a as a uint32 in the closed interval [lo, hi].
func (a *Array) GetU32In(i int, lo, hi uint32) (uint32, error) {
	return getU32In(lo, hi)(a.Element(i))
}

// GetI64 returns element i of a as an int64.
func (a *Array) GetI64(i int) (int64, error) { return allI64(a.Element(i)) }

// GetI64In returns element i of a as an int64 in the closed interval [lo, hi].
func (a *Array) GetI64In(i int, lo, hi int64) (int64, error) {
	return getI64In(lo, hi)(a.Element(i))
}

// GetF64 returns element i of a as a float64. An integer element is
// converted.
func (a *Array) GetF64(i int) (float64, error) { return allF64(a.Element(i)) }

// GetF64In returns element i of a as a float64 in the closed interval [lo, hi].
func (a *Array) GetF64In(i int, lo, hi float64) (float64, error) {
	return getF64In(lo, hi)(a.Element(i))
}

// GetStr returns element i of a as a string.
func (a *Array) GetStr(i int) (string, error) { return getStr(a.Element(i)) }

// GetArr returns element i of a as an array.
func (a *Array) GetArr(i int) (*Array, error) { return getArr(a.Element(i)) }

// GetObj returns element i of a as an object.
func (a *Array) GetObj(i int) (*Object, error) { return getObj(a.Element(i)) }

// Object member lookup.

// FindIndex returns the offset of the first member of o with the given name,
// or -1 if there is none.
func (o *Object) FindIndex(name string) int {
	if i, ok := o.index[name]; ok {
		return i
	}
	return -1
}

// MemberIndex returns the offset of the first member of o with the given
// name, or reports ErrMemberNotFound if there is none.
func (o *Object) MemberIndex(name string) (int, error) {
	if i := o.FindIndex(name); i >= 0 {
		return i, nil
	}
	return -1, o.notFound(name)
}

// MemberName returns the name of the member of o at offset i. The name of a
// duplicate member is empty. It panics if i is out of range.
func (o *Object) MemberName(i int) string {
	o.checkIndex(i)
	return o.members[i].label()
}

// Element returns the value of the member of o at offset i, and marks the
// member as seen. It panics if i is out of range.
func (o *Object) Element(i int) Value {
	o.checkIndex(i)
	o.members[i].seen = true
	return o.members[i].value
}

// FindMember returns the value of the first member of o with the given name,
// and marks the member as seen. It returns nil if there is no such member.
func (o *Object) FindMember(name string) Value {
	if i := o.FindIndex(name); i >= 0 {
		return o.Element(i)
	}
	return nil
}

// Member returns the value of the first member of o with the given name, and
// marks the member as seen. It reports ErrMemberNotFound if there is none.
func (o *Object) Member(name string) (Value, error) {
	if v := o.FindMember(name); v != nil {
		return v, nil
	}
	return nil, o.notFound(name)
}

func (o *Object) notFound(name string) error {
	names := make([]string, len(o.members))
	for i := range o.members {
		names[i] = o.members[i].label()
	}
	return o.errorf(ErrMemberNotFound, "no member %q%s", name, hint(name, names))
}

// required extracts the named member of o, which must exist.
func required[T any](o *Object, name string, get func(Value) (T, error)) (T, error) {
	i, err := o.MemberIndex(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return extract(o, i, get)
}

// optional extracts the named member of o, or returns def if it does not
// exist. The default is not subject to range checks.
func optional[T any](o *Object, name string, def T, get func(Value) (T, error)) (T, error) {
	i := o.FindIndex(name)
	if i < 0 {
		return def, nil
	}
	return extract(o, i, get)
}

// extract converts the member of o at offset i, and marks the member as seen
// only if the conversion succeeds.
func extract[T any](o *Object, i int, get func(Value) (T, error)) (T, error) {
	v, err := get(o.members[i].value)
	if err == nil {
		o.members[i].seen = true
	}
	return v, err
}

// Object member accessors. Each XOr variant returns its default if the member
// does not exist, but still reports an error if the member exists with the
// wrong type or out of range. A member is marked as seen only when it is
// successfully converted.

// GetBool returns the named member of o as a Boolean.
func (o *Object) GetBool(name string) (bool, error) { return required(o, name, getBool) }

// GetBoolOr returns the named member of o as a Boolean, or def.
func (o *Object) GetBoolOr(name string, def bool) (bool, error) {
	return optional(o, name, def, getBool)
}

// GetI32 returns the named member of o as an int32.
func (o *Object) GetI32(name string) (int32, error) { return required(o, name, allI32) }

// GetI32In returns the named member of o as an int32 in [lo, hi].
func (o *Object) GetI32In(name string, lo, hi int32) (int32, error) {
	return required(o, name, getI32In(lo, hi))
}

// GetI32Or returns the named member of o as an int32, or def.
func (o *Object) GetI32Or(name string, def int32) (int32, error) {
	return optional(o, name, def, allI32)
}

// GetI32InOr returns the named member of o as an int32 in [lo, hi], or def.
func (o *Object) GetI32InOr(name string, lo, hi, def int32) (int32, error) {
	return optional(o, name, def, getI32In(lo, hi))
}

// GetU32 returns the named member of o as a uint32.
func (o *Object) GetU32(name string) (uint32, error) { return required(o, name, allU32) }

// GetU32In returns the named member of o as a uint32 in [lo, hi].
func (o *Object) GetU32In(name string, lo, hi uint32) (uint32, error) {
	return required(o, name, getU32In(lo, hi))
}

// GetU32Or returns the named member of o as a uint32, or def.
func (o *Object) GetU32Or(name string, def uint32) (uint32, error) {
	return optional(o, name, def, allU32)
}

// GetU32InOr returns the named member of o as a uint32 in [lo, hi], or def.
func (o *Object) GetU32InOr(name string, lo, hi, def uint32) (uint32, error) {
	return optional(o, name, def, getU32In(lo, hi))
}

// GetI64 returns the named member of o as an int64.
func (o *Object) GetI64(name string) (int64, error) { return required(o, name, allI64) }

// GetI64In returns the named member of o as an int64 in [lo, hi].
func (o *Object) GetI64In(name string, lo, hi int64) (int64, error) {
	return required(o, name, getI64In(lo, hi))
}

// GetI64Or returns the named member of o as an int64, or def.
func (o *Object) GetI64Or(name string, def int64) (int64, error) {
	return optional(o, name, def, allI64)
}

// GetI64InOr returns the named member of o as an int64 in [lo, hi], or def.
func (o *Object) GetI64InOr(name string, lo, hi, def int64) (int64, error) {
	return optional(o, name, def, getI64In(lo, hi))
}

// GetF64 returns the named member of o as a float64. An integer member is
// converted.
func (o *Object) GetF64(name string) (float64, error) { return required(o, name, allF64) }

// GetF64In returns the named member of o as a float64 in [lo, hi].
func (o *Object) GetF64In(name string, lo, hi float64) (float64, error) {
	return required(o, name, getF64In(lo, hi))
}

// GetF64Or returns the named member of o as a float64, or def.
func (o *Object) GetF64Or(name string, def float64) (float64, error) {
	return optional(o, name, def, allF64)
}

// GetF64InOr returns the named member of o as a float64 in [lo, hi], or def.
func (o *Object) GetF64InOr(name string, lo, hi, def float64) (float64, error) {
	return optional(o, name, def, getF64In(lo, hi))
}

// GetStr returns the named member of o as a string.
func (o *Object) GetStr(name string) (string, error) { return required(o, name, getStr) }

// GetStrOr returns the named member of o as a string, or def.
func (o *Object) GetStrOr(name, def string) (string, error) {
	return optional(o, name, def, getStr)
}

// GetArr returns the named member of o as an array.
func (o *Object) GetArr(name string) (*Array, error) { return required(o, name, getArr) }

// GetArrOpt returns the named member of o as an array, or nil if o has no
// such member.
func (o *Object) GetArrOpt(name string) (*Array, error) { return optional[*Array](o, name, nil, getArr) }

// GetObj returns the named member of o as an object.
func (o *Object) GetObj(name string) (*Object, error) { return required(o, name, getObj) }

// GetObjOpt returns the named member of o as an object, or nil if o has no
// such member.
func (o *Object) GetObjOpt(name string) (*Object, error) { return optional[*Object](o, name, nil, getObj) }

// StrEnum returns the element of values corresponding to the string value of
// the named member of o, matched against names as for Enum.
func StrEnum[T any](o *Object, name string, names []string, values []T) (T, error) {
	return required(o, name, getEnum(names, values))
}

// StrEnumOr is as StrEnum, but returns def if o has no such member.
func StrEnumOr[T any](o *Object, name string, names []string, values []T, def T) (T, error) {
	return optional(o, name, def, getEnum(names, values))
}

// Audit of unread members.

// IgnoreMembers marks all the members of o as seen, exempting them from
// RejectUnknownMembers. Values nested inside the members are not affected.
func (o *Object) IgnoreMembers() {
	for i := range o.members {
		o.members[i].seen = true
	}
}

// RejectUnknownMembers traverses o and the arrays and objects nested within
// it, in order, and reports ErrUnknownMember for the first member that has
// not been read or ignored. The line of the error is the line of the member's
// value.
func (o *Object) RejectUnknownMembers() error { return audit(o) }

func audit(v Value) error {
	switch t := v.(type) {
	case *Object:
		for i, m := range t.members {
			if !m.seen {
				return errorf(ErrUnknownMember, m.value.Line(), "%s was not used", memberLabel(i, m.label()))
			}
			if err := audit(m.value); err != nil {
				return err
			}
		}
	case *Array:
		for _, elt := range t.elems {
			if err := audit(elt); err != nil {
				return err
			}
		}
	}
	return nil
}

func memberLabel(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("member at offset %d", i)
	}
	return fmt.Sprintf("member %q", name)
}
