// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ujson

import (
	"fmt"
	"math"
	"strconv"
)

// Type identifies the variant of a Value.
type Type byte

// Constants defining the valid Type values.
const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeArray
	TypeObject
)

var typeStr = [...]string{
	TypeNull:   "null",
	TypeBool:   "bool",
	TypeInt:    "int",
	TypeFloat:  "float",
	TypeString: "string",
	TypeArray:  "array",
	TypeObject: "object",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return fmt.Sprintf("Type(%d)", t)
	}
	return typeStr[t]
}

// A Value is a node of a parsed JSON value tree. The concrete type of a Value
// is one of *Null, *Bool, *Int, *Float, *String, *Array, or *Object.
//
// The As methods narrow a Value to a specific variant. Each reports an error
// with kind ErrBadType, carrying the line of the value, if the variant does
// not match. As a special case, AsFloat accepts an integer value and returns
// a floating-point view of it.
type Value interface {
	// Type reports the variant of the value.
	Type() Type

	// Line reports the source line on which the value begins, 1-based.
	Line() int

	String() string

	AsBool() (*Bool, error)
	AsInt() (*Int, error)
	AsFloat() (*Float, error)
	AsString() (*String, error)
	AsArray() (*Array, error)
	AsObject() (*Object, error)

	isValue()
}

// node carries the type and location shared by all values, and provides the
// failing default for each narrowing method.
type node struct {
	typ  Type
	line int
}

func newNode(typ Type, line int) node { return node{typ: typ, line: line} }

// Type satisfies part of the Value interface.
func (n *node) Type() Type { return n.typ }

// Line satisfies part of the Value interface.
func (n *node) Line() int { return n.line }

func (n *node) isValue() {}

func (n *node) errorf(kind error, msg string, args ...any) error {
	return errorf(kind, n.line, msg, args...)
}

func (n *node) badType(want Type) error {
	return n.errorf(ErrBadType, "got %v, want %v", n.typ, want)
}

func (n *node) AsBool() (*Bool, error)     { return nil, n.badType(TypeBool) }
func (n *node) AsInt() (*Int, error)       { return nil, n.badType(TypeInt) }
func (n *node) AsFloat() (*Float, error)   { return nil, n.badType(TypeFloat) }
func (n *node) AsString() (*String, error) { return nil, n.badType(TypeString) }
func (n *node) AsArray() (*Array, error)   { return nil, n.badType(TypeArray) }
func (n *node) AsObject() (*Object, error) { return nil, n.badType(TypeObject) }

// Null represents the null constant.
type Null struct{ node }

func (*Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	node
	value bool
}

// AsBool narrows b to itself.
func (b *Bool) AsBool() (*Bool, error) { return b, nil }

// Get returns the value of b.
func (b *Bool) Get() bool { return b.value }

func (b *Bool) String() string { return strconv.FormatBool(b.value) }

// An Int is an integer value with no fraction or exponent, in the range of a
// 64-bit signed integer.
type Int struct {
	node
	value int64
}

// AsInt narrows z to itself.
func (z *Int) AsInt() (*Int, error) { return z, nil }

// AsFloat returns a floating-point view of z.
func (z *Int) AsFloat() (*Float, error) {
	return &Float{node: newNode(TypeFloat, z.line), value: float64(z.value)}, nil
}

// Get returns the value of z.
func (z *Int) Get() int64 { return z.value }

// GetIn returns the value of z, or reports ErrBadIntRange if it is not in the
// closed interval [lo, hi].
func (z *Int) GetIn(lo, hi int64) (int64, error) {
	if z.value < lo || z.value > hi {
		return 0, z.errorf(ErrBadIntRange, "%d is not in [%d, %d]", z.value, lo, hi)
	}
	return z.value, nil
}

// I32 returns the value of z as an int32, or reports ErrBadIntRange if it
// does not fit.
func (z *Int) I32() (int32, error) { return z.I32In(math.MinInt32, math.MaxInt32) }

// I32In returns the value of z as an int32, or reports ErrBadIntRange if it is
// not in the closed interval [lo, hi].
func (z *Int) I32In(lo, hi int32) (int32, error) {
	v, err := z.GetIn(int64(lo), int64(hi))
	return int32(v), err
}

// U32 returns the value of z as a uint32, or reports ErrBadIntRange if it
// does not fit.
func (z *Int) U32() (uint32, error) { return z.U32In(0, math.MaxUint32) }

// U32In returns the value of z as a uint32, or reports ErrBadIntRange if it is
// not in the closed interval [lo, hi].
func (z *Int) U32In(lo, hi uint32) (uint32, error) {
	v, err := z.GetIn(int64(lo), int64(hi))
	return uint32(v), err
}

func (z *Int) String() string { return strconv.FormatInt(z.value, 10) }

// A Float is a floating-point value.
type Float struct {
	node
	value float64
}

// AsFloat narrows f to itself.
func (f *Float) AsFloat() (*Float, error) { return f, nil }

// Get returns the value of f.
func (f *Float) Get() float64 { return f.value }

// GetIn returns the value of f, or reports ErrBadF64Range if it is not in the
// closed interval [lo, hi].
func (f *Float) GetIn(lo, hi float64) (float64, error) {
	if f.value < lo || f.value > hi {
		return 0, f.errorf(ErrBadF64Range, "%g is not in [%g, %g]", f.value, lo, hi)
	}
	return f.value, nil
}

func (f *Float) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

// A String is a string value. Its contents are the decoded bytes of the
// string literal, with escapes replaced.
type String struct {
	node
	value string
}

// AsString narrows s to itself.
func (s *String) AsString() (*String, error) { return s, nil }

// Get returns the decoded contents of s.
func (s *String) Get() string { return s.value }

// Bytes returns a copy of the decoded contents of s.
func (s *String) Bytes() []byte { return []byte(s.value) }

// EnumIndex returns the index of the first element of names equal to s, or
// reports ErrBadEnum if there is none.
func (s *String) EnumIndex(names []string) (int, error) {
	for i, name := range names {
		if name == s.value {
			return i, nil
		}
	}
	return -1, s.errorf(ErrBadEnum, "%q is not one of %q%s", s.value, names, hint(s.value, names))
}

// String returns s as a JSON string literal.
func (s *String) String() string { return Quote(s.value) }

// Enum returns the element of values corresponding to the first element of
// names equal to s, or reports ErrBadEnum if there is none. It panics if
// names and values have different lengths.
func Enum[T any](s *String, names []string, values []T) (T, error) {
	checkEnum(names, values)
	i, err := s.EnumIndex(names)
	if err != nil {
		var zero T
		return zero, err
	}
	return values[i], nil
}

func checkEnum[T any](names []string, values []T) {
	if len(names) != len(values) {
		panic(fmt.Sprintf("ujson: enum has %d names but %d values", len(names), len(values)))
	}
}

// An Array is a sequence of values.
type Array struct {
	node
	elems []Value
}

// AsArray narrows a to itself.
func (a *Array) AsArray() (*Array, error) { return a, nil }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elems) }

// RequireLen reports ErrBadArrLen unless a has exactly n elements.
func (a *Array) RequireLen(n int) error {
	if len(a.elems) != n {
		return a.errorf(ErrBadArrLen, "got %d elements, want %d", len(a.elems), n)
	}
	return nil
}

// RequireLenIn reports ErrBadArrLen unless the length of a is in the closed
// interval [lo, hi].
func (a *Array) RequireLenIn(lo, hi int) error {
	if n := len(a.elems); n < lo || n > hi {
		return a.errorf(ErrBadArrLen, "got %d elements, want %d to %d", n, lo, hi)
	}
	return nil
}

// Element returns the element of a at offset i. It panics if i is out of
// range.
func (a *Array) Element(i int) Value {
	if i < 0 || i >= len(a.elems) {
		panic(fmt.Sprintf("ujson: array index %d out of range (len=%d)", i, len(a.elems)))
	}
	return a.elems[i]
}

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.elems)) }

// An Object is a collection of named members, in input order.
//
// When duplicate names are permitted by the parser, only the first member
// with a given name is found by name. Subsequent duplicates report an empty
// name and are reachable only by offset.
type Object struct {
	node
	members []member
	index   map[string]int // name to offset of the first member with that name
}

// A member is a single name-value pair belonging to an Object. The seen flag
// records whether the member has been read, for RejectUnknownMembers.
type member struct {
	name  string
	value Value
	dup   bool // a later member with the name of an earlier one
	seen  bool
}

// label returns the name of m as reported by MemberName.
func (m *member) label() string {
	if m.dup {
		return ""
	}
	return m.name
}

// add appends a member to o, and reports whether o already had a member with
// the same name. A duplicate is added but is not indexed by name.
func (o *Object) add(name string, v Value) (dup bool) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	_, dup = o.index[name]
	if !dup {
		o.index[name] = len(o.members)
	}
	o.members = append(o.members, member{name: name, value: v, dup: dup})
	return dup
}

// AsObject narrows o to itself.
func (o *Object) AsObject() (*Object, error) { return o, nil }

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.members) }

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.members)) }

func (o *Object) checkIndex(i int) {
	if i < 0 || i >= len(o.members) {
		panic(fmt.Sprintf("ujson: member index %d out of range (len=%d)", i, len(o.members)))
	}
}
