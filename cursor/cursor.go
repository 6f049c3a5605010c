// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a parsed
// ujson.Value.
package cursor

import (
	"fmt"

	"github.com/creachadair/ujson"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method. This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T ujson.Value](v ujson.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, errorf(c.Value(), ujson.ErrBadType, "got %v, want %T", c.Value().Type(), result)
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of a ujson.Value.
type Cursor struct {
	org ujson.Value
	stk []ujson.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ujson.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ujson.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ujson.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []ujson.Value {
	return append([]ujson.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// member names), integers (denoting offsets into arrays or objects), or
// functions (see below). If the path cannot be completely consumed, traversal
// stops and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves to the value of the first member with that name.
// The member is marked as read, as if by Object.Member.
//
// If a path element is an integer, the corresponding value must be an array or
// object, and the integer resolves to the element at that offset. Negative
// offsets count backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(ujson.Value) (ujson.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
//
// Errors from traversal have concrete type *ujson.Error, unless reported by a
// path function.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, err := cur.AsObject()
			if err != nil {
				c.err = err
				return c
			}
			next, err := obj.Member(t)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case int:
			switch e := cur.(type) {
			case *ujson.Array:
				i, ok := fixArrayBound(e.Len(), t)
				if !ok {
					return c.setErrorf(e, ujson.ErrBadArrLen, "array index %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.Element(i))
			case *ujson.Object:
				i, ok := fixArrayBound(e.Len(), t)
				if !ok {
					return c.setErrorf(e, ujson.ErrMemberNotFound, "object index %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.Element(i))
			default:
				return c.setErrorf(cur, ujson.ErrBadType, "cannot index %v with %d", cur.Type(), t)
			}

		case func(ujson.Value) (ujson.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf(cur, ujson.ErrBadType, "invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ujson.Value) ujson.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(v ujson.Value, kind error, msg string, args ...any) *Cursor {
	c.err = errorf(v, kind, msg, args...)
	return c
}

func errorf(v ujson.Value, kind error, msg string, args ...any) error {
	return &ujson.Error{Kind: kind, Line: v.Line(), Message: fmt.Sprintf(msg, args...)}
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
