// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ujson implements a strict JSON parser and a validating accessor
// layer for reading configuration-like data.
//
// # Parsing
//
// Parse converts a complete input buffer into an immutable tree of values.
// The input is JSON extended with line comments ("// ... <LF>") wherever
// whitespace is allowed, and with trailing commas in arrays and objects:
//
//	v, err := ujson.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Every value records the source line on which it begins. Integers without a
// fraction or exponent must fit in an int64; other numbers must be finite as
// float64. Objects may not contain duplicate member names unless permitted by
// Options.AllowDuplicates. Nesting of arrays and objects is limited to
// DefaultMaxDepth levels unless overridden by Options.MaxDepth.
//
// # Accessors
//
// A Value is narrowed to its concrete type with AsBool, AsInt, AsFloat,
// AsString, AsArray, or AsObject. The typed getters of *Array and *Object
// narrow and range-check in one call:
//
//	root, err := v.AsObject()
//	...
//	width, err := root.GetI32In("width", 0, 16384)
//	opacity, err := root.GetF64InOr("opacity", 0, 1, 1)
//
// # Errors
//
// Errors reported by the parser and by accessors have concrete type *Error,
// which carries the relevant source line. The kind of an error is one of the
// Err* sentinels, and can be tested with errors.Is:
//
//	if errors.Is(err, ujson.ErrMemberNotFound) { ... }
//
// Indexing an array or object out of range is a programming error, and
// panics.
//
// # Unknown members
//
// Reading a member of an object marks it as seen. A typed getter marks the
// member only if it has the right type and range. After reading the members
// it expects, a caller may use RejectUnknownMembers to report any member of
// the tree that was never read, such as a misspelled option name:
//
//	if err := root.RejectUnknownMembers(); err != nil {
//	   log.Fatalf("Invalid config: %v", err)
//	}
//
// The seen flags are updated without synchronization; a tree must not be
// read concurrently by multiple goroutines if any of them read object
// members.
package ujson
