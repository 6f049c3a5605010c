// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ujson

import (
	"errors"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Sentinel errors identifying the kind of an *Error. Use errors.Is to test
// the kind of an error reported by this package.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrBadType        = errors.New("wrong value type")
	ErrBadIntRange    = errors.New("integer out of range")
	ErrBadF64Range    = errors.New("number out of range")
	ErrBadEnum        = errors.New("invalid enumeration value")
	ErrBadArrLen      = errors.New("invalid array length")
	ErrMemberNotFound = errors.New("member not found")
	ErrUnknownMember  = errors.New("unknown member")
)

// Error is the concrete type of errors reported by the parser and by the
// accessors of a parsed value.
type Error struct {
	Kind    error  // one of the Err* sentinels
	Line    int    // source line, 1-based
	Message string // detail, may be empty
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("at line %d: %v", e.Line, e.Kind)
	}
	return fmt.Sprintf("at line %d: %v: %s", e.Line, e.Kind, e.Message)
}

// Unwrap reports the kind of e, so that errors.Is(err, ErrSyntax) etc. work.
func (e *Error) Unwrap() error { return e.Kind }

func errorf(kind error, line int, msg string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(msg, args...)}
}

// maxHintDistance is the largest edit distance at which a candidate name is
// offered as a "did you mean" hint.
const maxHintDistance = 2

// hint returns a parenthetical suggestion naming the candidate closest to
// target, or "" if none is close enough.
func hint(target string, candidates []string) string {
	best, bestDist := "", maxHintDistance+1
	for _, c := range candidates {
		if c == "" || c == target {
			continue
		}
		if d := fuzzy.LevenshteinDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
