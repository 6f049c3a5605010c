// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ujson

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/ujson/internal/escape"

	"go4.org/mem"
)

// DefaultMaxDepth is the maximum nesting depth of arrays and objects accepted
// by the parser, unless overridden by Options.MaxDepth.
const DefaultMaxDepth = 64

// Options control the behavior of the parser. A nil *Options is ready for
// use and provides default settings.
type Options struct {
	// MaxDepth, if positive, is the maximum nesting depth of arrays and objects.
	// If zero or negative, DefaultMaxDepth is used.
	MaxDepth int

	// AllowDuplicates, if true, permits an object to have more than one member
	// with the same name. Only the first such member can be found by name; the
	// duplicates are given empty names. If false, a duplicate member name is a
	// syntax error.
	AllowDuplicates bool
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) allowDuplicates() bool { return o != nil && o.AllowDuplicates }

// Parse parses text as a single JSON value with default options.
func Parse(text []byte) (Value, error) { return (*Options)(nil).Parse(text) }

// ParseString parses text as a single JSON value with default options.
func ParseString(text string) (Value, error) { return Parse([]byte(text)) }

// Parse parses text as a single JSON value and returns the root of its value
// tree. The input may contain line comments and trailing commas in arrays and
// objects. Apart from whitespace and comments, the value must occupy the
// entire input.
//
// In case of error, Parse returns a nil Value and an error of concrete type
// *Error with kind ErrSyntax.
func (o *Options) Parse(text []byte) (_ Value, err error) {
	p := &parser{
		s:        NewScanner(text),
		maxDepth: o.maxDepth(),
		dups:     o.allowDuplicates(),
	}
	defer p.recoverParseError(&err)

	p.advance()
	v := p.parseElement(0)
	if err := p.s.Next(); err == nil {
		p.syntaxError("unexpected %v after value", p.s.Token())
	} else if err != io.EOF {
		panic(err)
	}
	return v, nil
}

// A parser is a recursive-descent parser over the tokens of a Scanner.
// Syntax errors are signaled by panicking with an *Error, which is recovered
// at the top level.
type parser struct {
	s        *Scanner
	maxDepth int
	dups     bool
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*Error); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parseElement consumes a single value of any type, whose first token is
// current. The depth is the number of arrays and objects enclosing it.
func (p *parser) parseElement(depth int) Value {
	line := p.s.Line()
	switch tok := p.s.Token(); tok {
	case LBrace:
		return p.parseMembers(depth+1, line)
	case LSquare:
		return p.parseElements(depth+1, line)
	case IntLit:
		text := string(p.s.Text())
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			p.syntaxError("integer %s out of range", text)
		}
		return &Int{node: newNode(TypeInt, line), value: v}
	case NumLit:
		text := string(p.s.Text())
		v, err := strconv.ParseFloat(text, 64)
		if math.IsInf(v, 0) || (err != nil && !errors.Is(err, strconv.ErrRange)) {
			p.syntaxError("number %s out of range", text)
		}
		return &Float{node: newNode(TypeFloat, line), value: v}
	case StrLit:
		return &String{node: newNode(TypeString, line), value: p.unquote()}
	case TrueLit, FalseLit:
		return &Bool{node: newNode(TypeBool, line), value: tok == TrueLit}
	case NullLit:
		return &Null{node: newNode(TypeNull, line)}
	default:
		p.syntaxError("unexpected %v", tok)
		panic("unreachable")
	}
}

// parseMembers consumes zero or more "name": value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (p *parser) parseMembers(depth, line int) *Object {
	p.checkDepth(depth)
	obj := &Object{node: newNode(TypeObject, line)}
	for {
		if p.advance(RBrace, StrLit) == RBrace {
			return obj // end of object, possibly after a trailing comma
		}
		name := p.unquote()
		if !p.dups && obj.FindIndex(name) >= 0 {
			p.syntaxError("duplicate member %q", name)
		}
		p.advance(Colon)
		p.advance()
		obj.add(name, p.parseElement(depth))

		// Check whether we have more members (",") or are done ("}").
		if p.advance(RBrace, Comma) == RBrace {
			return obj
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (p *parser) parseElements(depth, line int) *Array {
	p.checkDepth(depth)
	arr := &Array{node: newNode(TypeArray, line)}
	for {
		if p.advance() == RSquare {
			return arr // end of array, possibly after a trailing comma
		}
		arr.elems = append(arr.elems, p.parseElement(depth))

		// Check whether we have more values (",") or are done ("]").
		if p.advance(RSquare, Comma) == RSquare {
			return arr
		}
	}
}

func (p *parser) checkDepth(depth int) {
	if depth > p.maxDepth {
		p.syntaxError("nesting depth exceeds %d", p.maxDepth)
	}
}

// advance reads the next token, which must be one of tokens if any are
// given, and returns its type.
func (p *parser) advance(tokens ...Token) Token {
	if err := p.s.Next(); err == io.EOF {
		p.syntaxError("%s", tokLabel(tokens, "end of input"))
	} else if err != nil {
		panic(err)
	}
	tok := p.s.Token()
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		p.syntaxError("%s", tokLabel(tokens, tok))
	}
	return tok
}

// unquote decodes the current string token.
func (p *parser) unquote() string {
	text := p.s.Text()
	dec, err := escape.Unquote(mem.B(text[1 : len(text)-1]))
	if err != nil {
		p.syntaxError("invalid string: %v", err)
	}
	return string(dec)
}

func (p *parser) syntaxError(msg string, args ...any) {
	panic(errorf(ErrSyntax, p.s.Line(), msg, args...))
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprintf("expected value, got %v", got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
