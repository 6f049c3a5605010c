// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ujson

import (
	"io"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	IntLit               // number: integer with no fraction or exponent
	NumLit               // number with fraction and/or exponent
	StrLit               // quoted string
	TrueLit              // constant: true
	FalseLit             // constant: false
	NullLit              // constant: null
)

var tokenStr = [...]string{
	Invalid:  "invalid token",
	LBrace:   `"{"`,
	RBrace:   `"}"`,
	LSquare:  `"["`,
	RSquare:  `"]"`,
	Comma:    `","`,
	Colon:    `":"`,
	IntLit:   "integer",
	NumLit:   "number",
	StrLit:   "string",
	TrueLit:  "true",
	FalseLit: "false",
	NullLit:  "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an input buffer. Each call to Next
// advances the scanner to the next token, or reports an error.
//
// Whitespace and line comments ("//" to the end of the line) between tokens
// are discarded. Lines are counted from 1.
type Scanner struct {
	src  []byte
	pos  int // offset of the next unread byte
	line int // current line, 1-based

	tok   Token
	start int // offset of the current token
	tline int // line of the current token
	err   error
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src []byte) *Scanner { return &Scanner{src: src, line: 1} }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF. Any other error has concrete
// type *Error with kind ErrSyntax.
func (s *Scanner) Next() error {
	s.err = nil
	s.tok = Invalid
	s.skipSpace()
	s.start, s.tline = s.pos, s.line

	if s.pos >= len(s.src) {
		return s.setErr(io.EOF)
	}
	ch := s.src[s.pos]

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.pos++
		s.tok = t
		return nil
	}

	switch {
	case isNumStart(ch):
		return s.scanNumber()
	case ch == '"':
		return s.scanString()
	case isNameByte(ch):
		return s.scanName()
	default:
		return s.failf("unexpected %q", ch)
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token. The return value
// aliases the input buffer; the caller must not modify it.
func (s *Scanner) Text() []byte { return s.src[s.start:s.pos] }

// Line returns the line number on which the current token begins. After Next
// reports an error, Line reports the line where scanning stopped.
func (s *Scanner) Line() int { return s.tline }

// skipSpace discards whitespace and line comments, counting newlines.
func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch ch := s.src[s.pos]; {
		case ch == '\n':
			s.line++
			s.pos++
		case isSpace(ch):
			s.pos++
		case ch == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			// The terminating newline, if any, is counted on the next pass.
			s.pos += 2
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanString() error {
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		s.pos++
		switch {
		case ch == '"':
			s.tok = StrLit
			return nil
		case ch == '\\':
			if s.pos >= len(s.src) {
				return s.failf("unterminated string")
			}
			esc := s.src[s.pos]
			s.pos++
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if err := s.readHex4(); err != nil {
					return err
				}
			default:
				return s.failf("invalid %q after escape", esc)
			}
		case ch < ' ':
			// Bytes above 0x7f are passed through without validation.
			return s.failf("unescaped control %q in string", ch)
		}
	}
	return s.failf("unterminated string")
}

func (s *Scanner) scanNumber() error {
	if s.src[s.pos] == '-' {
		s.pos++
	}

	// Consume the integer part. A leading sign requires at least one digit.
	first := s.pos
	if nd := s.readWhile(isDigit); nd == 0 {
		return s.failf("expected digit after sign")
	} else if nd > 1 && s.src[first] == '0' {
		// Extra leading zeroes are disallowed: 0.12 is OK, 01.2 is not.
		return s.failf("extra leading zeroes")
	}
	s.tok = IntLit

	// If a decimal point follows, consume a fractional part. The digits may
	// only be omitted if an exponent follows ("1.e3").
	if s.peekIs('.') {
		s.pos++
		if s.readWhile(isDigit) == 0 && !s.peekIs('e') && !s.peekIs('E') {
			return s.failf("no digits after decimal point")
		}
		s.tok = NumLit
	}

	// If an exponent follows, consume it.
	if s.peekIs('e') || s.peekIs('E') {
		s.pos++
		if s.peekIs('+') || s.peekIs('-') {
			s.pos++
		}
		if s.readWhile(isDigit) == 0 {
			return s.failf("missing exponent digits")
		}
		s.tok = NumLit
	}
	return nil
}

func (s *Scanner) scanName() error {
	s.readWhile(isNameByte)
	got := mem.B(s.Text())
	switch {
	case got.Equal(mem.S("true")):
		s.tok = TrueLit
	case got.Equal(mem.S("false")):
		s.tok = FalseLit
	case got.Equal(mem.S("null")):
		s.tok = NullLit
	default:
		return s.failf("unknown constant %q", got.StringCopy())
	}
	return nil
}

// readWhile consumes bytes matching f from the input until the end of input
// or until a byte not matching f is found. It reports the number of bytes
// consumed.
func (s *Scanner) readWhile(f func(byte) bool) int {
	n := 0
	for s.pos < len(s.src) && f(s.src[s.pos]) {
		s.pos++
		n++
	}
	return n
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		if s.pos >= len(s.src) {
			return s.failf("incomplete Unicode escape")
		} else if ch := s.src[s.pos]; !isHexDigit(ch) {
			return s.failf("invalid Unicode escape: not a hex digit: %q", ch)
		}
		s.pos++
	}
	return nil
}

func (s *Scanner) peekIs(ch byte) bool { return s.pos < len(s.src) && s.src[s.pos] == ch }

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(msg string, args ...any) error {
	s.tok = Invalid
	s.tline = s.line
	return s.setErr(errorf(ErrSyntax, s.line, msg, args...))
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
