// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// in the UTF-16 surrogate range must be a high surrogate immediately followed
// by a \u escape for a low surrogate; the pair is decoded as a single rune.
// Bytes outside escape sequences are copied through unmodified, and are not
// checked for valid UTF-8.
//
// Unquote reports an error for an invalid or incomplete escape sequence, or
// for an unpaired surrogate.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		c := src.At(0)
		src = src.SliceFrom(1)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, n, err := decodeUnicode(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = src.SliceFrom(n)
		default:
			return nil, fmt.Errorf("invalid %q after escape", c)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeUnicode decodes the hex digits of a \u escape at the front of src,
// which must not include the leading "\u". If the escape is a high surrogate,
// the following "\uXXXX" low surrogate is consumed as well. It returns the
// decoded rune and the number of bytes of src consumed.
func decodeUnicode(src mem.RO) (rune, int, error) {
	hi, err := parseHex4(src)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case isLowSurrogate(hi):
		return 0, 0, fmt.Errorf("unpaired low surrogate \\u%04X", hi)
	case !isHighSurrogate(hi):
		return rune(hi), 4, nil
	}

	rest := src.SliceFrom(4)
	if rest.Len() < 2 || rest.At(0) != '\\' || rest.At(1) != 'u' {
		return 0, 0, fmt.Errorf("high surrogate \\u%04X without low surrogate", hi)
	}
	lo, err := parseHex4(rest.SliceFrom(2))
	if err != nil {
		return 0, 0, err
	} else if !isLowSurrogate(lo) {
		return 0, 0, fmt.Errorf("high surrogate \\u%04X followed by \\u%04X", hi, lo)
	}
	return utf16.DecodeRune(rune(hi), rune(lo)), 10, nil
}

func isHighSurrogate(v int64) bool { return v >= 0xD800 && v <= 0xDBFF }
func isLowSurrogate(v int64) bool  { return v >= 0xDC00 && v <= 0xDFFF }

// parseHex4 parses exactly four hexadecimal digits from the front of data.
func parseHex4(data mem.RO) (int64, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	return parseHex(data.SliceTo(4))
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
