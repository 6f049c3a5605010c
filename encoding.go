// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ujson

import (
	"errors"
	"strings"

	"github.com/creachadair/ujson/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for an invalid or incomplete escape sequence, or
// for a \u escape that is an unpaired UTF-16 surrogate.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}

// Quote encodes src as a JSON string literal, with quotation marks. Bytes that
// are not valid UTF-8 are copied unchanged, as the parser accepts them.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}
