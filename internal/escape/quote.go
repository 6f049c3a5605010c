// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote escapes src for inclusion in a JSON string literal, without the
// enclosing quotation marks. Quotation marks, backslashes, and control bytes
// are escaped. All other bytes are copied unchanged, including bytes that are
// not part of a valid UTF-8 sequence, so that Unquote(Quote(s)) == s for any
// input.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		switch b := src.At(i); {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b < ' ':
			if e := controlEsc[b]; e != 0 {
				buf = append(buf, '\\', e)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			}
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
