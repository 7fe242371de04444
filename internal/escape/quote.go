// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789ABCDEF")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// Quotation marks, backslashes, and solidi get two-character escapes, as do
// the common control characters; the remaining characters in the ranges
// 0x00-0x1F and 0x7F-0x9F are written as four-digit uppercase "\u" escapes.
// All other characters pass through unescaped.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putHex := func(r rune) {
		putByte('\\', 'u',
			hexDigit[(r>>12)&15], hexDigit[(r>>8)&15],
			hexDigit[(r>>4)&15], hexDigit[r&15])
	}

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r == '"' || r == '\\' || r == '/' {
			putByte('\\', byte(r))
			continue
		}
		if r < ' ' {
			if b := controlEsc[r]; b != 0 && b != ' ' {
				putByte('\\', b)
			} else {
				putHex(r)
			}
			continue
		}
		if r >= 0x7f && r <= 0x9f {
			putHex(r)
			continue
		}
		if r < utf8.RuneSelf {
			putByte(byte(r))
		} else {
			var rbuf [6]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
		}
	}
	return buf
}
