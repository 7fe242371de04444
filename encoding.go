// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package jdata

import (
	"github.com/jdatakit/jdata/internal/escape"

	"go4.org/mem"
)

// Quote encodes src for inclusion in a JSON string value. The contents are
// escaped, but no surrounding quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes the contents of a JSON string value, with the surrounding
// quotation marks already removed. Escape sequences are replaced with their
// unescaped equivalents.
//
// A "\u" escape must be followed by exactly four hexadecimal digits, or
// Unquote reports an error. Any other escaped character decodes to itself.
func Unquote(src string) (string, error) {
	dec, err := escape.Unquote(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
