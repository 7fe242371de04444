// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import (
	"strconv"
	"strings"
)

// decodeSuffixed interprets tok as a numeric literal with a trailing type
// suffix. The middle result reports whether the token carries a suffix at
// all; if it does not, the caller falls back to default numeric parsing.
func decodeSuffixed(tok string) (any, bool, error) {
	num := tok[:len(tok)-1]
	switch tok[len(tok)-1] {
	case suffixInt8:
		v, err := strconv.ParseInt(num, 10, 8)
		return int8(v), true, err
	case suffixInt16:
		v, err := strconv.ParseInt(num, 10, 16)
		return int16(v), true, err
	case suffixInt32:
		v, err := strconv.ParseInt(num, 10, 32)
		return int32(v), true, err
	case suffixInt64:
		v, err := strconv.ParseInt(num, 10, 64)
		return v, true, err
	case suffixFloat32:
		v, err := strconv.ParseFloat(num, 32)
		return float32(v), true, err
	case suffixFloat64:
		v, err := strconv.ParseFloat(num, 64)
		return v, true, err
	}
	return nil, false, nil
}

// decodeNumber interprets tok as a plain numeric literal: integers become
// int64 and anything with a decimal point or exponent becomes float64.
// Parsing is locale-independent; a decimal point, no thousands separators.
func decodeNumber(tok string) (any, error) {
	if strings.ContainsAny(tok, ".eE") {
		return strconv.ParseFloat(tok, 64)
	}
	return strconv.ParseInt(tok, 10, 64)
}
