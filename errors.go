// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package jdata

import "fmt"

// UnexpectedCharError is reported when the grammar expects one of a small
// fixed set of characters and the input provides another.
type UnexpectedCharError struct {
	Char rune // the offending character
	Line int  // the 1-based line it occurred on
}

// Error satisfies the error interface.
func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("at line %d: unexpected character %q", e.Line, e.Char)
}

// UnexpectedEndError is reported when the input ends while a grammar
// structure is still open.
type UnexpectedEndError struct {
	Line int // the 1-based line the input ended on
}

// Error satisfies the error interface.
func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("at line %d: unexpected end of input", e.Line)
}

// InvalidValueError is reported when a token cannot be converted to any
// accepted value type.
type InvalidValueError struct {
	Token string // the raw token text
	Line  int    // the 1-based line it occurred on
	Err   error  // the underlying conversion failure, if any
}

// Error satisfies the error interface.
func (e *InvalidValueError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("at line %d: invalid value %q", e.Line, e.Token)
	}
	return fmt.Sprintf("at line %d: invalid value %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap supports error wrapping.
func (e *InvalidValueError) Unwrap() error { return e.Err }
