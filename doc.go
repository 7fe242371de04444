// Copyright (C) 2026 The jdata authors. All Rights Reserved.

// Package jdata provides the character-level layer shared by the jdata JSON
// codec: a rune source with single-slot pushback and line accounting, the
// string escape codec, and the positioned error types reported during
// parsing.
//
// # Reading
//
// The Source type wraps an io.Reader and hands runes to the parser.  Next
// skips whitespace, NextRaw does not, and Unread caches one rune to be
// re-read by the following call:
//
//	s := jdata.NewSource(input)
//	ch, err := s.Next()
//	...
//	s.Unread(ch)
//
// Every newline consumed advances the line counter reported by Line,
// regardless of which read method consumed it.  The parser stamps that line
// number into every error it reports.
//
// # Errors
//
// Parse failures surface as one of three concrete types: UnexpectedCharError
// when the grammar expects one of a small set of characters and sees another,
// UnexpectedEndError when the input ends inside an open structure, and
// InvalidValueError when a token cannot be converted to a value.  All carry
// the 1-based line number; InvalidValueError also wraps the underlying
// conversion failure.
//
// The document model and the parser and writer built on this package live in
// the data subpackage.
package jdata
