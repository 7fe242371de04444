// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

// DefaultArrayKey is the key under which a bare top-level array is wrapped
// when no other key is configured.
const DefaultArrayKey = "array"

// Options carries the settings for parsing and writing. A nil *Options is
// ready for use with default settings; the zero value of every field selects
// the default behavior. Options values are plain data and may be shared, but
// one parse or write call uses one Options value for its whole duration.
type Options struct {
	// Indent is the string added per nesting level when writing.
	// Empty selects one tab.
	Indent string

	// ArrayKey is the key under which a bare top-level array is wrapped so
	// that parsing always yields a document. Empty selects DefaultArrayKey.
	ArrayKey string

	// NewDocument supplies the document created for each parsed object.
	// Nil selects NewList, preserving member order.
	NewDocument func() Document

	// RejectStringNewlines makes an unescaped newline inside a string a
	// parse error. The default permits them, because pretty-printed output
	// may re-wrap long strings.
	RejectStringNewlines bool

	// Comments enables the comment extension: "//" line comments and
	// "/* */" block comments anywhere whitespace is permitted. Not valid in
	// standard JSON, so disabled by default.
	Comments bool

	// CommentFunc, if set and Comments is enabled, receives the body of
	// each comment (delimiters removed) before parsing resumes. Returning
	// an error aborts the parse with that error.
	CommentFunc func(text string) error

	// NumberSuffixes enables the numeric-type-suffix extension: a single
	// trailing letter (B, S, I, L, F, D) after a numeric literal selects
	// int8, int16, int32, int64, float32, or float64 on both read and
	// write. Without it, integers parse to int64 and fractional numbers to
	// float64.
	NumberSuffixes bool
}

func (o *Options) indent() string {
	if o == nil || o.Indent == "" {
		return "\t"
	}
	return o.Indent
}

func (o *Options) arrayKey() string {
	if o == nil || o.ArrayKey == "" {
		return DefaultArrayKey
	}
	return o.ArrayKey
}

func (o *Options) newDocument() Document {
	if o == nil || o.NewDocument == nil {
		return NewList()
	}
	return o.NewDocument()
}

func (o *Options) comments() bool { return o != nil && o.Comments }

func (o *Options) commentFunc() func(string) error {
	if o == nil {
		return nil
	}
	return o.CommentFunc
}

func (o *Options) rejectStringNewlines() bool { return o != nil && o.RejectStringNewlines }

func (o *Options) numberSuffixes() bool { return o != nil && o.NumberSuffixes }
