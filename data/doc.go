// Copyright (C) 2026 The jdata authors. All Rights Reserved.

// Package data defines a key-value document model and a bidirectional JSON
// codec for it: a recursive-descent parser that reads JSON text into
// documents, and a writer that serializes documents back into indented JSON
// text.
//
// # Documents
//
// A Document is a mutable collection of key-value entries. Two storage
// strategies implement the same contract: NewList builds a document backed
// by an append-ordered slice (insertion order preserved, duplicate keys
// tolerated), and NewKeyed builds one backed by a hash map (unique keys,
// unspecified order). Values are dynamically typed members of a closed
// union: nil, bool, the signed integer and floating-point types, string,
// []any, nested documents, and string-keyed maps. Values outside the union
// still serialize, as their quoted string form.
//
// # Parsing and writing
//
// Parse reads one JSON document, object- or array-rooted, from a stream:
//
//	d, err := data.Parse(r, nil)
//
// A bare top-level array is wrapped under a configurable key so that callers
// always receive a document. Writing is the inverse:
//
//	err := data.Write(w, d, nil)
//	text := data.Format(d, nil)
//
// Both directions take an Options value carrying the configuration: the
// indent unit, the array wrapper key, the document supplier, and two opt-in
// extensions of the wire format. The comment extension permits "//" and
// "/* */" comments anywhere whitespace is, delivering each body to a
// callback; the number-suffix extension marks numeric literals with a
// trailing B, S, I, L, F, or D to preserve their exact width across a round
// trip. A nil *Options selects the defaults, with both extensions off.
//
// Parsing is all-or-nothing: any structural mismatch, truncated input, or
// unconvertible token aborts the call with a positioned error from the
// jdata package.
package data
