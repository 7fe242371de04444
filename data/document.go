// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import "iter"

// A Document is a mutable, iterable collection of entries. The parser
// produces documents and the writer consumes them; both are agnostic to the
// backing storage.
//
// Two storage strategies are provided. A List preserves insertion order and
// tolerates duplicate keys (the first match wins on lookup); a Keyed document
// enforces unique keys (the last write wins) and iterates in unspecified
// order.
type Document interface {
	// Add appends or stores a value under key. Add never fails: a List keeps
	// duplicate keys, a Keyed document overwrites.
	Add(key string, value any)

	// AddEntry adds an existing entry. It panics if e is nil.
	AddEntry(e *Entry)

	// Entry returns the entry for key, or nil if no such entry exists.
	// For a List this is the first matching stored entry; for a Keyed
	// document it is a transient view recomputed from the map.
	Entry(key string) *Entry

	// Remove removes the first (or only) entry for key and returns its
	// value. The second result reports whether an entry was removed.
	Remove(key string) (any, bool)

	// Len reports the number of entries.
	Len() int

	// IsEmpty reports whether the document contains no entries.
	IsEmpty() bool

	// Clear removes all entries.
	Clear()

	// Entries ranges over the entries of the document. A List yields entries
	// in insertion order; a Keyed document in unspecified order.
	Entries() iter.Seq[*Entry]

	// ContentOnly reports whether the document writes its entries without
	// the enclosing braces, comma-separated. Used for documents that
	// logically represent a single wrapped value.
	ContentOnly() bool
}

// A Documenter is a value that can render itself as a Document. The writer
// serializes such values in object form.
type Documenter interface {
	AsDocument() Document
}

// A Simplifier is a value that can reduce itself to a member of the value
// union before serialization.
type Simplifier interface {
	Simplify() any
}

// Get returns the value for key in d if it exists and has type T.
func Get[T any](d Document, key string) (T, bool) {
	if e := d.Entry(key); e != nil {
		if v, ok := e.Value.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetOr returns the value for key in d if it exists and has type T, or
// fallback otherwise.
func GetOr[T any](d Document, key string, fallback T) T {
	if v, ok := Get[T](d, key); ok {
		return v
	}
	return fallback
}

// A Numeric is any of the built-in signed integer or floating-point types
// the codec produces.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// GetNumber returns the value for key in d converted to T, if the value is
// any numeric member of the value union. Parsing without number suffixes
// yields int64 and float64; GetNumber is the idiomatic way to narrow those
// to the type the caller wants.
func GetNumber[T Numeric](d Document, key string) (T, bool) {
	e := d.Entry(key)
	if e == nil {
		return 0, false
	}
	switch v := e.Value.(type) {
	case int:
		return T(v), true
	case int8:
		return T(v), true
	case int16:
		return T(v), true
	case int32:
		return T(v), true
	case int64:
		return T(v), true
	case float32:
		return T(v), true
	case float64:
		return T(v), true
	}
	return 0, false
}

// ComputeIfAbsent returns the value for key if an entry exists, even when
// that entry's value is nil. Otherwise it calls fn, adds the resulting value
// under key, and returns it. fn is not invoked when an entry already exists.
func ComputeIfAbsent(d Document, key string, fn func(key string) any) any {
	if e := d.Entry(key); e != nil {
		return e.Value
	}
	v := fn(key)
	d.Add(key, v)
	return v
}

// AddIfAbsent adds value under key if no entry for key exists, and reports
// whether it did so.
func AddIfAbsent(d Document, key string, value any) bool {
	if d.Entry(key) != nil {
		return false
	}
	d.Add(key, value)
	return true
}

// AddIfNotNil adds value under key unless value is nil, and reports whether
// it did so.
func AddIfNotNil(d Document, key string, value any) bool {
	if value == nil {
		return false
	}
	d.Add(key, value)
	return true
}
