// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import (
	"iter"
	"slices"
)

// A List is a Document backed by an append-ordered slice. Insertion is O(1),
// lookup and removal are O(n). Insertion order is preserved, and duplicate
// keys are tolerated: lookup and removal touch the first match.
type List struct {
	entries     []*Entry
	contentOnly bool
}

// NewList constructs a new empty List.
func NewList() *List { return &List{} }

// NewListSize constructs a new empty List with capacity for n entries.
func NewListSize(n int) *List { return &List{entries: make([]*Entry, 0, n)} }

// NewContentOnlyList constructs a new empty List that serializes in
// content-only mode: its entries are written comma-separated without the
// enclosing braces.
func NewContentOnlyList() *List { return &List{contentOnly: true} }

// Add appends a new entry for key. Duplicate keys are kept.
func (d *List) Add(key string, value any) {
	d.entries = append(d.entries, &Entry{Key: key, Value: value})
}

// AddEntry appends e. The entry is retained: mutating it afterward is
// visible through the document.
func (d *List) AddEntry(e *Entry) {
	if e == nil {
		panic("nil entry")
	}
	d.entries = append(d.entries, e)
}

// Entry returns the first entry for key, or nil.
func (d *List) Entry(key string) *Entry {
	for _, e := range d.entries {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Remove removes the first entry for key and returns its value.
func (d *List) Remove(key string) (any, bool) {
	for i, e := range d.entries {
		if e.Key == key {
			d.entries = slices.Delete(d.entries, i, i+1)
			return e.Value, true
		}
	}
	return nil, false
}

// Len reports the number of entries.
func (d *List) Len() int { return len(d.entries) }

// IsEmpty reports whether the list contains no entries.
func (d *List) IsEmpty() bool { return len(d.entries) == 0 }

// Clear removes all entries.
func (d *List) Clear() { d.entries = nil }

// Entries ranges over the entries in insertion order.
func (d *List) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range d.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// ContentOnly reports whether the list serializes without enclosing braces.
func (d *List) ContentOnly() bool { return d.contentOnly }
