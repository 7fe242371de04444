// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import "iter"

// A Keyed document is backed by a hash map. Lookup, insertion, and removal
// are O(1) amortized. Keys are unique (the last write wins) and iteration
// order is unspecified.
//
// A Keyed document does not hand out persistent entries: Entry and Entries
// return transient views recomputed from the map on each access, so there is
// no entry rebinding and no write-through on view mutation.
type Keyed struct {
	m map[string]any
}

// NewKeyed constructs a new empty Keyed document.
func NewKeyed() *Keyed { return &Keyed{m: make(map[string]any)} }

// Add stores value under key, replacing any previous value.
func (d *Keyed) Add(key string, value any) { d.m[key] = value }

// AddEntry copies the key and value of e into the map. The entry itself is
// not retained.
func (d *Keyed) AddEntry(e *Entry) {
	if e == nil {
		panic("nil entry")
	}
	d.m[e.Key] = e.Value
}

// Entry returns a transient view of the entry for key, or nil.
func (d *Keyed) Entry(key string) *Entry {
	v, ok := d.m[key]
	if !ok {
		return nil
	}
	return &Entry{Key: key, Value: v}
}

// Remove removes the entry for key and returns its value.
func (d *Keyed) Remove(key string) (any, bool) {
	v, ok := d.m[key]
	if ok {
		delete(d.m, key)
	}
	return v, ok
}

// Len reports the number of entries.
func (d *Keyed) Len() int { return len(d.m) }

// IsEmpty reports whether the document contains no entries.
func (d *Keyed) IsEmpty() bool { return len(d.m) == 0 }

// Clear removes all entries.
func (d *Keyed) Clear() { clear(d.m) }

// Entries ranges over transient views of the entries in unspecified order.
func (d *Keyed) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for k, v := range d.m {
			if !yield(&Entry{Key: k, Value: v}) {
				return
			}
		}
	}
}

// ContentOnly reports whether the document serializes without enclosing
// braces. A Keyed document always serializes in object form.
func (d *Keyed) ContentOnly() bool { return false }
