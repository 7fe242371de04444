// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import "fmt"

// An Entry is a single key-value pair belonging to a Document.
//
// Entries handed to a List are retained, so later mutation of the entry is
// visible through the document. A Keyed document copies the entry into its
// backing map instead and hands out transient views on lookup; mutating a
// view does not write back.
type Entry struct {
	Key   string
	Value any
}

func (e *Entry) String() string { return fmt.Sprintf("Entry(%s=%v)", e.Key, e.Value) }
