// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jdatakit/jdata/data"
)

func TestRoundTripList(t *testing.T) {
	d := data.NewList()
	d.Add("text", "line1\nline2 \"quoted\" é")
	d.Add("flag", true)
	d.Add("none", nil)
	d.Add("count", int64(-12))
	d.Add("ratio", 2.5)
	d.Add("whole", float64(4))
	d.Add("items", []any{int64(1), "two", false, nil, []any{2.5}})
	inner := data.NewList()
	inner.Add("x", int64(1))
	inner.Add("x", int64(2)) // duplicates survive
	d.Add("nested", inner)

	text := data.Format(d, nil)
	got, err := data.ParseString(text, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(members(d), members(got)); diff != "" {
		t.Errorf("Round trip: (-original, +reparsed)\n%s", diff)
	}

	// A second pass reproduces the text byte for byte.
	if text2 := data.Format(got, nil); text2 != text {
		t.Errorf("Second pass: got %#q, want %#q", text2, text)
	}
}

func TestRoundTripKeyed(t *testing.T) {
	d := data.NewKeyed()
	d.Add("a", int64(1))
	d.Add("b", "two")
	d.Add("a", int64(3))

	opts := &data.Options{NewDocument: func() data.Document { return data.NewKeyed() }}
	got, err := data.ParseString(data.Format(d, nil), opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Keyed storage promises no order, so compare as a set of members.
	asMap := func(d data.Document) map[string]any {
		m := make(map[string]any)
		for e := range d.Entries() {
			m[e.Key] = e.Value
		}
		return m
	}
	if diff := cmp.Diff(asMap(d), asMap(got)); diff != "" {
		t.Errorf("Round trip: (-original, +reparsed)\n%s", diff)
	}
}

func TestRoundTripSuffixes(t *testing.T) {
	opts := &data.Options{NumberSuffixes: true}

	d := data.NewList()
	d.Add("b", int8(-8))
	d.Add("s", int16(300))
	d.Add("i", int32(70000))
	d.Add("l", int64(1) << 40)
	d.Add("f", float32(1.5))
	d.Add("d", 2.5)

	got, err := data.ParseString(data.Format(d, opts), opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(members(d), members(got)); diff != "" {
		t.Errorf("Round trip: (-original, +reparsed)\n%s", diff)
	}
}

func TestRoundTripWithoutSuffixes(t *testing.T) {
	// With the extension off the narrow types widen on the way back, but the
	// numeric values are preserved.
	d := data.NewList()
	d.Add("b", int8(7))
	d.Add("f", float32(1.5))

	got, err := data.ParseString(data.Format(d, nil), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []member{{"b", int64(7)}, {"f", 1.5}}
	if diff := cmp.Diff(want, members(got)); diff != "" {
		t.Errorf("Round trip: (-want, +got)\n%s", diff)
	}
}
