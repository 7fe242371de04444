// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/jdatakit/jdata"
)

// Write serializes v as indented JSON text to w. The value may be a
// Document or any member of the value union: nil, bool, the signed integer
// and floating-point types, string, []any, a nested Document or Documenter,
// or a string-keyed map. Values outside the union are written as their
// quoted, escaped string form; serialization itself never fails.
//
// Errors reported by w are propagated unchanged. Writing the same value with
// the same options produces byte-identical text regardless of the sink.
func Write(w io.Writer, v any, opts *Options) error {
	ws := &writer{w: w, opts: opts}
	ws.any(v)
	return ws.err
}

// Format serializes v like Write, but into memory. It never fails.
func Format(v any, opts *Options) string {
	var sb strings.Builder
	_ = Write(&sb, v, opts) // a strings.Builder does not report errors
	return sb.String()
}

// A writer holds the transient state of one write call: the output sink, the
// configuration, the indentation accumulator, and the first error reported
// by the sink. It is not safe for concurrent use.
type writer struct {
	w      io.Writer
	opts   *Options
	prefix string
	err    error
}

func (ws *writer) str(s string) {
	if ws.err == nil {
		_, ws.err = io.WriteString(ws.w, s)
	}
}

func (ws *writer) push() { ws.prefix += ws.opts.indent() }

func (ws *writer) pop() { ws.prefix = ws.prefix[:len(ws.prefix)-len(ws.opts.indent())] }

func (ws *writer) any(v any) {
	switch t := v.(type) {
	case Document:
		ws.document(t)
	case Documenter:
		ws.document(t.AsDocument())
	default:
		ws.value(v)
	}
}

// document writes d in object form, or in content-only form if the document
// requests it: entries comma-separated without the enclosing braces.
func (ws *writer) document(d Document) {
	if d == nil {
		d = NewList()
	}
	if d.ContentOnly() {
		first := true
		for e := range d.Entries() {
			if !first {
				ws.str(", ")
			}
			first = false
			ws.str(ws.prefix)
			ws.value(e.Value)
		}
		return
	}

	ws.str("{")
	ws.push()
	first := true
	for e := range d.Entries() {
		if !first {
			ws.str(",")
		}
		first = false
		ws.member(e.Key, e.Value)
	}
	ws.str("\n")
	ws.pop()
	ws.str(ws.prefix)
	ws.str("}")
}

func (ws *writer) member(key string, value any) {
	ws.str("\n")
	ws.str(ws.prefix)
	ws.str(`"`)
	ws.str(jdata.Quote(key))
	ws.str(`": `)
	ws.value(value)
}

// value dispatches on the dynamic type of v. The cases are exactly the
// members of the value union; the default branch is the deliberate
// best-effort fallback that renders anything else as a quoted string.
func (ws *writer) value(v any) {
	switch t := v.(type) {
	case nil:
		ws.str("null")
	case Document:
		ws.document(t)
	case Documenter:
		ws.document(t.AsDocument())
	case Simplifier:
		ws.value(t.Simplify())
	case bool:
		ws.str(strconv.FormatBool(t))
	case string:
		ws.quoted(t)
	case int8:
		ws.integer(int64(t), suffixInt8)
	case int16:
		ws.integer(int64(t), suffixInt16)
	case int32:
		ws.integer(int64(t), suffixInt32)
	case int64:
		ws.integer(t, suffixInt64)
	case int:
		// A plain int is written as the widest integral type.
		ws.integer(int64(t), suffixInt64)
	case uint8:
		ws.str(strconv.FormatUint(uint64(t), 10))
	case uint16:
		ws.str(strconv.FormatUint(uint64(t), 10))
	case uint32:
		ws.str(strconv.FormatUint(uint64(t), 10))
	case uint64:
		ws.str(strconv.FormatUint(t, 10))
	case uint:
		ws.str(strconv.FormatUint(uint64(t), 10))
	case float32:
		ws.float(float64(t), 32, suffixFloat32)
	case float64:
		ws.float(t, 64, suffixFloat64)
	case []any:
		ws.array(len(t), func(i int) any { return t[i] })
	case map[string]any:
		ws.mapObject(t)
	default:
		ws.reflected(v)
	}
}

func (ws *writer) integer(v int64, suffix rune) {
	ws.str(strconv.FormatInt(v, 10))
	if ws.opts.numberSuffixes() {
		ws.str(string(suffix))
	}
}

// float writes a floating-point value. The text always carries a decimal
// point or an exponent so that it reads back as a floating value. NaN and
// the infinities have no JSON representation and fall back to their quoted
// string form.
func (ws *writer) float(v float64, bits int, suffix rune) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		ws.quoted(strconv.FormatFloat(v, 'g', -1, bits))
		return
	}
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	ws.str(s)
	if ws.opts.numberSuffixes() {
		ws.str(string(suffix))
	}
}

func (ws *writer) quoted(s string) {
	ws.str(`"`)
	ws.str(jdata.Quote(s))
	ws.str(`"`)
}

func (ws *writer) array(n int, at func(int) any) {
	ws.str("[\n")
	ws.push()
	for i := 0; i < n; i++ {
		if i > 0 {
			ws.str(",\n")
		}
		ws.str(ws.prefix)
		ws.value(at(i))
	}
	ws.str("\n")
	ws.pop()
	ws.str(ws.prefix)
	ws.str("]")
}

// mapObject writes a plain string-keyed map in object form. Map iteration
// order is not stable, so the keys are sorted to keep output deterministic.
func (ws *writer) mapObject(m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	ws.str("{")
	ws.push()
	for i, k := range keys {
		if i > 0 {
			ws.str(",")
		}
		ws.member(k, m[k])
	}
	ws.str("\n")
	ws.pop()
	ws.str(ws.prefix)
	ws.str("}")
}

// reflected handles slice, array, and string-keyed map kinds not covered by
// the enumerated cases, so that values like []string or []int serialize as
// arrays. Anything else becomes its quoted string form.
func (ws *writer) reflected(v any) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		ws.array(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			ws.mapObject(m)
			return
		}
		ws.fallback(v)
	default:
		ws.fallback(v)
	}
}

// fallback writes the best-effort string form of a value outside the union,
// quoted and escaped like any other string.
func (ws *writer) fallback(v any) {
	ws.quoted(fmt.Sprint(v))
}
