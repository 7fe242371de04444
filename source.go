// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package jdata

import (
	"bufio"
	"io"
	"strings"
)

// A Source reads runes from an input stream on behalf of the parser.  It
// maintains a single-slot pushback cache and a count of the lines consumed so
// far, which is used to attribute positions to parse errors.
//
// A Source is not safe for concurrent use; each parse call must have its own.
type Source struct {
	r    *bufio.Reader
	pb   rune // pushback slot, valid if ok
	ok   bool
	line int // 1-based line number of the read position
}

// NewSource constructs a new Source that consumes input from r.
func NewSource(r io.Reader) *Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Source{r: br, line: 1}
}

// Line reports the 1-based line number of the current read position.
// The counter advances on every newline consumed, regardless of which read
// method consumed it, and is never decremented.
func (s *Source) Line() int { return s.line }

// Unread pushes ch back so that the next read will return it.  The cache
// holds at most one rune; if a rune is already cached the old rune is
// silently discarded (last pushback wins).  The grammar never needs more
// than one rune of lookahead, so the overwrite is not observable in
// practice.
func (s *Source) Unread(ch rune) { s.pb, s.ok = ch, true }

// Next returns the next rune of the input that is not whitespace.  Space,
// tab, newline, and all other control characters at or below 0x20 are
// discarded.  At the end of the input, Next returns io.EOF.
func (s *Source) Next() (rune, error) {
	for {
		ch, err := s.read()
		if err != nil {
			return 0, err
		}
		if ch == '\n' {
			s.line++
			continue
		}
		if ch <= ' ' {
			continue
		}
		return ch, nil
	}
}

// NextRaw returns the next rune of the input without discarding anything.
// A newline advances the line counter before being returned.
func (s *Source) NextRaw() (rune, error) {
	ch, err := s.read()
	if err != nil {
		return 0, err
	}
	if ch == '\n' {
		s.line++
	}
	return ch, nil
}

// ReadLine reads and returns the raw text up to the next newline or the end
// of input, whichever comes first.  The newline is consumed and counted but
// not included; a trailing carriage return is removed.
func (s *Source) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		ch, err := s.read()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		if ch == '\n' {
			s.line++
			break
		}
		sb.WriteRune(ch)
	}
	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// ReadBlockComment reads and returns the raw text up to the two-character
// terminator "*/". The terminator is consumed but not included.  Newlines
// inside the text advance the line counter.  If the input ends before the
// terminator, ReadBlockComment reports an UnexpectedEndError.
func (s *Source) ReadBlockComment() (string, error) {
	var sb strings.Builder
	var star bool
	for {
		ch, err := s.read()
		if err == io.EOF {
			return "", &UnexpectedEndError{Line: s.line}
		} else if err != nil {
			return "", err
		}
		if star && ch == '/' {
			text := sb.String()
			return text[:len(text)-1], nil
		}
		star = ch == '*'
		if ch == '\n' {
			s.line++
		}
		sb.WriteRune(ch)
	}
}

// read returns the cached pushback rune if there is one, or the next rune of
// the underlying stream.  Line accounting for a pushed-back rune happened
// when the rune was first read, so the cache is returned without it.
func (s *Source) read() (rune, error) {
	if s.ok {
		s.ok = false
		return s.pb, nil
	}
	ch, _, err := s.r.ReadRune()
	return ch, err
}
