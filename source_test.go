// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package jdata_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jdatakit/jdata"
)

func mustNext(t *testing.T, s *jdata.Source) rune {
	t.Helper()
	ch, err := s.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	return ch
}

func TestSourceNext(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   \t\r\n  ", ""},
		{"abc", "abc"},
		{"  a\tb\nc  ", "abc"},
		{"\x00\x01a\x1fb", "ab"}, // control characters are whitespace
		{"{ \"a\" : 1 }", `{"a":1}`},
	}
	for _, test := range tests {
		var got []rune
		s := jdata.NewSource(strings.NewReader(test.input))
		for {
			ch, err := s.Next()
			if err == io.EOF {
				break
			} else if err != nil {
				t.Fatalf("Next failed: %v", err)
			}
			got = append(got, ch)
		}
		if diff := cmp.Diff(test.want, string(got)); diff != "" {
			t.Errorf("Input: %#q (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestSourceUnread(t *testing.T) {
	s := jdata.NewSource(strings.NewReader("abc"))

	if ch := mustNext(t, s); ch != 'a' {
		t.Errorf("Next: got %q, want a", ch)
	}
	s.Unread('a')
	if ch := mustNext(t, s); ch != 'a' {
		t.Errorf("Next after Unread: got %q, want a", ch)
	}

	// The cache holds one rune; the last pushback wins.
	s.Unread('x')
	s.Unread('y')
	if ch := mustNext(t, s); ch != 'y' {
		t.Errorf("Next after double Unread: got %q, want y", ch)
	}
	if ch := mustNext(t, s); ch != 'b' {
		t.Errorf("Next: got %q, want b", ch)
	}
}

func TestSourceLine(t *testing.T) {
	s := jdata.NewSource(strings.NewReader("a\nb\n\n  c"))
	if got := s.Line(); got != 1 {
		t.Errorf("Line at start: got %d, want 1", got)
	}
	mustNext(t, s) // a
	mustNext(t, s) // b, after one newline
	if got := s.Line(); got != 2 {
		t.Errorf("Line: got %d, want 2", got)
	}
	mustNext(t, s) // c, after two more newlines
	if got := s.Line(); got != 4 {
		t.Errorf("Line: got %d, want 4", got)
	}
}

func TestSourceNextRaw(t *testing.T) {
	s := jdata.NewSource(strings.NewReader(" a\nb"))

	var got []rune
	for {
		ch, err := s.NextRaw()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("NextRaw failed: %v", err)
		}
		got = append(got, ch)
	}
	if diff := cmp.Diff(" a\nb", string(got)); diff != "" {
		t.Errorf("NextRaw (-want, +got)\n%s", diff)
	}
	if s.Line() != 2 {
		t.Errorf("Line: got %d, want 2", s.Line())
	}
}

func TestSourceReadLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
		rest  rune
		line  int
	}{
		{"hello\nx", "hello", 'x', 2},
		{"hello\r\nx", "hello", 'x', 2},
		{"no newline", "no newline", 0, 1},
		{"\nx", "", 'x', 2},
	}
	for _, test := range tests {
		s := jdata.NewSource(strings.NewReader(test.input))
		got, err := s.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine %#q failed: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("ReadLine %#q: got %q, want %q", test.input, got, test.want)
		}
		if s.Line() != test.line {
			t.Errorf("ReadLine %#q: line %d, want %d", test.input, s.Line(), test.line)
		}
		if test.rest != 0 {
			if ch := mustNext(t, s); ch != test.rest {
				t.Errorf("ReadLine %#q: next %q, want %q", test.input, ch, test.rest)
			}
		}
	}
}

func TestSourceReadBlockComment(t *testing.T) {
	tests := []struct {
		input string
		want  string
		line  int
	}{
		{"*/", "", 1},
		{" a comment */x", " a comment ", 1},
		{"one\ntwo\n*/", "one\ntwo\n", 3},
		{"stars ** are / fine **/", "stars ** are / fine *", 1},
	}
	for _, test := range tests {
		s := jdata.NewSource(strings.NewReader(test.input))
		got, err := s.ReadBlockComment()
		if err != nil {
			t.Fatalf("ReadBlockComment %#q failed: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("ReadBlockComment %#q: got %q, want %q", test.input, got, test.want)
		}
		if s.Line() != test.line {
			t.Errorf("ReadBlockComment %#q: line %d, want %d", test.input, s.Line(), test.line)
		}
	}
}

func TestSourceReadBlockCommentUnterminated(t *testing.T) {
	s := jdata.NewSource(strings.NewReader("never\nends *"))
	_, err := s.ReadBlockComment()

	var eerr *jdata.UnexpectedEndError
	if !errors.As(err, &eerr) {
		t.Fatalf("ReadBlockComment: got error %v, want UnexpectedEndError", err)
	}
	if eerr.Line != 2 {
		t.Errorf("Error line: got %d, want 2", eerr.Line)
	}
}
