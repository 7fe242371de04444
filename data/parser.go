// Copyright (C) 2026 The jdata authors. All Rights Reserved.

package data

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/jdatakit/jdata"
)

// Single-letter tokens of the numeric-type-suffix extension.
const (
	suffixInt8    = 'B'
	suffixInt16   = 'S'
	suffixInt32   = 'I'
	suffixInt64   = 'L'
	suffixFloat32 = 'F'
	suffixFloat64 = 'D'
)

// Parse parses a JSON document from r and returns it as a Document.
//
// An object-rooted input yields its members; an array-rooted input yields a
// single entry wrapping the array under the configured array key. An empty
// or all-whitespace input yields an empty document. Anything else, including
// trailing input after the document, is an error of one of the types defined
// in package jdata.
//
// Parse does not close r; the caller owns the stream.
func Parse(r io.Reader, opts *Options) (Document, error) {
	p := &parser{src: jdata.NewSource(r), opts: opts}
	return p.parse()
}

// ParseString parses a JSON document from s.
func ParseString(s string, opts *Options) (Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseBytes parses a JSON document from b.
func ParseBytes(b []byte, opts *Options) (Document, error) {
	return Parse(bytes.NewReader(b), opts)
}

// ParseFile parses a JSON document from the named file. The file is opened
// by ParseFile and closed again before it returns, on both the success and
// the error path.
func ParseFile(path string, opts *Options) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}

// A parser holds the transient state of one parse call: the character source
// with its line counter and pushback slot, and the configuration in effect.
// It is not safe for concurrent use.
type parser struct {
	src  *jdata.Source
	opts *Options
}

func (p *parser) parse() (Document, error) {
	ch, err := p.next()
	if err == io.EOF {
		return p.opts.newDocument(), nil
	} else if err != nil {
		return nil, err
	}

	var d Document
	switch ch {
	case '{':
		d, err = p.parseObject()
	case '[':
		vals, aerr := p.parseArray()
		if aerr != nil {
			return nil, aerr
		}
		d = p.opts.newDocument()
		d.Add(p.opts.arrayKey(), vals)
	default:
		return nil, p.unexpected(ch)
	}
	if err != nil {
		return nil, err
	}

	// Only whitespace (and comments, if enabled) may follow the document.
	if ch, err := p.next(); err == nil {
		return nil, p.unexpected(ch)
	} else if err != io.EOF {
		return nil, err
	}
	return d, nil
}

// parseObject parses the members of an object into a fresh document.
// Precondition: the opening brace has been consumed.
func (p *parser) parseObject() (Document, error) {
	d := p.opts.newDocument()

	ch, err := p.next1()
	if err != nil {
		return nil, err
	}
	if ch == '}' {
		return d, nil
	}
	for {
		// A member starts with its quoted key...
		if ch != '"' {
			return nil, p.unexpected(ch)
		}
		key, err := p.readString()
		if err != nil {
			return nil, err
		}

		// ...followed by a colon and the value.
		if ch, err = p.next1(); err != nil {
			return nil, err
		} else if ch != ':' {
			return nil, p.unexpected(ch)
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		// Add the entry only once it is complete, so that storage which
		// copies on insert observes the final value.
		d.AddEntry(&Entry{Key: key, Value: val})

		if ch, err = p.next1(); err != nil {
			return nil, err
		}
		if ch == '}' {
			return d, nil
		} else if ch != ',' {
			return nil, p.unexpected(ch)
		}
		if ch, err = p.next1(); err != nil {
			return nil, err
		}
	}
}

// parseValue parses a single value of any type.
func (p *parser) parseValue() (any, error) {
	ch, err := p.next1()
	if err != nil {
		return nil, err
	}
	switch ch {
	case '"':
		return p.readString()
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	default:
		p.src.Unread(ch)
		return p.readToken()
	}
}

// parseArray parses the elements of an array.
// Precondition: the opening bracket has been consumed.
func (p *parser) parseArray() ([]any, error) {
	vals := []any{}

	ch, err := p.next1()
	if err != nil {
		return nil, err
	}
	if ch == ']' {
		return vals, nil
	}
	p.src.Unread(ch)
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)

		if ch, err = p.next1(); err != nil {
			return nil, err
		}
		if ch == ']' {
			return vals, nil
		} else if ch != ',' {
			return nil, p.unexpected(ch)
		}
	}
}

// readString consumes a string value up to its closing quotation mark and
// returns the decoded text. The opening mark has already been consumed.
// An unescaped newline is an error if the configuration rejects them.
func (p *parser) readString() (string, error) {
	var sb strings.Builder
	var esc bool
	for {
		ch, err := p.src.NextRaw()
		if err == io.EOF {
			return "", &jdata.UnexpectedEndError{Line: p.src.Line()}
		} else if err != nil {
			return "", err
		}

		if esc {
			sb.WriteRune(ch)
			esc = false
			continue
		}
		switch ch {
		case '\\':
			sb.WriteRune(ch)
			esc = true
		case '"':
			dec, err := jdata.Unquote(sb.String())
			if err != nil {
				return "", &jdata.InvalidValueError{Token: sb.String(), Line: p.src.Line(), Err: err}
			}
			return dec, nil
		case '\n':
			if p.opts.rejectStringNewlines() {
				return "", p.unexpected(ch)
			}
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}
}

// readToken collects a raw token up to the next structural character and
// converts it to a boolean, nil, or numeric value. The terminating character
// is pushed back for the caller.
func (p *parser) readToken() (any, error) {
	var sb strings.Builder
	for {
		ch, err := p.src.Next()
		if err == io.EOF {
			return nil, &jdata.UnexpectedEndError{Line: p.src.Line()}
		} else if err != nil {
			return nil, err
		}

		if ch == ',' || ch == '}' || ch == ']' || (ch == '/' && p.opts.comments()) {
			p.src.Unread(ch)
			tok := sb.String()
			if tok == "" {
				return nil, p.unexpected(ch)
			}
			return p.decodeToken(tok)
		}
		sb.WriteRune(ch)
	}
}

// decodeToken converts a raw token to its value. The constants true, false,
// and null are recognized case-insensitively; everything else must be a
// number, with an optional type suffix if the extension is enabled.
func (p *parser) decodeToken(tok string) (any, error) {
	if strings.EqualFold(tok, "true") {
		return true, nil
	} else if strings.EqualFold(tok, "false") {
		return false, nil
	} else if strings.EqualFold(tok, "null") {
		return nil, nil
	}

	if p.opts.numberSuffixes() && len(tok) > 1 {
		if v, ok, err := decodeSuffixed(tok); ok {
			if err != nil {
				return nil, &jdata.InvalidValueError{Token: tok, Line: p.src.Line(), Err: err}
			}
			return v, nil
		}
	}

	v, err := decodeNumber(tok)
	if err != nil {
		return nil, &jdata.InvalidValueError{Token: tok, Line: p.src.Line(), Err: err}
	}
	return v, nil
}

// next returns the next structural character, consuming whitespace and, if
// the extension is enabled, comments. At the end of input it returns io.EOF.
func (p *parser) next() (rune, error) {
	for {
		ch, err := p.src.Next()
		if err != nil {
			return 0, err
		}
		if ch == '/' && p.opts.comments() {
			if err := p.comment(); err != nil {
				return 0, err
			}
			continue
		}
		return ch, nil
	}
}

// next1 is next inside an open structure, where running out of input is an
// UnexpectedEndError rather than io.EOF.
func (p *parser) next1() (rune, error) {
	ch, err := p.next()
	if err == io.EOF {
		return 0, &jdata.UnexpectedEndError{Line: p.src.Line()}
	}
	return ch, err
}

// comment consumes one comment whose leading slash has been read, and
// delivers its body to the configured callback. An error from the callback
// aborts the parse.
func (p *parser) comment() error {
	ch, err := p.src.NextRaw()
	if err == io.EOF {
		return &jdata.UnexpectedEndError{Line: p.src.Line()}
	} else if err != nil {
		return err
	}

	var body string
	switch ch {
	case '/':
		body, err = p.src.ReadLine()
	case '*':
		body, err = p.src.ReadBlockComment()
	default:
		return p.unexpected(ch)
	}
	if err != nil {
		return err
	}
	if fn := p.opts.commentFunc(); fn != nil {
		return fn(body)
	}
	return nil
}

func (p *parser) unexpected(ch rune) error {
	return &jdata.UnexpectedCharError{Char: ch, Line: p.src.Line()}
}
