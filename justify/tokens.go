// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package justify

import (
	"unicode"
	"unicode/utf8"
)

// token is a maximal run of non-space runes in the input,
// referenced by its byte range, with n as its rune count.
type token struct {
	start, end int
	n          int
}

func (t token) text(s string) string { return s[t.start:t.end] }

// tokenizer scans s for tokens lazily, with a one-token lookahead.
type tokenizer struct {
	s      string
	pos    int
	cur    token
	peeked bool
	ok     bool
}

func newTokenizer(s string) *tokenizer { return &tokenizer{s: s} }

// peek returns the next token without consuming it.
func (tz *tokenizer) peek() (token, bool) {
	if !tz.peeked {
		tz.cur, tz.ok = tz.scan()
		tz.peeked = true
	}
	return tz.cur, tz.ok
}

// next consumes the peeked token.
func (tz *tokenizer) next() {
	if !tz.peeked {
		tz.peek()
	}
	tz.peeked = false
}

func (tz *tokenizer) scan() (token, bool) {
	s := tz.s
	i := tz.pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if i == len(s) {
		tz.pos = i
		return token{}, false
	}
	tok := token{start: i}
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += size
		tok.n++
	}
	tok.end = i
	tz.pos = i
	return tok, true
}
