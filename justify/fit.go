// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package justify

// batch is the set of tokens placed on one line.
// total is the sum of their rune counts, without separators.
type batch struct {
	tokens []token
	total  int
}

// fit consumes tokens from tz as long as they fit into maxWidth,
// reserving one separator space after each accepted token.
//
// The first token that does not fit is left unconsumed,
// so the returned batch is empty iff the next token alone is wider than maxWidth
// (or there are no more tokens).
// The tokens slice of buf is reused.
func fit(tz *tokenizer, maxWidth int, buf []token) batch {
	b := batch{tokens: buf[:0]}
	var check int
	for {
		tok, ok := tz.peek()
		if !ok || check+tok.n > maxWidth {
			return b
		}
		tz.next()
		b.tokens = append(b.tokens, tok)
		b.total += tok.n
		check += tok.n + 1
	}
}
