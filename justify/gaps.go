// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package justify

import "strings"

// Gaps describes the padding of one justified line.
//
// Body is the number of spaces after each word but the last two,
// Tail is the number of spaces between the last two words,
// or after the word when it is alone on the line.
type Gaps struct {
	Body, Tail int
}

// ComputeGaps returns the gaps for n words with total runes on a width wide line.
//
// The surplus which cannot be distributed evenly goes into the tail gap,
// so Body*(n-2) + Tail + total == width for n >= 2, and Tail == width-total for n == 1.
//
// It requires total+n-1 <= width.
func ComputeGaps(n, total, width int) Gaps {
	switch n {
	case 0:
		return Gaps{}
	case 1:
		return Gaps{Tail: width - total}
	}
	gaps := n - 1
	free := width - total
	rem := free % gaps
	div := gaps
	if rem > 0 && gaps > 1 {
		div = gaps - 1
	}
	g := Gaps{Body: (free - rem) / div}
	// The tail takes what the body gaps left, which is rem when (free-rem) is divisible by div.
	g.Tail = free - g.Body*(gaps-1)
	return g
}

// writeLine renders the words of b, separated by the computed gaps.
func writeLine(sb *strings.Builder, s string, b batch, width int) {
	g := ComputeGaps(len(b.tokens), b.total, width)
	if len(b.tokens) == 1 {
		sb.WriteString(b.tokens[0].text(s))
		writeSpaces(sb, g.Tail)
		return
	}
	last := len(b.tokens) - 1
	for i, tok := range b.tokens {
		sb.WriteString(tok.text(s))
		switch {
		case i < last-1:
			writeSpaces(sb, g.Body)
		case i == last-1:
			writeSpaces(sb, g.Tail)
		}
	}
}

const spaces = "                                                                "

func writeSpaces(sb *strings.Builder, n int) {
	for n > len(spaces) {
		sb.WriteString(spaces)
		n -= len(spaces)
	}
	if n > 0 {
		sb.WriteString(spaces[:n])
	}
}
