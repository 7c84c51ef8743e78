// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package audit checks justified text for lines which will not look aligned on a terminal.
//
// The justifier counts runes, so a line of East Asian wide characters, emojis
// or combining marks has the right rune count but not the right display width,
// and a grapheme cluster may be split between two lines.
package audit

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Kind of a Finding.
type Kind uint8

const (
	// KindWidth means the rune count of the line differs from the width.
	KindWidth Kind = iota + 1
	// KindDisplay means the display width of the line differs from the width.
	KindDisplay
	// KindSplitCluster means the line starts inside the grapheme cluster started on the previous line.
	KindSplitCluster
)

func (k Kind) String() string {
	switch k {
	case KindWidth:
		return "width"
	case KindDisplay:
		return "display"
	case KindSplitCluster:
		return "split-cluster"
	}
	return "unknown"
}

// Finding is a problem found in one line.
type Finding struct {
	Text      string
	Line      int
	Runes     int
	Cells     int
	Graphemes int
	Kind      Kind
}

// Checker checks justified text.
type Checker struct {
	// EastAsian makes ambiguous width runes two cells wide.
	EastAsian bool
}

// Check the lines of out with the default Checker.
func Check(out string, width int) []Finding { return Checker{}.Check(out, width) }

// Check the lines of out, which should be exactly width runes wide each.
// Empty lines separate paragraphs, and are not checked.
// Line numbers of the findings are zero based.
func (c Checker) Check(out string, width int) []Finding {
	if out == "" {
		return nil
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = c.EastAsian

	var ff []Finding
	var prev string
	for i, line := range strings.Split(out, "\n") {
		if line == "" {
			prev = ""
			continue
		}
		f := Finding{
			Line: i, Text: line,
			Runes:     utf8.RuneCountInString(line),
			Cells:     cond.StringWidth(line),
			Graphemes: uniseg.GraphemeClusterCount(line),
		}
		if f.Runes != width {
			f.Kind = KindWidth
			ff = append(ff, f)
		}
		if f.Cells != width {
			f.Kind = KindDisplay
			ff = append(ff, f)
		}
		if i != 0 && splitsCluster(prev, line) {
			f.Kind = KindSplitCluster
			ff = append(ff, f)
		}
		prev = line
	}
	return ff
}

// splitsCluster reports whether the last rune of prev and the first rune of next
// belong to the same grapheme cluster.
func splitsCluster(prev, next string) bool {
	last, n := utf8.DecodeLastRuneInString(prev)
	first, m := utf8.DecodeRuneInString(next)
	if n == 0 || m == 0 || last == ' ' || first == ' ' {
		return false
	}
	return uniseg.GraphemeClusterCount(string(last)+string(first)) == 1
}
