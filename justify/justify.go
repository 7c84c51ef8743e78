// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package justify re-flows text into lines of exactly the same number of runes.
//
// Words (runs of non-space runes) are packed greedily onto each line,
// and the spaces between them are stretched to fill the line.
// Words longer than the line are split into line-wide chunks.
//
// Width is measured in Unicode code points (runes), not bytes, display cells or grapheme clusters.
package justify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWidth is returned for line widths less than 1.
var ErrInvalidWidth = errors.New("invalid line width")

// Transform re-flows input into lines of exactly width runes each, separated by \n.
// No newline is appended after the last line.
//
// All whitespace in input is treated as word separator, so paragraphs are merged.
// Use TransformParagraphs to keep them apart.
//
// Empty input results in empty output, whatever the width is.
func Transform(input string, width int) (string, error) {
	if input == "" {
		return "", nil
	}
	if width < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	var sb strings.Builder
	sb.Grow(len(input) + len(input)/4)
	transform(&sb, input, width)
	return sb.String(), nil
}

// MustTransform is like Transform, but panics on error.
func MustTransform(input string, width int) string {
	s, err := Transform(input, width)
	if err != nil {
		panic(err)
	}
	return s
}

func transform(sb *strings.Builder, input string, width int) {
	tz := newTokenizer(input)
	var buf []token
	for first := true; ; first = false {
		if _, ok := tz.peek(); !ok {
			return
		}
		if !first {
			sb.WriteByte('\n')
		}
		b := fit(tz, width, buf)
		buf = b.tokens
		if len(b.tokens) != 0 {
			writeLine(sb, input, b, width)
			continue
		}

		// Not even one word fits, split it.
		tok, ok := tz.peek()
		if !ok {
			panic("justify: no token left to split")
		}
		splitWord(sb, tok.text(input), width)
		tz.next()
	}
}

// TransformParagraphs justifies each paragraph of input separately.
//
// Paragraphs are separated by blank (whitespace-only) lines in input,
// and by exactly one empty line in the output.
func TransformParagraphs(input string, width int) (string, error) {
	if input == "" {
		return "", nil
	}
	if width < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	var sb strings.Builder
	sb.Grow(len(input) + len(input)/4)
	for _, p := range paragraphs(input) {
		if sb.Len() != 0 {
			sb.WriteString("\n\n")
		}
		transform(&sb, p, width)
	}
	return sb.String(), nil
}

// paragraphs returns the non-blank paragraphs of s.
func paragraphs(s string) []string {
	var pp []string
	start := -1
	for lineStart := 0; lineStart < len(s); {
		lineEnd := strings.IndexByte(s[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(s)
		} else {
			lineEnd += lineStart
		}
		if strings.TrimSpace(s[lineStart:lineEnd]) == "" {
			if start >= 0 {
				pp = append(pp, s[start:lineStart])
				start = -1
			}
		} else if start < 0 {
			start = lineStart
		}
		lineStart = lineEnd + 1
	}
	if start >= 0 {
		pp = append(pp, s[start:])
	}
	return pp
}
