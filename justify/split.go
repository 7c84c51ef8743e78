// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package justify

import "strings"

// splitWord writes word as width-rune chunks, one per line.
// The last chunk is padded with spaces to width.
//
// Chunks end on rune boundaries, but may cut grapheme clusters in half.
func splitWord(sb *strings.Builder, word string, width int) {
	for first := true; word != ""; first = false {
		end, n := runeOffset(word, width)
		if end == 0 {
			panic("justify: no rune boundary in " + word)
		}
		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(word[:end])
		writeSpaces(sb, width-n)
		word = word[end:]
	}
}

// runeOffset returns the byte offset right after the first limit runes of s,
// and the number of runes before that offset (which is less than limit only if s is shorter).
func runeOffset(s string, limit int) (offset, n int) {
	for i := range s {
		if n == limit {
			return i, n
		}
		n++
	}
	return len(s), n
}
