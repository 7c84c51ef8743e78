// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package justify

import (
	"strings"
	"testing"
)

func TestComputeGaps(t *testing.T) {
	for _, tc := range []struct {
		n, total, width int
		want            Gaps
	}{
		{0, 0, 10, Gaps{}},
		{1, 6, 12, Gaps{Tail: 6}},
		{1, 4, 4, Gaps{}},
		{2, 8, 12, Gaps{Body: 4, Tail: 4}},
		{2, 6, 7, Gaps{Body: 1, Tail: 1}},
		{3, 6, 10, Gaps{Body: 2, Tail: 2}},
		{3, 7, 10, Gaps{Body: 2, Tail: 1}},
		{4, 6, 13, Gaps{Body: 3, Tail: 1}},
		{4, 4, 10, Gaps{Body: 2, Tail: 2}},
		{4, 5, 10, Gaps{Body: 1, Tail: 3}},
		{5, 8, 16, Gaps{Body: 2, Tail: 2}},
	} {
		got := ComputeGaps(tc.n, tc.total, tc.width)
		if got != tc.want {
			t.Errorf("ComputeGaps(%d, %d, %d): got %+v, wanted %+v", tc.n, tc.total, tc.width, got, tc.want)
		}
		if tc.n >= 2 {
			if w := got.Body*(tc.n-2) + got.Tail + tc.total; w != tc.width {
				t.Errorf("ComputeGaps(%d, %d, %d): %+v results in width %d", tc.n, tc.total, tc.width, got, w)
			}
		}
	}
}

func TestComputeGapsExhaustive(t *testing.T) {
	for width := 1; width < 40; width++ {
		for n := 2; 2*n-1 <= width; n++ {
			for total := n; total+n-1 <= width; total++ {
				g := ComputeGaps(n, total, width)
				if g.Body < 1 || g.Tail < 1 {
					t.Errorf("ComputeGaps(%d, %d, %d): %+v has an empty gap", n, total, width, g)
				}
				if w := g.Body*(n-2) + g.Tail + total; w != width {
					t.Errorf("ComputeGaps(%d, %d, %d): %+v results in width %d", n, total, width, g, w)
				}
			}
		}
	}
}

func TestWriteLine(t *testing.T) {
	const s = "aa b ccc d"
	tz := newTokenizer(s)
	b := fit(tz, 14, nil)
	if len(b.tokens) != 4 || b.total != 7 {
		t.Fatalf("got %d tokens (%d), wanted 4 (7)", len(b.tokens), b.total)
	}
	var sb strings.Builder
	writeLine(&sb, s, b, 14)
	if got, want := sb.String(), "aa   b   ccc d"; got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}
}

func TestWriteSpaces(t *testing.T) {
	for _, n := range []int{0, 1, len(spaces) - 1, len(spaces), len(spaces) + 1, 3 * len(spaces)} {
		var sb strings.Builder
		writeSpaces(&sb, n)
		if got := sb.String(); got != strings.Repeat(" ", n) {
			t.Errorf("%d: got %d spaces", n, len(got))
		}
	}
}
