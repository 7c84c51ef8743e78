// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package audit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tgulacsi/justify/audit"
	"github.com/tgulacsi/justify/justify"
)

func TestCheckClean(t *testing.T) {
	for _, tc := range []struct {
		input string
		width int
	}{
		{"", 3},
		{"consectetur", 4},
		{"Съешь ещё этих мягких французских булок, да выпей чаю", 12},
		{"árvíztűrő tükörfúrógép", 9},
	} {
		out := justify.MustTransform(tc.input, tc.width)
		if ff := audit.Check(out, tc.width); len(ff) != 0 {
			t.Errorf("%q/%d: %+v", tc.input, tc.width, ff)
		}
	}
}

func TestCheckWide(t *testing.T) {
	out := justify.MustTransform("日本 語", 3)
	got := audit.Check(out, 3)
	want := []audit.Finding{
		{Line: 0, Text: "日本 ", Runes: 3, Cells: 5, Graphemes: 3, Kind: audit.KindDisplay},
		{Line: 1, Text: "語  ", Runes: 3, Cells: 4, Graphemes: 3, Kind: audit.KindDisplay},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestCheckWidth(t *testing.T) {
	got := audit.Check("abc\nab", 3)
	want := []audit.Finding{
		{Line: 1, Text: "ab", Runes: 2, Cells: 2, Graphemes: 2, Kind: audit.KindWidth},
		{Line: 1, Text: "ab", Runes: 2, Cells: 2, Graphemes: 2, Kind: audit.KindDisplay},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestCheckSplitCluster(t *testing.T) {
	// e + COMBINING ACUTE ACCENT is split between the lines
	out := justify.MustTransform("abe\u0301cd", 3)
	if out != "abe\n\u0301cd" {
		t.Fatalf("got %q", out)
	}
	var found bool
	for _, f := range audit.Check(out, 3) {
		t.Logf("%+v %s", f, f.Kind)
		if f.Kind == audit.KindSplitCluster {
			if f.Line != 1 {
				t.Errorf("split cluster found at line %d, wanted 1", f.Line)
			}
			found = true
		}
	}
	if !found {
		t.Error("split cluster not found")
	}

	for _, f := range audit.Check(justify.MustTransform("abcdef", 3), 3) {
		t.Errorf("unexpected finding %+v", f)
	}
}
