// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package justify

import (
	"io"
	"strings"
)

// NewReader returns an io.Reader which reads the whole of r on the first Read,
// and returns its Transform-ed version.
//
// Errors reading r, and ErrInvalidWidth, are returned by Read.
func NewReader(r io.Reader, width int) io.Reader {
	return &reader{r: r, width: width, transform: Transform}
}

// NewParagraphReader is like NewReader, but uses TransformParagraphs.
func NewParagraphReader(r io.Reader, width int) io.Reader {
	return &reader{r: r, width: width, transform: TransformParagraphs}
}

type reader struct {
	r         io.Reader
	transform func(string, int) (string, error)
	out       *strings.Reader
	err       error
	width     int
}

func (jr *reader) Read(p []byte) (int, error) {
	if jr.err != nil {
		return 0, jr.err
	}
	if jr.out == nil {
		b, err := io.ReadAll(jr.r)
		if err != nil {
			jr.err = err
			return 0, err
		}
		s, err := jr.transform(string(b), jr.width)
		if err != nil {
			jr.err = err
			return 0, err
		}
		jr.out = strings.NewReader(s)
	}
	return jr.out.Read(p)
}
