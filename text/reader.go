/*
Copyright 2014 Tamás Gulácsi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package text

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewReader returns a reader which decodes from the given encoding to UTF-8.
//
// If enc is nil, then only an UTF-8-enforcing replacement reader
// (see https://pkg.go.dev/golang.org/x/text/encoding#pkg-variables)
// is used, which replaces invalid bytes with U+FFFD.
func NewReader(r io.Reader, enc encoding.Encoding) *transform.Reader {
	if enc == nil || enc == encoding.Replacement {
		return transform.NewReader(r, encoding.Replacement.NewEncoder())
	}
	return transform.NewReader(r,
		transform.Chain(enc.NewDecoder(), encoding.Replacement.NewEncoder()))
}

// Decode decodes the bytes from enc to UTF-8 (an allocating, convenience version of NewReader).
func Decode(p []byte, enc encoding.Encoding) (string, error) {
	q, err := io.ReadAll(NewReader(bytes.NewReader(p), enc))
	return string(q), err
}
