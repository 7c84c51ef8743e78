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
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewWriter returns a writer which encodes UTF-8 to the given encoding.
// The returned Writer must be Closed to flush its buffer.
//
// If enc is nil, then only an UTF-8-enforcing replacement writer is used.
// Runes not representable in enc are replaced by the encoding's replacement byte.
func NewWriter(w io.Writer, enc encoding.Encoding) *transform.Writer {
	if enc == nil || enc == encoding.Replacement {
		return transform.NewWriter(w, encoding.Replacement.NewEncoder())
	}
	return transform.NewWriter(w,
		transform.Chain(encoding.Replacement.NewEncoder(), encoding.ReplaceUnsupported(enc.NewEncoder())))
}
