/*
Copyright 2013 Tamás Gulácsi

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

// Package text converts the input and output of the justifier between UTF-8 and other charsets.
package text

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownEncoding is returned by Lookup for unknown charset names.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Lookup returns the encoding.Encoding for the name of the charset.
//
// The empty name and UTF-8 return a nil Encoding, which means UTF-8 for NewReader and NewWriter.
//
// Knows the WHATWG names (ISO8859 family, KOI8, Windows and Mac codepages, Asian codepages),
// and the DOS codepages (cp437, cp850 ...).
// ISO-8859-1 is really ISO-8859-1, not Windows-1252.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
	if key == "" || key == "utf8" {
		return nil, nil
	}
	if enc, ok := aliases[key]; ok {
		return enc, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
	}
	return enc, nil
}

var aliases = map[string]encoding.Encoding{
	"iso88591": charmap.ISO8859_1, "latin1": charmap.ISO8859_1, "l1": charmap.ISO8859_1,
	"cp437": charmap.CodePage437, "ibm437": charmap.CodePage437,
	"cp850": charmap.CodePage850, "ibm850": charmap.CodePage850,
	"cp852": charmap.CodePage852, "ibm852": charmap.CodePage852,
	"cp855": charmap.CodePage855, "ibm855": charmap.CodePage855,
	"cp858": charmap.CodePage858, "ibm858": charmap.CodePage858,
	"cp862": charmap.CodePage862, "ibm862": charmap.CodePage862,
	"cp866": charmap.CodePage866,
	"win1250": charmap.Windows1250, "win1251": charmap.Windows1251,
	"win1252": charmap.Windows1252, "win1253": charmap.Windows1253,
	"win1254": charmap.Windows1254, "win1255": charmap.Windows1255,
	"win1256": charmap.Windows1256, "win1257": charmap.Windows1257,
	"win1258": charmap.Windows1258, "win874": charmap.Windows874,
	"mac": charmap.Macintosh, "maccyrillic": charmap.MacintoshCyrillic,
}

// NFC returns s in Unicode Normalization Form C,
// so precomposable combining sequences count as one rune.
func NFC(s string) string { return norm.NFC.String(s) }

// NewNFCReader returns a reader which normalizes r to NFC.
func NewNFCReader(r io.Reader) io.Reader { return norm.NFC.Reader(r) }
