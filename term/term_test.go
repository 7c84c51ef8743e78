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

package term_test

import (
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/tgulacsi/justify/term"
)

func TestGetLangEncodingName(t *testing.T) {
	for _, inOut := range [][2]string{
		{"", ""},
		{"C", ""},
		{"hu_HU.UTF-8", "utf-8"},
		{"hu_HU.ISO-8859-2", "iso-8859-2"},
		{"sr_RS.uTf-8@latin", "utf-8"},
	} {
		if got := term.GetLangEncodingName(inOut[0]); got != inOut[1] {
			t.Errorf("%q got %q, wanted %q", inOut[0], got, inOut[1])
		}
	}
}

func TestLocale(t *testing.T) {
	env := map[string]string{"LANG": "en_US.UTF-8", "LC_CTYPE": "hu_HU.ISO-8859-2"}
	if got := term.Locale(func(k string) string { return env[k] }); got != "hu_HU.ISO-8859-2" {
		t.Errorf("got %q, wanted LC_CTYPE", got)
	}
	env["LC_ALL"] = "C"
	if got := term.Locale(func(k string) string { return env[k] }); got != "C" {
		t.Errorf("got %q, wanted LC_ALL", got)
	}
}

func TestLocaleEncoding(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "hu_HU.ISO-8859-2")
	enc, err := term.LocaleEncoding()
	if err != nil {
		t.Fatal(err)
	}
	if enc != charmap.ISO8859_2 {
		t.Errorf("got %v, wanted ISO8859-2", enc)
	}

	t.Setenv("LANG", "C.UTF-8")
	if enc, err = term.LocaleEncoding(); err != nil || enc != nil {
		t.Errorf("got %v, %v; wanted nil", enc, err)
	}
}
