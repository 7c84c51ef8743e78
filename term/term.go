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

// Package term finds the charset of the terminal from the locale environment.
package term

import (
	"os"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/tgulacsi/justify/text"
)

// LocaleEncoding returns the charset of the locale (LC_ALL, LC_CTYPE or LANG, in this order),
// or nil (meaning UTF-8) if the locale does not name one.
func LocaleEncoding() (encoding.Encoding, error) {
	return text.Lookup(GetLangEncodingName(Locale(os.Getenv)))
}

// Locale returns the first non-empty of LC_ALL, LC_CTYPE and LANG.
func Locale(getenv func(string) string) string {
	for _, k := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// GetLangEncodingName returns the charset part of a locale name (language_TERRITORY.charset@modifier),
// in lower case, or the empty string if there is none.
func GetLangEncodingName(lang string) string {
	i := strings.IndexByte(lang, '.')
	if i < 0 {
		return ""
	}
	lang = lang[i+1:]
	if i = strings.IndexByte(lang, '@'); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}
