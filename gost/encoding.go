/*
gostdecoder — GOST R 56042 payment payload decoder tools
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package gost

import "strings"

// Service data at the start of every payload: 2 bytes format, 4 bytes
// version, 1 byte encoding, 1 byte field separator.
const (
	FormatTag      = "ST"
	Version        = "0001"
	HeaderLen      = 8
	EncodingIndex  = 6
	SeparatorIndex = 7

	// KeyValueSeparator splits a field into key and value. It is fixed and
	// unrelated to the separator declared in the header.
	KeyValueSeparator byte = '='
)

// Encoding is the character set declared by header byte 6.
type Encoding byte

const (
	Windows1251 Encoding = '1'
	UTF8        Encoding = '2'
	KOI8R       Encoding = '3'
)

var encodings = []Encoding{Windows1251, UTF8, KOI8R}

// EncodingFromSelector maps a header selector byte to its Encoding.
func EncodingFromSelector(b byte) (Encoding, bool) {
	for _, e := range encodings {
		if byte(e) == b {
			return e, true
		}
	}
	return 0, false
}

// Label is the WHATWG encoding label understood by charset lookups.
func (e Encoding) Label() string {
	switch e {
	case Windows1251:
		return "windows-1251"
	case KOI8R:
		return "koi8-r"
	default:
		return "utf-8"
	}
}

func (e Encoding) String() string {
	switch e {
	case Windows1251:
		return "WIN1251"
	case UTF8:
		return "UTF8"
	case KOI8R:
		return "KOI8-R"
	default:
		return "unknown"
	}
}

// SupportedEncodings lists the accepted selectors, e.g. "1=WIN1251,2=UTF8,3=KOI8-R".
func SupportedEncodings() string {
	parts := make([]string, 0, len(encodings))
	for _, e := range encodings {
		parts = append(parts, string(rune(e))+"="+e.String())
	}
	return strings.Join(parts, ",")
}
