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
package decoder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/stephenlclarke/gostdecoder/gost"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// TextDecoder turns raw field bytes into text for a declared encoding.
type TextDecoder interface {
	DecodeText(b []byte, enc gost.Encoding) (string, error)
}

// CharsetDecoder resolves encodings through the WHATWG label index.
type CharsetDecoder struct{}

var lookupCharset = charset.Lookup

func (CharsetDecoder) DecodeText(b []byte, enc gost.Encoding) (string, error) {
	if enc.Label() == "utf-8" {
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid utf-8", ErrUndecodable)
		}
		return string(b), nil
	}

	codec, err := resolveCharset(enc)
	if err != nil {
		return "", err
	}

	out, err := codec.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	// The windows-1251 and koi8-r tables map every byte, so this only
	// triggers for codecs swapped in through lookupCharset.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", fmt.Errorf("%w: byte not defined in %s", ErrUndecodable, enc)
	}

	return string(out), nil
}

func resolveCharset(enc gost.Encoding) (encoding.Encoding, error) {
	codec, _ := lookupCharset(enc.Label())
	if codec == nil {
		return nil, fmt.Errorf("%w: no codec for %s", ErrUndecodable, enc.Label())
	}
	return codec, nil
}
