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
	"bytes"
	"fmt"

	"github.com/stephenlclarke/gostdecoder/gost"
)

// Header is the 8 bytes of service data that open every payload.
type Header struct {
	Format    string
	Version   string
	Encoding  gost.Encoding
	Separator byte
}

// ParseHeader validates the service data. Checks run in wire order so the
// first failing gate is the one reported.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < gost.HeaderLen {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}

	format := data[0:2]
	if !bytes.Equal(format, []byte(gost.FormatTag)) {
		return Header{}, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	version := data[2:gost.EncodingIndex]
	if !bytes.Equal(version, []byte(gost.Version)) {
		return Header{}, fmt.Errorf("%w: %q", ErrVersion, version)
	}

	enc, ok := gost.EncodingFromSelector(data[gost.EncodingIndex])
	if !ok {
		return Header{}, fmt.Errorf("%w: %q", ErrEncoding, data[gost.EncodingIndex])
	}

	return Header{
		Format:    string(format),
		Version:   string(version),
		Encoding:  enc,
		Separator: data[gost.SeparatorIndex],
	}, nil
}
