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
	"errors"
	"strings"

	"github.com/stephenlclarke/gostdecoder/gost"
)

var (
	ErrTruncated       = errors.New("payload shorter than header")
	ErrFormat          = errors.New("unknown payload format")
	ErrVersion         = errors.New("unsupported payload version")
	ErrEncoding        = errors.New("unknown encoding selector")
	ErrNoFields        = errors.New("no payment fields")
	ErrMissingRequired = errors.New("missing required fields")

	// ErrUndecodable marks a single field whose bytes are invalid in the
	// declared encoding. The field is dropped and the parse continues.
	ErrUndecodable = errors.New("field not decodable")
)

// MissingFieldsError lists the required requisites absent from a strict parse.
type MissingFieldsError struct {
	Missing []gost.PaymentField
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return ErrMissingRequired.Error() + ": " + strings.Join(names, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingRequired
}
