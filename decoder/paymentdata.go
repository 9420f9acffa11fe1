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
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/stephenlclarke/gostdecoder/gost"
)

// PaymentData is the decoded field table. Keys are stored lowercased; values
// keep their original case. It is never modified after construction.
type PaymentData struct {
	fields map[string]string
}

// NewPaymentData copies fields, folding every key to lowercase.
func NewPaymentData(fields map[string]string) *PaymentData {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[strings.ToLower(k)] = v
	}
	return &PaymentData{fields: cp}
}

// Get looks up a catalog field.
func (pd *PaymentData) Get(f gost.PaymentField) (string, bool) {
	return pd.Lookup(f.Key())
}

// Lookup finds any key, catalog or custom, ignoring case.
func (pd *PaymentData) Lookup(key string) (string, bool) {
	if pd == nil {
		return "", false
	}
	v, ok := pd.fields[strings.ToLower(key)]
	return v, ok
}

func (pd *PaymentData) Len() int {
	if pd == nil {
		return 0
	}
	return len(pd.fields)
}

// Keys returns the lowercased keys in sorted order.
func (pd *PaymentData) Keys() []string {
	if pd == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(pd.fields))
}

// Fields returns a copy of the underlying map.
func (pd *PaymentData) Fields() map[string]string {
	if pd == nil {
		return map[string]string{}
	}
	return maps.Clone(pd.fields)
}

// Missing returns those of fields that are absent, preserving their order.
func (pd *PaymentData) Missing(fields ...gost.PaymentField) []gost.PaymentField {
	var out []gost.PaymentField
	for _, f := range fields {
		if _, ok := pd.Get(f); !ok {
			out = append(out, f)
		}
	}
	return out
}

func (pd *PaymentData) MarshalJSON() ([]byte, error) {
	return json.Marshal(pd.Fields())
}

func (pd *PaymentData) MarshalYAML() (any, error) {
	return pd.Fields(), nil
}
