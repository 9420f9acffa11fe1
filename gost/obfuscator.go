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

import (
	"fmt"
	"log/slog"
	"sync"
)

// Obfuscator replaces values of sensitive payment fields with stable aliases.
// It is safe for concurrent use.
type Obfuscator struct {
	enabled  bool                  // global enable/disable flag
	fields   map[PaymentField]bool // fields to rewrite
	logger   *slog.Logger          // first-use events, may be nil
	mu       sync.Mutex            // protects aliasMap and counter
	aliasMap map[string]string     // "key=value" -> alias
	counter  map[PaymentField]int  // per-field, for zero-padded suffixes
}

// CreateObfuscator constructs an Obfuscator for the given fields.
// If enabled is false, Value always returns its input unchanged.
func CreateObfuscator(fields []PaymentField, enabled bool, logger *slog.Logger) *Obfuscator {
	set := make(map[PaymentField]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}

	return &Obfuscator{
		enabled:  enabled,
		fields:   set,
		logger:   logger,
		aliasMap: make(map[string]string),
		counter:  make(map[PaymentField]int),
	}
}

// Value returns the alias for a sensitive key/value pair, or value itself
// when the key is not sensitive or obfuscation is disabled.
func (o *Obfuscator) Value(key, value string) string {
	if o == nil || !o.enabled {
		return value
	}

	f, known := LookupField(key)
	if !known || !o.fields[f] {
		return value
	}

	pair := f.Key() + "=" + value

	o.mu.Lock()
	defer o.mu.Unlock()

	alias, exists := o.aliasMap[pair]
	if !exists {
		o.counter[f]++
		alias = fmt.Sprintf("%s%04d", f, o.counter[f])
		o.aliasMap[pair] = alias

		if o.logger != nil {
			o.logger.Info("first use", "field", f.String(), "alias", alias)
		}
	}

	return alias
}
