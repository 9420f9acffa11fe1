// gostparser.go
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
	"log/slog"
	"strings"

	"github.com/stephenlclarke/gostdecoder/gost"
)

// ParseMode selects whether the required requisites must be present.
// The zero value is Strict.
type ParseMode int

const (
	Strict ParseMode = iota
	Loose
)

func (m ParseMode) String() string {
	if m == Loose {
		return "loose"
	}
	return "strict"
}

// Parser decodes GOST R 56042 payloads. It holds no mutable state once
// built and may be shared between goroutines.
type Parser struct {
	text    TextDecoder
	logger  *slog.Logger
	ignored map[string]bool
}

type Option func(*Parser)

// WithTextDecoder replaces the charset conversion used for keys and values.
func WithTextDecoder(d TextDecoder) Option {
	return func(p *Parser) {
		if d != nil {
			p.text = d
		}
	}
}

// WithLogger receives a debug record for every dropped field.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIgnoredValues adds values that, compared case-insensitively, are
// treated as absent. "null" is always ignored.
func WithIgnoredValues(values ...string) Option {
	return func(p *Parser) {
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				p.ignored[strings.ToLower(v)] = true
			}
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		text:    CharsetDecoder{},
		logger:  slog.New(slog.DiscardHandler),
		ignored: map[string]bool{"null": true},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultParser = NewParser()

func Parse(data []byte, mode ParseMode) (*PaymentData, bool) {
	return defaultParser.Parse(data, mode)
}

func ParseString(s string, mode ParseMode) (*PaymentData, bool) {
	return defaultParser.ParseString(s, mode)
}

func Decode(data []byte, mode ParseMode) (*PaymentData, error) {
	return defaultParser.Decode(data, mode)
}

func DecodeString(s string, mode ParseMode) (*PaymentData, error) {
	return defaultParser.DecodeString(s, mode)
}

// Parse returns the decoded payload, or false if any gate rejected it.
func (p *Parser) Parse(data []byte, mode ParseMode) (*PaymentData, bool) {
	pd, err := p.Decode(data, mode)
	return pd, err == nil
}

// ParseString parses the UTF-8 bytes of s. The header still decides how
// keys and values are decoded.
func (p *Parser) ParseString(s string, mode ParseMode) (*PaymentData, bool) {
	return p.Parse([]byte(s), mode)
}

func (p *Parser) DecodeString(s string, mode ParseMode) (*PaymentData, error) {
	return p.Decode([]byte(s), mode)
}

// Decode runs the full pipeline and reports which gate failed.
func (p *Parser) Decode(data []byte, mode ParseMode) (*PaymentData, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	fields := p.parseFields(data[gost.HeaderLen:], hdr)
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	pd := &PaymentData{fields: fields}

	// Modes other than Loose get the required-field check.
	if mode != Loose {
		if missing := pd.Missing(gost.RequiredFields()...); len(missing) > 0 {
			return nil, &MissingFieldsError{Missing: missing}
		}
	}

	return pd, nil
}

func (p *Parser) parseFields(body []byte, hdr Header) map[string]string {
	out := make(map[string]string)

	for _, chunk := range bytes.Split(body, []byte{hdr.Separator}) {
		if len(chunk) == 0 {
			continue
		}

		rawKey, rawVal, ok := bytes.Cut(chunk, []byte{gost.KeyValueSeparator})
		if !ok {
			p.logger.Debug("field dropped", "reason", "no key/value separator", "chunk", string(chunk))
			continue
		}

		key, ok := p.decodeText(rawKey, hdr.Encoding)
		if !ok {
			continue
		}

		val, ok := p.decodeText(rawVal, hdr.Encoding)
		if !ok {
			p.logger.Debug("field dropped", "reason", "empty or undecodable value", "key", key)
			continue
		}

		if p.ignored[strings.ToLower(val)] {
			p.logger.Debug("field dropped", "reason", "ignored value", "key", key)
			continue
		}

		out[strings.ToLower(key)] = val
	}

	return out
}

// decodeText converts and trims one key or value; blank results count as a
// failure.
func (p *Parser) decodeText(b []byte, enc gost.Encoding) (string, bool) {
	s, err := p.text.DecodeText(b, enc)
	if err != nil {
		p.logger.Debug("field dropped", "encoding", enc.String(), "err", err)
		return "", false
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}
