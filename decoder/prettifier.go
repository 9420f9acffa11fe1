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
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/stephenlclarke/gostdecoder/gost"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	getTermSize = term.GetSize // allow override in tests
	openFile    = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	stdin       io.Reader = os.Stdin

	payloadStart = regexp.MustCompile(gost.FormatTag + gost.Version)
)

var (
	ColourReset = "\033[0m"
	ColourLine  = "\033[38;5;244m"
	ColourKey   = "\033[38;5;81m"
	ColourName  = "\033[38;5;151m"
	ColourValue = "\033[38;5;228m"
	ColourMark  = "\033[38;5;214m"
	ColourFile  = "\033[95m"
	ColourError = "\033[31m"
	ColourMsg   = "\033[97m"
	ColourTitle = "\033[31m"
)

func DisableColours() {
	ColourReset = ""
	ColourLine = ""
	ColourKey = ""
	ColourName = ""
	ColourValue = ""
	ColourMark = ""
	ColourFile = ""
	ColourError = ""
	ColourMsg = ""
	ColourTitle = ""
}

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options controls how PrettifyFiles decodes and renders its inputs.
type Options struct {
	Mode       ParseMode
	Format     string
	Whole      bool // each input is one payload instead of one per line
	Jobs       int
	Parser     *Parser
	Obfuscator *gost.Obfuscator
}

func (o Options) parser() *Parser {
	if o.Parser == nil {
		return defaultParser
	}
	return o.Parser
}

// record is the structured form of one decoded payload.
type record struct {
	Source string       `json:"source" yaml:"source"`
	Line   int          `json:"line,omitempty" yaml:"line,omitempty"`
	Fields *PaymentData `json:"fields,omitempty" yaml:"fields,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Prettify renders the fields of pd one per line, catalog fields first in
// catalog order, then custom keys sorted.
func Prettify(pd *PaymentData) string {
	var sb strings.Builder

	for _, f := range gost.AllFields() {
		val, ok := pd.Get(f)
		if !ok {
			continue
		}

		sb.WriteString(fmt.Sprintf("    %s%-16s%s (%s%s%s): %s%s%s",
			ColourKey, f, ColourReset,
			ColourName, f.Description(), ColourReset,
			ColourValue, val, ColourReset,
		))

		if f.IsRequired() {
			sb.WriteString(fmt.Sprintf(" (%sR%s)", ColourMark, ColourReset))
		}

		sb.WriteString("\n")
	}

	for _, key := range pd.Keys() {
		if _, known := gost.LookupField(key); known {
			continue
		}

		val, _ := pd.Lookup(key)
		sb.WriteString(fmt.Sprintf("    %s%-16s%s (%scustom%s): %s%s%s\n",
			ColourKey, key, ColourReset,
			ColourName, ColourReset,
			ColourValue, val, ColourReset,
		))
	}

	return sb.String()
}

// Obfuscate returns a copy of pd with sensitive values replaced by aliases.
func Obfuscate(pd *PaymentData, obf *gost.Obfuscator) *PaymentData {
	if obf == nil {
		return pd
	}

	fields := pd.Fields()
	for k, v := range fields {
		fields[k] = obf.Value(k, v)
	}

	return &PaymentData{fields: fields}
}

// PrettifyFiles decodes every path ("-" is stdin) and writes the results to
// out in argument order. It returns a process exit code.
func PrettifyFiles(paths []string, out io.Writer, errOut io.Writer, opts Options) int {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	outs := make([]bytes.Buffer, len(paths))
	errs := make([]bytes.Buffer, len(paths))
	failed := make([]bool, len(paths))

	var g errgroup.Group
	g.SetLimit(max(opts.Jobs, 1))

	for i, path := range paths {
		g.Go(func() error {
			failed[i] = !processPath(path, &outs[i], &errs[i], opts)
			return nil
		})
	}
	_ = g.Wait()

	hadError := false
	for i := range paths {
		out.Write(outs[i].Bytes())
		errOut.Write(errs[i].Bytes())
		hadError = hadError || failed[i]
	}

	if hadError {
		return 1
	}

	return 0
}

func processPath(path string, out, errOut io.Writer, opts Options) bool {
	var (
		r      io.Reader
		source = path
	)

	if path == "-" {
		source = "(stdin)"
		r = stdin
	} else {
		f, err := openFile(path)
		if err != nil {
			fmt.Fprintln(errOut, ColourError+"Cannot open file:"+err.Error()+ColourReset)
			return false
		}
		defer f.Close()
		r = f
	}

	if opts.Format == FormatText || opts.Format == "" {
		fmt.Fprint(out, "Processing: ", ColourFile, source, ColourReset, "\n\n")
	}

	var err error
	if opts.Whole {
		err = decodeWhole(r, source, out, opts)
	} else {
		err = streamLog(r, source, out, opts)
	}

	if err != nil {
		fmt.Fprintln(errOut, ColourError+"Error reading file:"+err.Error()+ColourReset)
		return false
	}

	return true
}

func decodeWhole(in io.Reader, source string, out io.Writer, opts Options) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	separator := ColourTitle + strings.Repeat("=", getTerminalWidth()) + ColourReset + "\n"
	return emitPayload(data, source, 0, out, separator, opts)
}

func streamLog(in io.Reader, source string, out io.Writer, opts Options) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	separator := ColourTitle + strings.Repeat("=", getTerminalWidth()) + ColourReset + "\n"
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if err := handleLogLine(scanner.Bytes(), source, lineNo, out, separator, opts); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func handleLogLine(line []byte, source string, lineNo int, out io.Writer, separator string, opts Options) error {
	line = bytes.TrimSuffix(line, []byte("\r"))
	matches := payloadStart.FindAllIndex(line, -1)
	text := opts.Format == FormatText || opts.Format == ""

	if len(matches) == 0 {
		if text {
			fmt.Fprint(out, ColourLine, string(line), ColourReset, "\n")
		}
		return nil
	}

	payloads := splitPayloads(line, matches)

	if text {
		fmt.Fprint(out, ColourLine, string(line[:matches[0][0]]), ColourMsg, string(line[matches[0][0]:]), ColourReset, "\n")
		fmt.Fprint(out, separator)
	}

	for _, p := range payloads {
		if err := emitPayload(p, source, lineNo, out, separator, opts); err != nil {
			return err
		}
	}

	return nil
}

// splitPayloads cuts line at every payload start; each payload runs to the
// next start or the end of the line.
func splitPayloads(line []byte, matches [][]int) [][]byte {
	out := make([][]byte, 0, len(matches))

	for i, m := range matches {
		end := len(line)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		out = append(out, line[m[0]:end])
	}

	return out
}

func emitPayload(data []byte, source string, lineNo int, out io.Writer, separator string, opts Options) error {
	pd, err := opts.parser().Decode(data, opts.Mode)
	if err == nil {
		pd = Obfuscate(pd, opts.Obfuscator)
	}

	switch opts.Format {
	case FormatJSON:
		rec := newRecord(source, lineNo, pd, err)
		return json.NewEncoder(out).Encode(rec)

	case FormatYAML:
		doc, merr := yaml.Marshal(newRecord(source, lineNo, pd, err))
		if merr != nil {
			return merr
		}
		fmt.Fprint(out, "---\n")
		_, werr := out.Write(doc)
		return werr

	default:
		if err != nil {
			fmt.Fprintf(out, "%s== %s%s\n", ColourError, err, ColourReset)
		} else {
			fmt.Fprint(out, Prettify(pd))
		}
		fmt.Fprint(out, separator)
		return nil
	}
}

func newRecord(source string, lineNo int, pd *PaymentData, err error) record {
	rec := record{Source: source, Line: lineNo}
	if err != nil {
		rec.Error = err.Error()
	} else {
		rec.Fields = pd
	}
	return rec
}

func getTerminalWidth() int {
	if w, _, err := getTermSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 80
}
