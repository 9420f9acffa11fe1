// display.go
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
	"io"
	"os"
	"strings"

	"github.com/stephenlclarke/gostdecoder/gost"
)

// FindField resolves a catalog entry by name, ignoring case.
func FindField(name string) (gost.PaymentField, bool) {
	return gost.LookupField(name)
}

// PrintStringColumns prints items down then across, as many columns as the
// terminal width allows.
func PrintStringColumns(out io.Writer, items []string) {
	width, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}

	maxLen := 0
	for _, s := range items {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}

	cols := width / (maxLen + 2)
	if cols == 0 {
		cols = 1
	}

	rows := (len(items) + cols - 1) / cols

	for r := range rows {
		for c := range cols {
			i := c*rows + r

			if i < len(items) {
				fmt.Fprintf(out, "%-*s", maxLen+2, items[i])
			}
		}

		fmt.Fprintln(out)
	}
}

func fieldLine(f gost.PaymentField) string {
	return fmt.Sprintf("%-16s: %s%s", f, f.Group(), formatRequired(f))
}

func formatRequired(f gost.PaymentField) string {
	if f.IsRequired() {
		return " - (R)"
	}

	return ""
}

// ListAllFields prints every catalog field with its group.
func ListAllFields(out io.Writer, verbose bool) {
	for _, f := range gost.AllFields() {
		fmt.Fprintln(out, fieldLine(f))

		if verbose {
			printDescription(out, f, 4)
		}
	}
}

func PrintFieldsInColumns(out io.Writer) {
	fields := gost.AllFields()

	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = fieldLine(f)
	}

	PrintStringColumns(out, lines)
}

// PrintFieldDetails prints one field, its wire key and description.
func PrintFieldDetails(out io.Writer, f gost.PaymentField) {
	fmt.Fprintln(out, fieldLine(f))
	printDescription(out, f, 4)
	fmt.Fprintf(out, "%skey : %s\n", strings.Repeat(" ", 4), f.Key())

	if f.IsSensitive() {
		fmt.Fprintf(out, "%ssensitive : yes\n", strings.Repeat(" ", 4))
	}
}

func printDescription(out io.Writer, f gost.PaymentField, indent int) {
	fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", indent), f.Description())
}
