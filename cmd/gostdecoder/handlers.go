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
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/stephenlclarke/gostdecoder/decoder"
	"github.com/stephenlclarke/gostdecoder/gost"
)

// handleInfo prints the accepted header layout. Returns true if handled.
func handleInfo(cli CLI, out io.Writer) bool {
	if !cli.Info {
		return false
	}

	fmt.Fprintf(out, "Supported payloads:\n")
	fmt.Fprintf(out, "  Format:     %s\n", gost.FormatTag)
	fmt.Fprintf(out, "  Version:    %s\n", gost.Version)
	fmt.Fprintf(out, "  Encodings:  %s\n", gost.SupportedEncodings())
	fmt.Fprintf(out, "  Fields:     %d (%d required)\n", len(gost.AllFields()), len(gost.RequiredFields()))

	return true
}

// handleList processes the --list flag. Returns true if handled.
func handleList(cli CLI, out io.Writer) bool {
	if !cli.List {
		return false
	}

	if cli.Column {
		decoder.PrintFieldsInColumns(out)
	} else {
		decoder.ListAllFields(out, cli.Verbose)
	}

	return true
}

// handleField processes the --field flag. The second result is false when
// the name is not in the catalog.
func handleField(cli CLI, out io.Writer) (bool, bool) {
	name := strings.TrimSpace(cli.Field)
	if name == "" {
		return false, true
	}

	f, found := decoder.FindField(name)
	if !found {
		fmt.Fprintf(out, "Field not found: %s\n", name)
		return true, false
	}

	decoder.PrintFieldDetails(out, f)

	return true, true
}

// runHandlers invokes the --info, --list and --field handlers. It returns
// true if any of them ran, with the exit code to use.
func runHandlers(cli CLI, out, errOut io.Writer) (bool, int) {
	handled := false
	code := 0

	if handleInfo(cli, out) {
		handled = true
	}

	if handleList(cli, out) {
		handled = true
	}

	if ran, ok := handleField(cli, out); ran {
		handled = true
		if !ok {
			code = 1
		}
	}

	if handled && len(cli.Files) > 0 {
		fmt.Fprintln(errOut, "ignoring input files: catalog flags given")
	}

	return handled, code
}
