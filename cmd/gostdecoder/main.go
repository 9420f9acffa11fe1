// main.go
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
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/stephenlclarke/gostdecoder/decoder"
	"github.com/stephenlclarke/gostdecoder/gost"
	"golang.org/x/term"
)

// Version, Branch, GitUrl, Sha are injected at build time via -ldflags
var (
	Version = "0.0.0"
	Branch  = "main"
	GitUrl  = "git@github.com:stephenlclarke/gostdecoder.git"
	Sha     = "0000000"
)

var (
	exit       = os.Exit
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// CLI holds all parsed flag values. Defaults come from the config file when
// one is given, so flags on the command line always win.
type CLI struct {
	Config    string           `help:"Path to a TOML config file." placeholder:"FILE"`
	Mode      string           `help:"Parse mode (${enum})." enum:"strict,loose" default:"${mode}"`
	Format    string           `help:"Output format (${enum})." enum:"text,json,yaml" default:"${format}"`
	Colour    string           `help:"Coloured output (${enum}). Default: auto-detect based on stdout." enum:"auto,yes,no" default:"${colour}"`
	Whole     bool             `help:"Treat each input as a single payload instead of scanning lines." default:"${whole}" negatable:""`
	Obfuscate bool             `help:"Replace payer identity values with stable aliases." default:"${obfuscate}" negatable:""`
	Ignore    []string         `help:"Extra values treated as absent, like null." placeholder:"VALUE"`
	Jobs      int              `help:"Number of inputs decoded in parallel." default:"${jobs}"`
	Verbose   bool             `short:"v" help:"Debug logging and field descriptions."`
	Column    bool             `help:"Display --list in columns."`
	List      bool             `help:"List every known payment field."`
	Field     string           `help:"Show details for one payment field." placeholder:"NAME"`
	Info      bool             `help:"Show header constants and supported encodings."`
	Version   kong.VersionFlag `help:"Print version information and quit."`
	Files     []string         `arg:"" optional:"" help:"Files to decode. '-' or nothing reads stdin."`
}

// PrintUsage prints the program banner and usage lines.
func PrintUsage(out io.Writer) {
	fmt.Fprintf(out, "gostdecoder %s (branch:%s, commit:%s)\n\n", Version, Branch, Sha)
	fmt.Fprintf(out, "  git clone %s\n\n", GitUrl)
	fmt.Fprintln(out, "Usage: gostdecoder [--mode=strict|loose] [--format=text|json|yaml] [--whole] [--obfuscate] [file1.txt file2.txt ...]")
	fmt.Fprintln(out, "       gostdecoder --list [--column] [--verbose]")
	fmt.Fprintln(out, "       gostdecoder --field=NAME")
	fmt.Fprintln(out, "       gostdecoder --info")
}

// configPath finds --config before kong runs so the file can seed defaults.
func configPath(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// parseArgs parses command-line arguments with a fresh kong parser.
func parseArgs(args []string, cfg FileConfig, out, errOut io.Writer) (CLI, error) {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("gostdecoder"),
		kong.Description("Decode GOST R 56042 payment payloads (QR-code/barcode text)."),
		kong.Writers(out, errOut),
		kong.Exit(exit),
		cfg.vars(),
	)
	if err != nil {
		return CLI{}, err
	}

	if _, err := parser.Parse(args); err != nil {
		return CLI{}, err
	}

	return cli, nil
}

func newLogger(errOut io.Writer, verbose, colour bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(errOut, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !colour,
	}))
}

// Process is the entry point: loads config, parses flags, runs handlers, and returns an exit code.
func Process(args []string, out, errOut io.Writer) int {
	cfg := DefaultFileConfig()

	if path := configPath(args); path != "" {
		loaded, err := LoadFileConfig(path)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		cfg = loaded
	}

	cli, err := parseArgs(args, cfg, out, errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		PrintUsage(errOut)
		return 1
	}

	colour := cli.Colour == "yes" || (cli.Colour == "auto" && isTerminal())
	if !colour {
		decoder.DisableColours()
	}

	logger := newLogger(errOut, cli.Verbose, colour)

	if handled, code := runHandlers(cli, out, errOut); handled {
		return code
	}

	mode := decoder.Strict
	if cli.Mode == "loose" {
		mode = decoder.Loose
	}

	parser := decoder.NewParser(
		decoder.WithLogger(logger),
		decoder.WithIgnoredValues(append(cfg.IgnoreValues, cli.Ignore...)...),
	)

	opts := decoder.Options{
		Mode:       mode,
		Format:     cli.Format,
		Whole:      cli.Whole,
		Jobs:       cli.Jobs,
		Parser:     parser,
		Obfuscator: gost.CreateObfuscator(gost.SensitiveFields(), cli.Obfuscate, logger),
	}

	logger.Debug("decoding", "mode", mode.String(), "format", cli.Format, "inputs", len(cli.Files))

	return decoder.PrettifyFiles(cli.Files, out, errOut, opts)
}

func main() {
	exit(Process(os.Args[1:], os.Stdout, os.Stderr))
}
