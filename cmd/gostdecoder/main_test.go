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
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const strictPayload = "ST00012|Name=ACME|PersonalAcc=40702810000000000001|BankName=Bank|BIC=044525225|CorrespAcc=30101810400000000225|LastName=Ivanov|Sum=1500"

func init() {
	isTerminal = func() bool { return false }
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigPath(t *testing.T) {
	require.Equal(t, "a.toml", configPath([]string{"--config=a.toml", "x"}))
	require.Equal(t, "b.toml", configPath([]string{"-v", "--config", "b.toml"}))
	require.Equal(t, "", configPath([]string{"--config"}))
	require.Equal(t, "", configPath([]string{"--", "--config=c.toml"}))
	require.Equal(t, "", configPath(nil))
}

func TestParseArgsDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	cli, err := parseArgs(nil, DefaultFileConfig(), &out, &errOut)
	require.NoError(t, err)

	require.Equal(t, "strict", cli.Mode)
	require.Equal(t, "text", cli.Format)
	require.Equal(t, "auto", cli.Colour)
	require.Equal(t, 1, cli.Jobs)
	require.False(t, cli.Whole)
	require.Empty(t, cli.Files)
}

func TestParseArgsConfigSeedsDefaults(t *testing.T) {
	cfg := DefaultFileConfig()
	cfg.Mode = "loose"
	cfg.Format = "json"
	cfg.Whole = true
	cfg.Jobs = 4

	var out, errOut bytes.Buffer
	cli, err := parseArgs([]string{"in.txt"}, cfg, &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, "loose", cli.Mode)
	require.Equal(t, "json", cli.Format)
	require.True(t, cli.Whole)
	require.Equal(t, 4, cli.Jobs)
	require.Equal(t, []string{"in.txt"}, cli.Files)

	cli, err = parseArgs([]string{"--mode=strict", "--no-whole", "--jobs=2"}, cfg, &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, "strict", cli.Mode)
	require.False(t, cli.Whole)
	require.Equal(t, 2, cli.Jobs)
}

func TestParseArgsRejectsUnknownFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	_, err := parseArgs([]string{"--format=xml"}, DefaultFileConfig(), &out, &errOut)
	require.Error(t, err)
}

func TestParseArgsCollectsIgnoreValues(t *testing.T) {
	var out, errOut bytes.Buffer
	cli, err := parseArgs([]string{"--ignore=none", "--ignore=n/a"}, DefaultFileConfig(), &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, []string{"none", "n/a"}, cli.Ignore)
}

func TestPrintUsage(t *testing.T) {
	var out bytes.Buffer
	PrintUsage(&out)

	for _, want := range []string{"gostdecoder", "git clone", "Usage: gostdecoder"} {
		require.Contains(t, out.String(), want)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	require.False(t, newLogger(&buf, false, false).Enabled(ctx, slog.LevelDebug))
	require.True(t, newLogger(&buf, false, false).Enabled(ctx, slog.LevelInfo))
	require.True(t, newLogger(&buf, true, false).Enabled(ctx, slog.LevelDebug))
}

func TestProcessDecodesFile(t *testing.T) {
	path := writeTemp(t, "codes.txt", "scan 1: "+strictPayload+"\n")

	var out, errOut bytes.Buffer
	code := Process([]string{path}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "Processing: "+path)
	require.Contains(t, out.String(), "ACME")
	require.Contains(t, out.String(), "Ivanov")
}

func TestProcessReportsInvalidPayload(t *testing.T) {
	path := writeTemp(t, "codes.txt", "ST00012|Foo=Bar\n")

	var out, errOut bytes.Buffer
	code := Process([]string{path}, &out, &errOut)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "== missing required fields")

	out.Reset()
	code = Process([]string{"--mode=loose", path}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Bar")
}

func TestProcessJSONObfuscated(t *testing.T) {
	path := writeTemp(t, "codes.txt", strictPayload+"\n")

	var out, errOut bytes.Buffer
	code := Process([]string{"--format=json", "--obfuscate", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var rec struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	require.Equal(t, "LastName0001", rec.Fields["lastname"])
	require.Equal(t, "ACME", rec.Fields["name"])
	require.Contains(t, errOut.String(), "first use")
}

func TestProcessConfigFile(t *testing.T) {
	cfg := writeTemp(t, "gostdecoder.toml", "mode = \"loose\"\nformat = \"yaml\"\nignore_values = [\"none\"]\n")
	path := writeTemp(t, "codes.txt", "ST00012|Foo=Bar|Purpose=None\n")

	var out, errOut bytes.Buffer
	code := Process([]string{"--config", cfg, path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	require.True(t, strings.HasPrefix(out.String(), "---\n"))
	require.Contains(t, out.String(), "foo: Bar")
	require.NotContains(t, out.String(), "purpose")
}

func TestProcessBadConfig(t *testing.T) {
	cfg := writeTemp(t, "bad.toml", "mode = \"sloppy\"\n")

	var out, errOut bytes.Buffer
	code := Process([]string{"--config=" + cfg}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "sloppy")
}

func TestProcessBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Process([]string{"--format=xml"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "Usage: gostdecoder")
}

func TestProcessMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Process([]string{filepath.Join(t.TempDir(), "nope.txt")}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "Cannot open file")
}

func TestProcessWholeInput(t *testing.T) {
	payload := strings.ReplaceAll(strictPayload, "|", "\n")
	path := writeTemp(t, "code.bin", payload+"\n")

	var out, errOut bytes.Buffer
	code := Process([]string{"--whole", "--format=json", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), `"sum":"1500"`)
}
