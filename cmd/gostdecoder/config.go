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
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// FileConfig is the optional TOML file named by --config.
type FileConfig struct {
	Mode         string
	Format       string
	Colour       string
	Whole        bool
	Obfuscate    bool
	IgnoreValues []string
	Jobs         int
}

type fileConfig struct {
	Mode         string   `toml:"mode"`
	Format       string   `toml:"format"`
	Colour       string   `toml:"colour"`
	Whole        bool     `toml:"whole"`
	Obfuscate    bool     `toml:"obfuscate"`
	IgnoreValues []string `toml:"ignore_values"`
	Jobs         int      `toml:"jobs"`
}

func DefaultFileConfig() FileConfig {
	return FileConfig{
		Mode:   "strict",
		Format: "text",
		Colour: "auto",
		Jobs:   1,
	}
}

func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return FileConfig{}, fmt.Errorf("load gostdecoder config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if meta.IsDefined("mode") {
		mode := strings.ToLower(strings.TrimSpace(raw.Mode))
		if mode != "strict" && mode != "loose" {
			return FileConfig{}, fmt.Errorf("parse mode: %q is not strict or loose", raw.Mode)
		}
		cfg.Mode = mode
	}

	if meta.IsDefined("format") {
		format := strings.ToLower(strings.TrimSpace(raw.Format))
		switch format {
		case "text", "json", "yaml":
			cfg.Format = format
		default:
			return FileConfig{}, fmt.Errorf("parse format: %q is not text, json or yaml", raw.Format)
		}
	}

	if meta.IsDefined("colour") {
		colour := strings.ToLower(strings.TrimSpace(raw.Colour))
		switch colour {
		case "auto", "yes", "no":
			cfg.Colour = colour
		default:
			return FileConfig{}, fmt.Errorf("parse colour: %q is not auto, yes or no", raw.Colour)
		}
	}

	if meta.IsDefined("whole") {
		cfg.Whole = raw.Whole
	}

	if meta.IsDefined("obfuscate") {
		cfg.Obfuscate = raw.Obfuscate
	}

	if meta.IsDefined("ignore_values") {
		cfg.IgnoreValues = raw.IgnoreValues
	}

	if meta.IsDefined("jobs") {
		if raw.Jobs < 1 {
			return FileConfig{}, fmt.Errorf("parse jobs: %d is below 1", raw.Jobs)
		}
		cfg.Jobs = raw.Jobs
	}

	return cfg, nil
}

// vars exposes the config as kong interpolation variables for flag defaults.
func (c FileConfig) vars() kong.Vars {
	return kong.Vars{
		"version":   fmt.Sprintf("gostdecoder %s (branch:%s, commit:%s)", Version, Branch, Sha),
		"mode":      c.Mode,
		"format":    c.Format,
		"colour":    c.Colour,
		"whole":     strconv.FormatBool(c.Whole),
		"obfuscate": strconv.FormatBool(c.Obfuscate),
		"jobs":      strconv.Itoa(c.Jobs),
	}
}
