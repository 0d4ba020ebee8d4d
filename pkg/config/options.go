// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// 🚫 ErrMissingPattern indicates neither term nor regexp was supplied
	ErrMissingPattern = errors.New("there is no term or regexp defined")
)

// 📚 Options holds the recognized search settings
type Options struct {
	Term    string `json:"term,omitempty" yaml:"term,omitempty" hcl:"term,optional"`       // Literal content to search for
	Root    string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`       // Directory to recurse from
	Ext     string `json:"ext,omitempty" yaml:"ext,omitempty" hcl:"ext,optional"`          // Comma-separated extension list
	Case    string `json:"case,omitempty" yaml:"case,omitempty" hcl:"case,optional"`       // "y"/"Y" = case-sensitive term match
	Regexp  string `json:"regexp,omitempty" yaml:"regexp,omitempty" hcl:"regexp,optional"` // Full regexp overriding term+case
	Log     string `json:"log,omitempty" yaml:"log,omitempty" hcl:"log,optional"`          // "console" or a log file path
	Ignore  string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"` // Comma-separated glob skip patterns
	Verbose string `json:"verbose,omitempty" yaml:"verbose,omitempty" hcl:"verbose,optional"`
}

// 🏭 Defaults returns the baseline options
func Defaults() *Options {
	return &Options{
		Term:    "",
		Root:    "./",
		Ext:     "txt",
		Case:    "n",
		Regexp:  "",
		Log:     "console",
		Ignore:  "",
		Verbose: "n",
	}
}

// 🎯 Build assembles Options from the command-line tokens. A config=<path>
// token loads a defaults file first; the remaining tokens are applied on top.
// On a defaults-file failure the returned Options are still usable (defaults
// plus tokens) so the caller can construct a sink and surface the error.
func Build(ctx context.Context, args []string) (*Options, error) {
	logger := zerolog.Ctx(ctx)

	opts := Defaults()
	var loadErr error
	if path := configPath(args); path != "" {
		loaded, err := Load(ctx, path)
		if err != nil {
			loadErr = errors.Errorf("loading defaults file: %w", err)
		} else {
			opts = loaded
		}
	}

	opts.Apply(args)
	logger.Debug().Str("options", opts.String()).Msg("options assembled")
	return opts, loadErr
}

// 📝 Apply overlays key=value tokens onto the options. Tokens without "=" and
// unrecognized keys are ignored; later duplicates override earlier ones.
func (o *Options) Apply(args []string) {
	for _, arg := range args {
		setting := strings.SplitN(arg, "=", 2)
		if len(setting) < 2 {
			continue
		}
		switch setting[0] {
		case "term":
			o.Term = setting[1]
		case "root":
			o.Root = setting[1]
		case "ext":
			o.Ext = setting[1]
		case "case":
			o.Case = setting[1]
		case "regexp":
			o.Regexp = setting[1]
		case "log":
			o.Log = setting[1]
		case "ignore":
			o.Ignore = setting[1]
		case "verbose":
			o.Verbose = setting[1]
		case "config":
			// consumed by Build before tokens are applied
		}
	}
}

// 🔍 Validate checks that a run can proceed
func (o *Options) Validate() error {
	if o.Term == "" && o.Regexp == "" {
		return errors.Errorf(`%w! Example: filegrep term="find me" or filegrep regexp=^startswith`, ErrMissingPattern)
	}
	return nil
}

// 🔍 VerboseEnabled reports whether the scan summary was requested.
// Same comparison semantics as the case flag: exactly "y" or "Y".
func (o *Options) VerboseEnabled() bool {
	return o.Verbose == "y" || o.Verbose == "Y"
}

// 📝 IgnoreGlobs splits the ignore list into individual glob patterns
func (o *Options) IgnoreGlobs() []string {
	if o.Ignore == "" {
		return nil
	}
	var globs []string
	for _, g := range strings.Split(o.Ignore, ",") {
		if g != "" {
			globs = append(globs, g)
		}
	}
	return globs
}

// 📝 String returns a string representation of the options
func (o *Options) String() string {
	return fmt.Sprintf("term=%q root=%q ext=%q case=%q regexp=%q log=%q ignore=%q verbose=%q",
		o.Term, o.Root, o.Ext, o.Case, o.Regexp, o.Log, o.Ignore, o.Verbose)
}

// 🔍 WantsHelp reports whether the literal token "help" appears in the args
func WantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "help" {
			return true
		}
	}
	return false
}

// configPath returns the last config=<path> token, if any
func configPath(args []string) string {
	path := ""
	for _, arg := range args {
		setting := strings.SplitN(arg, "=", 2)
		if len(setting) == 2 && setting[0] == "config" {
			path = setting[1]
		}
	}
	return path
}
