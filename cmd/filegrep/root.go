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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/filegrep/pkg/config"
	"github.com/walteh/filegrep/pkg/pattern"
	"github.com/walteh/filegrep/pkg/report"
	"github.com/walteh/filegrep/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	debug bool
)

const helpText = `You must set either term or regexp

  term     The simple alphanumeric term you're searching for. Example: term="find me". Default is ""
  root     The starting folder for searching. Example: root="c:/Looky Here". Default is ./
  ext      Up to 25 file extension(s) to search. Example: ext=txt,doc. Default is txt
  case     y for case sensitive. Default is n
  regexp   Will search by regexp instead of term and case. Example: regexp=(?i)^startswith. Default is ""
  log      Where to log names of files containing the search. Example: log=C:/Logs/Log.txt. Default is console
  ignore   Comma-separated glob patterns to skip. Example: ignore=**/vendor/**. Default is ""
  verbose  y to print a scan summary after searching (console log only). Default is n
  config   Optional defaults file (.yaml, .yml, .json or .hcl) applied before the arguments.
`

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filegrep [key=value ...]",
		Short: "Search file contents under a directory tree",
		Long:  helpText,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addRootFlags(cmd)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// run performs one search. Every configuration, pattern and extension failure
// is reported as text through the configured sink and returns nil, so the
// process exits successfully; the only returned errors are sink failures.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	logger := zerolog.Ctx(ctx)

	if config.WantsHelp(args) {
		fmt.Fprint(stdout, helpText)
		return nil
	}

	opts, cfgErr := config.Build(ctx, args)
	sink := report.NewSink(opts.Log, stdout)
	if cfgErr != nil {
		return sink.Emit(cfgErr.Error())
	}

	if err := opts.Validate(); err != nil {
		return sink.Emit(err.Error())
	}

	content, err := pattern.BuildContent(opts.Regexp, opts.Case, opts.Term)
	if err != nil {
		return sink.Emit(err.Error())
	}

	exts, err := pattern.BuildExtensions(opts.Ext)
	if err != nil {
		return sink.Emit(err.Error())
	}

	scanner, err := scan.New(scan.Options{
		Root:        opts.Root,
		Content:     content,
		Extensions:  exts,
		IgnoreGlobs: opts.IgnoreGlobs(),
		Sink:        sink,
	})
	if err != nil {
		return errors.Errorf("creating scanner: %w", err)
	}

	summary, err := scanner.Run(ctx)
	if err != nil {
		return errors.Errorf("running scan: %w", err)
	}

	if opts.VerboseEnabled() && opts.Log == report.ConsoleDestination {
		report.PrintSummary(summary)
	}

	logger.Debug().Int("matched", summary.Matched).Msg("search complete")
	return nil
}
