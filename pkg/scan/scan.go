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

package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/filegrep/pkg/pattern"
	"github.com/walteh/filegrep/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the collaborators for a Scanner
type Options struct {
	// Root is the directory to recurse from
	Root string
	// Content is the compiled content pattern
	Content *pattern.Content
	// Extensions is the compiled extension filter set
	Extensions *pattern.ExtensionSet
	// IgnoreGlobs are doublestar patterns pruned before extension checks
	IgnoreGlobs []string
	// Sink receives one message per matched file
	Sink report.Sink
}

// 🔍 Scanner walks a directory tree and reports files whose content matches
type Scanner struct {
	root    string
	content *pattern.Content
	exts    *pattern.ExtensionSet
	ignore  []string
	sink    report.Sink
	summary report.Summary
}

// 🏭 New creates a new scanner with the given options
func New(opts Options) (*Scanner, error) {
	if opts.Content == nil {
		return nil, errors.Errorf("content pattern is required")
	}
	if opts.Extensions == nil {
		return nil, errors.Errorf("extension filter set is required")
	}
	if opts.Sink == nil {
		return nil, errors.Errorf("sink is required")
	}
	return &Scanner{
		root:    opts.Root,
		content: opts.Content,
		exts:    opts.Extensions,
		ignore:  opts.IgnoreGlobs,
		sink:    opts.Sink,
	}, nil
}

// 🏃 Run walks the tree once, synchronously, and emits every matched path.
// Unreadable entries and undecodable files are per-file skips, never fatal;
// the only error Run returns is a sink failure, which aborts the walk.
func (s *Scanner) Run(ctx context.Context) (report.Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", s.root).Msg("starting scan")

	start := time.Now()
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.Debug().Str("path", path).Err(walkErr).Msg("skipping inaccessible entry")
			return nil
		}

		if s.shouldIgnore(ctx, path) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		s.summary.Walked++

		if !s.exts.Match(d.Name()) {
			return nil
		}

		matched, ok := s.matchFile(ctx, path)
		if !ok {
			return nil
		}
		s.summary.Read++
		if !matched {
			return nil
		}
		s.summary.Matched++

		if err := s.sink.Emit(path); err != nil {
			return errors.Errorf("reporting match %s: %w", path, err)
		}
		return nil
	})

	s.summary.Elapsed = time.Since(start)
	logger.Debug().
		Int("walked", s.summary.Walked).
		Int("read", s.summary.Read).
		Int("matched", s.summary.Matched).
		Dur("elapsed", s.summary.Elapsed).
		Msg("scan finished")

	if err != nil {
		return s.summary, err
	}
	return s.summary, nil
}

// 🔍 shouldIgnore checks the root-relative slash path against the ignore globs
func (s *Scanner) shouldIgnore(ctx context.Context, path string) bool {
	if len(s.ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)

	logger := zerolog.Ctx(ctx)
	for _, glob := range s.ignore {
		matched, err := doublestar.Match(glob, rel)
		if err != nil {
			logger.Debug().Str("pattern", glob).Str("path", rel).Err(err).Msg("error matching ignore pattern")
			continue
		}
		if matched {
			logger.Debug().Str("path", rel).Str("pattern", glob).Msg("entry ignored by pattern")
			return true
		}
	}
	return false
}

// 📄 matchFile reads the whole file and applies the content pattern.
// ok is false when the file could not be read or is not valid text; both are
// silent skips for this file only.
func (s *Scanner) matchFile(ctx context.Context, path string) (matched, ok bool) {
	logger := zerolog.Ctx(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable file")
		return false, false
	}

	if !utf8.Valid(content) {
		logger.Debug().Str("path", path).Msg("skipping undecodable file")
		return false, false
	}

	return s.content.Match(content), true
}
