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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, o *Options)
	}{
		{
			name: "defaults_when_no_args",
			args: nil,
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "", o.Term, "term should default to empty")
				assert.Equal(t, "./", o.Root, "root should default to ./")
				assert.Equal(t, "txt", o.Ext, "ext should default to txt")
				assert.Equal(t, "n", o.Case, "case should default to n")
				assert.Equal(t, "", o.Regexp, "regexp should default to empty")
				assert.Equal(t, "console", o.Log, "log should default to console")
			},
		},
		{
			name: "recognized_keys_are_set",
			args: []string{"term=find me", "root=/data", "ext=txt,md", "case=y", "log=/tmp/out.log"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "find me", o.Term, "term should be set")
				assert.Equal(t, "/data", o.Root, "root should be set")
				assert.Equal(t, "txt,md", o.Ext, "ext should be set")
				assert.Equal(t, "y", o.Case, "case should be set")
				assert.Equal(t, "/tmp/out.log", o.Log, "log should be set")
			},
		},
		{
			name: "unrecognized_keys_are_ignored",
			args: []string{"term=x", "bogus=1", "depth=3"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "x", o.Term, "term should be set")
				assert.Equal(t, "txt", o.Ext, "ext should keep its default")
			},
		},
		{
			name: "tokens_without_equals_are_ignored",
			args: []string{"term=x", "--debug", "sync"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "x", o.Term, "term should be set")
			},
		},
		{
			name: "later_duplicates_override",
			args: []string{"term=first", "term=second"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "second", o.Term, "later duplicate should win")
			},
		},
		{
			name: "value_may_contain_equals",
			args: []string{"regexp=a=b"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "a=b", o.Regexp, "only the first = should split")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			opts.Apply(tt.args)
			tt.check(t, opts)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		regexp  string
		wantErr bool
	}{
		{name: "term_only", term: "find me"},
		{name: "regexp_only", regexp: "^startswith"},
		{name: "both_set", term: "find me", regexp: "^startswith"},
		{name: "both_empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			opts.Term = tt.term
			opts.Regexp = tt.regexp
			err := opts.Validate()
			if tt.wantErr {
				require.Error(t, err, "validate should fail")
				assert.True(t, errors.Is(err, ErrMissingPattern), "error should be ErrMissingPattern")
				return
			}
			require.NoError(t, err, "validate should succeed")
		})
	}
}

func TestWantsHelp(t *testing.T) {
	assert.True(t, WantsHelp([]string{"term=x", "help"}), "literal help token anywhere should trigger")
	assert.False(t, WantsHelp([]string{"term=help"}), "help as a value should not trigger")
	assert.False(t, WantsHelp(nil), "no args should not trigger")
}

func TestVerboseEnabled(t *testing.T) {
	for flag, want := range map[string]bool{"y": true, "Y": true, "yes": false, "n": false, "": false} {
		opts := Defaults()
		opts.Verbose = flag
		assert.Equal(t, want, opts.VerboseEnabled(), "verbose flag %q", flag)
	}
}

func TestIgnoreGlobs(t *testing.T) {
	opts := Defaults()
	assert.Nil(t, opts.IgnoreGlobs(), "empty ignore list should yield nil")

	opts.Ignore = "**/vendor/**,,*.bak"
	assert.Equal(t, []string{"**/vendor/**", "*.bak"}, opts.IgnoreGlobs(), "empty tokens should be dropped")
}

func TestBuild_ConfigFileFailureKeepsOptionsUsable(t *testing.T) {
	ctx := context.Background()
	opts, err := Build(ctx, []string{"term=x", "config=/does/not/exist.yaml", "log=console"})
	require.Error(t, err, "missing defaults file should be reported")
	require.NotNil(t, opts, "options must remain usable for sink construction")
	assert.Equal(t, "x", opts.Term, "tokens should still be applied")
	assert.Equal(t, "console", opts.Log, "log should still be applied")
}
