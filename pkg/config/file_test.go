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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		wantErr     bool
		errContains string
		check       func(t *testing.T, o *Options)
	}{
		{
			name:     "yaml_defaults",
			filename: "filegrep.yaml",
			content: `
term: hello
ext: go,md
ignore: "**/vendor/**"
`,
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "hello", o.Term, "term should come from the file")
				assert.Equal(t, "go,md", o.Ext, "ext should come from the file")
				assert.Equal(t, "**/vendor/**", o.Ignore, "ignore should come from the file")
				assert.Equal(t, "./", o.Root, "unset keys should keep their defaults")
				assert.Equal(t, "console", o.Log, "unset keys should keep their defaults")
			},
		},
		{
			name:     "yml_suffix_is_yaml",
			filename: "filegrep.yml",
			content:  `term: hello`,
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "hello", o.Term, "term should come from the file")
			},
		},
		{
			name:     "json_defaults",
			filename: "filegrep.json",
			content:  `{"term": "hello", "case": "y"}`,
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "hello", o.Term, "term should come from the file")
				assert.Equal(t, "y", o.Case, "case should come from the file")
				assert.Equal(t, "txt", o.Ext, "unset keys should keep their defaults")
			},
		},
		{
			name:     "hcl_defaults",
			filename: "filegrep.hcl",
			content: `
term   = "hello"
ext    = "go,md"
`,
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "hello", o.Term, "term should come from the file")
				assert.Equal(t, "go,md", o.Ext, "ext should come from the file")
				assert.Equal(t, "console", o.Log, "unset keys should keep their defaults")
			},
		},
		{
			name:        "yaml_unknown_key_rejected",
			filename:    "filegrep.yaml",
			content:     `depth: 3`,
			wantErr:     true,
			errContains: "parsing defaults file",
		},
		{
			name:        "unsupported_extension",
			filename:    "filegrep.toml",
			content:     `term = "hello"`,
			wantErr:     true,
			errContains: "no parser found",
		},
		{
			name:        "invalid_hcl",
			filename:    "filegrep.hcl",
			content:     `term = `,
			wantErr:     true,
			errContains: "parsing defaults file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644), "writing defaults file")

			opts, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err, "load should fail")
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains, "error message should match")
				}
				return
			}
			require.NoError(t, err, "load should succeed")
			tt.check(t, opts)
		})
	}
}

func TestBuild_TokensOverrideFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("term: from-file\next: md\n"), 0644), "writing defaults file")

	opts, err := Build(ctx, []string{"config=" + path, "term=from-cli"})
	require.NoError(t, err, "build should succeed")
	assert.Equal(t, "from-cli", opts.Term, "CLI token should override the file value")
	assert.Equal(t, "md", opts.Ext, "file value should survive where no token overrides it")
}
