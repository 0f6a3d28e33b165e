// Copyright 2026 Google Inc.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bst.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	tcs := []struct {
		name    string
		content string
		assert  func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "all fields",
			content: `
[general]
log-level = "debug"

[tree]
key-type = "string"
find = ["a", "zz"]
print = true
render = true
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "debug", cfg.General.LogLevel)
				assert.Equal(t, KeyTypeString, cfg.Tree.KeyType)
				assert.Equal(t, []string{"a", "zz"}, cfg.Tree.Find)
				assert.True(t, cfg.Tree.Print)
				assert.True(t, cfg.Tree.Render)
			},
		},
		{
			name:    "unknown key",
			content: "[tree]\nbalance = true\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.ErrorContains(t, err, "tree.balance")
				assert.Nil(t, cfg)
			},
		},
		{
			name:    "malformed",
			content: "[tree\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadFile(writeFile(t, tc.content))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())

	cfg.Tree.KeyType = "float"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.General.LogLevel = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.General.LogLevel = "warn"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}
