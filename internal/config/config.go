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

// Package config loads the bst command's settings from a TOML file and
// command-line flags.  Flags override the file, which overrides defaults.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Key types the command can build trees of.
const (
	KeyTypeInt    = "int"
	KeyTypeString = "string"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	General GeneralOptions `toml:"general"`
	Tree    TreeOptions    `toml:"tree"`
}

type GeneralOptions struct {
	LogLevel string `toml:"log-level"`
}

type TreeOptions struct {
	KeyType string   `toml:"key-type"`
	Find    []string `toml:"find"`
	Print   bool     `toml:"print"`
	Render  bool     `toml:"render"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		General: GeneralOptions{LogLevel: zerolog.InfoLevel.String()},
		Tree:    TreeOptions{KeyType: KeyTypeInt},
	}
}

// LoadFile decodes the TOML file at path over the defaults.  Unknown keys are
// rejected.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Level returns the parsed log level.  Validate must have succeeded.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %v", ErrInvalidConfig, err)
	}
	switch c.Tree.KeyType {
	case KeyTypeInt, KeyTypeString:
	default:
		return fmt.Errorf("%w: key-type %q, want %q or %q", ErrInvalidConfig, c.Tree.KeyType, KeyTypeInt, KeyTypeString)
	}
	return nil
}
