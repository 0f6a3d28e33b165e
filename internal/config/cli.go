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
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CreateCommand returns the bst root command.  runFunc receives the merged,
// validated configuration and the keys given as arguments, in order.
func CreateCommand(runFunc func(ctx context.Context, cfg *Config, keys []string) error, version string) *cli.Command {
	return &cli.Command{
		Name:      "bst",
		Usage:     "insert keys into a binary search tree and look values up",
		ArgsUsage: "KEY...",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file to load; flags override its settings",
				Sources: cli.EnvVars("BST_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:    "key-type",
				Aliases: []string{"t"},
				Usage:   "type of the keys: int or string",
			},
			&cli.StringSliceFlag{
				Name:    "find",
				Aliases: []string{"f"},
				Usage:   "value to look up after inserting; may be repeated",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "dump the tree, one node per line",
			},
			&cli.BoolFlag{
				Name:  "render",
				Usage: "draw the tree",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := Default()
			if path := cmd.String("config"); path != "" {
				var err error
				if cfg, err = LoadFile(path); err != nil {
					return fmt.Errorf("error loading config: %w", err)
				}
			}
			applyFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runFunc(ctx, cfg, cmd.Args().Slice())
		},
	}
}

func applyFlags(cmd *cli.Command, cfg *Config) {
	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("key-type") {
		cfg.Tree.KeyType = cmd.String("key-type")
	}
	if cmd.IsSet("find") {
		cfg.Tree.Find = cmd.StringSlice("find")
	}
	if cmd.IsSet("print") {
		cfg.Tree.Print = cmd.Bool("print")
	}
	if cmd.IsSet("render") {
		cfg.Tree.Render = cmd.Bool("render")
	}
}
