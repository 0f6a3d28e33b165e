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

// Command bst inserts its arguments into a binary search tree, then looks up
// the values given with --find.
//
//	bst --find 20 --find 100 --print 10 5 20 25 15 1 7
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/bst"
	"github.com/google/bst/internal/applog"
	"github.com/google/bst/internal/config"
	"github.com/google/bst/internal/render"
	"github.com/rs/zerolog"
)

var version = "dev"

func main() {
	cmd := config.CreateCommand(func(ctx context.Context, cfg *config.Config, keys []string) error {
		logger := applog.NewLogger(os.Stderr, cfg.Level())
		return run(os.Stdout, logger, cfg, keys)
	}, version)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := applog.WithScope(applog.NewLogger(os.Stderr, zerolog.InfoLevel), "MAIN")
		logger.Error().Err(err).Msg("bst failed")
		os.Exit(1)
	}
}

func run(w io.Writer, logger zerolog.Logger, cfg *config.Config, keys []string) error {
	switch cfg.Tree.KeyType {
	case config.KeyTypeInt:
		return runTree(w, logger, cfg, keys, bst.NewOrdered[int](), strconv.Atoi)
	case config.KeyTypeString:
		return runTree(w, logger, cfg, keys, bst.NewOrdered[string](), func(s string) (string, error) { return s, nil })
	default:
		return fmt.Errorf("%w: key-type %q", config.ErrInvalidConfig, cfg.Tree.KeyType)
	}
}

func runTree[T any](
	w io.Writer,
	logger zerolog.Logger,
	cfg *config.Config,
	keys []string,
	tr *bst.Tree[T],
	parse func(string) (T, error),
) error {
	logger = applog.WithScope(logger, "TREE")

	for _, k := range keys {
		v, err := parse(k)
		if err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		tr.Insert(v)
		logger.Debug().Str("key", k).Int("len", tr.Len()).Msg("inserted")
	}
	logger.Info().Int("len", tr.Len()).Int("height", tr.Height()).Msg("tree built")

	for _, k := range cfg.Tree.Find {
		v, err := parse(k)
		if err != nil {
			return fmt.Errorf("find %q: %w", k, err)
		}
		if n, ok := tr.Find(v); ok {
			fmt.Fprintf(w, "%v: found\n", n.Value())
		} else {
			fmt.Fprintf(w, "%s: not found\n", k)
		}
	}

	if cfg.Tree.Print {
		tr.Print(w)
	}
	if cfg.Tree.Render {
		if err := render.Render(w, tr); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}
