// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package commands provides the CLI commands for the hindley tool.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/viskell/hindley"
	"github.com/viskell/hindley/catalog"
)

// CatalogEnvVar names the environment variable consulted when --catalog is not set.
const CatalogEnvVar = "HINDLEY_CATALOG"

var (
	catalogPath string
	verbose     bool

	loaded *catalog.Catalog
	env    *hindley.TypeEnv
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hindley",
		Short: "Type inference for Haskell-like expressions",
		Long: `hindley infers the types of Haskell-like expressions built from a catalog of
function signatures and type-classes.

Usage:
  hindley classes                       List type-classes and their members
  hindley sig map foldr                 Show declared signatures
  hindley infer map '(*)' '[1, 2] :: [Int]'
                                        Infer the type of ((map (*)) [1, 2])
  hindley render map '(*)' '[1, 2] :: [Int]'
                                        Print the expression as source text

Literals are written as 'syntax :: Type'. The catalog defaults to $` + CatalogEnvVar + `,
or the built-in prelude.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd)
			return loadCatalog()
		},
	}
	cmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "catalog file (YAML)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newClassesCmd(), newSigCmd(), newInferCmd(), newRenderCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func loadCatalog() error {
	path := catalogPath
	if path == "" {
		path = os.Getenv(CatalogEnvVar)
	}
	var err error
	if path == "" {
		loaded = catalog.Prelude()
	} else if loaded, err = catalog.LoadFile(path); err != nil {
		return err
	}
	slog.Debug("using catalog", "path", path)
	env, err = loaded.NewTypeEnv()
	return err
}
