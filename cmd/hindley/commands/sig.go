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

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viskell/hindley/types"
)

func newSigCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "sig [name...]",
		Short: "Show declared signatures with their inputs and output",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				for _, category := range loaded.CategoryNames() {
					entries, _ := loaded.Category(category)
					fmt.Fprintf(out, "-- %s\n", category)
					for _, entry := range entries {
						t, _ := env.Lookup(entry.Name)
						fmt.Fprintf(out, "%s :: %s\n", entry.Name, types.TypeString(t))
					}
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("no names given; use --all to list the catalog")
			}
			for _, name := range args {
				t, ok := env.Lookup(name)
				if !ok {
					return &types.UnknownIdentifierError{Name: name}
				}
				printSignature(cmd, name, t)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every catalog entry by category")
	return cmd
}

func printSignature(cmd *cobra.Command, name string, t types.Type) {
	out := cmd.OutOrStdout()
	// Shared names keep the variables of inputs and output consistent with the signature:
	args := types.Args(t).Types()
	strs := types.TypeStrings(append([]types.Type{t, types.Result(t)}, args...)...)
	fmt.Fprintf(out, "%s :: %s\n", name, strs[0])
	if entry, ok := loaded.Entry(name); ok && entry.Doc != "" {
		fmt.Fprintf(out, "  %s\n", entry.Doc)
	}
	fmt.Fprintf(out, "  arity:  %d\n", types.Arity(t))
	if len(args) > 0 {
		fmt.Fprintf(out, "  inputs: %s\n", strings.Join(strs[2:], ", "))
	}
	fmt.Fprintf(out, "  output: %s\n", strs[1])
}
