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

	"github.com/viskell/hindley"
	"github.com/viskell/hindley/ast"
	"github.com/viskell/hindley/construct"
	"github.com/viskell/hindley/types"
)

const literalSep = " :: "

func newInferCmd() *cobra.Command {
	var annotate bool
	cmd := &cobra.Command{
		Use:   "infer <function> [argument...]",
		Short: "Infer the type of a function applied to arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := buildExpr(args)
			if err != nil {
				return err
			}
			if missing := env.Unknown(expr); len(missing) > 0 {
				return fmt.Errorf("unknown identifiers: %s", strings.Join(missing, ", "))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "expr: %s\n", ast.SourceText(expr))
			notes, err := hindley.Annotate(expr, env)
			if err != nil {
				if invalid := notes.Invalid(); invalid != nil {
					return fmt.Errorf("in %s: %w", ast.SourceText(invalid), err)
				}
				return err
			}
			root, _ := notes.Root()
			fmt.Fprintf(out, "type: %s\n", root)
			if annotate {
				ast.WalkExpr(expr, func(e ast.Expr) {
					fmt.Fprintf(out, "  %s :: %s\n", ast.SourceText(e), types.TypeString(notes.TypeOf(e)))
				})
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&annotate, "annotate", "a", false, "print the type of every sub-expression")
	return cmd
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <function> [argument...]",
		Short: "Print a function applied to arguments as source text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := buildExpr(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.SourceText(expr))
			return nil
		},
	}
}

// buildExpr applies the first argument to the rest, left to right. Arguments of the form
// `syntax :: Type` are literals; all others are identifiers.
func buildExpr(args []string) (ast.Expr, error) {
	exprs := make([]ast.Expr, len(args))
	for i, arg := range args {
		e, err := parseArg(arg)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return construct.Apply(exprs[0], exprs[1:]...), nil
}

func parseArg(arg string) (ast.Expr, error) {
	i := strings.LastIndex(arg, literalSep)
	if i < 0 {
		return construct.Ident(strings.TrimSpace(arg)), nil
	}
	syntax, sig := strings.TrimSpace(arg[:i]), arg[i+len(literalSep):]
	t, err := types.ParseSignature(sig, env.LookupTypeClass)
	if err != nil {
		return nil, fmt.Errorf("literal %s: %w", syntax, err)
	}
	return construct.Literal(t, syntax), nil
}
