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

package ast

import (
	"testing"

	"github.com/viskell/hindley/types"
)

func TestSourceText(t *testing.T) {
	list := &Literal{Type: &types.List{Elem: &types.Const{Name: "Int"}}, Syntax: "[1, 2, 3, 5, 7]"}
	cases := []struct {
		e    Expr
		want string
	}{
		{nil, "undefined"},
		{&Ident{Name: "map"}, "map"},
		{&Ident{Name: "*"}, "(*)"},
		{&Ident{Name: "(*)"}, "(*)"},
		{&Ident{Name: "."}, "(.)"},
		{list, "[1, 2, 3, 5, 7]"},
		{&Apply{Func: &Apply{Func: &Ident{Name: "map"}, Arg: &Ident{Name: "(*)"}}, Arg: list}, "((map (*)) [1, 2, 3, 5, 7])"},
		{&Apply{Func: &Ident{Name: "negate"}, Arg: &Apply{Func: &Ident{Name: "abs"}, Arg: &Literal{Syntax: "3"}}}, "(negate (abs 3))"},
	}
	for _, tc := range cases {
		if got := SourceText(tc.e); got != tc.want {
			t.Fatalf("expected %q, found %q", tc.want, got)
		}
	}
}
