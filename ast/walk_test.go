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

	"github.com/stretchr/testify/assert"
)

func TestWalkExprOrder(t *testing.T) {
	f, x, y := &Ident{Name: "f"}, &Ident{Name: "x"}, &Literal{Syntax: "1"}
	inner := &Apply{Func: f, Arg: x}
	outer := &Apply{Func: inner, Arg: y}

	var visited []Expr
	WalkExpr(outer, func(e Expr) { visited = append(visited, e) })
	assert.Equal(t, []Expr{outer, inner, f, x, y}, visited)

	visited = nil
	WalkExpr(nil, func(e Expr) { visited = append(visited, e) })
	assert.Empty(t, visited)
}

func TestIdentifiers(t *testing.T) {
	e := &Apply{
		Func: &Apply{Func: &Ident{Name: "zipWith"}, Arg: &Ident{Name: "(+)"}},
		Arg:  &Apply{Func: &Ident{Name: "map"}, Arg: &Ident{Name: "(+)"}},
	}
	assert.Equal(t, []string{"zipWith", "(+)", "map"}, Identifiers(e))
	assert.Empty(t, Identifiers(&Literal{Syntax: "[]"}))
}

func TestTypedNilExpressions(t *testing.T) {
	var ident *Ident
	e := &Apply{Func: ident, Arg: (*Literal)(nil)}
	assert.True(t, IsNil(ident))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(e))
	assert.Equal(t, "(undefined undefined)", SourceText(e))
	assert.Empty(t, Identifiers(e))

	var visited []Expr
	WalkExpr(e, func(e Expr) { visited = append(visited, e) })
	assert.Equal(t, []Expr{e}, visited)
}
