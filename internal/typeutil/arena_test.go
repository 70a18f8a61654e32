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

package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viskell/hindley/types"
)

func TestPruneCompressesPath(t *testing.T) {
	var a Arena
	v1, v2, v3 := a.NewVar("a"), a.NewVar("b"), a.NewVar("c")
	c := a.NewConst("Int")
	a.Bind(v1, v2)
	a.Bind(v2, v3)
	a.Bind(v3, c)

	require.Equal(t, c, a.Prune(v1))
	assert.Equal(t, c, a.Link(v1))
	assert.Equal(t, c, a.Link(v2))
	assert.Equal(t, c, a.Prune(a.Prune(v1)))
	assert.Equal(t, c, a.Prune(c))
}

func TestPruneUnboundVar(t *testing.T) {
	var a Arena
	v := a.NewVar("a")
	if a.Prune(v) != v || !a.IsUnboundVar(v) {
		t.Fatalf("expected unbound variable to prune to itself")
	}
}

func TestBindTwicePanics(t *testing.T) {
	var a Arena
	v := a.NewVar("a")
	a.Bind(v, a.NewConst("Int"))
	assert.Panics(t, func() { a.Bind(v, a.NewConst("Bool")) })
	assert.Panics(t, func() { a.Bind(a.NewConst("Int"), v) })
}

func TestBindClearsClasses(t *testing.T) {
	var a Arena
	num := types.NewUnion("Num", "Int")
	v := a.NewVar("a", num)
	require.Len(t, a.Classes(v), 1)
	a.Bind(v, a.NewConst("Int"))
	assert.Empty(t, a.Classes(v))
}

func TestInstantiateSharesMemo(t *testing.T) {
	ctx := NewContext()
	tv := types.NewVar("a")
	sig := &types.Func{Domain: tv, Codomain: tv}

	r1 := ctx.Instantiate(sig)
	r2 := ctx.Instantiate(sig)
	require.NotEqual(t, r1, r2)
	assert.Equal(t, ctx.Domain(r1), ctx.Codomain(r1))
	assert.Equal(t, ctx.Domain(r1), ctx.Domain(r2))
	assert.Len(t, ctx.InstLookup, 1)

	r3 := ctx.Import(sig)
	assert.NotEqual(t, ctx.Domain(r1), ctx.Domain(r3))
	assert.Equal(t, ctx.Domain(r3), ctx.Codomain(r3))
	assert.Len(t, ctx.InstLookup, 1)
}

func TestInstantiateKeepsClasses(t *testing.T) {
	ctx := NewContext()
	num := types.NewUnion("Num", "Int", "Float")
	r := ctx.Instantiate(types.NewVar("a", num))
	assert.Equal(t, []*types.TypeClass{num}, ctx.Classes(r))
}

func TestExportAllSharesVars(t *testing.T) {
	var a Arena
	v := a.NewVar("a")
	f := a.NewFunc(v, a.NewList(v))
	ts := a.ExportAll(f, v)

	fn, ok := ts[0].(*types.Func)
	require.True(t, ok)
	assert.Same(t, fn.Domain, ts[1])
	assert.Same(t, fn.Domain, fn.Codomain.(*types.List).Elem)
	assert.Equal(t, "a -> [a]", types.TypeString(ts[0]))
}

func TestExportFollowsBindings(t *testing.T) {
	var a Arena
	v := a.NewVar("a")
	app := a.NewApp("Signal", []Ref{v})
	a.Bind(v, a.NewConst("Int"))
	assert.Equal(t, "Signal Int", types.TypeString(a.Export(app)))
}
