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
	"github.com/viskell/hindley/types"
)

// Export converts the pruned cell graph reachable from r into an immutable type. Each distinct
// unbound variable becomes a new *types.Var carrying its current type-classes, so the result
// is generalized over every variable left unbound.
func (a *Arena) Export(r Ref) types.Type {
	return a.ExportAll(r)[0]
}

// ExportAll exports several cells at once. A variable shared between the cells is exported
// to the same *types.Var in each result.
func (a *Arena) ExportAll(rs ...Ref) []types.Type {
	e := exporter{a: a, vars: make(map[Ref]*types.Var)}
	ts := make([]types.Type, len(rs))
	for i, r := range rs {
		ts[i] = e.export(r)
	}
	return ts
}

type exporter struct {
	a    *Arena
	vars map[Ref]*types.Var
}

func (e *exporter) export(r Ref) types.Type {
	r = e.a.Prune(r)
	c := e.a.cells[r]
	switch c.tag {
	case VarTag:
		if tv, ok := e.vars[r]; ok {
			return tv
		}
		tv := &types.Var{Name: c.name, Classes: e.a.Classes(r)}
		e.vars[r] = tv
		return tv

	case ConstTag:
		return &types.Const{Name: c.name}

	case FuncTag:
		domain := e.export(c.left)
		return &types.Func{Domain: domain, Codomain: e.export(c.right)}

	case ListTag:
		return &types.List{Elem: e.export(c.left)}

	case AppTag:
		params := make([]types.Type, len(c.params))
		for i, p := range c.params {
			params[i] = e.export(p)
		}
		return &types.App{Name: c.name, Params: params}
	}
	panic("typeutil: invalid cell")
}
