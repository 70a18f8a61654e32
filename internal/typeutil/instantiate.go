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

// Instantiate copies t into the arena. Each type-variable of t is replaced by the cell memoized
// for it in lookup; a fresh unbound variable carrying the same type-classes is created and
// memoized on first encounter. Sub-types are copied left to right.
func (a *Arena) Instantiate(t types.Type, lookup map[*types.Var]Ref) Ref {
	switch t := t.(type) {
	case *types.Var:
		if r, ok := lookup[t]; ok {
			return r
		}
		r := a.NewVar(t.Name, t.Classes...)
		lookup[t] = r
		return r

	case *types.Const:
		return a.NewConst(t.Name)

	case *types.Func:
		domain := a.Instantiate(t.Domain, lookup)
		return a.NewFunc(domain, a.Instantiate(t.Codomain, lookup))

	case *types.List:
		return a.NewList(a.Instantiate(t.Elem, lookup))

	case *types.App:
		params := make([]Ref, len(t.Params))
		for i, param := range t.Params {
			params[i] = a.Instantiate(param, lookup)
		}
		return a.NewApp(t.Name, params)
	}
	panic("unexpected type " + types.TypeName(t))
}
