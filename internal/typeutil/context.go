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

// Context is the state of one inference pass: an arena of type-cells and the lookup
// from each instantiated type-variable to its fresh cell.
//
// A context cannot be used concurrently.
type Context struct {
	Arena
	InstLookup map[*types.Var]Ref
}

func NewContext() *Context {
	return &Context{InstLookup: make(map[*types.Var]Ref)}
}

// Instantiate copies t into the arena, sharing fresh variables with every previous
// instantiation made through the context.
func (ctx *Context) Instantiate(t types.Type) Ref {
	return ctx.Arena.Instantiate(t, ctx.InstLookup)
}

// Import copies t into the arena with variables private to this copy.
func (ctx *Context) Import(t types.Type) Ref {
	return ctx.Arena.Instantiate(t, make(map[*types.Var]Ref))
}
