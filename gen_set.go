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

package hindley

import (
	"github.com/viskell/hindley/internal/typeutil"
	"github.com/viskell/hindley/types"
)

// GenSet owns the type-variables of one analysis. Every occurrence of a signature's
// type-variable instantiated through the same GenSet maps to the same fresh variable,
// while separate GenSets never share variables.
//
// A GenSet cannot be used concurrently.
type GenSet struct {
	ctx *typeutil.Context
}

// Create an empty GenSet.
func NewGenSet() *GenSet { return &GenSet{ctx: typeutil.NewContext()} }

// Len returns the number of distinct signature variables instantiated so far.
func (gs *GenSet) Len() int { return len(gs.ctx.InstLookup) }

// Instantiate returns a copy of t in which each type-variable is replaced by its fresh
// variable within gs. t is not modified.
func (gs *GenSet) Instantiate(t types.Type) Term {
	return Term{gs, gs.ctx.Instantiate(t)}
}

// Import returns a copy of t whose type-variables are private to the copy.
func (gs *GenSet) Import(t types.Type) Term {
	return Term{gs, gs.ctx.Import(t)}
}

// Fresh returns a new unbound type-variable qualified by the given type-classes.
func (gs *GenSet) Fresh(classes ...*types.TypeClass) Term {
	return Term{gs, gs.ctx.NewVar("", classes...)}
}

// Term is a type owned by a GenSet. A term may be an unbound or bound type-variable; Prune
// resolves it to its representative.
type Term struct {
	gs  *GenSet
	ref typeutil.Ref
}

// GenSet returns the owner of t.
func (t Term) GenSet() *GenSet { return t.gs }

// Prune follows the bindings of t to its representative, compressing the chain of bindings.
// Pruning is idempotent.
func (t Term) Prune() Term { return Term{t.gs, t.gs.ctx.Prune(t.ref)} }

// IsVar reports whether t is an unbound type-variable after pruning.
func (t Term) IsVar() bool { return t.gs.ctx.IsUnboundVar(t.gs.ctx.Prune(t.ref)) }

// Same reports whether t and u prune to the same representative.
func (t Term) Same(u Term) bool {
	return t.gs == u.gs && t.gs.ctx.Prune(t.ref) == u.gs.ctx.Prune(u.ref)
}

// Type returns the fully pruned structure of t as an immutable type.
func (t Term) Type() types.Type { return t.gs.ctx.Export(t.ref) }

// Generalize returns an immutable copy of t which is polymorphic over each type-variable
// left unbound. The copy may be declared in a TypeEnv.
func (t Term) Generalize() types.Type { return t.Type() }

// String returns the Haskell-style representation of the pruned type.
func (t Term) String() string { return types.TypeString(t.Type()) }

// Unify makes a and b structurally identical by binding type-variables of their GenSet.
//
// The returned error is a *types.MismatchError, *types.ConstraintViolationError or
// *types.RecursiveTypeError. Unifying terms of different GenSets panics.
func Unify(a, b Term) error {
	mustShareGenSet(a, b)
	return a.gs.ctx.Unify(a.ref, b.ref)
}

// CanUnify reports whether a and b would unify, without binding any type-variables.
func CanUnify(a, b Term) bool {
	mustShareGenSet(a, b)
	return a.gs.ctx.CanUnify(a.ref, b.ref)
}

func mustShareGenSet(a, b Term) {
	if a.gs == nil || a.gs != b.gs {
		panic("hindley: terms belong to different GenSets")
	}
}
