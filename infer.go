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
	"errors"

	"github.com/viskell/hindley/ast"
	"github.com/viskell/hindley/internal/typeutil"
	"github.com/viskell/hindley/types"
)

// Analyze infers the type of expr within env, using a new GenSet.
//
// The returned term is pruned; it may still contain unbound type-variables. The error, if any,
// is a *types.UnknownIdentifierError, *types.MismatchError, *types.ConstraintViolationError or
// *types.RecursiveTypeError for the first conflict found.
func Analyze(expr ast.Expr, env *TypeEnv) (Term, error) {
	return AnalyzeWith(expr, env, NewGenSet())
}

// AnalyzeWith infers the type of expr within env, instantiating signatures into gs. Analyses sharing
// a GenSet share the fresh variables of each signature.
func AnalyzeWith(expr ast.Expr, env *TypeEnv, gs *GenSet) (Term, error) {
	ti := newInference(env, gs)
	ref, err := ti.infer(expr)
	if err != nil {
		return Term{}, err
	}
	return Term{gs, ref}, nil
}

// Annotations contains the type of each sub-expression of an analyzed expression.
type Annotations struct {
	root    ast.Expr
	gs      *GenSet
	terms   map[ast.Expr]typeutil.Ref
	invalid ast.Expr
}

// Annotate infers the type of expr within env, recording the type of every sub-expression.
//
// On failure the annotations for sub-expressions analyzed before the failure are returned with the error.
func Annotate(expr ast.Expr, env *TypeEnv) (*Annotations, error) {
	gs := NewGenSet()
	ti := newInference(env, gs)
	ti.terms = make(map[ast.Expr]typeutil.Ref)
	_, err := ti.infer(expr)
	return &Annotations{root: expr, gs: gs, terms: ti.terms, invalid: ti.invalid}, err
}

// Root returns the type of the analyzed expression.
func (a *Annotations) Root() (Term, bool) { return a.Term(a.root) }

// Term returns the type of a sub-expression. Terms reflect every binding made by the analysis,
// including bindings made after the sub-expression itself was analyzed.
func (a *Annotations) Term(e ast.Expr) (Term, bool) {
	ref, ok := a.terms[e]
	if !ok {
		return Term{}, false
	}
	return Term{a.gs, ref}, true
}

// TypeOf returns the pruned type of a sub-expression, or nil if it was not analyzed.
func (a *Annotations) TypeOf(e ast.Expr) types.Type {
	t, ok := a.Term(e)
	if !ok {
		return nil
	}
	return t.Type()
}

// Invalid returns the expression which caused the analysis to fail, or nil.
func (a *Annotations) Invalid() ast.Expr { return a.invalid }

type inference struct {
	scope   []envSnapshot
	ctx     *typeutil.Context
	terms   map[ast.Expr]typeutil.Ref
	invalid ast.Expr
}

func newInference(env *TypeEnv, gs *GenSet) *inference {
	ti := &inference{ctx: gs.ctx}
	for e := env; e != nil; e = e.Parent {
		ti.scope = append(ti.scope, e.snapshot())
	}
	return ti
}

func (ti *inference) lookup(name string) (types.Type, bool) {
	for _, s := range ti.scope {
		if t, ok := s.types.Get(name); ok {
			return t, true
		}
	}
	return nil, false
}

func (ti *inference) fail(e ast.Expr, err error) (typeutil.Ref, error) {
	if ti.invalid == nil {
		ti.invalid = e
	}
	return typeutil.NoRef, err
}

func (ti *inference) infer(e ast.Expr) (typeutil.Ref, error) {
	ref, err := ti.inferExpr(e)
	if err == nil && ti.terms != nil {
		ti.terms[e] = ref
	}
	return ref, err
}

func (ti *inference) inferExpr(e ast.Expr) (typeutil.Ref, error) {
	if ast.IsNil(e) {
		return ti.fail(e, errors.New("empty expression"))
	}
	switch e := e.(type) {
	case *ast.Ident:
		t, ok := ti.lookup(e.Name)
		if !ok {
			return ti.fail(e, &types.UnknownIdentifierError{Name: e.Name})
		}
		return ti.ctx.Instantiate(t), nil

	case *ast.Apply:
		fn, err := ti.infer(e.Func)
		if err != nil {
			return typeutil.NoRef, err
		}
		arg, err := ti.infer(e.Arg)
		if err != nil {
			return typeutil.NoRef, err
		}
		ret := ti.ctx.NewVar("")
		if err := ti.ctx.Unify(fn, ti.ctx.NewFunc(arg, ret)); err != nil {
			return ti.fail(e, err)
		}
		return ti.ctx.Prune(ret), nil

	case *ast.Literal:
		if e.Type == nil {
			return ti.fail(e, errors.New("literal "+e.Syntax+" has no type"))
		}
		// Literal types are copied privately, so the expression is never modified by unification:
		return ti.ctx.Import(e.Type), nil
	}
	panic("unknown expression type: " + e.ExprName())
}
