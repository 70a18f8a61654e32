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

// Unify makes x and y structurally identical by binding unbound type-variables, or
// returns a *types.MismatchError, *types.ConstraintViolationError or
// *types.RecursiveTypeError describing the first conflict found.
//
// x is treated as the expected type and y as the actual type when reporting mismatches.
// Bindings made before a failure are not undone.
func (a *Arena) Unify(x, y Ref) error {
	// Path compression:
	x, y = a.Prune(x), a.Prune(y)
	if x == y {
		return nil
	}

	// unify type variables:

	xvar, yvar := a.cells[x].tag == VarTag, a.cells[y].tag == VarTag
	switch {
	case xvar && yvar:
		a.union(x, y)
		return nil
	case xvar:
		return a.bindVar(x, y)
	case yvar:
		return a.bindVar(y, x)
	}

	// unify types:

	cx, cy := &a.cells[x], &a.cells[y]
	if cx.tag != cy.tag {
		return a.mismatch(x, y)
	}
	switch cx.tag {
	case ConstTag:
		if cx.name != cy.name {
			return a.mismatch(x, y)
		}
		return nil

	case FuncTag:
		dx, dy, rx, ry := cx.left, cy.left, cx.right, cy.right
		if err := a.Unify(dx, dy); err != nil {
			return err
		}
		return a.Unify(rx, ry)

	case ListTag:
		return a.Unify(cx.left, cy.left)

	case AppTag:
		if cx.name != cy.name || len(cx.params) != len(cy.params) {
			return a.mismatch(x, y)
		}
		px, py := cx.params, cy.params
		for i := range px {
			if err := a.Unify(px[i], py[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return a.mismatch(x, y)
}

// CanUnify reports whether x and y unify, without binding any variables.
func (a *Arena) CanUnify(x, y Ref) bool {
	snapshot := a.snapshot()
	err := a.Unify(x, y)
	a.restore(snapshot)
	return err == nil
}

// union links two distinct unbound variables. Type-class qualifications of both
// are carried by the representative.
func (a *Arena) union(v, w Ref) {
	cv, cw := &a.cells[v], &a.cells[w]
	switch {
	case cv.classes == nil || cv.classes.Empty():
	case cw.classes == nil || cw.classes.Empty():
		cw.classes = cv.classes
	default:
		merged := cw.classes.Copy()
		merged.InsertSet(cv.classes)
		cw.classes = merged
	}
	a.Bind(v, w)
}

func (a *Arena) bindVar(v, t Ref) error {
	if a.occurs(v, t) {
		ts := a.ExportAll(v, t)
		return &types.RecursiveTypeError{Var: ts[0].(*types.Var), Type: ts[1]}
	}
	// Every class of a qualified variable must accept the constant it is bound to:
	if classes := a.Classes(v); len(classes) > 0 {
		var rejected *types.TypeClass
		if a.cells[t].tag == ConstTag {
			rejected = types.Rejecting(classes, &types.Const{Name: a.cells[t].name})
		} else {
			rejected = classes[0]
		}
		if rejected != nil {
			return &types.ConstraintViolationError{Class: rejected, Actual: a.Export(t)}
		}
	}
	a.Bind(v, t)
	return nil
}

// occurs reports whether the unbound variable v is reachable from t.
func (a *Arena) occurs(v, t Ref) bool {
	t = a.Prune(t)
	if t == v {
		return true
	}
	c := &a.cells[t]
	switch c.tag {
	case FuncTag:
		return a.occurs(v, c.left) || a.occurs(v, c.right)
	case ListTag:
		return a.occurs(v, c.left)
	case AppTag:
		for _, p := range c.params {
			if a.occurs(v, p) {
				return true
			}
		}
	}
	return false
}

func (a *Arena) mismatch(expected, actual Ref) error {
	ts := a.ExportAll(expected, actual)
	return &types.MismatchError{Expected: ts[0], Actual: ts[1]}
}

type varState struct {
	link    Ref
	classes *classSet
}

type arenaSnapshot struct {
	n    int
	vars []varState
}

// snapshot records the binding state of every cell, so speculative unification can be undone.
// Class sets are never modified in place, so they are shared with the snapshot.
func (a *Arena) snapshot() arenaSnapshot {
	s := arenaSnapshot{n: len(a.cells), vars: make([]varState, len(a.cells))}
	for i := range a.cells {
		s.vars[i] = varState{a.cells[i].link, a.cells[i].classes}
	}
	return s
}

func (a *Arena) restore(s arenaSnapshot) {
	a.cells = a.cells[:s.n]
	for i, st := range s.vars {
		a.cells[i].link, a.cells[i].classes = st.link, st.classes
	}
}
