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
	set "github.com/hashicorp/go-set/v2"

	"github.com/viskell/hindley/types"
)

// Ref addresses a type-cell within an Arena.
type Ref int32

// NoRef is the link of an unbound type-variable.
const NoRef Ref = -1

// Tag identifies the variant of a type-cell.
type Tag uint8

const (
	VarTag Tag = iota
	ConstTag
	FuncTag
	ListTag
	AppTag
)

type classSet = set.Set[*types.TypeClass]

type cell struct {
	tag Tag
	// constant or application name; printing hint for variables
	name string
	// binding of a variable, NoRef while unbound
	link Ref
	// function domain or list element
	left Ref
	// function codomain
	right  Ref
	params []Ref
	// type-classes qualifying an unbound variable; nil when unqualified
	classes *classSet
}

// Arena holds the type-cells of a single inference pass. Cells are never freed individually;
// the arena is discarded with the pass.
//
// An arena cannot be used concurrently.
type Arena struct {
	cells []cell
}

func (a *Arena) push(c cell) Ref {
	a.cells = append(a.cells, c)
	return Ref(len(a.cells) - 1)
}

// Len returns the number of allocated cells.
func (a *Arena) Len() int { return len(a.cells) }

// Create an unbound type-variable qualified by the given type-classes.
func (a *Arena) NewVar(hint string, classes ...*types.TypeClass) Ref {
	c := cell{tag: VarTag, name: hint, link: NoRef, left: NoRef, right: NoRef}
	if len(classes) > 0 {
		c.classes = set.From(classes)
	}
	return a.push(c)
}

// Create a type-constant.
func (a *Arena) NewConst(name string) Ref {
	return a.push(cell{tag: ConstTag, name: name, link: NoRef, left: NoRef, right: NoRef})
}

// Create a function type.
func (a *Arena) NewFunc(domain, codomain Ref) Ref {
	return a.push(cell{tag: FuncTag, link: NoRef, left: domain, right: codomain})
}

// Create a list type.
func (a *Arena) NewList(elem Ref) Ref {
	return a.push(cell{tag: ListTag, link: NoRef, left: elem, right: NoRef})
}

// Create a type application.
func (a *Arena) NewApp(name string, params []Ref) Ref {
	return a.push(cell{tag: AppTag, name: name, link: NoRef, left: NoRef, right: NoRef, params: params})
}

// Domain returns the domain of a function cell.
func (a *Arena) Domain(r Ref) Ref { return a.cells[r].left }

// Codomain returns the codomain of a function cell.
func (a *Arena) Codomain(r Ref) Ref { return a.cells[r].right }

// Link returns the binding of a variable cell, or NoRef when unbound.
func (a *Arena) Link(r Ref) Ref { return a.cells[r].link }

func (a *Arena) IsUnboundVar(r Ref) bool {
	c := &a.cells[r]
	return c.tag == VarTag && c.link == NoRef
}

// Classes returns the type-classes qualifying an unbound variable, sorted by name.
func (a *Arena) Classes(r Ref) []*types.TypeClass {
	c := &a.cells[r]
	if c.classes == nil || c.classes.Empty() {
		return nil
	}
	return types.SortClasses(c.classes.Slice())
}

// Prune returns the representative of r: the first cell along its chain of bindings which is
// not a bound variable. Every variable along the chain is re-linked directly to the
// representative, so repeated pruning is constant-time.
func (a *Arena) Prune(r Ref) Ref {
	root := r
	for a.cells[root].tag == VarTag && a.cells[root].link != NoRef {
		root = a.cells[root].link
	}
	// Path compression:
	for r != root {
		next := a.cells[r].link
		a.cells[r].link = root
		r = next
	}
	return root
}

// Bind links the unbound variable v to t.
//
// Binding a variable twice is a programming error and panics.
func (a *Arena) Bind(v, t Ref) {
	c := &a.cells[v]
	if c.tag != VarTag {
		panic("typeutil: binding a non-variable type")
	}
	if c.link != NoRef {
		panic("typeutil: type-variable is already bound")
	}
	c.link, c.classes = t, nil
}
