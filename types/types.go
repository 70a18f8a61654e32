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

package types

// Type is the base interface for all types.
//
// Types are immutable once constructed. Type-variables are identified by address:
// all occurrences of a variable within one signature must share the same *Var.
type Type interface {
	TypeName() string
	isType()
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Const)(nil)
	_ Type = (*Func)(nil)
	_ Type = (*List)(nil)
	_ Type = (*App)(nil)
)

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *Func) TypeName() string  { return "Func" }
func (t *List) TypeName() string  { return "List" }
func (t *App) TypeName() string   { return "App" }

func (*Var) isType()   {}
func (*Const) isType() {}
func (*Func) isType()  {}
func (*List) isType()  {}
func (*App) isType()   {}

// Type-variable: `a`, or `Num a => a` when qualified by type-classes.
type Var struct {
	// Name is a hint for printing; identity is the address of the Var.
	Name string
	// Classes qualify the variable. A qualified variable may only be bound to a
	// type-constant which is a member of one of its classes.
	Classes []*TypeClass
}

// Create a new type-variable qualified by the given type-classes.
func NewVar(name string, classes ...*TypeClass) *Var {
	return &Var{Name: name, Classes: classes}
}

// Qualified reports whether the variable carries type-class constraints.
func (tv *Var) Qualified() bool { return len(tv.Classes) > 0 }

// Type constant: `Int` or `String`
type Const struct {
	Name string
}

// Function type: `a -> b`
type Func struct {
	Domain   Type
	Codomain Type
}

// List type: `[a]`
type List struct {
	Elem Type
}

// Type application: `Signal a`
type App struct {
	Name   string
	Params []Type
}

// TypeName returns the name of the variant of t, or "nil".
func TypeName(t Type) string {
	if t == nil {
		return "nil"
	}
	return t.TypeName()
}

// Equal reports whether a and b are structurally equal, treating variables as equal
// when they are consistently renamed between a and b.
func Equal(a, b Type) bool {
	return equal(a, b, make(map[*Var]*Var), make(map[*Var]*Var))
}

func equal(a, b Type, ab, ba map[*Var]*Var) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		if !ok {
			return false
		}
		if prev, seen := ab[a]; seen {
			return prev == b
		}
		if prev, seen := ba[b]; seen {
			return prev == a
		}
		ab[a], ba[b] = b, a
		return sameClasses(a.Classes, b.Classes)
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Func:
		b, ok := b.(*Func)
		return ok && equal(a.Domain, b.Domain, ab, ba) && equal(a.Codomain, b.Codomain, ab, ba)
	case *List:
		b, ok := b.(*List)
		return ok && equal(a.Elem, b.Elem, ab, ba)
	case *App:
		b, ok := b.(*App)
		if !ok || a.Name != b.Name || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !equal(a.Params[i], b.Params[i], ab, ba) {
				return false
			}
		}
		return true
	}
	return false
}

func sameClasses(a, b []*TypeClass) bool {
	if len(a) != len(b) {
		return false
	}
	for _, tc := range a {
		found := false
		for _, other := range b {
			if tc == other {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FreeVars returns the distinct type-variables of t in order of first appearance.
func FreeVars(t Type) []*Var {
	var vars []*Var
	seen := make(map[*Var]bool)
	var visit func(Type)
	visit = func(t Type) {
		switch t := t.(type) {
		case *Var:
			if !seen[t] {
				seen[t] = true
				vars = append(vars, t)
			}
		case *Func:
			visit(t.Domain)
			visit(t.Codomain)
		case *List:
			visit(t.Elem)
		case *App:
			for _, p := range t.Params {
				visit(p)
			}
		}
	}
	visit(t)
	return vars
}
