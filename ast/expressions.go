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
	"github.com/viskell/hindley/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*Ident)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Literal)(nil)
)

// Identifier, resolved in the type-environment: `map`, `(*)`
type Ident struct {
	Name string
}

// "Ident"
func (e *Ident) ExprName() string { return "Ident" }

// Application of a function to a single argument: `f x`
type Apply struct {
	Func Expr
	Arg  Expr
}

// "Apply"
func (e *Apply) ExprName() string { return "Apply" }

// Literal value with a fixed type: `[1, 2, 3]`
type Literal struct {
	// Type is assigned when the literal is constructed; it is never inferred.
	Type types.Type
	// Syntax is printed verbatim when the literal is rendered as source text.
	Syntax string
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

func (*Ident) isExpr()   {}
func (*Apply) isExpr()   {}
func (*Literal) isExpr() {}

// IsNil reports whether e is nil or a nil pointer to one of the expression types.
func IsNil(e Expr) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *Ident:
		return e == nil
	case *Apply:
		return e == nil
	case *Literal:
		return e == nil
	}
	return false
}
