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

package construct

import (
	"github.com/viskell/hindley/ast"
	"github.com/viskell/hindley/types"
)

// Types

// Create a new type-variable qualified by the given type-classes.
func TVar(name string, classes ...*types.TypeClass) *types.Var {
	return types.NewVar(name, classes...)
}

// Type constant: `Int`, `String`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Function type: `a -> b`
func TFunc(domain, codomain types.Type) *types.Func {
	return &types.Func{Domain: domain, Codomain: codomain}
}

// Curried function type: `a -> b -> c`
func TFuncN(ret types.Type, args ...types.Type) types.Type {
	return types.Curry(ret, args...)
}

// List type: `[a]`
func TList(elem types.Type) *types.List {
	return &types.List{Elem: elem}
}

// Type application: `Signal a`
func TApp(name string, params ...types.Type) *types.App {
	return &types.App{Name: name, Params: params}
}

// Type-class: `Num = {Int, Float, Double}`
func TClass(name string, members ...string) *types.TypeClass {
	return types.NewUnion(name, members...)
}

// Expressions:

// Identifier
func Ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Application: `f x`, or `((f x) y)` when given several arguments
func Apply(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Apply{Func: f, Arg: arg}
	}
	return f
}

// Literal value with a fixed type: `[1, 2, 3]`
func Literal(t types.Type, syntax string) *ast.Literal {
	return &ast.Literal{Type: t, Syntax: syntax}
}
