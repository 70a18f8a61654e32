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
	"strings"
)

// SourceText renders an expression as fully-parenthesized prefix application, suitable for
// evaluation by an interpreter: applying f to x and then y renders as `((f x) y)`.
//
// Literals render their syntax verbatim and missing expressions render as `undefined`.
// Operator identifiers which are not already parenthesized are wrapped in parentheses:
// `*` renders as `(*)`.
func SourceText(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr) {
	if IsNil(e) {
		sb.WriteString("undefined")
		return
	}
	switch e := e.(type) {
	case *Ident:
		if isOperator(e.Name) {
			sb.WriteByte('(')
			sb.WriteString(e.Name)
			sb.WriteByte(')')
			return
		}
		sb.WriteString(e.Name)

	case *Apply:
		sb.WriteByte('(')
		exprString(sb, e.Func)
		sb.WriteByte(' ')
		exprString(sb, e.Arg)
		sb.WriteByte(')')

	case *Literal:
		sb.WriteString(e.Syntax)
	}
}

const operatorChars = "!#$%&*+./<=>?@\\^|-~:"

func isOperator(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune(operatorChars, r) {
			return false
		}
	}
	return true
}
