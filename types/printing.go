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

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		p := &typePrinter{
			idNames: make(map[*Var]string, 16),
			preds:   make(map[*Var][]string, 16),
		}
		p.order = p._order[:0]
		return p
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.resetPreds()
	p.sb.Reset()
	printerPool.Put(p)
}

func (p *typePrinter) resetPreds() {
	for k := range p.preds {
		delete(p.preds, k)
	}
	for i := range p.order {
		p.order[i] = nil
	}
	p.order = p._order[:0]
}

// Binding strength of the position a type is printed in.
const (
	precTop = iota
	precArg
	precParam
)

// TypeString returns a Haskell-style string representation of a Type.
//
// Type-variables are renamed by order of first appearance (a, b, c, ...) and
// type-class qualifications are printed as a context: `Num a => a -> a -> a`.
func TypeString(t Type) string {
	p := newTypePrinter()
	s := p.qualified(t)
	p.Release()
	return s
}

// TypeStrings returns string representations of several types which share variable names,
// so that the same variable prints identically in each result.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = p.qualified(t)
	}
	p.Release()
	return out
}

type typePrinter struct {
	idNames map[*Var]string
	preds   map[*Var][]string
	order   []*Var
	_order  [16]*Var
	sb      strings.Builder
}

func (p *typePrinter) qualified(t Type) string {
	p.sb.Reset()
	p.resetPreds()
	typeString(p, precTop, t)
	if len(p.order) == 0 {
		return p.sb.String()
	}

	var sb strings.Builder
	multiplePreds := len(p.order) > 1 || len(p.preds[p.order[0]]) > 1
	if multiplePreds {
		sb.WriteByte('(')
	}
	for i, tv := range p.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		for j, pred := range p.preds[tv] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(pred)
			sb.WriteByte(' ')
			sb.WriteString(p.idNames[tv])
		}
	}
	if multiplePreds {
		sb.WriteByte(')')
	}
	sb.WriteString(" => ")
	sb.WriteString(p.sb.String())
	return sb.String()
}

func getVarName(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return string(rune('a'+i%26)) + strconv.Itoa(i/26)
}

func typeString(p *typePrinter, prec int, t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		name, ok := p.idNames[t]
		if !ok {
			name = getVarName(len(p.idNames))
			p.idNames[t] = name
		}
		p.sb.WriteString(name)
		if len(t.Classes) == 0 {
			return
		}
		if _, ok := p.preds[t]; ok {
			return
		}
		classes := SortClasses(append([]*TypeClass(nil), t.Classes...))
		preds := make([]string, len(classes))
		for i, tc := range classes {
			preds[i] = tc.Name
		}
		p.preds[t] = preds
		p.order = append(p.order, t)

	case *Func:
		if prec > precTop {
			p.sb.WriteByte('(')
		}
		typeString(p, precArg, t.Domain)
		p.sb.WriteString(" -> ")
		typeString(p, precTop, t.Codomain)
		if prec > precTop {
			p.sb.WriteByte(')')
		}

	case *List:
		p.sb.WriteByte('[')
		typeString(p, precArg, t.Elem)
		p.sb.WriteByte(']')

	case *App:
		if len(t.Params) == 0 {
			p.sb.WriteString(t.Name)
			return
		}
		if prec == precParam {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString(t.Name)
		for _, param := range t.Params {
			p.sb.WriteByte(' ')
			typeString(p, precParam, param)
		}
		if prec == precParam {
			p.sb.WriteByte(')')
		}
	}
}
