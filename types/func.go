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

// Arity returns the number of arguments a curried function type accepts before
// producing a non-function result. Non-function types have arity 0.
func Arity(t Type) int {
	n := 0
	for {
		f, ok := t.(*Func)
		if !ok {
			return n
		}
		n++
		t = f.Codomain
	}
}

// Args returns the argument types of a curried function type, in application order.
func Args(t Type) TypeList {
	b := NewTypeListBuilder()
	for {
		f, ok := t.(*Func)
		if !ok {
			return b.Build()
		}
		b.Append(f.Domain)
		t = f.Codomain
	}
}

// Arg returns the type of the i'th argument of a curried function type, or nil if
// the function accepts fewer arguments.
func Arg(t Type, i int) Type {
	for ; i >= 0; i-- {
		f, ok := t.(*Func)
		if !ok {
			return nil
		}
		if i == 0 {
			return f.Domain
		}
		t = f.Codomain
	}
	return nil
}

// Result returns the type produced after applying all arguments of a curried function type.
func Result(t Type) Type {
	for {
		f, ok := t.(*Func)
		if !ok {
			return t
		}
		t = f.Codomain
	}
}

// Curry builds the function type `a1 -> a2 -> ... -> ret`.
func Curry(ret Type, args ...Type) Type {
	for i := len(args) - 1; i >= 0; i-- {
		ret = &Func{Domain: args[i], Codomain: ret}
	}
	return ret
}
