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

package hindley_test

import (
	"testing"

	. "github.com/viskell/hindley"
	. "github.com/viskell/hindley/construct"
)

func BenchmarkMapMultiply(b *testing.B) {
	env := newTestEnv(b)
	expr := Apply(Ident("map"), Ident("(*)"), intList())

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := Analyze(expr, env)
		if err != nil {
			b.Fatal(err)
		}
		_ = ty.Prune()
	}
}

func BenchmarkComposition(b *testing.B) {
	env := newTestEnv(b)
	compose := Ident("(.)")
	expr := Apply(compose,
		Apply(compose, Apply(Ident("map"), Ident("show")), Apply(Ident("map"), Ident("negate"))),
		Apply(Ident("filter"), Apply(Ident("(==)"), Literal(tInt, "0"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := Analyze(expr, env)
		if err != nil {
			b.Fatal(err)
		}
		_ = ty.Prune()
	}
}

func BenchmarkAnalyzeAndPrint(b *testing.B) {
	env := newTestEnv(b)
	expr := Apply(Ident("foldr"), Ident("(+)"), Literal(tInt, "0"))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := Analyze(expr, env)
		if err != nil {
			b.Fatal(err)
		}
		if ty.String() != "[Int] -> Int" {
			b.Fatal(ty.String())
		}
	}
}

func BenchmarkDeclareSignature(b *testing.B) {
	base := newTestEnv(b)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		env := NewTypeEnv(base)
		if err := env.DeclareSignature("zipWith", "(a -> b -> c) -> [a] -> [b] -> [c]"); err != nil {
			b.Fatal(err)
		}
	}
}
