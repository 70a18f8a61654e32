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
	"testing"
)

func TestTypeString(t *testing.T) {
	num := NewUnion("Num", "Int", "Float")
	show := NewUnion("Show", "Int", "String")
	a, b := NewVar("x", num), NewVar("y", show)
	intT := &Const{"Int"}

	cases := []struct {
		t    Type
		want string
	}{
		{nil, "<nil>"},
		{intT, "Int"},
		{&List{&Func{intT, intT}}, "[(Int -> Int)]"},
		{&Func{&Func{intT, intT}, &List{intT}}, "(Int -> Int) -> [Int]"},
		{&Func{a, &Func{a, a}}, "Num a => a -> a -> a"},
		{&Func{&App{"Signal", []Type{a}}, &App{"Signal", []Type{b}}}, "(Num a, Show b) => Signal a -> Signal b"},
		{&App{"Signal", []Type{&App{"Maybe", []Type{intT}}}}, "Signal (Maybe Int)"},
		{&App{"Signal", []Type{&Func{intT, intT}}}, "Signal (Int -> Int)"},
		{&List{&App{"Pair", []Type{intT, intT}}}, "[Pair Int Int]"},
	}
	for _, tc := range cases {
		if got := TypeString(tc.t); got != tc.want {
			t.Fatalf("expected %q, found %q", tc.want, got)
		}
	}
}

func TestTypeStringsShareNames(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	strs := TypeStrings(&Func{a, b}, b, a)
	if strs[0] != "a -> b" || strs[1] != "b" || strs[2] != "a" {
		t.Fatalf("unexpected names: %v", strs)
	}
}

func TestVarNames(t *testing.T) {
	for i, want := range map[int]string{0: "a", 25: "z", 26: "a1", 27: "b1", 52: "a2"} {
		if got := getVarName(i); got != want {
			t.Fatalf("var %d: expected %s, found %s", i, want, got)
		}
	}
}
