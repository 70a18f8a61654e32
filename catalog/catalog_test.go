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

package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viskell/hindley"
	"github.com/viskell/hindley/construct"
	"github.com/viskell/hindley/types"
)

func TestPrelude(t *testing.T) {
	c := Prelude()
	assert.Equal(t, []string{"Numeric", "Comparison", "Boolean", "List", "Function", "Text"}, c.CategoryNames())

	env, err := c.NewTypeEnv()
	require.NoError(t, err)
	for _, cat := range c.Categories {
		for _, entry := range cat.Functions {
			_, ok := env.Lookup(entry.Name)
			assert.True(t, ok, "%s not declared", entry.Name)
		}
	}

	entry, ok := c.Entry("map")
	require.True(t, ok)
	assert.Equal(t, "(a -> b) -> [a] -> [b]", entry.Signature)
	_, ok = c.Entry("fmap")
	assert.False(t, ok)

	ty, _ := env.Lookup("fromIntegral")
	assert.Equal(t, "(Integral a, Num b) => a -> b", types.TypeString(ty))
}

func TestPreludeInference(t *testing.T) {
	env, err := Prelude().NewTypeEnv()
	require.NoError(t, err)

	expr := construct.Apply(construct.Ident("map"), construct.Ident("(*)"),
		construct.Literal(construct.TList(construct.TConst("Int")), "[1, 2, 3, 5, 7]"))
	ty, err := hindley.Analyze(expr, env)
	require.NoError(t, err)
	assert.Equal(t, "[(Int -> Int)]", ty.String())
}

func TestCategory(t *testing.T) {
	entries, ok := Prelude().Category("Boolean")
	require.True(t, ok)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"not", "(&&)", "(||)"}, names)

	_, ok = Prelude().Category("Monads")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	src := `
classes:
  - name: Num
    members: [Int, Float]
categories:
  - name: Signals
    functions:
      - name: lift
        signature: Num a => (a -> a) -> Signal a -> Signal a
        doc: Apply a function to every value of a signal.
`
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	entry, ok := c.Entry("lift")
	require.True(t, ok)
	assert.Equal(t, "Apply a function to every value of a signal.", entry.Doc)

	env := hindley.NewTypeEnv(nil)
	require.NoError(t, c.Register(env))
	ty, _ := env.Lookup("lift")
	assert.Equal(t, "Num a => (a -> a) -> Signal a -> Signal a", types.TypeString(ty))

	// Registering twice declares every name twice:
	err = c.Register(env)
	assert.True(t, errors.Is(err, hindley.ErrAlreadyDeclared), "expected duplicate declaration, got %v", err)
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.CategoryNames())
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown field": "classes:\n  - name: Num\n    instances: [Int]\n",
		"unnamed class": "classes:\n  - members: [Int]\n",
		"unnamed entry": "categories:\n  - name: List\n    functions:\n      - signature: a -> a\n",
		"no signature":  "categories:\n  - name: List\n    functions:\n      - name: id\n",
		"duplicate":     "categories:\n  - name: A\n    functions:\n      - {name: id, signature: a -> a}\n  - name: B\n    functions:\n      - {name: id, signature: a -> a}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(src))
			require.Error(t, err)
			if name != "unknown field" {
				assert.True(t, errors.Is(err, ErrInvalid), "expected invalid catalog, got %v", err)
			}
		})
	}
}

func TestRegisterUnknownClass(t *testing.T) {
	src := "categories:\n  - name: Monads\n    functions:\n      - {name: pure, signature: Monad m => a -> m a}\n"
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	_, err = c.NewTypeEnv()
	assert.True(t, errors.Is(err, types.ErrUnknownTypeClass), "expected unknown type-class, got %v", err)
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
