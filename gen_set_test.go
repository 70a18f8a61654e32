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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viskell/hindley"
	. "github.com/viskell/hindley/construct"
	"github.com/viskell/hindley/types"
)

func TestGenSetInstantiate(t *testing.T) {
	gs := hindley.NewGenSet()
	a := TVar("a")

	t1, t2 := gs.Instantiate(a), gs.Instantiate(a)
	assert.True(t, t1.Same(t2))
	assert.Equal(t, 1, gs.Len())

	imported := gs.Import(a)
	assert.False(t, imported.Same(t1))
	assert.Equal(t, 1, gs.Len())
}

func TestTermUnify(t *testing.T) {
	gs := hindley.NewGenSet()
	v := gs.Fresh()
	require.True(t, v.IsVar())

	list := gs.Instantiate(TList(tInt))
	require.NoError(t, hindley.Unify(v, list))
	assert.False(t, v.IsVar())
	assert.True(t, v.Same(list))
	assert.Equal(t, v.Prune(), v.Prune().Prune())
	assert.Equal(t, "[Int]", v.String())
	assert.True(t, types.Equal(TList(tInt), v.Generalize()))
}

func TestTermConstraint(t *testing.T) {
	num := TClass("Num", "Int", "Float")
	gs := hindley.NewGenSet()
	v := gs.Fresh(num)
	assert.Equal(t, "Num a => a", v.String())

	assert.False(t, hindley.CanUnify(v, gs.Instantiate(tString)))
	assert.True(t, hindley.CanUnify(v, gs.Instantiate(tFloat)))
	assert.True(t, v.IsVar(), "CanUnify must not bind variables")

	err := hindley.Unify(v, gs.Instantiate(tString))
	var violation *types.ConstraintViolationError
	assert.True(t, errors.As(err, &violation))
}

func TestTermsOfDifferentGenSets(t *testing.T) {
	a, b := hindley.NewGenSet().Fresh(), hindley.NewGenSet().Fresh()
	assert.Panics(t, func() { _ = hindley.Unify(a, b) })
	assert.Panics(t, func() { hindley.CanUnify(a, b) })
	assert.False(t, a.Same(b))
}
