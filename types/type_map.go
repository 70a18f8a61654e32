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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyMap}

// TypeMap contains immutable mappings from identifiers to declared types, sorted by identifier.
type TypeMap struct {
	m *immutable.SortedMap
}

// Get the number of entries in the map.
func (m TypeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the declared type for a name.
func (m TypeMap) Get(name string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the map with name bound to t. The receiver is not modified.
func (m TypeMap) Set(name string, t Type) TypeMap {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return TypeMap{imm.Set(name, t)}
}

// Iterate over entries in the map, in sorted order.
// If f returns false, iteration will be stopped.
func (m TypeMap) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

var EmptyClassMap = ClassMap{emptyMap}

// ClassMap contains immutable mappings from names to type-classes, sorted by name.
type ClassMap struct {
	m *immutable.SortedMap
}

func (m ClassMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

func (m ClassMap) Get(name string) (*TypeClass, bool) {
	if m.m == nil {
		return nil, false
	}
	tc, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return tc.(*TypeClass), true
}

// Set returns a copy of the map with name bound to tc. The receiver is not modified.
func (m ClassMap) Set(name string, tc *TypeClass) ClassMap {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return ClassMap{imm.Set(name, tc)}
}

// If f returns false, iteration will be stopped.
func (m ClassMap) Range(f func(string, *TypeClass) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*TypeClass)) {
			return
		}
	}
}
