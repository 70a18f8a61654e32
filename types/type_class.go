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
	"sort"

	set "github.com/hashicorp/go-set/v2"
)

// TypeClass is a named, closed set of type-constants: `Num = {Int, Float, Double}`.
//
// Type-classes are compared by address. Members cannot be changed after construction.
// A TypeClass built without NewTypeClass or NewUnion has no members.
type TypeClass struct {
	Name    string
	members *set.Set[string]
}

// Create a new named type-class with the given member types.
func NewTypeClass(name string, members ...*Const) *TypeClass {
	names := make([]string, len(members))
	for i, c := range members {
		names[i] = c.Name
	}
	return &TypeClass{Name: name, members: set.From(names)}
}

// Create a new named type-class from the names of its member types.
func NewUnion(name string, memberNames ...string) *TypeClass {
	return &TypeClass{Name: name, members: set.From(memberNames)}
}

// HasMember reports whether c is an instance of the type-class.
func (tc *TypeClass) HasMember(c *Const) bool {
	return c != nil && tc.members != nil && tc.members.Contains(c.Name)
}

// Members returns the member type-constants, sorted by name.
func (tc *TypeClass) Members() []*Const {
	if tc.members == nil {
		return nil
	}
	names := tc.members.Slice()
	sort.Strings(names)
	consts := make([]*Const, len(names))
	for i, name := range names {
		consts[i] = &Const{Name: name}
	}
	return consts
}

// Len returns the number of member types.
func (tc *TypeClass) Len() int {
	if tc.members == nil {
		return 0
	}
	return tc.members.Size()
}

// Rejecting returns the first of the classes which c is not a member of, or nil.
func Rejecting(classes []*TypeClass, c *Const) *TypeClass {
	for _, tc := range classes {
		if !tc.HasMember(c) {
			return tc
		}
	}
	return nil
}

// AcceptsAll reports whether c is a member of every one of the classes.
func AcceptsAll(classes []*TypeClass, c *Const) bool { return Rejecting(classes, c) == nil }

// SortClasses sorts type-classes by name, in place.
func SortClasses(classes []*TypeClass) []*TypeClass {
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	return classes
}
