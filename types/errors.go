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
	"errors"
)

// ErrSyntax is wrapped by every error returned from ParseSignature.
var ErrSyntax = errors.New("invalid type signature")

// UnknownIdentifierError is returned when an identifier is not declared in the type-environment.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return "unknown identifier " + e.Name
}

// MismatchError is returned when unification finds incompatible types.
type MismatchError struct {
	Expected Type
	Actual   Type
}

func (e *MismatchError) Error() string {
	names := TypeStrings(e.Expected, e.Actual)
	return "cannot unify " + names[0] + " with " + names[1]
}

// ConstraintViolationError is returned when a qualified type-variable would be bound
// to a type which is not a member of one of its type-classes.
type ConstraintViolationError struct {
	// Class is the first type-class of the variable which rejects Actual.
	Class  *TypeClass
	Actual Type
}

func (e *ConstraintViolationError) Error() string {
	return TypeString(e.Actual) + " is not an instance of " + e.Constraint()
}

// Constraint returns the name of the violated type-class.
func (e *ConstraintViolationError) Constraint() string {
	if e.Class == nil {
		return ""
	}
	return e.Class.Name
}

// RecursiveTypeError is returned when binding a type-variable would create an infinite type.
type RecursiveTypeError struct {
	Var  *Var
	Type Type
}

func (e *RecursiveTypeError) Error() string {
	names := TypeStrings(e.Var, e.Type)
	return "infinite type: cannot bind " + names[0] + " to " + names[1]
}
