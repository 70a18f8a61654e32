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

package hindley

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/viskell/hindley/ast"
	"github.com/viskell/hindley/types"
)

// ErrAlreadyDeclared is returned when a name is declared twice within the same type-environment.
var ErrAlreadyDeclared = errors.New("already declared")

// TypeEnv is a type-environment containing mappings from identifiers to declared types, and
// the set of declared type-classes.
//
// Declarations are append-only. Each inference reads an immutable snapshot of the environment,
// so a type-environment may be shared by concurrent inferences; declarations made while an
// inference is running are not visible to it.
type TypeEnv struct {
	// Predeclared types in the parent of the current type-environment
	Parent *TypeEnv

	mu      sync.RWMutex
	types   types.TypeMap
	classes types.ClassMap
}

// Create a type-environment. The new environment will inherit bindings from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	return &TypeEnv{
		Parent:  parent,
		types:   types.EmptyTypeMap,
		classes: types.EmptyClassMap,
	}
}

// Declare a type for an identifier within the type environment.
//
// Type-variables within t are polymorphic: each use of the identifier instantiates them.
// t must not be modified after it is declared.
func (e *TypeEnv) Declare(name string, t types.Type) error {
	if t == nil {
		return fmt.Errorf("declare %s: nil type", name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.types.Get(name); exists {
		return fmt.Errorf("identifier %s: %w", name, ErrAlreadyDeclared)
	}
	e.types = e.types.Set(name, t)
	slog.Debug("declared identifier", "name", name, "type", types.TypeString(t))
	return nil
}

// Declare a type for an identifier from Haskell-style signature text, such as `Num a => a -> a -> a`.
// Type-classes referenced by the signature must already be declared.
func (e *TypeEnv) DeclareSignature(name, signature string) error {
	t, err := types.ParseSignature(signature, e.LookupTypeClass)
	if err != nil {
		return fmt.Errorf("signature of %s: %w", name, err)
	}
	return e.Declare(name, t)
}

// Declare the inferred type of an expression for an identifier. Type-variables left unbound by
// inference are generalized.
func (e *TypeEnv) DeclareExpr(name string, expr ast.Expr) error {
	t, err := Analyze(expr, e)
	if err != nil {
		return fmt.Errorf("declare %s: %w", name, err)
	}
	return e.Declare(name, t.Generalize())
}

// Declare a type-class within the type environment.
func (e *TypeEnv) DeclareTypeClass(tc *types.TypeClass) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.classes.Get(tc.Name); exists {
		return fmt.Errorf("type-class %s: %w", tc.Name, ErrAlreadyDeclared)
	}
	e.classes = e.classes.Set(tc.Name, tc)
	slog.Debug("declared type-class", "name", tc.Name, "members", tc.Len())
	return nil
}

// Declare a type-class within the type environment, as the closed set of the named type-constants.
func (e *TypeEnv) DeclareUnionTypeClass(name string, members ...string) (*types.TypeClass, error) {
	tc := types.NewUnion(name, members...)
	if err := e.DeclareTypeClass(tc); err != nil {
		return nil, err
	}
	return tc, nil
}

// Lookup the declared (un-instantiated) type for an identifier in the environment or its parent environment(s).
//
// The returned type is shared by every use of the identifier; it must be instantiated into a
// GenSet before it is unified.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	e.mu.RLock()
	t, ok := e.types.Get(name)
	e.mu.RUnlock()
	if ok {
		return t, true
	}
	if e.Parent == nil {
		return nil, false
	}
	return e.Parent.Lookup(name)
}

// Lookup a declared type-class in the environment or its parent environment(s).
func (e *TypeEnv) LookupTypeClass(name string) *types.TypeClass {
	e.mu.RLock()
	tc, ok := e.classes.Get(name)
	e.mu.RUnlock()
	if ok {
		return tc
	}
	if e.Parent == nil {
		return nil
	}
	return e.Parent.LookupTypeClass(name)
}

// Names returns the sorted names of all identifiers visible in the environment.
func (e *TypeEnv) Names() []string {
	seen := make(map[string]bool)
	for env := e; env != nil; env = env.Parent {
		env.snapshot().types.Range(func(name string, _ types.Type) bool {
			seen[name] = true
			return true
		})
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TypeClasses returns all type-classes visible in the environment, sorted by name.
func (e *TypeEnv) TypeClasses() []*types.TypeClass {
	seen := make(map[string]*types.TypeClass)
	for env := e; env != nil; env = env.Parent {
		env.snapshot().classes.Range(func(name string, tc *types.TypeClass) bool {
			if _, shadowed := seen[name]; !shadowed {
				seen[name] = tc
			}
			return true
		})
	}
	classes := make([]*types.TypeClass, 0, len(seen))
	for _, tc := range seen {
		classes = append(classes, tc)
	}
	return types.SortClasses(classes)
}

// FreshType returns an instantiated copy of an identifier's declared type, in a new GenSet.
func (e *TypeEnv) FreshType(name string) (Term, error) {
	t, ok := e.Lookup(name)
	if !ok {
		return Term{}, &types.UnknownIdentifierError{Name: name}
	}
	return NewGenSet().Instantiate(t), nil
}

// Unknown returns the identifiers referenced by expr which are not declared in the environment,
// in order of first appearance.
func (e *TypeEnv) Unknown(expr ast.Expr) []string {
	var missing []string
	for _, name := range ast.Identifiers(expr) {
		if _, ok := e.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

type envSnapshot struct {
	types   types.TypeMap
	classes types.ClassMap
}

func (e *TypeEnv) snapshot() envSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return envSnapshot{e.types, e.classes}
}
