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

// hindley provides Hindley-Milner type inference for a small Haskell-like expression language,
// as used by a visual programming editor to type its blocks.
//
// Expressions are identifiers, single-argument applications and literals with a fixed type.
// Identifiers are resolved against a TypeEnv, a catalog of polymorphic signatures and
// type-classes. Each use of a signature is instantiated into a GenSet, which owns the
// type-variables of one analysis; unification binds those variables in place.
//
//
// Supported Features:
//
//   * Rank-1 polymorphism with curried functions, lists and type applications
//   * Type-classes as closed sets of type-constants (`Num a => a -> a -> a`)
//   * Parsing of Haskell-style signature text into catalog types
//   * Rendering of expressions as source text for an external interpreter
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Basic Polymorphic Typechecking (Cardelli, 1987): http://lucacardelli.name/Papers/BasicTypechecking.pdf
package hindley
