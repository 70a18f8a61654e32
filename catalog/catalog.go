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

// catalog loads categorized function signatures and type-classes for a type-environment.
//
// A catalog is a YAML document:
//
//	classes:
//	  - name: Num
//	    members: [Int, Float, Double]
//	categories:
//	  - name: List
//	    functions:
//	      - name: map
//	        signature: (a -> b) -> [a] -> [b]
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viskell/hindley"
)

//go:embed prelude.yaml
var prelude []byte

// ErrInvalid is wrapped by errors for structurally invalid catalogs.
var ErrInvalid = errors.New("invalid catalog")

// Catalog is a set of type-classes and categorized function entries.
type Catalog struct {
	Classes    []Class    `yaml:"classes"`
	Categories []Category `yaml:"categories"`
}

// Class declares a type-class as a closed set of type-constants.
type Class struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Category groups function entries for display.
type Category struct {
	Name      string  `yaml:"name"`
	Functions []Entry `yaml:"functions"`
}

// Entry is a named function with its signature text.
type Entry struct {
	Name      string `yaml:"name"`
	Signature string `yaml:"signature"`
	Doc       string `yaml:"doc,omitempty"`
}

// Prelude returns the built-in catalog of common Haskell functions.
func Prelude() *Catalog {
	c, err := Load(bytes.NewReader(prelude))
	if err != nil {
		panic("catalog: invalid prelude: " + err.Error())
	}
	return c
}

// Load decodes and validates a catalog.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	slog.Debug("loaded catalog", "classes", len(c.Classes), "categories", len(c.Categories))
	return &c, nil
}

// LoadFile reads a catalog from a file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]string)
	for _, cls := range c.Classes {
		if cls.Name == "" {
			return fmt.Errorf("%w: type-class without a name", ErrInvalid)
		}
	}
	for _, cat := range c.Categories {
		for _, entry := range cat.Functions {
			switch {
			case entry.Name == "":
				return fmt.Errorf("%w: entry without a name in category %s", ErrInvalid, cat.Name)
			case entry.Signature == "":
				return fmt.Errorf("%w: entry %s has no signature", ErrInvalid, entry.Name)
			}
			if prev, dup := seen[entry.Name]; dup {
				return fmt.Errorf("%w: entry %s appears in categories %s and %s", ErrInvalid, entry.Name, prev, cat.Name)
			}
			seen[entry.Name] = cat.Name
		}
	}
	return nil
}

// CategoryNames returns the names of the categories, in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// Category returns the entries of the named category.
func (c *Catalog) Category(name string) ([]Entry, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat.Functions, true
		}
	}
	return nil, false
}

// Entry finds a function entry by name.
func (c *Catalog) Entry(name string) (Entry, bool) {
	for _, cat := range c.Categories {
		for _, entry := range cat.Functions {
			if entry.Name == name {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// Register declares the catalog's type-classes and then its function signatures in env.
// Registration stops at the first failure.
func (c *Catalog) Register(env *hindley.TypeEnv) error {
	for _, cls := range c.Classes {
		if _, err := env.DeclareUnionTypeClass(cls.Name, cls.Members...); err != nil {
			return fmt.Errorf("register catalog: %w", err)
		}
	}
	n := 0
	for _, cat := range c.Categories {
		for _, entry := range cat.Functions {
			if err := env.DeclareSignature(entry.Name, entry.Signature); err != nil {
				return fmt.Errorf("register catalog category %s: %w", cat.Name, err)
			}
			n++
		}
	}
	slog.Debug("registered catalog", "classes", len(c.Classes), "functions", n)
	return nil
}

// NewTypeEnv creates a type-environment containing the catalog's declarations.
func (c *Catalog) NewTypeEnv() (*hindley.TypeEnv, error) {
	env := hindley.NewTypeEnv(nil)
	if err := c.Register(env); err != nil {
		return nil, err
	}
	return env, nil
}
