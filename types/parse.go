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
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownTypeClass is wrapped when a signature's context names an undeclared type-class.
var ErrUnknownTypeClass = errors.New("unknown type-class")

// ParseSignature parses a Haskell-style type signature such as
//
//	(Num a, Show b) => Signal a -> Signal b
//
// Lower-case names are type-variables and upper-case names are type-constants or,
// when followed by parameters, type applications. Type-classes named in the context
// are resolved with lookupClass.
//
// All occurrences of a variable in the signature share a single *Var.
func ParseSignature(text string, lookupClass func(name string) *TypeClass) (Type, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &sigParser{toks: toks, vars: make(map[string]*Var)}
	if fat := p.indexOf(tokFatArrow); fat >= 0 {
		if err := p.parseContext(fat, lookupClass); err != nil {
			return nil, err
		}
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected %q", tok.text)
	}
	return t, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokVar
	tokCon
	tokArrow
	tokFatArrow
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
)

type token struct {
	kind tokKind
	text string
	pos  int
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lex(text string) ([]token, error) {
	var toks []token
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '_' || unicode.IsLetter(r):
			start := i
			for i < len(text) {
				r, size := utf8.DecodeRuneInString(text[i:])
				if !isIdentRune(r) {
					break
				}
				i += size
			}
			word := text[start:i]
			first, _ := utf8.DecodeRuneInString(word)
			kind := tokVar
			if unicode.IsUpper(first) {
				kind = tokCon
			}
			toks = append(toks, token{kind, word, start})
		case r == '-' && i+1 < len(text) && text[i+1] == '>':
			toks = append(toks, token{tokArrow, "->", i})
			i += 2
		case r == '=' && i+1 < len(text) && text[i+1] == '>':
			toks = append(toks, token{tokFatArrow, "=>", i})
			i += 2
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case r == '[':
			toks = append(toks, token{tokLBracket, "[", i})
			i++
		case r == ']':
			toks = append(toks, token{tokRBracket, "]", i})
			i++
		case r == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, r, i)
		}
	}
	return append(toks, token{tokEOF, "end of input", len(text)}), nil
}

type sigParser struct {
	toks []token
	pos  int
	vars map[string]*Var
}

func (p *sigParser) peek() token { return p.toks[p.pos] }

func (p *sigParser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *sigParser) expect(kind tokKind, what string) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return tok, p.errorf(tok, "expected %s, found %q", what, tok.text)
	}
	return tok, nil
}

func (p *sigParser) errorf(tok token, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), tok.pos)
}

func (p *sigParser) indexOf(kind tokKind) int {
	for i, tok := range p.toks {
		if tok.kind == kind {
			return i
		}
	}
	return -1
}

func (p *sigParser) variable(name string) *Var {
	tv, ok := p.vars[name]
	if !ok {
		tv = &Var{Name: name}
		p.vars[name] = tv
	}
	return tv
}

// context := assertion | "(" assertion {"," assertion} ")"
func (p *sigParser) parseContext(end int, lookupClass func(string) *TypeClass) error {
	parens := p.peek().kind == tokLParen
	if parens {
		p.next()
	}
	for {
		if err := p.parseAssertion(lookupClass); err != nil {
			return err
		}
		if !parens || p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	if parens {
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return err
		}
	}
	if p.pos != end {
		return p.errorf(p.peek(), "unexpected %q in context", p.peek().text)
	}
	p.next()
	return nil
}

func (p *sigParser) parseAssertion(lookupClass func(string) *TypeClass) error {
	class, err := p.expect(tokCon, "type-class name")
	if err != nil {
		return err
	}
	name, err := p.expect(tokVar, "type-variable")
	if err != nil {
		return err
	}
	var tc *TypeClass
	if lookupClass != nil {
		tc = lookupClass(class.text)
	}
	if tc == nil {
		return fmt.Errorf("%w %s at offset %d", ErrUnknownTypeClass, class.text, class.pos)
	}
	tv := p.variable(name.text)
	for _, existing := range tv.Classes {
		if existing == tc {
			return nil
		}
	}
	tv.Classes = append(tv.Classes, tc)
	return nil
}

// type := btype ["->" type]
func (p *sigParser) parseType() (Type, error) {
	t, err := p.parseBType()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokArrow {
		return t, nil
	}
	p.next()
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &Func{Domain: t, Codomain: ret}, nil
}

// btype := CON {atype} | atype
func (p *sigParser) parseBType() (Type, error) {
	if p.peek().kind != tokCon {
		return p.parseAType()
	}
	con := p.next()
	var params []Type
	for p.startsAType() {
		param, err := p.parseAType()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	if len(params) == 0 {
		return &Const{Name: con.text}, nil
	}
	return &App{Name: con.text, Params: params}, nil
}

func (p *sigParser) startsAType() bool {
	switch p.peek().kind {
	case tokVar, tokCon, tokLParen, tokLBracket:
		return true
	}
	return false
}

// atype := VAR | CON | "[" type "]" | "(" type ")"
func (p *sigParser) parseAType() (Type, error) {
	tok := p.next()
	switch tok.kind {
	case tokVar:
		return p.variable(tok.text), nil
	case tokCon:
		return &Const{Name: tok.text}, nil
	case tokLBracket:
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		return &List{Elem: elem}, nil
	case tokLParen:
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, p.errorf(tok, "unexpected %q", tok.text)
}
