// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package notation parses brace notation for positions.  A position is
// written "{L1 L2 ... | R1 R2 ...}" with options separated by whitespace, or
// as one of the literals: an integer such as "-3", a dyadic rational such as
// "3/4", or "*" for the star position.  Literals denote their canonical
// positions.
package notation

import (
	"math/big"

	"github.com/consensys/go-surreal/pkg/game"
)

// Parse a given string into a position, or return an error if the string is
// malformed.
func Parse(s string) (*game.PreGame, error) {
	p := NewParser(s)
	// Parse the input
	x, err := p.Parse()
	if err != nil {
		return nil, err
	} else if x == nil {
		return nil, p.error("unexpected end-of-input")
	}
	// Sanity check everything was parsed
	p.skipWhitespace()
	//
	if p.index != len(p.text) {
		return nil, p.error("unexpected remainder")
	}
	//
	return x, nil
}

// Parser represents a parser in the process of parsing a given string into a
// position.
type Parser struct {
	// Text being parsed
	text []rune
	// Determine current position within text
	index int
}

// NewParser constructs a new instance of Parser
func NewParser(text string) *Parser {
	return &Parser{
		text:  []rune(text),
		index: 0,
	}
}

// Parse a single position from the current cursor, or produce an error.  A
// nil result (without error) indicates end-of-input.
func (p *Parser) Parse() (*game.PreGame, error) {
	p.skipWhitespace()
	//
	if p.index == len(p.text) {
		return nil, nil
	}
	//
	switch p.text[p.index] {
	case '{':
		return p.parseBraces()
	case '|', '}':
		return nil, p.error("unexpected punctuation")
	case '*':
		p.index++
		return game.Star(), nil
	}
	//
	return p.parseLiteral()
}

// Parse a compound position "{L1 .. | R1 ..}".
func (p *Parser) parseBraces() (*game.PreGame, error) {
	var lefts, rights []*game.PreGame
	// Consume left brace
	p.index++
	// Parse Left options
	for {
		p.skipWhitespace()
		//
		if c := p.lookahead(); c == nil {
			return nil, p.error("unexpected end-of-input")
		} else if *c == '|' {
			break
		}
		//
		x, err := p.Parse()
		if err != nil {
			return nil, err
		}
		//
		lefts = append(lefts, x)
	}
	// Consume bar
	p.index++
	// Parse Right options
	for {
		p.skipWhitespace()
		//
		if c := p.lookahead(); c == nil {
			return nil, p.error("unexpected end-of-input")
		} else if *c == '}' {
			break
		} else if *c == '|' {
			return nil, p.error("unexpected bar")
		}
		//
		x, err := p.Parse()
		if err != nil {
			return nil, err
		}
		//
		rights = append(rights, x)
	}
	// Consume right brace
	p.index++
	//
	return game.Make(lefts, rights), nil
}

// Parse a numeric literal, which must be a dyadic rational.
func (p *Parser) parseLiteral() (*game.PreGame, error) {
	start := p.index
	//
	for p.index < len(p.text) && isLiteralRune(p.text[p.index]) {
		p.index++
	}
	//
	if start == p.index {
		return nil, p.error("unexpected character")
	}
	//
	r, ok := new(big.Rat).SetString(string(p.text[start:p.index]))
	if !ok {
		p.index = start
		return nil, p.error("malformed number")
	}
	//
	x, err := game.FromRat(r)
	if err != nil {
		p.index = start
		return nil, p.error(err.Error())
	}
	//
	return x, nil
}

func (p *Parser) skipWhitespace() {
	for p.index < len(p.text) && isWhitespace(p.text[p.index]) {
		p.index++
	}
}

// Lookahead at the next character, or nil at end-of-input.
func (p *Parser) lookahead() *rune {
	if p.index < len(p.text) {
		return &p.text[p.index]
	}
	//
	return nil
}

func (p *Parser) error(msg string) error {
	return &SyntaxError{p.index, msg}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == ','
}

func isLiteralRune(c rune) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '/'
}
