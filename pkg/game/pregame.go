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
package game

import (
	"strings"

	"github.com/consensys/go-surreal/pkg/util/collection/iter"
)

// PreGame represents a two-player combinatorial game position as an immutable
// tree.  Each node holds the options available to the Left player and the
// options available to the Right player, themselves positions.  Only finite
// branching is supported.  Since values are never mutated after construction,
// subtrees may be freely shared between positions.
//
// Observe that a PreGame carries no constraint relating its Left and Right
// options.  In particular, it need not be Numeric; positions such as Star()
// are perfectly valid pre-games despite having no number value.
type PreGame struct {
	// Options available to the Left player.
	left []*PreGame
	// Options available to the Right player.
	right []*PreGame
	// Height of this tree, cached at construction.  This is the well-founded
	// measure justifying termination of every recursion over pre-games.
	birthday uint
}

// Zero constructs the empty position {|}, in which neither player has a move.
// This is the additive identity.
func Zero() *PreGame {
	return &PreGame{nil, nil, 0}
}

// One constructs the position {0|}, the multiplicative identity.
func One() *PreGame {
	return Make([]*PreGame{Zero()}, nil)
}

// Star constructs the position {0|0}, the simplest position which is not
// Numeric: whichever player moves first wins.
func Star() *PreGame {
	return Make([]*PreGame{Zero()}, []*PreGame{Zero()})
}

// Half constructs the position {0|1}, whose value is one half.
func Half() *PreGame {
	return Make([]*PreGame{Zero()}, []*PreGame{One()})
}

// Nat constructs the canonical chain encoding of a natural number, where n is
// encoded as {n-1|} and zero as {|}.
func Nat(n uint) *PreGame {
	x := Zero()
	for i := uint(0); i < n; i++ {
		x = Make([]*PreGame{x}, nil)
	}
	//
	return x
}

// Make constructs a position from explicit Left and Right option lists.  The
// given slices are copied, hence the caller retains ownership of them (though
// not of the option trees themselves, which must not be mutated).  No
// validation is performed; the result is not necessarily Numeric.
func Make(lefts []*PreGame, rights []*PreGame) *PreGame {
	var birthday uint
	//
	for _, l := range lefts {
		birthday = max(birthday, l.birthday+1)
	}
	//
	for _, r := range rights {
		birthday = max(birthday, r.birthday+1)
	}
	// Copy defensively
	left := make([]*PreGame, len(lefts))
	right := make([]*PreGame, len(rights))
	copy(left, lefts)
	copy(right, rights)
	//
	return &PreGame{left, right, birthday}
}

// LeftCount returns the number of options available to the Left player.
func (p *PreGame) LeftCount() uint {
	return uint(len(p.left))
}

// RightCount returns the number of options available to the Right player.
func (p *PreGame) RightCount() uint {
	return uint(len(p.right))
}

// MoveLeft returns the ith Left option.  Indexing with an invalid index is a
// programming error which results in a panic.
func (p *PreGame) MoveLeft(i uint) *PreGame {
	if i >= uint(len(p.left)) {
		panic("invalid left move index")
	}
	//
	return p.left[i]
}

// MoveRight returns the jth Right option.  Indexing with an invalid index is
// a programming error which results in a panic.
func (p *PreGame) MoveRight(j uint) *PreGame {
	if j >= uint(len(p.right)) {
		panic("invalid right move index")
	}
	//
	return p.right[j]
}

// Lefts returns a restartable iterator over the Left options.
func (p *PreGame) Lefts() iter.Iterator[*PreGame] {
	return iter.NewArrayIterator(p.left)
}

// Rights returns a restartable iterator over the Right options.
func (p *PreGame) Rights() iter.Iterator[*PreGame] {
	return iter.NewArrayIterator(p.right)
}

// Birthday returns the height of this tree.  Every mutually recursive
// definition over pairs of pre-games in this package terminates because the
// sum of the birthdays of its arguments strictly decreases on recursive
// calls.
func (p *PreGame) Birthday() uint {
	return p.birthday
}

// NodeCount returns the total number of nodes in this tree, counting shared
// subtrees once per occurrence.
func (p *PreGame) NodeCount() uint {
	count := uint(1)
	//
	for _, l := range p.left {
		count += l.NodeCount()
	}
	//
	for _, r := range p.right {
		count += r.NodeCount()
	}
	//
	return count
}

// IsLeaf checks whether neither player has a move in this position.
func (p *PreGame) IsLeaf() bool {
	return len(p.left) == 0 && len(p.right) == 0
}

// String renders this position in brace notation, such as "{0|0}".  The empty
// position is rendered as "0" for readability.
func (p *PreGame) String() string {
	if p.IsLeaf() {
		return "0"
	}
	//
	var builder strings.Builder
	//
	builder.WriteString("{")
	writeOptions(&builder, p.left)
	builder.WriteString("|")
	writeOptions(&builder, p.right)
	builder.WriteString("}")
	//
	return builder.String()
}

func writeOptions(builder *strings.Builder, options []*PreGame) {
	for i, o := range options {
		if i != 0 {
			builder.WriteString(" ")
		}

		builder.WriteString(o.String())
	}
}
