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

// Package surreal provides values of positions: pre-games considered up to
// equivalence.  A Game is an arbitrary position up to equivalence, forming a
// commutative group under addition but only a partial order.  A Surreal is a
// Numeric position up to equivalence, forming a linearly ordered abelian
// group.  Equality of these wrapper types is ALWAYS the lifted equivalence,
// never structural equality of representatives; use Equals, not ==.
package surreal

import (
	"github.com/consensys/go-surreal/pkg/game"
)

// Game is an equivalence class of positions, holding one representative.
// Operations are lifted from positions; they are well defined because Add,
// Neg and the order relations all respect equivalence in each argument.
// Multiplication is NOT lifted: the product of positions does not respect
// equivalence outside the Numeric fragment, so products must be taken on
// positions directly.
type Game struct {
	repr *game.PreGame
}

// NewGame constructs the value of a given position.
func NewGame(x *game.PreGame) Game {
	return Game{x}
}

// ZeroGame returns the additive identity.
func ZeroGame() Game {
	return Game{game.Zero()}
}

// Repr returns a representative position of this value.  The representative
// is shared and must not be mutated.
func (p Game) Repr() *game.PreGame {
	return p.repr
}

// Add returns the sum of two values.
func (p Game) Add(q Game) Game {
	return Game{game.Add(p.repr, q.repr)}
}

// Neg returns the additive inverse of this value.
func (p Game) Neg() Game {
	return Game{game.Neg(p.repr)}
}

// Sub returns the difference of two values.
func (p Game) Sub(q Game) Game {
	return Game{game.Sub(p.repr, q.repr)}
}

// Le reports whether this value is at most another.  Unlike on raw
// positions, this ordering is antisymmetric: mutually comparable values are
// equal.
func (p Game) Le(q Game) bool {
	return game.Le(p.repr, q.repr)
}

// Lt reports whether this value is strictly below another.  Note that on
// games Lt is not simply "Le and not Equals"; incomparable (fuzzy) values
// exist.
func (p Game) Lt(q Game) bool {
	return game.Lt(p.repr, q.repr)
}

// Equals reports whether two values are equal, i.e. their representatives
// are equivalent.
func (p Game) Equals(q Game) bool {
	return game.Equiv(p.repr, q.repr)
}

// Fuzzy reports whether two values are incomparable.
func (p Game) Fuzzy(q Game) bool {
	return game.Fuzzy(p.repr, q.repr)
}

// IsNumeric reports whether this value contains a Numeric representative.
// Note the chosen representative being non-Numeric does not preclude an
// equivalent Numeric position existing; this check is on the representative
// held.
func (p Game) IsNumeric() bool {
	return game.Numeric(p.repr)
}

func (p Game) String() string {
	return p.repr.String()
}
