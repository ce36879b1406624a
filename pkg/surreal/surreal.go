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
package surreal

import (
	"math/big"

	"github.com/consensys/go-surreal/pkg/game"
)

// Surreal is an equivalence class of Numeric positions, holding one
// representative.  Restricting to Numeric positions upgrades the partial
// order on games to a linear order: any two surreals satisfy exactly one of
// less, equal, greater.  Surreals form an ordered abelian group under the
// lifted addition.
//
// Multiplication is deliberately NOT lifted here: whether the product of two
// Numeric positions is always Numeric remains an open question, so products
// must be taken on Game values where no numeric claim is made.
type Surreal struct {
	repr *game.PreGame
}

// NewSurreal constructs the surreal number represented by a given position,
// or ErrNotNumeric if the position is not Numeric.  The check is mandatory:
// the order-theoretic guarantees of this type are false for non-Numeric
// representatives.
func NewSurreal(x *game.PreGame) (Surreal, error) {
	if !game.Numeric(x) {
		return Surreal{}, game.ErrNotNumeric
	}
	//
	return Surreal{x}, nil
}

// ZeroSurreal returns the surreal number zero.
func ZeroSurreal() Surreal {
	return Surreal{game.Zero()}
}

// OneSurreal returns the surreal number one.
func OneSurreal() Surreal {
	return Surreal{game.One()}
}

// Repr returns a representative position of this surreal.  The
// representative is shared and must not be mutated.
func (p Surreal) Repr() *game.PreGame {
	return p.repr
}

// AsGame widens this surreal to a game value.
func (p Surreal) AsGame() Game {
	return Game{p.repr}
}

// Add returns the sum of two surreals.  The sum of Numeric positions is
// Numeric, so the result is again a surreal.
func (p Surreal) Add(q Surreal) Surreal {
	return Surreal{game.Add(p.repr, q.repr)}
}

// Neg returns the negation of this surreal.
func (p Surreal) Neg() Surreal {
	return Surreal{game.Neg(p.repr)}
}

// Sub returns the difference of two surreals.
func (p Surreal) Sub(q Surreal) Surreal {
	return Surreal{game.Sub(p.repr, q.repr)}
}

// Cmp compares two surreals, returning -1, 0 or +1.  Since both
// representatives are Numeric this is a genuine three-way comparison; fuzzy
// outcomes cannot arise.
func (p Surreal) Cmp(q Surreal) int {
	// Cannot fail since both representatives are Numeric by construction
	c, err := game.Compare(p.repr, q.repr)
	if err != nil {
		panic("unreachable")
	}
	//
	return c
}

// Le reports whether this surreal is at most another.
func (p Surreal) Le(q Surreal) bool {
	return p.Cmp(q) <= 0
}

// Lt reports whether this surreal is strictly below another.
func (p Surreal) Lt(q Surreal) bool {
	return p.Cmp(q) < 0
}

// Equals reports whether two surreals are equal.
func (p Surreal) Equals(q Surreal) bool {
	return p.Cmp(q) == 0
}

// Value returns the exact dyadic rational value of this surreal.
func (p Surreal) Value() *big.Rat {
	// Cannot fail since the representative is Numeric by construction
	v, err := game.Value(p.repr)
	if err != nil {
		panic("unreachable")
	}
	//
	return v
}

func (p Surreal) String() string {
	return p.Value().RatString()
}
