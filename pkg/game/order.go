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
	"github.com/consensys/go-surreal/pkg/util"
)

// Le reports whether x ≤ y, meaning Left can do no better in x than in y.
// This is defined by simultaneous recursion over both positions:
//
//	x ≤ y iff no Left option xᴸ of x satisfies y ≤ xᴸ,
//	        and no Right option yᴿ of y satisfies yᴿ ≤ x.
//
// That is, neither player has a "good response" refuting the comparison.  The
// recursion terminates because the sum of the birthdays of the two arguments
// strictly decreases on every recursive call.
//
// Note that ≤ is reflexive and transitive but NOT antisymmetric: structurally
// distinct positions can compare equal both ways.  Antisymmetry is only
// recovered on the quotient by Equiv.
func Le(x *PreGame, y *PreGame) bool {
	r, err := NewComparator(0).Le(x, y)
	// Unbounded comparison cannot fail
	if err != nil {
		panic("unreachable")
	}
	//
	return r
}

// Lf reports whether x ⧏ y ("x is less than or fuzzy with y"), defined as
// ¬(y ≤ x).  This is the primitive strict notion, from which < is derived.
func Lf(x *PreGame, y *PreGame) bool {
	return !Le(y, x)
}

// Lt reports whether x < y, that is x ≤ y and ¬(y ≤ x).
func Lt(x *PreGame, y *PreGame) bool {
	return Le(x, y) && !Le(y, x)
}

// Equiv reports whether x and y are equivalent, that is x ≤ y and y ≤ x.
// This is the relation by which pre-games are quotiented into games.
func Equiv(x *PreGame, y *PreGame) bool {
	return Le(x, y) && Le(y, x)
}

// Fuzzy reports whether x and y are incomparable, that is x ⧏ y and y ⧏ x.
// For example, Star() is fuzzy with Zero().  No two Numeric positions are
// ever fuzzy.
func Fuzzy(x *PreGame, y *PreGame) bool {
	return Lf(x, y) && Lf(y, x)
}

// Comparator encapsulates the state of one or more related comparisons: a
// memoization table over pairs of (shared, immutable) subtrees, and an
// optional node-visit budget.  A zero budget means unlimited.  The budget
// exists so that callers handling untrusted or pathologically deep inputs can
// fail gracefully with ErrBudgetExceeded rather than recurse without bound.
type Comparator struct {
	// Maximum number of node visits permitted, or zero for no limit.
	budget uint
	// Number of node visits made so far.
	visits uint
	// Memoized outcomes of x ≤ y queries.
	cache map[util.Pair[*PreGame, *PreGame]]bool
}

// NewComparator constructs a comparator with a given node-visit budget, where
// zero means unlimited.
func NewComparator(budget uint) *Comparator {
	return &Comparator{budget, 0, make(map[util.Pair[*PreGame, *PreGame]]bool)}
}

// Visits returns the number of node visits made by this comparator so far.
func (p *Comparator) Visits() uint {
	return p.visits
}

// Le reports whether x ≤ y, or ErrBudgetExceeded if the node-visit budget was
// exhausted first.
func (p *Comparator) Le(x *PreGame, y *PreGame) (bool, error) {
	key := util.NewPair(x, y)
	//
	if r, ok := p.cache[key]; ok {
		return r, nil
	}
	//
	if p.budget != 0 && p.visits >= p.budget {
		return false, ErrBudgetExceeded
	}
	//
	p.visits++
	// Check for a good Left response in x
	for _, xl := range x.left {
		r, err := p.Le(y, xl)
		if err != nil {
			return false, err
		} else if r {
			p.cache[key] = false
			return false, nil
		}
	}
	// Check for a good Right response in y
	for _, yr := range y.right {
		r, err := p.Le(yr, x)
		if err != nil {
			return false, err
		} else if r {
			p.cache[key] = false
			return false, nil
		}
	}
	// Neither player has a refutation
	p.cache[key] = true
	//
	return true, nil
}

// Equiv reports whether x and y are equivalent, or ErrBudgetExceeded if the
// node-visit budget was exhausted first.
func (p *Comparator) Equiv(x *PreGame, y *PreGame) (bool, error) {
	r, err := p.Le(x, y)
	if err != nil || !r {
		return false, err
	}
	//
	return p.Le(y, x)
}

// Lt reports whether x < y, or ErrBudgetExceeded if the node-visit budget was
// exhausted first.
func (p *Comparator) Lt(x *PreGame, y *PreGame) (bool, error) {
	r, err := p.Le(x, y)
	if err != nil || !r {
		return false, err
	}
	//
	r, err = p.Le(y, x)
	if err != nil {
		return false, err
	}
	//
	return !r, nil
}
