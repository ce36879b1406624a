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
	"math/big"
)

// Value computes the exact dyadic rational value of a Numeric position via
// the simplicity rule: the value is the simplest number strictly greater
// than every Left option value and strictly less than every Right option
// value, where integers are simpler than halves, halves than quarters, and
// so on.  For non-Numeric positions ErrNotNumeric is returned, as such
// positions denote no number.
func Value(x *PreGame) (*big.Rat, error) {
	if !Numeric(x) {
		return nil, ErrNotNumeric
	}
	//
	return value(x), nil
}

func value(x *PreGame) *big.Rat {
	var lower, upper *big.Rat
	// Greatest Left option value
	for i := x.Lefts(); i.HasNext(); {
		v := value(i.Next())
		if lower == nil || v.Cmp(lower) > 0 {
			lower = v
		}
	}
	// Least Right option value
	for i := x.Rights(); i.HasNext(); {
		v := value(i.Next())
		if upper == nil || v.Cmp(upper) < 0 {
			upper = v
		}
	}
	//
	return simplestBetween(lower, upper)
}

// Determine the simplest dyadic rational strictly between two bounds, where
// either bound may be absent.  If an integer fits, the one nearest zero is
// simplest; otherwise the dyadic p/2^k with least k (at which point p is
// unique) is taken.
func simplestBetween(lower *big.Rat, upper *big.Rat) *big.Rat {
	var (
		zero = big.NewRat(0, 1)
		one  = big.NewInt(1)
	)
	//
	switch {
	case lower == nil && upper == nil:
		return zero
	case upper == nil:
		// Least integer above lower
		if lower.Cmp(zero) < 0 {
			return zero
		}
		//
		return new(big.Rat).SetInt(floorAdd1(lower))
	case lower == nil:
		// Greatest integer below upper
		if upper.Cmp(zero) > 0 {
			return zero
		}
		//
		return new(big.Rat).SetInt(new(big.Int).Neg(floorAdd1(new(big.Rat).Neg(upper))))
	}
	// Both bounds present.  Scale by successive powers of two until an
	// integer fits strictly between them.
	scale := new(big.Int).Set(one)
	//
	for k := 0; ; k++ {
		lo := new(big.Rat).Mul(lower, new(big.Rat).SetInt(scale))
		hi := new(big.Rat).Mul(upper, new(big.Rat).SetInt(scale))
		// Candidate integer of least absolute value in (lo, hi)
		var p *big.Int
		//
		switch {
		case lo.Sign() < 0 && hi.Sign() > 0:
			p = new(big.Int)
		case lo.Sign() >= 0:
			// Least integer strictly above lo
			p = floorAdd1(lo)
		default:
			// Greatest integer strictly below hi
			p = new(big.Int).Neg(floorAdd1(new(big.Rat).Neg(hi)))
		}
		//
		if new(big.Rat).SetInt(p).Cmp(lo) > 0 && new(big.Rat).SetInt(p).Cmp(hi) < 0 {
			return new(big.Rat).SetFrac(p, scale)
		}
		//
		scale.Lsh(scale, 1)
	}
}

// Compute floor(r) + 1, the least integer strictly above r.
func floorAdd1(r *big.Rat) *big.Int {
	q := new(big.Int).Div(r.Num(), r.Denom())
	//
	return q.Add(q, big.NewInt(1))
}

// FromRat constructs the canonical position for a dyadic rational.  Integers
// n >= 0 become the chain {n-1|}, negative integers its negation, and a
// non-integer p/2^k becomes {v - 1/2^k | v + 1/2^k} recursively.  Rationals
// whose denominator is not a power of two have no finite position and give
// ErrNotDyadic.
func FromRat(r *big.Rat) (*PreGame, error) {
	denom := r.Denom()
	// Power-of-two check
	if denom.BitLen() == 0 || denom.Bit(denom.BitLen()-1) != 1 || hasLowerBits(denom) {
		return nil, ErrNotDyadic
	}
	//
	return fromDyadic(r), nil
}

func fromDyadic(r *big.Rat) *PreGame {
	if r.IsInt() {
		n := r.Num()
		//
		if n.Sign() < 0 {
			return Neg(Nat(uint(new(big.Int).Neg(n).Uint64())))
		}
		//
		return Nat(uint(n.Uint64()))
	}
	// Halve the step until reaching r's own denominator
	step := new(big.Rat).SetFrac(big.NewInt(1), r.Denom())
	left := fromDyadic(new(big.Rat).Sub(r, step))
	right := fromDyadic(new(big.Rat).Add(r, step))
	//
	return Make([]*PreGame{left}, []*PreGame{right})
}

// Check whether any bit below the top bit is set, i.e. whether the value is
// not an exact power of two.
func hasLowerBits(n *big.Int) bool {
	for i := 0; i < n.BitLen()-1; i++ {
		if n.Bit(i) == 1 {
			return true
		}
	}
	//
	return false
}
