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
	log "github.com/sirupsen/logrus"
)

// InvTag distinguishes the five ways an option index of an inverse position
// can be generated.  InvZero seeds the Left side; the remaining four extend a
// previously generated index by consuming either a Right option of the
// operand, or a strictly positive Left option of the operand.
type InvTag uint8

// Tags for the five generators of the inverse option family.
const (
	// InvZero is the initial Left-side index, whose value is zero.
	InvZero InvTag = iota
	// InvLeft1 extends a Left-side index with a Right option.
	InvLeft1
	// InvLeft2 extends a Right-side index with a positive Left option.
	InvLeft2
	// InvRight1 extends a Left-side index with a positive Left option.
	InvRight1
	// InvRight2 extends a Right-side index with a Right option.
	InvRight2
)

// InvTerm is one generated index of an inverse's option family.  Terms form
// chains: each non-zero term extends exactly one previously generated term,
// so a term is a finite list ending in InvZero.  The family is unbounded for
// most operands, hence generation is cut off at an explicit chain-length
// budget.
type InvTerm struct {
	tag InvTag
	// Index into the operand's Right options (InvLeft1, InvRight2) or into
	// its strictly positive Left options (InvLeft2, InvRight1).
	index uint
	// Previously generated term being extended, or nil for InvZero.
	prev *InvTerm
}

// Tag returns the generator which produced this term.
func (p *InvTerm) Tag() InvTag { return p.tag }

// Length returns the chain length of this term, with InvZero having length
// zero.
func (p *InvTerm) Length() uint {
	if p.tag == InvZero {
		return 0
	}
	//
	return 1 + p.prev.Length()
}

// GenerateInvTerms produces every term of the inverse option family whose
// chain length is at most depth, split into the Left-side and Right-side
// families.  Generation alternates between the two sides: extending with a
// Right option of the operand stays on the same side, whilst extending with
// a positive Left option switches side.  The number of positive Left options
// and of Right options of the operand bound the available extensions.
func GenerateInvTerms(posLefts uint, rights uint, depth uint) ([]*InvTerm, []*InvTerm) {
	var (
		leftTerms  = []*InvTerm{{InvZero, 0, nil}}
		rightTerms []*InvTerm
		// Terms generated at the previous chain length
		lastLeft  = leftTerms
		lastRight []*InvTerm
	)
	//
	for level := uint(1); level <= depth; level++ {
		var nextLeft, nextRight []*InvTerm
		//
		for _, f := range lastLeft {
			for r := uint(0); r < rights; r++ {
				nextLeft = append(nextLeft, &InvTerm{InvLeft1, r, f})
			}
			//
			for l := uint(0); l < posLefts; l++ {
				nextRight = append(nextRight, &InvTerm{InvRight1, l, f})
			}
		}
		//
		for _, t := range lastRight {
			for l := uint(0); l < posLefts; l++ {
				nextLeft = append(nextLeft, &InvTerm{InvLeft2, l, t})
			}
			//
			for r := uint(0); r < rights; r++ {
				nextRight = append(nextRight, &InvTerm{InvRight2, r, t})
			}
		}
		//
		leftTerms = append(leftTerms, nextLeft...)
		rightTerms = append(rightTerms, nextRight...)
		lastLeft, lastRight = nextLeft, nextRight
	}
	//
	return leftTerms, rightTerms
}

// Inv approximates the multiplicative inverse of a Numeric position, with
// the option family truncated at a given chain-length budget.  Zero maps to
// zero, and for negative operands the inverse of the negation is negated,
// preserving the reciprocal identity 1/(-x) = -(1/x).  For non-Numeric
// operands ErrNotNumeric is returned, since the construction is only
// meaningful on numbers.
//
// For short dyadic operands a small budget (the operand's birthday suffices
// in practice) already yields a position equivalent to the exact inverse;
// deeper budgets add further options without changing the value.
func Inv(x *PreGame, depth uint) (*PreGame, error) {
	if !Numeric(x) {
		return nil, ErrNotNumeric
	}
	//
	switch {
	case Equiv(x, Zero()):
		return Zero(), nil
	case Lt(Zero(), x):
		return invPositive(x, depth), nil
	default:
		return Neg(invPositive(Neg(x), depth)), nil
	}
}

// InvPositive approximates the multiplicative inverse of a strictly positive
// Numeric position.  ErrNotNumeric is returned for non-Numeric operands, and
// ErrNonPositiveInverse for operands not strictly above zero.
func InvPositive(x *PreGame, depth uint) (*PreGame, error) {
	if !Numeric(x) {
		return nil, ErrNotNumeric
	}
	//
	if !Lt(Zero(), x) {
		return nil, ErrNonPositiveInverse
	}
	//
	return invPositive(x, depth), nil
}

// Construct the inverse of a strictly positive Numeric position.  The Left
// and Right options are the values of the generated term family, computed by
// simultaneous recursion on the term chain and on the consumed options of x.
// Termination holds because the term chain shrinks on each step, and because
// each recursive inverse is taken at an option of x (strictly smaller tree).
func invPositive(x *PreGame, depth uint) *PreGame {
	// Filter the strictly positive Left options.  Right options of a
	// positive Numeric position are always positive, so need no filter.
	var posLefts []*PreGame
	//
	for _, xl := range x.left {
		if Lt(Zero(), xl) {
			posLefts = append(posLefts, xl)
		}
	}
	// Recursively invert the consumed options
	invLefts := make([]*PreGame, len(posLefts))
	invRights := make([]*PreGame, len(x.right))
	//
	for i, xl := range posLefts {
		invLefts[i] = invPositive(xl, depth)
	}
	//
	for j, xr := range x.right {
		invRights[j] = invPositive(xr, depth)
	}
	// Generate the truncated option family
	leftTerms, rightTerms := GenerateInvTerms(uint(len(posLefts)), uint(len(x.right)), depth)
	//
	log.Debugf("inverse of %s: %d left / %d right terms at depth %d",
		x, len(leftTerms), len(rightTerms), depth)
	//
	var (
		cache  = make(map[*InvTerm]*PreGame)
		lefts  = make([]*PreGame, len(leftTerms))
		rights = make([]*PreGame, len(rightTerms))
	)
	//
	for i, t := range leftTerms {
		lefts[i] = invValue(x, posLefts, invLefts, invRights, t, cache)
	}
	//
	for j, t := range rightTerms {
		rights[j] = invValue(x, posLefts, invLefts, invRights, t, cache)
	}
	//
	return Make(lefts, rights)
}

// Compute the value of one generated term.  Extending a term which consumed
// option o (with inverse o') takes value (1 + (o - x) * prev) * o', where
// prev is the value of the extended term.
func invValue(x *PreGame, posLefts []*PreGame, invLefts []*PreGame,
	invRights []*PreGame, t *InvTerm, cache map[*InvTerm]*PreGame) *PreGame {
	if v, ok := cache[t]; ok {
		return v
	}
	//
	var v *PreGame
	//
	switch t.tag {
	case InvZero:
		v = Zero()
	case InvLeft1, InvRight2:
		prev := invValue(x, posLefts, invLefts, invRights, t.prev, cache)
		v = invStep(x, x.right[t.index], invRights[t.index], prev)
	case InvLeft2, InvRight1:
		prev := invValue(x, posLefts, invLefts, invRights, t.prev, cache)
		v = invStep(x, posLefts[t.index], invLefts[t.index], prev)
	default:
		panic("unreachable")
	}
	//
	cache[t] = v
	//
	return v
}

// Construct (1 + (o - x) * prev) * o'.
func invStep(x *PreGame, o *PreGame, oInv *PreGame, prev *PreGame) *PreGame {
	return Mul(Add(One(), Mul(Sub(o, x), prev)), oInv)
}
