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

// Relabelling witnesses a structural isomorphism between two positions x and
// y: a bijection between their Left option sets, a bijection between their
// Right option sets, and recursively a witness for every matched pair of
// options.  A relabelling is strictly stronger than Equiv: it asserts the two
// trees have the same shape up to reindexing, not merely the same value.  In
// particular a relabelling transports the Numeric property in both
// directions, which mere equivalence does not.
type Relabelling struct {
	// Bijection taking Left indices of x to Left indices of y.
	lefts []uint
	// Bijection taking Right indices of x to Right indices of y.
	rights []uint
	// Witness for x.MoveLeft(i) against y.MoveLeft(lefts[i]).
	leftChildren []*Relabelling
	// Witness for x.MoveRight(j) against y.MoveRight(rights[j]).
	rightChildren []*Relabelling
}

// LeftIndex returns the Left index of y matched with a given Left index of x.
func (p *Relabelling) LeftIndex(i uint) uint {
	return p.lefts[i]
}

// RightIndex returns the Right index of y matched with a given Right index
// of x.
func (p *Relabelling) RightIndex(j uint) uint {
	return p.rights[j]
}

// Verify checks that this witness is a valid relabelling of x into y: both
// index maps are bijections of the correct arity, and every child witness
// verifies recursively.
func (p *Relabelling) Verify(x *PreGame, y *PreGame) bool {
	if !isBijection(p.lefts, uint(len(y.left))) || uint(len(p.lefts)) != uint(len(x.left)) {
		return false
	}
	//
	if !isBijection(p.rights, uint(len(y.right))) || uint(len(p.rights)) != uint(len(x.right)) {
		return false
	}
	//
	for i, xl := range x.left {
		if !p.leftChildren[i].Verify(xl, y.left[p.lefts[i]]) {
			return false
		}
	}
	//
	for j, xr := range x.right {
		if !p.rightChildren[j].Verify(xr, y.right[p.rights[j]]) {
			return false
		}
	}
	//
	return true
}

// Inverse constructs the witness relabelling y into x.
func (p *Relabelling) Inverse() *Relabelling {
	lefts := make([]uint, len(p.lefts))
	rights := make([]uint, len(p.rights))
	leftChildren := make([]*Relabelling, len(p.lefts))
	rightChildren := make([]*Relabelling, len(p.rights))
	//
	for i, k := range p.lefts {
		lefts[k] = uint(i)
		leftChildren[k] = p.leftChildren[i].Inverse()
	}
	//
	for j, k := range p.rights {
		rights[k] = uint(j)
		rightChildren[k] = p.rightChildren[j].Inverse()
	}
	//
	return &Relabelling{lefts, rights, leftChildren, rightChildren}
}

// FindRelabelling searches for a structural isomorphism between two
// positions, returning false if none exists.  The search is a backtracking
// match over option bijections and is intended for small trees.
func FindRelabelling(x *PreGame, y *PreGame) (*Relabelling, bool) {
	if len(x.left) != len(y.left) || len(x.right) != len(y.right) {
		return nil, false
	}
	//
	lefts, leftChildren, ok := matchOptions(x.left, y.left)
	if !ok {
		return nil, false
	}
	//
	rights, rightChildren, ok := matchOptions(x.right, y.right)
	if !ok {
		return nil, false
	}
	//
	return &Relabelling{lefts, rights, leftChildren, rightChildren}, true
}

// Match the options of one side against those of the other by backtracking,
// producing the resulting bijection along with child witnesses.
func matchOptions(xs []*PreGame, ys []*PreGame) ([]uint, []*Relabelling, bool) {
	var (
		mapping  = make([]uint, len(xs))
		children = make([]*Relabelling, len(xs))
		used     = make([]bool, len(ys))
	)
	//
	if matchFrom(xs, ys, 0, mapping, children, used) {
		return mapping, children, true
	}
	//
	return nil, nil, false
}

func matchFrom(xs []*PreGame, ys []*PreGame, i int, mapping []uint,
	children []*Relabelling, used []bool) bool {
	if i == len(xs) {
		return true
	}
	//
	for k := range ys {
		if used[k] {
			continue
		}
		//
		if r, ok := FindRelabelling(xs[i], ys[k]); ok {
			mapping[i] = uint(k)
			children[i] = r
			used[k] = true
			//
			if matchFrom(xs, ys, i+1, mapping, children, used) {
				return true
			}
			//
			used[k] = false
		}
	}
	//
	return false
}

// IdentityRelabelling constructs the trivial witness relabelling a position
// into itself.
func IdentityRelabelling(x *PreGame) *Relabelling {
	lefts := make([]uint, len(x.left))
	rights := make([]uint, len(x.right))
	leftChildren := make([]*Relabelling, len(x.left))
	rightChildren := make([]*Relabelling, len(x.right))
	//
	for i, xl := range x.left {
		lefts[i] = uint(i)
		leftChildren[i] = IdentityRelabelling(xl)
	}
	//
	for j, xr := range x.right {
		rights[j] = uint(j)
		rightChildren[j] = IdentityRelabelling(xr)
	}
	//
	return &Relabelling{lefts, rights, leftChildren, rightChildren}
}

// AddZeroRelabelling constructs the witness relabelling Add(x, Zero()) into
// x.  Adding the empty position contributes no options at any depth, hence
// the two trees have identical shape.
func AddZeroRelabelling(x *PreGame) *Relabelling {
	lefts := make([]uint, len(x.left))
	rights := make([]uint, len(x.right))
	leftChildren := make([]*Relabelling, len(x.left))
	rightChildren := make([]*Relabelling, len(x.right))
	//
	for i, xl := range x.left {
		lefts[i] = uint(i)
		leftChildren[i] = AddZeroRelabelling(xl)
	}
	//
	for j, xr := range x.right {
		rights[j] = uint(j)
		rightChildren[j] = AddZeroRelabelling(xr)
	}
	//
	return &Relabelling{lefts, rights, leftChildren, rightChildren}
}

// MulZeroRelabelling constructs the witness relabelling Mul(x, Zero()) into
// Zero().  Every cross product with the empty option sets is empty, hence
// the product is itself the empty position.
func MulZeroRelabelling() *Relabelling {
	return &Relabelling{nil, nil, nil, nil}
}

// NegNegRelabelling constructs the witness relabelling Neg(Neg(x)) into x.
// Negating twice restores each side to its original role.
func NegNegRelabelling(x *PreGame) *Relabelling {
	return IdentityRelabelling(x)
}

func isBijection(mapping []uint, n uint) bool {
	if uint(len(mapping)) != n {
		return false
	}
	//
	seen := make([]bool, n)
	//
	for _, k := range mapping {
		if k >= n || seen[k] {
			return false
		}
		//
		seen[k] = true
	}
	//
	return true
}
