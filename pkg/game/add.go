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

// Add constructs the disjunctive sum of two positions, in which a player
// moves in exactly one summand on their turn:
//
//	x + y = { xᴸ+y, x+yᴸ | xᴿ+y, x+yᴿ }
//
// The recursion is simultaneous over both operands, terminating because the
// sum of birthdays strictly decreases.  Addition is commutative and
// associative up to Equiv only; the resulting trees are structurally
// distinct.
func Add(x *PreGame, y *PreGame) *PreGame {
	lefts := make([]*PreGame, 0, len(x.left)+len(y.left))
	rights := make([]*PreGame, 0, len(x.right)+len(y.right))
	//
	for _, xl := range x.left {
		lefts = append(lefts, Add(xl, y))
	}
	//
	for _, yl := range y.left {
		lefts = append(lefts, Add(x, yl))
	}
	//
	for _, xr := range x.right {
		rights = append(rights, Add(xr, y))
	}
	//
	for _, yr := range y.right {
		rights = append(rights, Add(x, yr))
	}
	//
	return &PreGame{lefts, rights, x.birthday + y.birthday}
}

// Sum constructs the disjunctive sum of zero or more positions, where the
// empty sum is Zero().
func Sum(xs ...*PreGame) *PreGame {
	sum := Zero()
	//
	for _, x := range xs {
		sum = Add(sum, x)
	}
	//
	return sum
}
