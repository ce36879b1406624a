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

// Mul constructs the product of two positions.  Every option combines an
// option a of x with an option b of y using the three-term pattern
//
//	a*y + x*b - a*b
//
// where Left options of the product arise from the Left×Left and Right×Right
// cross products, and Right options from the two mixed cross products.  The
// recursion is nested: outermost on x, and for each fixed x-substructure on
// all of y.  Multiplication is commutative, associative and distributive
// over Add up to Equiv.
//
// Whether the product of two Numeric positions is itself Numeric is an open
// question not settled here; callers must not assume it.
func Mul(x *PreGame, y *PreGame) *PreGame {
	nlefts := len(x.left)*len(y.left) + len(x.right)*len(y.right)
	nrights := len(x.left)*len(y.right) + len(x.right)*len(y.left)
	lefts := make([]*PreGame, 0, nlefts)
	rights := make([]*PreGame, 0, nrights)
	// Left x Left
	for _, xl := range x.left {
		for _, yl := range y.left {
			lefts = append(lefts, mulOption(x, y, xl, yl))
		}
	}
	// Right x Right
	for _, xr := range x.right {
		for _, yr := range y.right {
			lefts = append(lefts, mulOption(x, y, xr, yr))
		}
	}
	// Left x Right
	for _, xl := range x.left {
		for _, yr := range y.right {
			rights = append(rights, mulOption(x, y, xl, yr))
		}
	}
	// Right x Left
	for _, xr := range x.right {
		for _, yl := range y.left {
			rights = append(rights, mulOption(x, y, xr, yl))
		}
	}
	//
	return Make(lefts, rights)
}

// Construct the option a*y + x*b - a*b arising from moving to a in x and b
// in y.
func mulOption(x *PreGame, y *PreGame, a *PreGame, b *PreGame) *PreGame {
	return Sub(Add(Mul(a, y), Mul(x, b)), Mul(a, b))
}
