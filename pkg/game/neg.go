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

// Neg constructs the negation of a position by exchanging the roles of the
// two players: the Left options of the result are the negated Right options
// of the operand, and vice versa.  Up to Equiv, Neg is an additive inverse:
// Add(x, Neg(x)) ~ Zero().
func Neg(x *PreGame) *PreGame {
	lefts := make([]*PreGame, len(x.right))
	rights := make([]*PreGame, len(x.left))
	//
	for j, xr := range x.right {
		lefts[j] = Neg(xr)
	}
	//
	for i, xl := range x.left {
		rights[i] = Neg(xl)
	}
	// Birthday is unchanged by negation
	return &PreGame{lefts, rights, x.birthday}
}
