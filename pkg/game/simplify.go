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
	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// Simplify removes dominated options throughout a position.  A Left option
// is dominated when another Left option is at least as good for Left (i.e.
// above or equivalent), and dually for Right options; removing a dominated
// option never changes the value.  Among mutually equivalent options the
// first is retained.  The result is therefore Equiv to the operand, usually
// with a much smaller tree.
//
// Note this does not compute the full canonical form, which additionally
// requires bypassing reversible options.
func Simplify(x *PreGame) *PreGame {
	lefts := make([]*PreGame, len(x.left))
	rights := make([]*PreGame, len(x.right))
	//
	for i, xl := range x.left {
		lefts[i] = Simplify(xl)
	}
	//
	for j, xr := range x.right {
		rights[j] = Simplify(xr)
	}
	//
	lefts = pruneDominated(lefts, func(a, b *PreGame) bool { return Le(a, b) })
	rights = pruneDominated(rights, func(a, b *PreGame) bool { return Le(b, a) })
	//
	return Make(lefts, rights)
}

// Prune every option for which some other option is at least as good, where
// "at least as good" is given by the dominance relation for the relevant
// player.  Mutually dominating options are broken by index, keeping the
// earliest.
func pruneDominated(options []*PreGame, dominatedBy func(a, b *PreGame) bool) []*PreGame {
	dominated := bitset.New(uint(len(options)))
	//
	for i, a := range options {
		for j, b := range options {
			if i == j || dominated.Test(uint(j)) {
				continue
			}
			//
			if dominatedBy(a, b) && (!dominatedBy(b, a) || j < i) {
				dominated.Set(uint(i))
				break
			}
		}
	}
	//
	if dominated.None() {
		return options
	}
	//
	log.Debugf("pruning %d of %d dominated options", dominated.Count(), len(options))
	//
	kept := make([]*PreGame, 0, len(options))
	//
	for i, o := range options {
		if !dominated.Test(uint(i)) {
			kept = append(kept, o)
		}
	}
	//
	return kept
}
