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
	"github.com/consensys/go-surreal/pkg/game"
)

// OrdinalPosition constructs the canonical position of an ordinal: every
// smaller ordinal appears as a Left option, and there are no Right options.
// In the finite-branching regime only finite ordinals (naturals) are
// representable; transfinite ordinals would require an infinite Left option
// set.
func OrdinalPosition(n uint) *game.PreGame {
	lefts := make([]*game.PreGame, n)
	//
	for k := uint(0); k < n; k++ {
		lefts[k] = OrdinalPosition(k)
	}
	//
	return game.Make(lefts, nil)
}

// FromOrdinal embeds an ordinal into the surreals.  The embedding is
// strictly monotone (a < b implies FromOrdinal(a) < FromOrdinal(b)) and
// hence injective.
func FromOrdinal(n uint) Surreal {
	// Ordinal positions are Numeric by construction: there are no Right
	// options to violate the separation condition at any depth.
	return Surreal{OrdinalPosition(n)}
}
