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

// Numeric reports whether a position denotes a number: every Left option must
// be strictly below every Right option, and every option must itself be
// Numeric.  Numeric positions are totally ordered: for Numeric x and y the
// relations x ⧏ y and x < y coincide, and hence exactly one of x < y,
// x ~ y, y < x holds.  Neither fact holds for general positions (for
// example, Star() is fuzzy with Zero()).
func Numeric(x *PreGame) bool {
	for _, xl := range x.left {
		for _, xr := range x.right {
			if !Lt(xl, xr) {
				return false
			}
		}
	}
	//
	for _, xl := range x.left {
		if !Numeric(xl) {
			return false
		}
	}
	//
	for _, xr := range x.right {
		if !Numeric(xr) {
			return false
		}
	}
	//
	return true
}

// Compare two Numeric positions, returning -1, 0 or +1 according to whether
// x < y, x ~ y or x > y.  If either operand is not Numeric then
// ErrNotNumeric is returned, since trichotomy fails outside the Numeric
// fragment and a three-way verdict would be meaningless there.
func Compare(x *PreGame, y *PreGame) (int, error) {
	if !Numeric(x) || !Numeric(y) {
		return 0, ErrNotNumeric
	}
	//
	switch {
	case Lt(x, y):
		return -1, nil
	case Lt(y, x):
		return 1, nil
	default:
		return 0, nil
	}
}

// Sign returns -1, 0 or +1 according to whether a Numeric position is
// negative, equivalent to zero, or positive.  If the operand is not Numeric
// then ErrNotNumeric is returned.
func Sign(x *PreGame) (int, error) {
	return Compare(x, Zero())
}
