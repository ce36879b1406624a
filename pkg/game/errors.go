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

import "errors"

// ErrBudgetExceeded indicates that a bounded comparison ran out of its
// node-visit budget before reaching a verdict.  This arises only on
// pathologically deep inputs; unbounded comparisons always terminate on
// finite trees.
var ErrBudgetExceeded = errors.New("comparison budget exceeded")

// ErrNotNumeric indicates that an operation which is only meaningful for
// Numeric positions was applied to a position which is not Numeric.  Such
// violations are never coerced; the computation is abandoned.
var ErrNotNumeric = errors.New("position is not numeric")

// ErrNonPositiveInverse indicates that the inverse construction was applied
// to a position which is not strictly positive.
var ErrNonPositiveInverse = errors.New("inverse requires a strictly positive position")

// ErrNotDyadic indicates that a rational with a non power-of-two denominator
// was given where a dyadic rational was required.
var ErrNotDyadic = errors.New("denominator is not a power of two")
