/*
 * Copyright © 2026, the qrsymbol authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrsymbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPredicateKnownTruthTable(t *testing.T) {
	assert.True(t, maskPredicate(0, 0, 0))
	assert.False(t, maskPredicate(0, 0, 1))
	assert.True(t, maskPredicate(1, 0, 5))
	assert.False(t, maskPredicate(1, 1, 5))
	assert.True(t, maskPredicate(2, 5, 0))
	assert.False(t, maskPredicate(2, 5, 1))
	assert.True(t, maskPredicate(3, 1, 2))
	assert.False(t, maskPredicate(3, 1, 3))
}

func TestMaskPredicatePanicsOnIllegalIndex(t *testing.T) {
	assert.Panics(t, func() { maskPredicate(8, 0, 0) })
}

func TestApplyMaskUnmaskAllRoundTrip(t *testing.T) {
	mx := newMatrix(21)
	mx.set(0, 0, white)
	mx.set(1, 0, black)
	mx.set(2, 0, blackNonmasked)

	applyMask(mx, 0)
	unmaskAll(mx)

	assert.Equal(t, white, mx.get(0, 0))
	assert.Equal(t, black, mx.get(1, 0))
	assert.Equal(t, blackNonmasked, mx.get(2, 0))
}

func TestApplyMaskLeavesFunctionModulesAlone(t *testing.T) {
	mx := newMatrix(21)
	mx.set(5, 5, blackNonmasked)
	applyMask(mx, 0)
	assert.Equal(t, blackNonmasked, mx.get(5, 5))
}

func TestPenaltyScoreAllWhiteRowIsPenalized(t *testing.T) {
	mx := newMatrix(21)
	for i := 0; i < mx.side; i++ {
		for j := 0; j < mx.side; j++ {
			mx.set(i, j, white)
		}
	}
	assert.True(t, penaltyScore(mx) > 0)
}

func TestPenaltyScoreBalancedCheckerboardIsLow(t *testing.T) {
	mx := newMatrix(21)
	for i := 0; i < mx.side; i++ {
		for j := 0; j < mx.side; j++ {
			v := white
			if (i+j)%2 == 0 {
				v = black
			}
			mx.set(i, j, v)
		}
	}
	checker := penaltyScore(mx)

	mx2 := newMatrix(21)
	for i := 0; i < mx2.side; i++ {
		for j := 0; j < mx2.side; j++ {
			mx2.set(i, j, white)
		}
	}
	allWhite := penaltyScore(mx2)

	assert.True(t, checker < allWhite)
}

func TestSelectMaskingReturnsValidIndex(t *testing.T) {
	v := Version(2)
	mx := newMatrix(v.side())
	placeFunctionPatterns(mx, v)

	for col := 0; col < mx.side; col++ {
		for row := 0; row < mx.side; row++ {
			if mx.get(col, row) == empty {
				mx.set(col, row, white)
			}
		}
	}

	m := selectMasking(mx, Medium)
	assert.True(t, m >= 0 && m < 8)
}

func TestMaskTiebreakIsAPermutation(t *testing.T) {
	seen := make(map[int]bool)
	for _, v := range maskTiebreak {
		assert.False(t, seen[v])
		seen[v] = true
	}
	assert.Equal(t, 8, len(seen))
}
