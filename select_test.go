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

func TestSelectParametersSmallVersusMediumKindBoundary(t *testing.T) {
	// 256 bytes needs a 16-bit length field (kindSmall tops out at 255
	// data bytes); v10 (kindMedium) can carry it, v9 (kindSmall) cannot.
	v, _, ok := selectParameters(256, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, Version(10), v)

	_, _, ok = selectParameters(256, 9, 9)
	assert.False(t, ok)
}

func TestSelectParametersMaximizeECCOnSwappedRange(t *testing.T) {
	v, e, ok := selectParameters(1, 40, 1)
	assert.True(t, ok)
	assert.Equal(t, Version(1), v)
	assert.Equal(t, High, e)
}

func TestSelectParametersSmallestSymbolOnOrderedRange(t *testing.T) {
	v, e, ok := selectParameters(1, 1, 40)
	assert.True(t, ok)
	assert.Equal(t, Version(1), v)
	assert.Equal(t, Low, e)
}

func TestSelectParametersEqualTargetAndLimit(t *testing.T) {
	v, e, ok := selectParameters(5, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, Version(1), v)
	assert.Equal(t, Low, e)
}

func TestSelectParametersVersion40LowByteBoundary(t *testing.T) {
	v, e, ok := selectParameters(2953, 1, 40)
	assert.True(t, ok)
	assert.Equal(t, Version(40), v)
	assert.Equal(t, Low, e)

	_, _, ok = selectParameters(2954, 1, 40)
	assert.False(t, ok)
}

func TestSegmentByteLengthInfeasible(t *testing.T) {
	assert.Equal(t, infeasibleLength, segmentByteLength(kindSmall, 256))
	assert.Equal(t, infeasibleLength, segmentByteLength(kindLarge, 4093))
}

func TestMinimumVersionForParametersPicksSmallestInBand(t *testing.T) {
	v, ok := minimumVersionForParameters(kindSmall, 10, High, 1, 9)
	assert.True(t, ok)
	// 10 bytes pack to 12; v1-H holds 9 data codewords, v2-H holds 16.
	assert.Equal(t, Version(2), v)
}
