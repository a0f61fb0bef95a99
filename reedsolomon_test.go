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

func TestReedSolomonEncodeZeroData(t *testing.T) {
	gen := generatorDivisor(3)
	parity := reedSolomonEncode([]byte{0}, gen)
	assert.Equal(t, 3, len(parity))
	for _, b := range parity {
		assert.Equal(t, byte(0), b)
	}
}

func TestReedSolomonEncodeSingleOne(t *testing.T) {
	gen := generatorDivisor(3)
	parity := reedSolomonEncode([]byte{0, 1}, gen)
	assert.Equal(t, 3, len(parity))
	for i := range parity {
		assert.Equal(t, gen[i], parity[i])
	}
}

func TestReedSolomonEncodeLengthMatchesDegree(t *testing.T) {
	for _, degree := range []int{7, 10, 13, 16, 18, 22, 24, 26, 28, 30} {
		gen := generatorDivisor(degree)
		parity := reedSolomonEncode([]byte{1, 2, 3, 4, 5}, gen)
		assert.Equal(t, degree, len(parity))
	}
}
