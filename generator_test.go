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

func TestGeneratorPolynomialLeadingTerm(t *testing.T) {
	for d := 1; d <= 30; d++ {
		poly := generatorPolynomial(d)
		assert.Equal(t, d+1, len(poly))
		assert.Equal(t, byte(1), poly[0], "degree %d", d)
	}
}

func TestGeneratorDivisorKnownValues(t *testing.T) {
	gen := generatorDivisor(1)
	assert.Equal(t, byte(0x01), gen[0])

	gen = generatorDivisor(2)
	assert.Equal(t, byte(0x03), gen[0])
	assert.Equal(t, byte(0x02), gen[1])

	gen = generatorDivisor(5)
	assert.Equal(t, byte(0x1F), gen[0])
	assert.Equal(t, byte(0xC6), gen[1])
	assert.Equal(t, byte(0x3F), gen[2])
	assert.Equal(t, byte(0x93), gen[3])
	assert.Equal(t, byte(0x74), gen[4])

	gen = generatorDivisor(30)
	assert.Equal(t, byte(0xD4), gen[0])
	assert.Equal(t, byte(0xF6), gen[1])
	assert.Equal(t, byte(0xC0), gen[5])
	assert.Equal(t, byte(0x16), gen[12])
	assert.Equal(t, byte(0xD9), gen[13])
	assert.Equal(t, byte(0x12), gen[20])
	assert.Equal(t, byte(0x6A), gen[27])
	assert.Equal(t, byte(0x96), gen[29])
}
