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

// reedSolomonEncode computes the parity bytes for a data block, using a
// generator polynomial of degree len(gen). gen omits its leading (always
// 1) coefficient, i.e. gen[i] is the coefficient of x^(len(gen)-1-i).
// The residue register starts at zero and is shifted once per data byte.
func reedSolomonEncode(data, gen []byte) []byte {
	parity := len(gen)
	residue := make([]byte, parity)

	for _, d := range data {
		factor := d ^ residue[0]
		copy(residue, residue[1:])
		residue[parity-1] = 0
		for i := 0; i < parity; i++ {
			residue[i] ^= gfMultiply(gen[i], factor)
		}
	}

	return residue
}

// generatorDivisor returns the non-leading coefficients of the degree-P
// generator polynomial, cached per degree since the same few degrees
// (7..30) recur across every (version, ECC) pair.
var generatorDivisorCache = make(map[int][]byte)

func generatorDivisor(degree int) []byte {
	if cached, ok := generatorDivisorCache[degree]; ok {
		return cached
	}
	full := generatorPolynomial(degree)
	divisor := full[1:]
	generatorDivisorCache[degree] = divisor
	return divisor
}
