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

// generatorPolynomial computes the monic generator polynomial of the
// given degree: the product of (x - alpha^i) for i in [0,degree), over
// GF(2^8). The returned slice has degree+1 entries with index 0 the
// leading (always 1) coefficient and the last entry the constant term.
func generatorPolynomial(degree int) []byte {
	if degree < 1 || degree > 30 {
		panic("generator polynomial degree out of range")
	}

	coeffs := make([]byte, degree)
	coeffs[degree-1] = 1

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(coeffs); j++ {
			coeffs[j] = gfMultiply(coeffs[j], root)
			if j+1 < len(coeffs) {
				coeffs[j] ^= coeffs[j+1]
			}
		}
		root = gfMultiply(root, 2)
	}

	poly := make([]byte, degree+1)
	poly[0] = 1
	copy(poly[1:], coeffs)
	return poly
}
