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

// ECL is the error correction level of a symbol.
type ECL int8

// ECL values, ordered from least to most parity.
const (
	Low      ECL = iota // recovers ~7% of codewords
	Medium              // recovers ~15% of codewords
	Quartile            // recovers ~25% of codewords
	High                // recovers ~30% of codewords
)

// formatBits returns the 2-bit field used inside the 15-bit format
// information codeword. The standard orders these L,M,Q,H as 1,0,3,2 —
// swapped from the natural enum order.
func (e ECL) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}
