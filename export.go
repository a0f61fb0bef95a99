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

// exportBitmap packs the matrix into a monochrome bitmap: side rows,
// each row packed MSB-left into ceil(side/8) bytes, zero-padded on the
// right.
func exportBitmap(mx *matrix) []byte {
	rowBytes := ceilDiv(mx.side, 8)
	out := make([]byte, mx.side*rowBytes)

	for row := 0; row < mx.side; row++ {
		for col := 0; col < mx.side; col++ {
			if mx.dark(col, row) {
				out[row*rowBytes+col/8] |= 1 << uint(7-col%8)
			}
		}
	}
	return out
}
