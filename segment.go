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

// byteModeIndicator is the 4-bit mode field for the one segment mode
// this encoder supports.
const byteModeIndicator = 0b0100

// padBytes alternate starting with 0xEC, per the standard's fixed
// padding codewords.
var padBytes = [2]byte{0xEC, 0x11}

// encodeSegment packs data as a single byte-mode segment (mode
// indicator, length field sized by k, data) and pads with the
// alternating filler bytes up to capacity bytes. It panics if data
// does not fit k's length field or capacity — callers must have
// already verified feasibility via selectParameters.
func encodeSegment(data []byte, k kind, capacity int) []byte {
	if segmentByteLength(k, len(data)) == infeasibleLength {
		panic("segment does not fit its length-field class")
	}

	var bb bitBuffer
	bb.appendBits(byteModeIndicator, 4)
	bb.appendBits(len(data), k.lengthBits())
	bb.appendBytes(data)

	packed := bb.packBytes()
	if len(packed) > capacity {
		panic("segment longer than capacity")
	}

	out := make([]byte, capacity)
	copy(out, packed)
	for i := len(packed); i < capacity; i++ {
		out[i] = padBytes[(i-len(packed))%2]
	}
	return out
}
