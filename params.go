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
 *
 * Parameter tables are the published ISO/IEC 18004 per-version,
 * per-ECC-level constants; see https://www.thonky.com/qr-code-tutorial/
 * for the canonical reference tables this data reproduces.
 */

package qrsymbol

// Version is a QR symbol version, [1,40].
type Version int

// side returns the symbol's side length in modules.
func (v Version) side() int {
	return 4*int(v) + 17
}

// kind classifies a version by the width of its byte-mode length field.
type kind int

const (
	kindSmall  kind = iota // versions 1-9, 8-bit length field
	kindMedium             // versions 10-26, 16-bit length field
	kindLarge              // versions 27-40, 16-bit length field
)

func kindOf(v Version) kind {
	switch {
	case v <= 9:
		return kindSmall
	case v <= 26:
		return kindMedium
	default:
		return kindLarge
	}
}

func (k kind) lengthBits() int8 {
	if k == kindSmall {
		return 8
	}
	return 16
}

// firstVersionOf returns the smallest version belonging to kind k.
func firstVersionOf(k kind) Version {
	switch k {
	case kindSmall:
		return 1
	case kindMedium:
		return 10
	default:
		return 27
	}
}

// lastVersionOf returns the largest version belonging to kind k.
func lastVersionOf(k kind) Version {
	switch k {
	case kindSmall:
		return 9
	case kindMedium:
		return 26
	default:
		return 40
	}
}

var (
	alignmentPatternPositions [41][]byte

	// eccCodeWordsPerBlock[ecc][version] is the number of ECC bytes per
	// block. Index 0 (version 0) is padding and unused.
	eccCodeWordsPerBlock = [4][41]int{
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numErrorCorrectionBlocks[ecc][version] is the number of blocks the
	// data+ECC stream is split into.
	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	numRawDataModules [41]int
	numDataCodewords  [4][41]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(Version(v))
	}
}

// dataBitsForVersion is the total number of data-carrying modules (before
// subtracting ECC) for a version, remainder bits included.
func dataBitsForVersion(v Version) int {
	return numRawDataModules[v]
}

// maxDataBytes is the usable data-codeword capacity (including segment
// header and padding, excluding ECC) for (version, ecc).
func maxDataBytes(v Version, e ECL) int {
	return numDataCodewords[e][v]
}

// eccParameters returns (numBlocks, eccBytesPerBlock) for (version, ecc).
func eccParameters(v Version, e ECL) (blocks, eccBytes int) {
	return numErrorCorrectionBlocks[e][v], eccCodeWordsPerBlock[e][v]
}

// computeAlignmentPatternPositions returns the coordinate list used for
// both rows and columns of the alignment pattern grid; empty for v=1.
func computeAlignmentPatternPositions(v Version) []byte {
	if v == 1 {
		return nil
	}

	numAlign := int(v)/7 + 2
	step := 0
	if v == 32 {
		step = 26
	} else {
		step = (int(v)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]byte, numAlign)
	pos := 4*int(v) + 10
	for i := numAlign - 1; i >= 1; i-- {
		result[i] = byte(pos)
		pos -= step
	}
	result[0] = 6

	return result
}
