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

// placeFinderPattern draws one 7x7 position-detection pattern plus its
// adjoining one-module separator ring, centered at (col,row). The
// separator falls naturally out of the same ring formula (distance 4 is
// always white) and is clipped wherever the matrix edge cuts it short.
func placeFinderPattern(mx *matrix, col, row int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			c, r := col+dc, row+dr
			if c < 0 || c >= mx.side || r < 0 || r >= mx.side {
				continue
			}
			dist := max(abs(dc), abs(dr))
			if dist != 2 && dist != 4 {
				mx.set(c, r, blackNonmasked)
			} else {
				mx.set(c, r, whiteNonmasked)
			}
		}
	}
}

// placeAlignmentPattern draws one 5x5 alignment pattern centered at
// (col,row).
func placeAlignmentPattern(mx *matrix, col, row int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dist := max(abs(dc), abs(dr))
			v := blackNonmasked
			if dist == 1 {
				v = whiteNonmasked
			}
			mx.set(col+dc, row+dr, v)
		}
	}
}

// placeTimingPatterns draws the alternating row-6/column-6 timing
// lines between the two finder patterns.
func placeTimingPatterns(mx *matrix) {
	for i := 8; i <= mx.side-9; i++ {
		v := whiteNonmasked
		if i%2 == 0 {
			v = blackNonmasked
		}
		mx.set(i, 6, v)
		mx.set(6, i, v)
	}
}

// placeAlignmentPatterns draws every alignment pattern for the version,
// skipping the three corners that collide with the finder patterns, and
// is a no-op for version 1.
func placeAlignmentPatterns(mx *matrix, v Version) {
	positions := alignmentPatternPositions[v]
	if len(positions) == 0 {
		return
	}

	last := len(positions) - 1
	for i, pr := range positions {
		for j, pc := range positions {
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue
			}
			placeAlignmentPattern(mx, int(pc), int(pr))
		}
	}
}

// placeFunctionPatterns builds every function module of the symbol:
// finder patterns and separators, timing patterns, alignment patterns,
// the dark module, version information, and the format-information
// placeholder cells. Data placement happens afterward, into whatever
// cells remain EMPTY.
func placeFunctionPatterns(mx *matrix, v Version) {
	placeFinderPattern(mx, 3, 3)
	placeFinderPattern(mx, mx.side-4, 3)
	placeFinderPattern(mx, 3, mx.side-4)

	placeTimingPatterns(mx)
	placeAlignmentPatterns(mx, v)

	placeVersionInformation(mx, v)
	reserveFormatInformation(mx)
}
