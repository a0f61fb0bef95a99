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

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskTiebreak breaks exact score ties: the mask with the smallest entry
// wins, giving the preference order 5, 2, 3, 1, 0, 4, 7, 6.
var maskTiebreak = [8]int{4, 3, 1, 2, 5, 0, 7, 6}

// maskPredicate reports whether mask m flips the cell at (row,col).
func maskPredicate(m, row, col int) bool {
	switch m {
	case 0:
		return (row+col)&1 == 0
	case 1:
		return row&1 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)&1 == 0
	case 5:
		return (row*col)%6 == 0
	case 6:
		return ((row*col)%3+row*col)&1 == 0
	case 7:
		return ((row*col)%3+row+col)&1 == 0
	default:
		panic("illegal mask value")
	}
}

// applyMask toggles every maskable (plain white/black) cell whose
// position satisfies the mask predicate into its masked form.
func applyMask(mx *matrix, m int) {
	for col := 0; col < mx.side; col++ {
		for row := 0; row < mx.side; row++ {
			if maskPredicate(m, row, col) {
				mx.setIfMaskable(col, row, mx.get(col, row)+maskingOffset)
			}
		}
	}
}

// unmaskAll restores every masked cell to its plain white/black value.
func unmaskAll(mx *matrix) {
	for i, v := range mx.cells {
		if v.isMasked() {
			mx.cells[i] = v - maskingOffset
		}
	}
}

func (mx *matrix) dark(col, row int) bool {
	return mx.get(col, row).color() == 1
}

// penaltyScore computes the ISO 18004 N1-N4 penalty for the current
// (already masked) matrix state.
func penaltyScore(mx *matrix) int {
	size := mx.side
	total := 0

	for row := 0; row < size; row++ {
		total += runAndFinderPenalty(size, func(i int) bool { return mx.dark(i, row) })
	}
	for col := 0; col < size; col++ {
		total += runAndFinderPenalty(size, func(i int) bool { return mx.dark(col, i) })
	}

	for col := 0; col < size-1; col++ {
		for row := 0; row < size-1; row++ {
			c := mx.dark(col, row)
			if c == mx.dark(col+1, row) && c == mx.dark(col, row+1) && c == mx.dark(col+1, row+1) {
				total += penaltyN2
			}
		}
	}

	dark := 0
	for _, v := range mx.cells {
		dark += v.color()
	}
	allModules := size * size
	k := (abs(dark*20-allModules*10)+allModules-1)/allModules - 1
	total += k * penaltyN4

	return total
}

// runAndFinderPenalty scans one row or column (via at(i), dark=true)
// and returns the combined N1 (run length) and N3 (finder-like pattern)
// penalty for it, using the standard run-history technique: a sliding
// window of the last 7 run lengths identifies the 1:1:3:1:1 pattern
// regardless of where in the line it falls.
func runAndFinderPenalty(size int, at func(int) bool) int {
	total := 0
	runColor := false
	runLen := 0
	var history [7]int

	addHistory := func(length int) {
		if history[0] == 0 {
			length += size
		}
		copy(history[1:], history[:6])
		history[0] = length
	}
	countPatterns := func() int {
		n := history[1]
		core := n > 0 && history[2] == n && history[3] == 3*n && history[4] == n && history[5] == n
		count := 0
		if core && history[0] >= 4*n && history[6] >= n {
			count++
		}
		if core && history[6] >= 4*n && history[0] >= n {
			count++
		}
		return count
	}

	for i := 0; i < size; i++ {
		if at(i) == runColor {
			runLen++
			if runLen == 5 {
				total += penaltyN1
			} else if runLen > 5 {
				total++
			}
		} else {
			addHistory(runLen)
			if !runColor {
				total += countPatterns() * penaltyN3
			}
			runColor = at(i)
			runLen = 1
		}
	}

	if runColor {
		addHistory(runLen)
		runLen = 0
	}
	runLen += size
	addHistory(runLen)
	total += countPatterns() * penaltyN3

	return total
}

// selectMasking tries every mask, scores it with a provisional format
// codeword written in, and returns the mask minimizing the tie-broken
// score. The matrix is left unmasked with format info reserved again
// on return; the caller applies the winning mask.
func selectMasking(mx *matrix, e ECL) int {
	best := -1
	bestKey := 0

	for m := 0; m < 8; m++ {
		placeFormatInformation(mx, e, m)
		applyMask(mx, m)

		score := penaltyScore(mx)
		key := score<<3 | maskTiebreak[m]
		if best == -1 || key < bestKey {
			best, bestKey = m, key
		}

		unmaskAll(mx)
		reserveFormatInformation(mx)
	}

	return best
}
