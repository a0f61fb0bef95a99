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

// moduleValue is the tagged state of one matrix cell. The low bit is the
// pixel color (1 = black) for every value below maskingOffset; values at
// or above maskingOffset, other than empty, are the masked copy of a
// maskable cell.
type moduleValue byte

const (
	white          moduleValue = 0
	black          moduleValue = 1
	reserved       moduleValue = 2
	blackNonmasked moduleValue = 3
	whiteNonmasked moduleValue = 4
	empty          moduleValue = 0xFF

	// maskingOffset is added to white/black cells during mask scoring;
	// it is odd so that the addition always flips the color bit.
	maskingOffset moduleValue = 5
)

func (m moduleValue) isMaskable() bool {
	return m == white || m == black
}

func (m moduleValue) isMasked() bool {
	return m >= maskingOffset
}

func (m moduleValue) color() int {
	return int(m & 1)
}

// matrix is the side x side grid of module values, indexed column-major
// (col*side + row) as mandated by the symbol's physical layout rules.
type matrix struct {
	side  int
	cells []moduleValue
}

func newMatrix(side int) *matrix {
	cells := make([]moduleValue, side*side)
	for i := range cells {
		cells[i] = empty
	}
	return &matrix{side: side, cells: cells}
}

func (mx *matrix) index(col, row int) int {
	return col*mx.side + row
}

func (mx *matrix) get(col, row int) moduleValue {
	return mx.cells[mx.index(col, row)]
}

func (mx *matrix) set(col, row int, v moduleValue) {
	mx.cells[mx.index(col, row)] = v
}

// setIfMaskable is used by mask application: it only touches cells
// carrying a plain white/black color, leaving function modules intact.
func (mx *matrix) setIfMaskable(col, row int, v moduleValue) {
	i := mx.index(col, row)
	if mx.cells[i].isMaskable() {
		mx.cells[i] = v
	}
}
