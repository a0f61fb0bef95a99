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

// Package qrsymbol generates QR Code symbols: given a byte payload and a
// range of acceptable versions, it produces the packed monochrome
// bitmap of a standard-conformant symbol (versions 1-40, all four ECC
// levels, 8-bit byte segment mode only).
package qrsymbol

import "fmt"

// QRCode describes one generated symbol: the chosen version, its error
// correction level and mask, and its side length in modules. Bitmap
// returns the packed pixel data.
type QRCode struct {
	Version Version
	Level   ECL
	Mask    int
	Size    int

	matrix *matrix
}

// Bitmap returns the packed monochrome bitmap: Size rows, each packed
// MSB-left into ceil(Size/8) bytes, zero-padded on the right.
func (q *QRCode) Bitmap() []byte {
	return exportBitmap(q.matrix)
}

// EncodeBinary generates a QR Code symbol for data under the version
// selection rule of the external interface: if target<=limit, the
// smallest version (then lowest ECC) in [target,limit] that fits; if
// target>limit, the highest ECC fitting within [limit,target], at the
// smallest version achieving it.
func EncodeBinary(data []byte, targetVersion, limitVersion Version) (*QRCode, error) {
	if targetVersion < 1 || targetVersion > 40 || limitVersion < 1 || limitVersion > 40 {
		return nil, fmt.Errorf("%w: target=%d limit=%d", ErrInvalidVersion, targetVersion, limitVersion)
	}
	if len(data) > 4092 {
		return nil, fmt.Errorf("%w: %d bytes exceeds the largest representable segment", ErrDataTooLong, len(data))
	}

	v, e, ok := selectParameters(len(data), targetVersion, limitVersion)
	if !ok {
		return nil, fmt.Errorf("%w: no version in [%d,%d] fits %d bytes", ErrDataTooLong, minVersion(targetVersion, limitVersion), maxVersion(targetVersion, limitVersion), len(data))
	}

	capacity := maxDataBytes(v, e)
	padded := encodeSegment(data, kindOf(v), capacity)
	codewords := buildCodewords(padded, v, e)

	mx := newMatrix(v.side())
	placeFunctionPatterns(mx, v)
	if err := placeDataModules(mx, codewords, v); err != nil {
		return nil, err
	}

	mask := selectMasking(mx, e)
	placeFormatInformation(mx, e, mask)
	applyMask(mx, mask)

	for _, c := range mx.cells {
		if c == empty || c == reserved {
			return nil, ErrInternalInvariant
		}
	}

	return &QRCode{Version: v, Level: e, Mask: mask, Size: mx.side, matrix: mx}, nil
}

// GenerateQR mirrors the lower-level C-shaped entry point: it writes the
// packed bitmap into out and returns the chosen version, or 0 on any
// failure, including an out shorter than the chosen symbol's
// side*ceil(side/8) bytes. Sizing out for the largest version in the
// range always suffices.
func GenerateQR(data []byte, targetVersion, limitVersion Version, out []byte) Version {
	q, err := EncodeBinary(data, targetVersion, limitVersion)
	if err != nil {
		return 0
	}

	bitmap := q.Bitmap()
	if len(out) < len(bitmap) {
		return 0
	}
	copy(out, bitmap)
	return q.Version
}

func minVersion(a, b Version) Version {
	if a < b {
		return a
	}
	return b
}

func maxVersion(a, b Version) Version {
	if a > b {
		return a
	}
	return b
}
