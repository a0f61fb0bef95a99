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

// infeasibleLength is returned by segmentByteLength for a length that
// cannot be encoded in a given length-field class. It must never
// satisfy a "fits within capacity" comparison, unlike the C original's
// use of 0 for the same failure (0 trivially fits any capacity, which
// would let an over-long byte-mode-small segment look like it fits).
const infeasibleLength = 1 << 30

// segmentByteLength returns the packed byte length of a byte-mode
// segment of n data bytes under length-field class k, or
// infeasibleLength if the segment cannot be represented in that class.
func segmentByteLength(k kind, n int) int {
	if n >= 4093 {
		return infeasibleLength
	}
	if k == kindSmall && n > 255 {
		return infeasibleLength
	}
	bits := 4 + int(k.lengthBits()) + 8*n
	return ceilDiv(bits, 8)
}

var allKinds = [3]kind{kindSmall, kindMedium, kindLarge}

// minimumVersionForParameters finds the smallest version within
// [bandMin,bandMax] (all of kind k) whose capacity at the given ECC
// level is at least the segment's packed length.
func minimumVersionForParameters(k kind, n int, e ECL, bandMin, bandMax Version) (Version, bool) {
	length := segmentByteLength(k, n)
	if length == infeasibleLength {
		return 0, false
	}
	for v := bandMin; v <= bandMax; v++ {
		if length <= maxDataBytes(v, e) {
			return v, true
		}
	}
	return 0, false
}

// bandRange intersects kind k's version range with [minV,maxV].
func bandRange(k kind, minV, maxV Version) (Version, Version, bool) {
	bandMin := Version(max(int(minV), int(firstVersionOf(k))))
	bandMax := Version(min(int(maxV), int(lastVersionOf(k))))
	return bandMin, bandMax, bandMin <= bandMax
}

// selectParameters implements the version/ECC selector of the
// generator's external interface: if target<=limit, pick the smallest
// version (then lowest ECC) that fits within [target,limit]; if
// target>limit, pick the highest ECC feasible within [limit,target],
// at the smallest version achieving it.
func selectParameters(n int, target, limit Version) (Version, ECL, bool) {
	minV, maxV := target, limit
	maximizeECC := false
	if target > limit {
		minV, maxV = limit, target
		maximizeECC = true
	}

	if !maximizeECC {
		for _, k := range allKinds {
			bandMin, bandMax, ok := bandRange(k, minV, maxV)
			if !ok {
				continue
			}
			for e := Low; e <= High; e++ {
				if v, ok := minimumVersionForParameters(k, n, e, bandMin, bandMax); ok {
					return v, e, true
				}
			}
		}
		return 0, 0, false
	}

	var bestVersion Version
	var bestECC ECL
	found := false
	for _, k := range allKinds {
		bandMin, bandMax, ok := bandRange(k, minV, maxV)
		if !ok {
			continue
		}
		for e := High; e >= Low; e-- {
			if v, ok := minimumVersionForParameters(k, n, e, bandMin, bandMax); ok {
				if !found || e > bestECC {
					bestVersion, bestECC, found = v, e, true
				}
				break
			}
		}
	}
	return bestVersion, bestECC, found
}
