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

import "errors"

var (
	// ErrInvalidVersion is returned when target or limit falls outside [1,40].
	ErrInvalidVersion = errors.New("qrsymbol: version out of range [1,40]")

	// ErrDataTooLong is returned when no (version, ECC) pair in the
	// requested range has capacity for the payload.
	ErrDataTooLong = errors.New("qrsymbol: data too long for requested version range")

	// ErrInternalInvariant is returned when the module builder finds an
	// EMPTY cell after data placement, or another table-driven
	// computation produces a result its own invariants rule out. This
	// indicates a corrupted table, not a bad caller input.
	ErrInternalInvariant = errors.New("qrsymbol: internal invariant violation")
)
