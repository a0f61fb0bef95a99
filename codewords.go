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

// splitBlocks partitions the padded data stream into per-block slices:
// short blocks (one byte fewer) first, then long blocks.
func splitBlocks(data []byte, blocks int) [][]byte {
	dataBytesPerBlock := ceilDiv(len(data), blocks)
	shortCount := 0
	if rem := len(data) % blocks; rem != 0 {
		shortCount = blocks - rem
	}

	result := make([][]byte, blocks)
	offset := 0
	for b := 0; b < blocks; b++ {
		n := dataBytesPerBlock
		if b < shortCount {
			n--
		}
		result[b] = data[offset : offset+n]
		offset += n
	}
	return result
}

// buildCodewords computes per-block ECC and interleaves data then ECC
// bytes into the final codeword stream fed to the module matrix.
func buildCodewords(padded []byte, v Version, e ECL) []byte {
	blocks, eccBytes := eccParameters(v, e)
	dataBlocks := splitBlocks(padded, blocks)
	gen := generatorDivisor(eccBytes)

	eccBlocks := make([][]byte, blocks)
	longestData := 0
	for b, block := range dataBlocks {
		eccBlocks[b] = reedSolomonEncode(block, gen)
		if len(block) > longestData {
			longestData = len(block)
		}
	}

	out := make([]byte, 0, len(padded)+blocks*eccBytes)
	for c := 0; c < longestData; c++ {
		for b := 0; b < blocks; b++ {
			if c < len(dataBlocks[b]) {
				out = append(out, dataBlocks[b][c])
			}
		}
	}
	for c := 0; c < eccBytes; c++ {
		for b := 0; b < blocks; b++ {
			out = append(out, eccBlocks[b][c])
		}
	}
	return out
}
