/*
 * Copyright © 2025, The qrgen Authors.
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

package qrgen

// Galois field GF(256) arithmetic for the Reed-Solomon error correction
// layer. The field is generated by the primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with primitive element 2.

var (
	gfExp [256]byte
	gfLog [256]byte
)

func init() {
	v := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(v)
		gfLog[v] = byte(i)
		v <<= 1
		if v >= 256 {
			v ^= 0x11D
		}
	}
	gfExp[255] = gfExp[0]
}

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	return gfExp[(int(gfLog[a])+int(gfLog[b]))%255]
}

// rsGeneratorPoly is the Reed-Solomon generator polynomial
// g(x) = (x - α^0)(x - α^1)...(x - α^(degree-1)). Coefficients are stored
// from highest to lowest power, excluding the leading term which is always 1.
func rsGeneratorPoly(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("generator degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start off with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the current product by (x - α^i).
		for j := 0; j < degree; j++ {
			result[j] = gfMul(result[j], root)
			if j+1 < degree {
				result[j] ^= result[j+1]
			}
		}
		root = gfMul(root, 0x02)
	}

	return result
}

// rsRemainder is the remainder of data(x) · x^len(divisor) divided by the
// generator polynomial, i.e. the error correction codewords for one block.
func rsRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data { // Polynomial division.
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := range result {
			result[i] ^= gfMul(divisor[i], factor)
		}
	}

	return result
}

// blockSizes is the data codeword count of every Reed-Solomon block of the
// symbol, together with the per-block error correction codeword count.
// Shorter blocks always come first.
func blockSizes(v Version, level EcLevel) ([]int, int, error) {
	switch v.kind {
	case versionNormal:
		if !v.IsNormal() {
			return nil, 0, ErrInvalidVersion
		}
		numBlocks := numErrorCorrectionBlocks[level][v.num]
		ecPerBlock := eccCodewordsPerBlock[level][v.num]
		raw := numRawDataModules(int(v.num)) / 8
		shortLen := raw / numBlocks
		numShort := numBlocks - raw%numBlocks
		sizes := make([]int, numBlocks)
		for i := range sizes {
			sizes[i] = shortLen - ecPerBlock + bToI(i >= numShort)
		}
		return sizes, ecPerBlock, nil
	case versionMicro:
		if !v.IsMicro() {
			return nil, 0, ErrInvalidVersion
		}
		ecPerBlock := microEccCodewords[v.num-1][level]
		if ecPerBlock == 0 {
			return nil, 0, ErrInvalidVersion
		}
		return []int{microTotalCodewords[v.num-1] - ecPerBlock}, ecPerBlock, nil
	default:
		index, err := v.rectMicroIndex()
		if err != nil {
			return nil, 0, err
		}
		var schedule [2]int
		switch level {
		case LevelM:
			schedule = rmqrBlocks[index][0]
		case LevelH:
			schedule = rmqrBlocks[index][1]
		default:
			return nil, 0, ErrInvalidVersion
		}
		ecPerBlock, numBlocks := schedule[0], schedule[1]
		dataTotal := rmqrTotalCodewords[index] - ecPerBlock*numBlocks
		base, extra := dataTotal/numBlocks, dataTotal%numBlocks
		sizes := make([]int, numBlocks)
		for i := range sizes {
			sizes[i] = base + bToI(i >= numBlocks-extra)
		}
		return sizes, ecPerBlock, nil
	}
}

// constructCodewords splits the data codewords into Reed-Solomon blocks per
// the version's schedule, computes the parity of each block, and interleaves
// both sequences block by block. It returns the interleaved data codewords
// and the interleaved error correction codewords.
func constructCodewords(data []byte, v Version, level EcLevel) ([]byte, []byte, error) {
	sizes, ecPerBlock, err := blockSizes(v, level)
	if err != nil {
		return nil, nil, err
	}
	total := 0
	maxSize := 0
	for _, s := range sizes {
		total += s
		maxSize = max(maxSize, s)
	}
	if total != len(data) {
		panic("data length does not match the block schedule")
	}

	blocks := make([][]byte, len(sizes))
	k := 0
	for i, s := range sizes {
		blocks[i] = data[k : k+s]
		k += s
	}
	divisor := rsGeneratorPoly(ecPerBlock)
	parity := make([][]byte, len(blocks))
	for i, block := range blocks {
		parity[i] = rsRemainder(block, divisor)
	}

	// Interleave (not concatenate) the codewords of every block into a
	// single sequence, skipping exhausted short blocks.
	outData := make([]byte, 0, total)
	for i := 0; i < maxSize; i++ {
		for _, block := range blocks {
			if i < len(block) {
				outData = append(outData, block[i])
			}
		}
	}
	outEc := make([]byte, 0, ecPerBlock*len(blocks))
	for i := 0; i < ecPerBlock; i++ {
		for _, p := range parity {
			outEc = append(outEc, p[i])
		}
	}

	return outData, outEc, nil
}

// maxAllowedErrors is the number of erroneous data modules the symbol can
// absorb while still decoding. A few small versions reserve part of their
// error correction budget for misdecode protection; the p term below
// accounts for those per ISO/IEC 18004 table 2.
func maxAllowedErrors(v Version, level EcLevel) (int, error) {
	sizes, ecPerBlock, err := blockSizes(v, level)
	if err != nil {
		return 0, err
	}

	p := 0
	switch {
	case v == Normal(1) && level == LevelL, v == Micro(2) && level == LevelL:
		p = 3
	case v == Normal(1) && level == LevelM, v == Normal(2) && level == LevelL,
		v == Micro(1), v == Micro(2) && level == LevelM, v == Micro(3) && level == LevelL:
		p = 2
	case v == Normal(1) && (level == LevelQ || level == LevelH), v == Normal(3) && level == LevelL:
		p = 1
	}

	return (ecPerBlock - p) / 2 * len(sizes), nil
}
