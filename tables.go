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
 *
 * The standards tables below follow ISO/IEC 18004 (QR code, Micro QR code)
 * and ISO/IEC 23941 (rMQR code). See
 * https://www.thonky.com/qr-code-tutorial/error-correction-table for an
 * accessible rendering of the 18004 block schedules.
 */

package qrgen

var (
	// eccCodewordsPerBlock is the number of error correction codewords per
	// block for normal QR codes, indexed by [level][version]. Index 0 is
	// padding and set to an illegal value.
	eccCodewordsPerBlock = [4][41]int{
		// Version:
		//   0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numErrorCorrectionBlocks is the number of Reed-Solomon blocks for
	// normal QR codes, indexed by [level][version]. Index 0 is padding.
	numErrorCorrectionBlocks = [4][41]int{
		// Version:
		//   0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	// microTotalCodewords is the total codeword count of Micro QR versions
	// 1 to 4.
	microTotalCodewords = [4]int{5, 10, 17, 24}

	// microEccCodewords is the number of error correction codewords for
	// Micro QR codes, indexed by [version-1][level]. A zero entry means the
	// combination is undefined.
	microEccCodewords = [4][4]int{
		{2, 0, 0, 0},
		{5, 6, 0, 0},
		{6, 8, 0, 0},
		{8, 10, 14, 0},
	}

	// microDataBits is the data capacity in bits for Micro QR codes, indexed
	// by [version-1][level]. Versions M1 and M3 end in a 4-bit codeword, so
	// their capacity is not a multiple of 8. A zero entry means the
	// combination is undefined.
	microDataBits = [4][4]int{
		{20, 0, 0, 0},
		{40, 32, 0, 0},
		{84, 68, 0, 0},
		{128, 112, 80, 0},
	}

	// rmqrTotalCodewords is the total codeword count of each rMQR version,
	// in canonical version order.
	rmqrTotalCodewords = [32]int{
		13, 21, 32, 44, 68,
		21, 33, 49, 66, 99,
		15, 31, 47, 67, 89, 132,
		21, 41, 60, 85, 113, 166,
		51, 74, 103, 131, 195,
		61, 85, 115, 145, 215,
	}

	// rmqrBlocks is the error correction schedule of each rMQR version:
	// {ecPerBlock, numBlocks} for level M then level H. Only levels M and H
	// are defined for rMQR codes.
	rmqrBlocks = [32][2][2]int{
		{{7, 1}, {10, 1}},  // R7x43
		{{9, 1}, {14, 1}},  // R7x59
		{{12, 1}, {22, 1}}, // R7x77
		{{16, 1}, {30, 1}}, // R7x99
		{{24, 1}, {22, 2}}, // R7x139
		{{9, 1}, {14, 1}},  // R9x43
		{{12, 1}, {22, 1}}, // R9x59
		{{18, 1}, {16, 2}}, // R9x77
		{{24, 1}, {22, 2}}, // R9x99
		{{18, 2}, {22, 3}}, // R9x139
		{{8, 1}, {10, 1}},  // R11x27
		{{12, 1}, {20, 1}}, // R11x43
		{{16, 1}, {16, 2}}, // R11x59
		{{24, 1}, {22, 2}}, // R11x77
		{{16, 2}, {20, 3}}, // R11x99
		{{24, 2}, {22, 4}}, // R11x139
		{{9, 1}, {14, 1}},  // R13x27
		{{14, 1}, {14, 2}}, // R13x43
		{{22, 1}, {20, 2}}, // R13x59
		{{16, 2}, {28, 2}}, // R13x77
		{{20, 2}, {26, 3}}, // R13x99
		{{20, 3}, {28, 4}}, // R13x139
		{{18, 1}, {18, 2}}, // R15x43
		{{26, 1}, {24, 2}}, // R15x59
		{{18, 2}, {24, 3}}, // R15x77
		{{24, 2}, {28, 3}}, // R15x99
		{{24, 3}, {24, 5}}, // R15x139
		{{22, 1}, {20, 2}}, // R17x43
		{{16, 2}, {28, 2}}, // R17x59
		{{22, 2}, {26, 3}}, // R17x77
		{{26, 2}, {24, 4}}, // R17x99
		{{24, 3}, {26, 5}}, // R17x139
	}

	// rmqrAlignmentColumns is the x coordinate of each alignment pattern
	// center (and its vertical timing column), keyed by symbol width.
	rmqrAlignmentColumns = map[int][]int{
		27:  {},
		43:  {21},
		59:  {19, 39},
		77:  {25, 51},
		99:  {23, 49, 75},
		139: {27, 55, 83, 111},
	}

	// alignmentPatternPositions holds the alignment pattern center
	// coordinates of each normal QR version, computed once at start-up.
	alignmentPatternPositions [41][]int
)

func init() {
	// Initialize the alignment pattern position table for versions [1, 40].
	// Version 1 has no alignment patterns; the others space the centers
	// evenly between column 6 and the column 7 modules from the right edge,
	// with version 32 needing a hand-picked step to stay on even spacing.
	for v := 2; v <= 40; v++ {
		numAlign := v/7 + 2
		var step int
		if v == 32 {
			step = 26
		} else {
			step = (v*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
		}
		positions := make([]int, numAlign)
		positions[0] = 6
		for i, pos := numAlign-1, v*4+17-7; i >= 1; i-- {
			positions[i] = pos
			pos -= step
		}
		alignmentPatternPositions[v] = positions
	}
}

// numRawDataModules is the number of data modules available in a normal QR
// code of the given version after all functional patterns are excluded. This
// includes remainder bits, so it may not be a multiple of 8.
func numRawDataModules(version int) int {
	result := (16*version+128)*version + 64
	if version >= 2 {
		numAlign := version/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if version >= 7 {
			result -= 36
		}
	}

	return result
}

// dataBitsCapacity is the number of payload bits (segment headers included,
// error correction excluded) a symbol can carry. It reports
// ErrInvalidVersion for combinations the standards do not define.
func dataBitsCapacity(v Version, level EcLevel) (int, error) {
	switch v.kind {
	case versionNormal:
		if !v.IsNormal() {
			return 0, ErrInvalidVersion
		}
		total := numRawDataModules(int(v.num)) / 8
		data := total - eccCodewordsPerBlock[level][v.num]*numErrorCorrectionBlocks[level][v.num]
		return data * 8, nil
	case versionMicro:
		if !v.IsMicro() {
			return 0, ErrInvalidVersion
		}
		bits := microDataBits[v.num-1][level]
		if bits == 0 {
			return 0, ErrInvalidVersion
		}
		return bits, nil
	default:
		index, err := v.rectMicroIndex()
		if err != nil {
			return 0, err
		}
		var schedule [2]int
		switch level {
		case LevelM:
			schedule = rmqrBlocks[index][0]
		case LevelH:
			schedule = rmqrBlocks[index][1]
		default:
			return 0, ErrInvalidVersion
		}
		data := rmqrTotalCodewords[index] - schedule[0]*schedule[1]
		return data * 8, nil
	}
}
