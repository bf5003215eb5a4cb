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

import (
	"errors"
	"strconv"
)

// Typed errors reported by the encoder. All failures caused by caller input
// surface as one of these values (possibly wrapped with context); none of
// them panics.
var (
	// ErrDataTooLong means the data does not fit the chosen version, or any
	// version of the searched range, at the requested error correction level.
	ErrDataTooLong = errors.New("data too long")

	// ErrInvalidVersion means the version / error correction level
	// combination is not defined by the standard.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrUnsupportedCharacterSet means the requested mode is not available
	// for the chosen version (e.g. alphanumeric data in Micro QR version 1).
	ErrUnsupportedCharacterSet = errors.New("unsupported character set")

	// ErrInvalidEciDesignator means the ECI value is outside 0..999999, or
	// an ECI designator was pushed into a Micro QR or rMQR symbol.
	ErrInvalidEciDesignator = errors.New("invalid ECI designator")

	// ErrInvalidCharacter means a byte outside the alphabet of an explicitly
	// selected mode was found.
	ErrInvalidCharacter = errors.New("invalid character")
)

// Color is the state of a single module.
type Color uint8

// Color values.
const (
	Light Color = iota // The module is light colored.
	Dark               // The module is dark colored.
)

// Not flips the color.
func (c Color) Not() Color {
	if c == Light {
		return Dark
	}

	return Light
}

// Select picks one of two values according to the color.
func Select[T any](c Color, dark, light T) T {
	if c == Dark {
		return dark
	}

	return light
}

// EcLevel is the error correction level. It allows the original information
// to be recovered even if parts of the symbol are damaged.
type EcLevel uint8

// EcLevel values, ordered from weakest to strongest.
const (
	LevelL EcLevel = iota // Recovers about 7% of erroneous codewords.
	LevelM                // Recovers about 15% of erroneous codewords (default).
	LevelQ                // Recovers about 25% of erroneous codewords.
	LevelH                // Recovers about 30% of erroneous codewords.
)

func (e EcLevel) String() string {
	switch e {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		panic("unknown error correction level")
	}
}

func (e EcLevel) formatBits() int {
	switch e {
	case LevelL:
		return 1
	case LevelM:
		return 0
	case LevelQ:
		return 3
	case LevelH:
		return 2
	default:
		panic("unknown error correction level")
	}
}

// Mode specifies the character set of a segment of encoded data.
type Mode uint8

// Mode values.
const (
	ModeNumeric      Mode = iota // Digits 0 to 9.
	ModeAlphanumeric             // Digits, uppercase letters and $%*+-./: and space.
	ModeByte                     // Arbitrary binary data.
	ModeKanji                    // Shift-JIS-encoded double-byte text.
)

// LengthBitsCount is the width of the character count field for this mode at
// the given version.
func (m Mode) LengthBitsCount(v Version) int {
	switch v.kind {
	case versionMicro:
		a := int(v.num)
		switch m {
		case ModeNumeric:
			return 2 + a
		case ModeAlphanumeric, ModeByte:
			return 1 + a
		default:
			return a
		}
	case versionNormal:
		switch {
		case v.num <= 9:
			return [4]int{10, 9, 8, 8}[m]
		case v.num <= 26:
			return [4]int{12, 11, 16, 10}[m]
		default:
			return [4]int{14, 13, 16, 12}[m]
		}
	default:
		index, err := v.rectMicroIndex()
		if err != nil {
			index = 31
		}
		return rmqrLengthBitsCount[index][m]
	}
}

// DataBitsCount is the number of payload bits needed to encode data of the
// given raw length. In Kanji mode the raw length counts Kanji characters,
// i.e. half the number of bytes.
func (m Mode) DataBitsCount(rawLen int) int {
	switch m {
	case ModeNumeric:
		return (rawLen*10 + 2) / 3
	case ModeAlphanumeric:
		return (rawLen*11 + 1) / 2
	case ModeByte:
		return rawLen * 8
	default:
		return rawLen * 13
	}
}

// Max finds the lowest common mode that the characters of both modes can be
// encoded in. Numeric and Kanji have no common specialized mode, so the
// result falls back to Byte.
func (m Mode) Max(other Mode) Mode {
	switch {
	case m == other:
		return m
	case m == ModeByte || other == ModeByte:
		return ModeByte
	case m == ModeNumeric && other == ModeAlphanumeric,
		m == ModeAlphanumeric && other == ModeNumeric:
		return ModeAlphanumeric
	default: // Kanji vs. Numeric or Alphanumeric, in either order.
		return ModeByte
	}
}

type versionKind uint8

const (
	versionNormal versionKind = iota
	versionMicro
	versionRectMicro
)

// Version identifies one of the three symbol geometries together with its
// size. Larger versions carry more information.
type Version struct {
	kind versionKind
	num  int16 // Normal 1..40, Micro 1..4.
	h, w int16 // RectMicro only.
}

// Normal is a normal QR code version between 1 (21×21 modules) and
// 40 (177×177 modules).
func Normal(v int) Version {
	return Version{kind: versionNormal, num: int16(v)}
}

// Micro is a Micro QR code version between 1 (11×11 modules) and
// 4 (17×17 modules).
func Micro(v int) Version {
	return Version{kind: versionMicro, num: int16(v)}
}

// RectMicro is a rMQR code version. The height must be 7, 9, 11, 13, 15 or
// 17 and the width 27, 43, 59, 77, 99 or 139, where width 27 is only defined
// for heights 11 and 13.
func RectMicro(height, width int) Version {
	return Version{kind: versionRectMicro, h: int16(height), w: int16(width)}
}

// Width is the number of horizontally-arranged modules of the symbol.
func (v Version) Width() int {
	switch v.kind {
	case versionNormal:
		return int(v.num)*4 + 17
	case versionMicro:
		return int(v.num)*2 + 9
	default:
		return int(v.w)
	}
}

// Height is the number of vertically-arranged modules of the symbol. Except
// for rMQR codes the height equals the width.
func (v Version) Height() int {
	if v.kind == versionRectMicro {
		return int(v.h)
	}

	return v.Width()
}

// ModeBitsCount is the width of the mode indicator field.
func (v Version) ModeBitsCount() int {
	switch v.kind {
	case versionNormal:
		return 4
	case versionMicro:
		return int(v.num) - 1
	default:
		return 3
	}
}

// IsNormal reports whether the version is a valid normal QR code version.
func (v Version) IsNormal() bool {
	return v.kind == versionNormal && v.num >= 1 && v.num <= 40
}

// IsMicro reports whether the version is a valid Micro QR code version.
func (v Version) IsMicro() bool {
	return v.kind == versionMicro && v.num >= 1 && v.num <= 4
}

// IsRectMicro reports whether the version is a valid rMQR code version.
func (v Version) IsRectMicro() bool {
	_, err := v.rectMicroIndex()
	return err == nil
}

func (v Version) String() string {
	switch v.kind {
	case versionNormal:
		return "QR" + strconv.Itoa(int(v.num))
	case versionMicro:
		return "M" + strconv.Itoa(int(v.num))
	default:
		return "R" + strconv.Itoa(int(v.h)) + "x" + strconv.Itoa(int(v.w))
	}
}

// rectMicroIndex maps a rMQR (height, width) pair onto its canonical index
// 0..31 in the standard's version ordering.
func (v Version) rectMicroIndex() (int, error) {
	if v.kind != versionRectMicro {
		return 0, ErrInvalidVersion
	}
	for i, size := range rmqrSizes {
		if int(v.h) == size[0] && int(v.w) == size[1] {
			return i, nil
		}
	}

	return 0, ErrInvalidVersion
}

// rmqrSizes lists every admissible rMQR (height, width) pair, in the
// canonical version order used by every rMQR table below.
var rmqrSizes = [32][2]int{
	{7, 43}, {7, 59}, {7, 77}, {7, 99}, {7, 139},
	{9, 43}, {9, 59}, {9, 77}, {9, 99}, {9, 139},
	{11, 27}, {11, 43}, {11, 59}, {11, 77}, {11, 99}, {11, 139},
	{13, 27}, {13, 43}, {13, 59}, {13, 77}, {13, 99}, {13, 139},
	{15, 43}, {15, 59}, {15, 77}, {15, 99}, {15, 139},
	{17, 43}, {17, 59}, {17, 77}, {17, 99}, {17, 139},
}

// rmqrLengthBitsCount is the width of the character count field for each
// rMQR version, in mode order [Numeric, Alphanumeric, Byte, Kanji].
var rmqrLengthBitsCount = [32][4]int{
	{4, 3, 3, 2},  // R7x43
	{5, 5, 4, 3},  // R7x59
	{6, 5, 5, 4},  // R7x77
	{7, 6, 5, 5},  // R7x99
	{7, 6, 6, 5},  // R7x139
	{5, 5, 4, 3},  // R9x43
	{6, 5, 5, 4},  // R9x59
	{7, 6, 5, 5},  // R9x77
	{7, 6, 6, 5},  // R9x99
	{8, 7, 6, 6},  // R9x139
	{4, 4, 3, 2},  // R11x27
	{6, 5, 5, 4},  // R11x43
	{7, 6, 5, 5},  // R11x59
	{7, 6, 6, 5},  // R11x77
	{8, 7, 6, 6},  // R11x99
	{8, 7, 7, 6},  // R11x139
	{5, 5, 4, 3},  // R13x27
	{6, 6, 5, 5},  // R13x43
	{7, 6, 6, 5},  // R13x59
	{7, 7, 6, 6},  // R13x77
	{8, 7, 7, 6},  // R13x99
	{8, 8, 7, 7},  // R13x139
	{7, 6, 6, 5},  // R15x43
	{7, 7, 6, 5},  // R15x59
	{8, 7, 7, 6},  // R15x77
	{8, 7, 7, 6},  // R15x99
	{9, 8, 7, 7},  // R15x139
	{7, 6, 6, 5},  // R17x43
	{8, 7, 6, 6},  // R17x59
	{8, 7, 7, 6},  // R17x77
	{8, 8, 7, 6},  // R17x99
	{9, 8, 8, 7},  // R17x139
}
