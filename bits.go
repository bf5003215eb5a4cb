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

import "fmt"

// Bits assembles the data bit stream of one symbol: mode indicators,
// character counts, payload bits, the terminator and the pad codewords.
// Bits are packed into bytes high bit first.
//
// Most callers never touch this type; EncodeWithBits accepts a manually
// assembled buffer for the special cases (ECI character sets, the FNC1
// modes, or bypassing the segment optimizer).
type Bits struct {
	version Version
	data    []byte
	length  int // Length in bits.
}

// NewBits creates an empty bit buffer for the given version.
func NewBits(version Version) *Bits {
	return &Bits{version: version}
}

// Version is the version the buffer is assembled for.
func (b *Bits) Version() Version {
	return b.version
}

// Len is the current length of the buffer in bits.
func (b *Bits) Len() int {
	return b.length
}

// Bytes is the packed buffer content. When the bit length is not a multiple
// of 8 the final byte carries the trailing bits in its high end.
func (b *Bits) Bytes() []byte {
	return b.data
}

// pushNumber appends the n low-order bits of value, most significant first.
func (b *Bits) pushNumber(n int, value uint32) {
	if n > 31 || value>>uint(n) != 0 {
		panic("bit value out of range")
	}

	for i := n - 1; i >= 0; i-- {
		if b.length%8 == 0 {
			b.data = append(b.data, 0)
		}
		bit := byte(value>>uint(i)) & 1
		b.data[b.length/8] |= bit << uint(7-b.length%8)
		b.length++
	}
}

// extendedMode covers the data modes plus the control indicators that only
// exist on the wire.
type extendedMode uint8

const (
	extData extendedMode = iota
	extEci
	extFnc1First
	extFnc1Second
)

// pushModeIndicator writes the mode indicator using the version's width and
// value assignment.
func (b *Bits) pushModeIndicator(ext extendedMode, m Mode) error {
	switch b.version.kind {
	case versionNormal:
		var value uint32
		switch ext {
		case extEci:
			value = 0b0111
		case extFnc1First:
			value = 0b0101
		case extFnc1Second:
			value = 0b1001
		default:
			value = [4]uint32{0b0001, 0b0010, 0b0100, 0b1000}[m]
		}
		b.pushNumber(4, value)
		return nil
	case versionMicro:
		if ext == extEci {
			return fmt.Errorf("%w: ECI is not defined for Micro QR codes", ErrInvalidEciDesignator)
		}
		if ext != extData {
			return fmt.Errorf("%w: FNC1 is not defined for Micro QR codes", ErrUnsupportedCharacterSet)
		}
		width := b.version.ModeBitsCount()
		if int(m) >= 1<<uint(width) {
			return fmt.Errorf("%w: mode not available in Micro QR version %d", ErrUnsupportedCharacterSet, b.version.num)
		}
		b.pushNumber(width, uint32(m))
		return nil
	default:
		if ext == extEci {
			return fmt.Errorf("%w: ECI is not defined for rMQR codes", ErrInvalidEciDesignator)
		}
		if ext != extData {
			return fmt.Errorf("%w: FNC1 is not defined for rMQR codes", ErrUnsupportedCharacterSet)
		}
		b.pushNumber(3, uint32(m)+1)
		return nil
	}
}

// pushHeader writes the mode indicator and the character count field.
func (b *Bits) pushHeader(m Mode, rawLen int) error {
	if err := b.pushModeIndicator(extData, m); err != nil {
		return err
	}
	width := m.LengthBitsCount(b.version)
	if rawLen >= 1<<uint(width) {
		return fmt.Errorf("%w: %d characters do not fit a %d-bit count field", ErrDataTooLong, rawLen, width)
	}
	b.pushNumber(width, uint32(rawLen))

	return nil
}

// PushEciDesignator writes an Extended Channel Interpretation designator,
// declaring the character set of the following segments. ECI is only
// defined for normal QR codes and designators 0 to 999999.
func (b *Bits) PushEciDesignator(designator uint32) error {
	if err := b.pushModeIndicator(extEci, 0); err != nil {
		return err
	}
	switch {
	case designator < 1<<7:
		b.pushNumber(8, designator)
	case designator < 1<<14:
		b.pushNumber(2, 0b10)
		b.pushNumber(14, designator)
	case designator < 1_000_000:
		b.pushNumber(3, 0b110)
		b.pushNumber(21, designator)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidEciDesignator, designator)
	}

	return nil
}

// PushFnc1FirstPosition writes the FNC1 indicator for GS1 data. Only the
// indicator is emitted; interpreting the payload is up to the caller.
func (b *Bits) PushFnc1FirstPosition() error {
	return b.pushModeIndicator(extFnc1First, 0)
}

// PushFnc1SecondPosition writes the FNC1 indicator for data formatted per an
// industry application, followed by the application indicator byte.
func (b *Bits) PushFnc1SecondPosition(applicationIndicator uint8) error {
	if err := b.pushModeIndicator(extFnc1Second, 0); err != nil {
		return err
	}
	b.pushNumber(8, uint32(applicationIndicator))

	return nil
}

// PushNumericData appends a numeric-mode segment. Digits are grouped in
// triples of 10 bits, with a 7-bit or 4-bit final group.
func (b *Bits) PushNumericData(data []byte) error {
	if err := b.pushHeader(ModeNumeric, len(data)); err != nil {
		return err
	}
	for i := 0; i < len(data); i += 3 {
		chunk := data[i:min(i+3, len(data))]
		value := uint32(0)
		for _, c := range chunk {
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: %q is not a digit", ErrInvalidCharacter, c)
			}
			value = value*10 + uint32(c-'0')
		}
		b.pushNumber([4]int{0, 4, 7, 10}[len(chunk)], value)
	}

	return nil
}

// PushAlphanumericData appends an alphanumeric-mode segment over the 45
// character alphabet 0-9 A-Z space $%*+-./:. Character pairs take 11 bits,
// a final single character 6 bits.
func (b *Bits) PushAlphanumericData(data []byte) error {
	if err := b.pushHeader(ModeAlphanumeric, len(data)); err != nil {
		return err
	}
	index := func(c byte) (uint32, error) {
		i := alphanumericIndex[c]
		if i < 0 {
			return 0, fmt.Errorf("%w: %q is not in the alphanumeric set", ErrInvalidCharacter, c)
		}
		return uint32(i), nil
	}
	i := 0
	for ; i+2 <= len(data); i += 2 {
		c1, err := index(data[i])
		if err != nil {
			return err
		}
		c2, err := index(data[i+1])
		if err != nil {
			return err
		}
		b.pushNumber(11, c1*45+c2)
	}
	if i < len(data) {
		c, err := index(data[i])
		if err != nil {
			return err
		}
		b.pushNumber(6, c)
	}

	return nil
}

// PushByteData appends a byte-mode segment of raw 8-bit data.
func (b *Bits) PushByteData(data []byte) error {
	if err := b.pushHeader(ModeByte, len(data)); err != nil {
		return err
	}
	for _, c := range data {
		b.pushNumber(8, uint32(c))
	}

	return nil
}

// PushKanjiData appends a Kanji-mode segment. The data must hold Shift-JIS
// double byte characters in the ranges 0x8140..0x9FFC and 0xE040..0xEBBF;
// each maps onto a 13-bit value.
func (b *Bits) PushKanjiData(data []byte) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("%w: odd number of Kanji bytes", ErrInvalidCharacter)
	}
	if err := b.pushHeader(ModeKanji, len(data)/2); err != nil {
		return err
	}
	for i := 0; i < len(data); i += 2 {
		word := uint32(data[i])<<8 | uint32(data[i+1])
		switch {
		case word >= 0x8140 && word <= 0x9FFC:
			word -= 0x8140
		case word >= 0xE040 && word <= 0xEBBF:
			word -= 0xC140
		default:
			return fmt.Errorf("%w: 0x%04X is not a Shift-JIS Kanji", ErrInvalidCharacter, word)
		}
		b.pushNumber(13, (word>>8)*0xC0+(word&0xFF))
	}

	return nil
}

// pushSegments emits every segment of the partition.
func (b *Bits) pushSegments(data []byte, segments []segment) error {
	for _, s := range segments {
		chunk := data[s.start:s.end]
		var err error
		switch s.mode {
		case ModeNumeric:
			err = b.PushNumericData(chunk)
		case ModeAlphanumeric:
			err = b.PushAlphanumericData(chunk)
		case ModeByte:
			err = b.PushByteData(chunk)
		default:
			err = b.PushKanjiData(chunk)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// PushOptimalData runs the segment optimizer over the data and emits the
// minimum-bit-length segment sequence for the buffer's version.
func (b *Bits) PushOptimalData(data []byte) error {
	segments, err := optimalSegments(data, b.version)
	if err != nil {
		return err
	}

	return b.pushSegments(data, segments)
}

// terminatorLength is the width of the all-zero terminator, before capping
// by the remaining capacity.
func terminatorLength(v Version) int {
	switch v.kind {
	case versionNormal:
		return 4
	case versionMicro:
		return int(v.num)*2 + 1
	default:
		return 3
	}
}

// PushTerminator closes the stream for the given error correction level: it
// writes the (possibly capped) terminator, zero-pads to the next codeword
// boundary, and fills the remaining capacity with alternating 0xEC and 0x11
// pad codewords. On Micro versions M1 and M3 the final data codeword is
// only 4 bits wide, and a final pad is truncated to the low nibble of 0x11.
func (b *Bits) PushTerminator(level EcLevel) error {
	capacity, err := dataBitsCapacity(b.version, level)
	if err != nil {
		return err
	}
	if b.length > capacity {
		return fmt.Errorf("%w: %d data bits exceed the %d bit capacity of %v-%v",
			ErrDataTooLong, b.length, capacity, b.version, level)
	}

	b.pushNumber(min(terminatorLength(b.version), capacity-b.length), 0)
	if b.length%8 != 0 && b.length < capacity {
		b.pushNumber(min(8-b.length%8, capacity-b.length), 0)
	}
	for i := 0; b.length+8 <= capacity; i++ {
		b.pushNumber(8, [2]uint32{0xEC, 0x11}[i%2])
	}
	if b.length < capacity {
		b.pushNumber(capacity-b.length, 0x11&0x0F)
	}

	return nil
}

// encodeAuto assembles a bit stream for the smallest normal QR version that
// fits the optimal encoding of data at the given level.
func encodeAuto(data []byte, level EcLevel) (*Bits, error) {
	for v := 1; v <= 40; v++ {
		version := Normal(v)
		segments, err := optimalSegments(data, version)
		if err != nil {
			return nil, err
		}
		capacity, err := dataBitsCapacity(version, level)
		if err != nil {
			return nil, err
		}
		if totalEncodedBits(segments, version) > capacity {
			continue
		}
		bits := NewBits(version)
		if err := bits.pushSegments(data, segments); err != nil {
			return nil, err
		}
		if err := bits.PushTerminator(level); err != nil {
			return nil, err
		}
		return bits, nil
	}

	return nil, fmt.Errorf("%w: no normal version fits at level %v", ErrDataTooLong, level)
}

// encodeAutoMicro assembles a bit stream for the smallest Micro QR version
// that fits. Versions are tried in ascending order, each gated on its
// (mode, level) support: M1 is numeric-only at L, M2 adds alphanumeric and
// level M, M3 and M4 carry all modes with M4 adding level Q.
func encodeAutoMicro(data []byte, level EcLevel) (*Bits, error) {
	for v := 1; v <= 4; v++ {
		version := Micro(v)
		capacity, err := dataBitsCapacity(version, level)
		if err != nil {
			continue // The level is not defined for this version.
		}
		segments, err := optimalSegments(data, version)
		if err != nil {
			continue // Some byte has no admissible mode at this version.
		}
		if totalEncodedBits(segments, version) > capacity {
			continue
		}
		bits := NewBits(version)
		if err := bits.pushSegments(data, segments); err != nil {
			return nil, err
		}
		if err := bits.PushTerminator(level); err != nil {
			return nil, err
		}
		return bits, nil
	}

	return nil, fmt.Errorf("%w: no Micro QR version fits at level %v", ErrDataTooLong, level)
}

// RectMicroStrategy orders the 32 rMQR sizes during automatic version
// selection.
type RectMicroStrategy uint8

// RectMicroStrategy values.
const (
	StrategyArea     RectMicroStrategy = iota // Smallest module count first.
	StrategyWidth                             // Smallest width first, then height.
	StrategyHeight                            // Smallest height first, then width.
	StrategyBalanced                          // Nearest-to-square aspect ratio first.
)

// rectMicroOrder is the list of rMQR version indices in the order the
// strategy wants them tried.
func rectMicroOrder(strategy RectMicroStrategy) []int {
	order := make([]int, len(rmqrSizes))
	for i := range order {
		order[i] = i
	}
	area := func(i int) int { return rmqrSizes[i][0] * rmqrSizes[i][1] }
	less := func(i, j int) bool {
		hi, wi := rmqrSizes[i][0], rmqrSizes[i][1]
		hj, wj := rmqrSizes[j][0], rmqrSizes[j][1]
		switch strategy {
		case StrategyWidth:
			if wi != wj {
				return wi < wj
			}
			return hi < hj
		case StrategyHeight:
			if hi != hj {
				return hi < hj
			}
			return wi < wj
		case StrategyBalanced:
			// Compare the width:height ratios by cross multiplication.
			if wi*hj != wj*hi {
				return wi*hj < wj*hi
			}
			return area(i) < area(j)
		default:
			if area(i) != area(j) {
				return area(i) < area(j)
			}
			return i < j
		}
	}
	// Insertion sort keeps the ordering stable on ties.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && less(order[j], order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	return order
}

// encodeAutoRectMicro assembles a bit stream for the first rMQR size, in
// strategy order, that fits the optimal encoding of data.
func encodeAutoRectMicro(data []byte, level EcLevel, strategy RectMicroStrategy) (*Bits, error) {
	for _, i := range rectMicroOrder(strategy) {
		version := RectMicro(rmqrSizes[i][0], rmqrSizes[i][1])
		capacity, err := dataBitsCapacity(version, level)
		if err != nil {
			continue // Levels L and Q are not defined for rMQR.
		}
		segments, err := optimalSegments(data, version)
		if err != nil {
			return nil, err
		}
		if totalEncodedBits(segments, version) > capacity {
			continue
		}
		bits := NewBits(version)
		if err := bits.pushSegments(data, segments); err != nil {
			return nil, err
		}
		if err := bits.PushTerminator(level); err != nil {
			return nil, err
		}
		return bits, nil
	}

	return nil, fmt.Errorf("%w: no rMQR version fits at level %v", ErrDataTooLong, level)
}
