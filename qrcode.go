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
	"fmt"
	"strings"
)

// QrCode is an encoded symbol: an immutable grid of dark and light modules
// plus the version and error correction level it was built with. The grid
// covers the code area only; quiet zone paddings are up to the renderer.
type QrCode struct {
	modules    []Color
	functional []bool
	version    Version
	level      EcLevel
	width      int
	height     int
}

// Encode encodes data into the smallest normal QR code that fits at the
// given error correction level.
func Encode(data []byte, level EcLevel) (*QrCode, error) {
	bits, err := encodeAuto(data, level)
	if err != nil {
		return nil, err
	}

	return EncodeWithBits(bits, level)
}

// EncodeMicro encodes data into the smallest Micro QR code that fits at the
// given error correction level.
func EncodeMicro(data []byte, level EcLevel) (*QrCode, error) {
	bits, err := encodeAutoMicro(data, level)
	if err != nil {
		return nil, err
	}

	return EncodeWithBits(bits, level)
}

// EncodeRectMicro encodes data into the first rMQR code, in strategy order,
// that fits at the given error correction level. Only levels M and H are
// defined for rMQR codes.
func EncodeRectMicro(data []byte, level EcLevel, strategy RectMicroStrategy) (*QrCode, error) {
	bits, err := encodeAutoRectMicro(data, level, strategy)
	if err != nil {
		return nil, err
	}

	return EncodeWithBits(bits, level)
}

// EncodeWithVersion encodes data into the given version at the given error
// correction level, running the segment optimizer over the data.
func EncodeWithVersion(data []byte, version Version, level EcLevel) (*QrCode, error) {
	bits := NewBits(version)
	if err := bits.PushOptimalData(data); err != nil {
		return nil, err
	}
	if err := bits.PushTerminator(level); err != nil {
		return nil, err
	}

	return EncodeWithBits(bits, level)
}

// EncodeWithBits builds the symbol from a manually assembled bit buffer.
// Use this entry point to encode with an ECI designator, to use the FNC1
// modes, or to bypass the segment optimizer; the buffer must already be
// terminated with PushTerminator.
func EncodeWithBits(bits *Bits, level EcLevel) (*QrCode, error) {
	version := bits.Version()
	data, ec, err := constructCodewords(bits.Bytes(), version, level)
	if err != nil {
		return nil, err
	}

	c := newCanvas(version, level)
	c.drawAllFunctionalPatterns()
	c.drawData(data, ec)
	c.applyBestMask()

	return &QrCode{
		modules:    c.colors(),
		functional: c.functionalMap(),
		version:    version,
		level:      level,
		width:      version.Width(),
		height:     version.Height(),
	}, nil
}

// Version is the version of the symbol.
func (q *QrCode) Version() Version {
	return q.version
}

// Level is the error correction level of the symbol.
func (q *QrCode) Level() EcLevel {
	return q.level
}

// Width is the number of modules per row, without quiet zone.
func (q *QrCode) Width() int {
	return q.width
}

// Height is the number of modules per column, without quiet zone.
func (q *QrCode) Height() int {
	return q.height
}

// QuietZone is the quiet zone width in modules a renderer should apply: 4
// for normal QR codes, 2 for Micro QR and rMQR codes.
func (q *QrCode) QuietZone() int {
	if q.version.IsNormal() {
		return 4
	}

	return 2
}

// MaxAllowedErrors is the number of erroneous data modules that may be
// introduced before the payload becomes unrecoverable. Errors must not be
// introduced into functional modules.
func (q *QrCode) MaxAllowedErrors() int {
	n, err := maxAllowedErrors(q.version, q.level)
	if err != nil {
		panic("constructed symbol has an invalid version")
	}

	return n
}

// ModuleAt is the color of the module at (x, y). The top left corner is
// (0, 0). Panics when the coordinates are outside the symbol.
func (q *QrCode) ModuleAt(x, y int) Color {
	if x < 0 || x >= q.width || y < 0 || y >= q.height {
		panic("coordinates outside the symbol")
	}

	return q.modules[y*q.width+x]
}

// IsFunctional reports whether the module at (x, y) belongs to a functional
// pattern. Panics when the coordinates are outside the symbol.
func (q *QrCode) IsFunctional(x, y int) bool {
	if x < 0 || x >= q.width || y < 0 || y >= q.height {
		panic("coordinates outside the symbol")
	}

	return q.functional[y*q.width+x]
}

// Modules is the row-major module vector of the symbol; index y·width + x.
func (q *QrCode) Modules() []Color {
	return q.modules
}

// ToDebugString renders the symbol as text, one rune per module and one
// line per row. Mainly for debugging and conformance tests.
func (q *QrCode) ToDebugString(on, off rune) string {
	var sb strings.Builder
	sb.Grow((q.width + 1) * q.height)
	for y := 0; y < q.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < q.width; x++ {
			sb.WriteRune(Select(q.modules[y*q.width+x], on, off))
		}
	}

	return sb.String()
}

func (q *QrCode) String() string {
	var sb strings.Builder
	sb.WriteString("QrCode\n")
	fmt.Fprintf(&sb, "\tVersion: %v\n", q.version)
	fmt.Fprintf(&sb, "\tLevel: %v\n", q.level)
	fmt.Fprintf(&sb, "\tSize: %dx%d\n", q.width, q.height)
	sb.WriteString("\tModules\n")
	for y := 0; y < q.height; y++ {
		sb.WriteString("\t\t")
		for x := 0; x < q.width; x++ {
			sb.WriteString(Select(q.modules[y*q.width+x], "██", "  "))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToSVGString returns a scalable vector graphics representation of the
// symbol with the given quiet zone border, in modules.
func (q *QrCode) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("border must be non-negative")
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n",
		q.width+border*2, q.height+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < q.height; y++ {
		for x := 0; x < q.width; x++ {
			if q.modules[y*q.width+x] != Dark {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
