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

// Package qrgen encodes binary data into QR code symbols: the square QR code
// (Model 2) of ISO/IEC 18004, the Micro QR code of the same standard, and
// the rectangular Micro QR code (rMQR) of ISO/IEC 23941.
//
// The package covers the full encoder pipeline: input segmentation with a
// minimum-bit-length optimizer, bit stream assembly, Reed-Solomon error
// correction with block interleaving, matrix layout for all three
// geometries, and mask selection. The result is a module matrix plus
// metadata, including the recommended quiet zone width. Besides a text
// debug form, a terminal form and a basic SVG rendering, rendering and file
// output are left to callers.
package qrgen

func abs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}

func bToI(b bool) int {
	if b {
		return 1
	}

	return 0
}
