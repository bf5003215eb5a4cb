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

// Reference matrices: the ISO/IEC 18004 Annex I vectors for the square and
// Micro variants, the ISO/IEC 23941 vector for rMQR, and frozen outputs
// covering alignment patterns, the 4-bit final codewords of M1/M3, and a
// minimum-height rMQR symbol.
const (
	refAnnexQr = "#######..#.##.#######\n" +
		"#.....#..####.#.....#\n" +
		"#.###.#.#.....#.###.#\n" +
		"#.###.#.##....#.###.#\n" +
		"#.###.#.#.###.#.###.#\n" +
		"#.....#.#...#.#.....#\n" +
		"#######.#.#.#.#######\n" +
		"........#..##........\n" +
		"#.#####..#..#.#####..\n" +
		"...#.#.##.#.#..#.##..\n" +
		"..#...##.#.#.#..#####\n" +
		"....#....#.....####..\n" +
		"...######..#.#..#....\n" +
		"........#.#####..##..\n" +
		"#######..##.#.##.....\n" +
		"#.....#.#.#####...#.#\n" +
		"#.###.#.#...#..#.##..\n" +
		"#.###.#.##..#..#.....\n" +
		"#.###.#.#.##.#..#.#..\n" +
		"#.....#........##.##.\n" +
		"#######.####.#..#.#.."

	refAnnexMicroQr = "#######.#.#.#\n" +
		"#.....#.###.#\n" +
		"#.###.#..##.#\n" +
		"#.###.#..####\n" +
		"#.###.#.###..\n" +
		"#.....#.#...#\n" +
		"#######..####\n" +
		".........##..\n" +
		"##.#....#...#\n" +
		".##.#.#.#.#.#\n" +
		"###..#######.\n" +
		"...#.#....##.\n" +
		"###.#..##.###"

	refAnnexRmqr = "#######.#.#.#.#.#.#.###.#.#.#.#.#.#.#.#.###\n" +
		"#.....#.##.#.#.#.#.##.######..####..##.#..#\n" +
		"#.###.#.##...####.#####..#.###..##.###.####\n" +
		"#.###.#...#...#.#..#......#.#..##.##.#####.\n" +
		"#.###.#.#..#..#.##..###.##.##.##.##.......#\n" +
		"#.....#.##.##.###.##...##...##..#.####.....\n" +
		"#######...##.#.#.#...####.....##..#..#...##\n" +
		".........###.#..#.#...####.####..#..#.####.\n" +
		"##.####.....##...#####.#..#..##.#...#####.#\n" +
		".###.###.##.##.....##...####..####..#..##..\n" +
		"#.###...##..#.##.###.#...#.###..####..#####\n" +
		"...##...###.#.####.##.....#.#..##.#.#.#...#\n" +
		"##.#....###...#.#...###.##.##.##.##..##.#.#\n" +
		"#.##..#.#.###.#...###.###...##..#..####...#\n" +
		"###.#.#.#.#.#.#.#.#.###.#.#.#.#.#.#.#.#####"

	goldenNormalV3H = "#######.##..#..##.##..#######\n" +
		"#.....#..#.#..##.#.#..#.....#\n" +
		"#.###.#.##.#.########.#.###.#\n" +
		"#.###.#..####.###..#..#.###.#\n" +
		"#.###.#.##.#.#.#..#...#.###.#\n" +
		"#.....#..###....#.#.#.#.....#\n" +
		"#######.#.#.#.#.#.#.#.#######\n" +
		"........#.#.#...#............\n" +
		".....##..#.##...#.#.#.#.#.#.#\n" +
		"#..#.#.###...#..#...###.#.##.\n" +
		".#...##.#....####...#..###.##\n" +
		"##..#..#.#.#..#.#.#.....#....\n" +
		".#....##.##..#.....##..##.###\n" +
		"##.##......####.##..##.#.#...\n" +
		"#..#..##.#.#.###.###..#####.#\n" +
		"#..#.#.##.####.###.#...#.....\n" +
		"##...###....#.##..##..#.#...#\n" +
		"#.##.#.##.####.#..#.#..#.####\n" +
		"###########...#...#.#.##.#.#.\n" +
		"#..##...##.#.#.##..##..#.###.\n" +
		"#..#.##.####.#..##.######....\n" +
		"........#.####.###..#...##.##\n" +
		"#######..#..#.#.....#.#.##.#.\n" +
		"#.....#.########.##.#...#..#.\n" +
		"#.###.#..##.#.###########.###\n" +
		"#.###.#....#.##..............\n" +
		"#.###.#..###..#.##.#..#.##.#.\n" +
		"#.....#..........#.##.##..#..\n" +
		"#######.....#.#..##....###.#."

	goldenMicroV1 = "#######.#.#\n" +
		"#.....#...#\n" +
		"#.###.#.###\n" +
		"#.###.#..#.\n" +
		"#.###.#....\n" +
		"#.....#.#.#\n" +
		"#######.#.#\n" +
		"........###\n" +
		"##.....#...\n" +
		"....###.#.#\n" +
		"###.#.####."

	goldenMicroV3 = "#######.#.#.#.#\n" +
		"#.....#.###.###\n" +
		"#.###.#....#...\n" +
		"#.###.#.....#..\n" +
		"#.###.#.#.#..#.\n" +
		"#.....#..#.#.##\n" +
		"#######.#..#..#\n" +
		"........##.#.#.\n" +
		"#.....###.###.#\n" +
		".......###..###\n" +
		"####.#.#.##...#\n" +
		"..###.....#.##.\n" +
		"#.#.###.#....#.\n" +
		"..#####.##.#.##\n" +
		"#..#.##.####..#"

	goldenRmqrR7x43 = "#######.#.#.#.#.#.#.###.#.#.#.#.#.#.#.#.###\n" +
		"#.....#.##.#..##.#..#.#....###..##..#.....#\n" +
		"#.###.#.##.##.#.#..#####.##.#...#.##..#####\n" +
		"#.###.#.#.####.#.#....##.##.##..##.##.#...#\n" +
		"#.###.#..#####.....####.#..##.###..##.#.#.#\n" +
		"#.....#..###..#.#.###.#.#.#.#..#.#..#.#...#\n" +
		"#######.#.#.#.#.#.#.###.#.#.#.#.#.#.#.#####"
)
