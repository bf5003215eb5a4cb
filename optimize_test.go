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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOptimalSegmentsSingleMode(t *testing.T) {
	segments, err := optimalSegments([]byte("01234567"), Normal(1))
	require.NoError(t, err)
	assert.Equal(t, []segment{{ModeNumeric, 0, 8}}, segments)

	segments, err = optimalSegments([]byte("HELLO WORLD"), Normal(1))
	require.NoError(t, err)
	assert.Equal(t, []segment{{ModeAlphanumeric, 0, 11}}, segments)

	segments, err = optimalSegments([]byte("hello"), Normal(1))
	require.NoError(t, err)
	assert.Equal(t, []segment{{ModeByte, 0, 5}}, segments)

	segments, err = optimalSegments([]byte{0x93, 0x5F, 0xE4, 0xAA}, Normal(1))
	require.NoError(t, err)
	assert.Equal(t, []segment{{ModeKanji, 0, 4}}, segments)
}

func TestOptimalSegmentsMixed(t *testing.T) {
	segments, err := optimalSegments([]byte("HELLO123456789world"), Normal(1))
	require.NoError(t, err)
	assert.Equal(t, []segment{
		{ModeAlphanumeric, 0, 5},
		{ModeNumeric, 5, 14},
		{ModeByte, 14, 19},
	}, segments)
	assert.Equal(t, 137, totalEncodedBits(segments, Normal(1)))
}

func TestOptimalSegmentsShortRunsStayMerged(t *testing.T) {
	// A short digit run inside text is cheaper kept in byte mode than paying
	// another segment header.
	segments, err := optimalSegments([]byte("ab1cd"), Normal(1))
	require.NoError(t, err)
	assert.Equal(t, []segment{{ModeByte, 0, 5}}, segments)
}

func TestOptimalSegmentsEmpty(t *testing.T) {
	segments, err := optimalSegments(nil, Normal(1))
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestOptimalSegmentsMicroGates(t *testing.T) {
	_, err := optimalSegments([]byte("A"), Micro(1))
	assert.ErrorIs(t, err, ErrUnsupportedCharacterSet)

	_, err = optimalSegments([]byte("a"), Micro(2))
	assert.ErrorIs(t, err, ErrUnsupportedCharacterSet)

	segments, err := optimalSegments([]byte("A1"), Micro(2))
	require.NoError(t, err)
	assert.Equal(t, []segment{{ModeAlphanumeric, 0, 2}}, segments)
}

func TestOptimalSegmentsPartitionInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 80).Draw(t, "data")
		segments, err := optimalSegments(data, Normal(10))
		require.NoError(t, err)

		// Segments partition the input and adjacent segments differ in mode.
		position := 0
		for i, s := range segments {
			require.Equal(t, position, s.start)
			require.Greater(t, s.end, s.start)
			if i > 0 {
				require.NotEqual(t, segments[i-1].mode, s.mode)
			}
			position = s.end
		}
		require.Equal(t, len(data), position)
	})
}

func TestOptimizerBeatsSingleMode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 80).Draw(t, "data")
		version := Normal(rapid.SampledFrom([]int{1, 10, 27}).Draw(t, "version"))

		segments, err := optimalSegments(data, version)
		require.NoError(t, err)
		optimal := totalEncodedBits(segments, version)

		// Byte mode can always encode everything; the optimizer must never
		// do worse than it.
		single := totalEncodedBits([]segment{{ModeByte, 0, len(data)}}, version)
		require.LessOrEqual(t, optimal, single)
	})
}

func TestIsKanjiPair(t *testing.T) {
	assert.True(t, isKanjiPair([]byte{0x81, 0x40}, 0))
	assert.True(t, isKanjiPair([]byte{0x9F, 0xFC}, 0))
	assert.True(t, isKanjiPair([]byte{0xE0, 0x40}, 0))
	assert.True(t, isKanjiPair([]byte{0xEB, 0xBF}, 0))
	assert.False(t, isKanjiPair([]byte{0x81, 0x3F}, 0))
	assert.False(t, isKanjiPair([]byte{0xEB, 0xC0}, 0))
	assert.False(t, isKanjiPair([]byte{0x80, 0x40}, 0))
	assert.False(t, isKanjiPair([]byte{0x93}, 0))
}
