/*
 * Copyright 2026 The gopheap Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package malloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWords(t *testing.T) {
	cases := []struct {
		nBytes int
		want   int
	}{
		{1, 4},   // floored at minBlockBytes (16 bytes = 4 words)
		{8, 4},   // 8 + 8 header/footer = 16, still the floor
		{9, 6},   // 9 + 8 = 17, rounds up to 24 bytes = 6 words
		{100, 28}, // 100 + 8 = 108, rounds up to 112 bytes = 28 words
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, requestWords(tc.nBytes), "requestWords(%d)", tc.nBytes)
	}
}

func TestAllocateReturnsNilForNonPositive(t *testing.T) {
	h := newTestAllocator(t)
	assert.Nil(t, h.Allocate(0))
	assert.Nil(t, h.Allocate(-1))
}

func TestAllocateReleaseReusesFreedBlock(t *testing.T) {
	h := newTestAllocator(t)

	a := h.Allocate(1)
	require.NotNil(t, a)
	h.Release(a)
	b := h.Allocate(1)

	assert.Equal(t, a, b, "releasing and re-allocating the same size must return the same address")
}

func TestAllocateWritableAndDistinct(t *testing.T) {
	h := newTestAllocator(t)

	a := h.Allocate(32)
	b := h.Allocate(32)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a, b)

	fillBytes(a, 32, 0xAA)
	fillBytes(b, 32, 0xBB)
	assert.Equal(t, byte(0xAA), readBytes(a, 32)[0])
	assert.Equal(t, byte(0xBB), readBytes(b, 32)[0])
}

func TestAllocateGrowsArenaWhenFreeListCannotSatisfy(t *testing.T) {
	h := newTestAllocatorWithOption(t, Option{ChunkWords: 8, MaxArenaBytes: DefaultMaxArenaBytes})

	ptrs := make([]unsafe.Pointer, 0, 64)
	for i := 0; i < 64; i++ {
		p := h.Allocate(16)
		require.NotNil(t, p)
		ptrs = append(ptrs, p)
	}
	require.NoError(t, h.CheckHeap(false))
}

func TestReleaseNilIsNoOp(t *testing.T) {
	h := newTestAllocator(t)
	assert.NotPanics(t, func() { h.Release(nil) })
}

func TestResizeZeroReleases(t *testing.T) {
	h := newTestAllocator(t)
	a := h.Allocate(16)
	require.NotNil(t, a)
	got := h.Resize(a, 0)
	assert.Nil(t, got)
	require.NoError(t, h.CheckHeap(false))
}

func TestResizeNilPointerAllocates(t *testing.T) {
	h := newTestAllocator(t)
	got := h.Resize(nil, 16)
	assert.NotNil(t, got)
}

func TestResizePreservesLeadingBytes(t *testing.T) {
	h := newTestAllocator(t)

	a := h.Allocate(8)
	require.NotNil(t, a)
	fillBytes(a, 8, 0x42)

	b := h.Resize(a, 64)
	require.NotNil(t, b)
	got := readBytes(b, 8)
	for _, v := range got {
		assert.Equal(t, byte(0x42), v)
	}
}

func TestResizeShrinkTruncatesCopy(t *testing.T) {
	h := newTestAllocator(t)

	a := h.Allocate(64)
	require.NotNil(t, a)
	fillBytes(a, 64, 0x7)

	b := h.Resize(a, 8)
	require.NotNil(t, b)
	got := readBytes(b, 8)
	for _, v := range got {
		assert.Equal(t, byte(0x7), v)
	}
}

func TestZeroAllocZeroesMemory(t *testing.T) {
	h := newTestAllocator(t)

	a := h.Allocate(64)
	require.NotNil(t, a)
	fillBytes(a, 64, 0xFF)
	h.Release(a)

	b := h.ZeroAlloc(8, 8)
	require.NotNil(t, b)
	for _, v := range readBytes(b, 64) {
		assert.Equal(t, byte(0), v)
	}
}

func TestZeroAllocRejectsNonPositiveArgs(t *testing.T) {
	h := newTestAllocator(t)
	assert.Nil(t, h.ZeroAlloc(0, 8))
	assert.Nil(t, h.ZeroAlloc(8, 0))
	assert.Nil(t, h.ZeroAlloc(-1, 8))
}

func BenchmarkAllocateRelease(b *testing.B) {
	h, err := New()
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := h.Allocate(64)
		h.Release(p)
	}
}
