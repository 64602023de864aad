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

	"github.com/stretchr/testify/require"
)

func newTestAllocator(t *testing.T) *Allocator {
	t.Helper()
	h, err := New()
	require.NoError(t, err)
	return h
}

func newTestAllocatorWithOption(t *testing.T, opt Option) *Allocator {
	t.Helper()
	h, err := NewAllocator(opt)
	require.NoError(t, err)
	return h
}

func fillBytes(p unsafe.Pointer, n int, v byte) {
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		b[i] = v
	}
}

func readBytes(p unsafe.Pointer, n int) []byte {
	b := unsafe.Slice((*byte)(p), n)
	out := make([]byte, n)
	copy(out, b)
	return out
}
