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

package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New(1024)
	assert.Equal(t, 1024, a.Cap())
	assert.Equal(t, 0, a.Low())
	assert.Equal(t, 0, a.High())
}

func TestNewZeroOrNegative(t *testing.T) {
	assert.Equal(t, 1, New(0).Cap())
	assert.Equal(t, 1, New(-5).Cap())
}

func TestExtendGrowsMonotonically(t *testing.T) {
	a := New(64)

	base, ok := a.Extend(16)
	require.True(t, ok)
	assert.Equal(t, 0, base)
	assert.Equal(t, 16, a.High())

	base, ok = a.Extend(16)
	require.True(t, ok)
	assert.Equal(t, 16, base)
	assert.Equal(t, 32, a.High())
}

func TestExtendBeyondCeilingFails(t *testing.T) {
	a := New(32)
	_, ok := a.Extend(40)
	assert.False(t, ok)
	assert.Equal(t, 0, a.High())

	_, ok = a.Extend(32)
	require.True(t, ok)
	_, ok = a.Extend(1)
	assert.False(t, ok, "arena is fully committed, further growth must fail")
}

func TestExtendRejectsNonPositive(t *testing.T) {
	a := New(64)
	_, ok := a.Extend(0)
	assert.False(t, ok)
	_, ok = a.Extend(-8)
	assert.False(t, ok)
}

func TestBasePointerStableAcrossExtend(t *testing.T) {
	a := New(64)
	before := a.Base()
	_, ok := a.Extend(32)
	require.True(t, ok)
	after := a.Base()
	assert.Equal(t, before, after, "Extend must never move or reallocate the backing store")
}

func TestInBounds(t *testing.T) {
	a := New(64)
	_, ok := a.Extend(16)
	require.True(t, ok)

	assert.True(t, a.InBounds(0))
	assert.True(t, a.InBounds(15))
	assert.False(t, a.InBounds(16))
	assert.False(t, a.InBounds(-1))
}

func TestBaseUsableForPointerArithmetic(t *testing.T) {
	a := New(64)
	_, ok := a.Extend(64)
	require.True(t, ok)

	p := unsafe.Add(a.Base(), 8)
	*(*uint32)(p) = 0xDEADBEEF
	assert.Equal(t, uint32(0xDEADBEEF), *(*uint32)(unsafe.Add(a.Base(), 8)))
}
