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

// Package arena provides the lower-level, monotonically-growing memory
// region that malloc.Allocator is built on top of. It plays the role of
// sbrk(2): a single contiguous backing store that only ever grows, never
// shrinks, and never moves.
package arena

import "unsafe"

// Arena is a single contiguous, monotonically-growing region of memory.
// It pre-reserves its full backing store up front so that Extend never
// reallocates and never invalidates a previously returned address, the
// same guarantee unsafe.Pointer arithmetic over a []byte needs.
//
// Arena is not safe for concurrent use.
type Arena struct {
	store []byte // len == capacity reserved at New; only the [0:high) prefix is "committed"
	high  int    // current high-water mark, in bytes
}

// New reserves an arena backed by a store of at most maxBytes. No bytes
// are considered part of the heap until Extend grows into them.
func New(maxBytes int) *Arena {
	if maxBytes <= 0 {
		maxBytes = 1
	}
	return &Arena{store: make([]byte, maxBytes)}
}

// Extend grows the arena by nBytes and returns the byte offset of the
// start of the new region. ok is false if the arena's reserved ceiling
// would be exceeded.
func (a *Arena) Extend(nBytes int) (base int, ok bool) {
	if nBytes <= 0 {
		return 0, false
	}
	if a.high+nBytes > len(a.store) {
		return 0, false
	}
	base = a.high
	a.high += nBytes
	return base, true
}

// Low returns the byte offset of the start of the arena. It is always 0;
// the accessor exists to mirror the heap_low()/heap_high() pair from the
// external arena-provider interface this package implements.
func (a *Arena) Low() int { return 0 }

// High returns the byte offset one past the last committed byte.
func (a *Arena) High() int { return a.high }

// Cap returns the total number of bytes reserved for this arena.
func (a *Arena) Cap() int { return len(a.store) }

// Base returns an unsafe.Pointer to byte offset 0 of the arena's backing
// store. Every address handed out by malloc.Allocator is computed by
// adding a byte offset to this pointer; since store never reallocates,
// the pointer is stable for the Arena's entire lifetime.
func (a *Arena) Base() unsafe.Pointer {
	return unsafe.Pointer(&a.store[0])
}

// InBounds reports whether byte offset off lies within [Low(), High()).
func (a *Arena) InBounds(off int) bool {
	return off >= 0 && off < a.high
}
