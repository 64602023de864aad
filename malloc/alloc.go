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

import "unsafe"

// minBlockBytes is minBlockWords expressed in bytes.
const minBlockBytes = minBlockWords * wordBytes

// requestWords converts a caller-requested byte count into the total
// block size, in words, that must be carved out of the heap: payload
// bytes plus header and footer, rounded up to 8-byte (two-word)
// alignment, floored at minBlockBytes so the block can always hold its
// free-list links if it is later released.
func requestWords(nBytes int) int {
	total := nBytes + 2*wordBytes
	total = ((total + 7) / 8) * 8
	if total < minBlockBytes {
		total = minBlockBytes
	}
	return total / wordBytes
}

// findFit performs a first-fit search over the free list, returning the
// payload handle of the first block whose size is at least asize words,
// or nullHandle if none qualifies.
func (h *Allocator) findFit(asize int) handle {
	for cur := h.headNext(); cur != nullHandle; cur = h.succLink(cur) {
		if h.blockSize(h.headerOf(cur)) >= asize {
			return cur
		}
	}
	return nullHandle
}

// Allocate returns a pointer to a block of at least n bytes, or nil if n
// is non-positive or the arena cannot be grown far enough to satisfy the
// request.
func (h *Allocator) Allocate(n int) unsafe.Pointer {
	h.maybeSelfCheck()
	if n <= 0 {
		return nil
	}

	asize := requestWords(n)

	if p := h.findFit(asize); p != nullHandle {
		h.place(p, asize)
		h.maybeSelfCheck()
		return h.ptrOf(p)
	}

	grow := asize
	if h.opt.ChunkWords > grow {
		grow = h.opt.ChunkWords
	}
	p, ok := h.extend(grow)
	if !ok {
		return nil
	}
	h.place(p, asize)
	h.maybeSelfCheck()
	return h.ptrOf(p)
}

// Release returns the block at ptr to the allocator. A nil pointer is a
// silent no-op.
func (h *Allocator) Release(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	h.maybeSelfCheck()

	p := h.handleOfPtr(ptr)
	hdr := h.headerOf(p)
	h.mark(hdr, true)
	h.pushFront(p)
	h.coalesce(p)

	h.maybeSelfCheck()
}

// Resize changes the size of the block at ptr to n bytes, preserving the
// leading min(oldSize, n) bytes of its contents. Resize(p, 0) releases p
// and returns nil. Resize(nil, n) behaves like Allocate(n).
func (h *Allocator) Resize(ptr unsafe.Pointer, n int) unsafe.Pointer {
	if n == 0 {
		h.Release(ptr)
		return nil
	}
	if ptr == nil {
		return h.Allocate(n)
	}

	newPtr := h.Allocate(n)
	if newPtr == nil {
		return nil
	}

	p := h.handleOfPtr(ptr)
	oldPayloadBytes := h.blockSize(h.headerOf(p))*wordBytes - 2*wordBytes
	copyBytes := oldPayloadBytes
	if n < copyBytes {
		copyBytes = n
	}
	if copyBytes > 0 {
		copy(unsafe.Slice((*byte)(newPtr), copyBytes), unsafe.Slice((*byte)(ptr), copyBytes))
	}

	h.Release(ptr)
	return newPtr
}

// ZeroAlloc allocates count*unit bytes and zeroes them before returning,
// mirroring calloc's contract.
func (h *Allocator) ZeroAlloc(count, unit int) unsafe.Pointer {
	if count <= 0 || unit <= 0 {
		return nil
	}
	p := h.Allocate(count * unit)
	if p == nil {
		return nil
	}
	b := unsafe.Slice((*byte)(p), count*unit)
	for i := range b {
		b[i] = 0
	}
	return p
}

func (h *Allocator) maybeSelfCheck() {
	if !h.opt.Verbose {
		return
	}
	if err := h.CheckHeap(true); err != nil {
		panic("malloc: " + err.Error())
	}
}
