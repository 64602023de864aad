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

// minBlockWords is the smallest legal block size: header + footer + two
// free-list link words. Both allocated and free blocks share this floor,
// because an allocated block must still have room for its link pair on
// the day it is released.
const minBlockWords = 4

// place carves asize words out of the free block identified by p, which
// the caller has already established is large enough (csize >= asize).
// If the remainder would itself be a legal free block, p is split: the
// leading asize words become the allocated block, and the trailing
// remainder replaces p's position in the free list under a new handle.
// Otherwise p is removed from the free list whole.
//
// Splitting keeps the remainder at the free list position p occupied
// (LIFO order is preserved, not reset to the head) rather than unlinking
// and re-pushing it; this is a deliberate split-preserves-position
// policy, not pure LIFO re-insertion.
func (h *Allocator) place(p handle, asize int) {
	hdr := h.headerOf(p)
	csize := h.blockSize(hdr)

	if csize-asize >= minBlockWords {
		prev := h.prevLink(p)
		succ := h.succLink(p)

		h.setSize(hdr, asize)
		h.mark(hdr, false)

		remHdr := h.nextBlockHeader(hdr)
		h.setSize(remHdr, csize-asize)
		h.mark(remHdr, true)

		rem := h.payloadOf(remHdr)
		h.setPrevLink(rem, prev)
		h.setSuccLink(rem, succ)
		h.setOutbound(prev, rem)
		if succ != nullHandle {
			h.setPrevLink(succ, rem)
		}
		return
	}

	h.unlink(p)
	h.mark(hdr, false)
}
