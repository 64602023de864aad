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

// coalesce is called right after p has been pushed onto the head of the
// free list (by Release, or by extend after growing the arena). It reads
// the allocated/free bit of p's two physical neighbors via their boundary
// tags and merges with whichever are free, returning the payload handle
// of the (possibly merged) surviving block.
//
// The table is derived directly from the boundary tags: the prologue and
// epilogue sentinels are always marked allocated, so "both neighbors
// allocated" is the ordinary, frequent case and must be a no-op; merging
// is needed exactly when at least one physical neighbor is free.
func (h *Allocator) coalesce(p handle) handle {
	hdr := h.headerOf(p)
	prevHdr := h.prevBlockHeader(hdr)
	nextHdr := h.nextBlockHeader(hdr)
	prevFree := h.blockIsFree(prevHdr)
	nextFree := h.blockIsFree(nextHdr)

	switch {
	case !prevFree && !nextFree:
		return p
	case !prevFree && nextFree:
		return h.mergeRight(p)
	case prevFree && !nextFree:
		return h.mergeLeft(p)
	default:
		p = h.mergeRight(p)
		return h.mergeLeft(p)
	}
}

// mergeRight absorbs p's physical right neighbor into p. p keeps its
// free-list position (it was just pushed to the head), so no re-anchoring
// is needed: the neighbor is simply unlinked and p's size grows to cover
// it.
func (h *Allocator) mergeRight(p handle) handle {
	hdr := h.headerOf(p)
	nextHdr := h.nextBlockHeader(hdr)
	nextSize := h.blockSize(nextHdr)

	h.unlink(h.payloadOf(nextHdr))
	h.setSize(hdr, h.blockSize(hdr)+nextSize)
	h.mark(hdr, true)
	return p
}

// mergeLeft absorbs p into its physical left neighbor L. L survives, so
// it must be re-anchored at the free-list position p held (the head, or
// wherever coalesce was invoked from): L is spliced out of its own
// current position, then p's (prev, succ) pair is copied onto it and the
// edges on either side are rewritten to point at L instead of p.
func (h *Allocator) mergeLeft(p handle) handle {
	hdr := h.headerOf(p)
	prevHdr := h.prevBlockHeader(hdr)
	size := h.blockSize(hdr)
	prevSize := h.blockSize(prevHdr)

	left := h.payloadOf(prevHdr)
	h.unlink(left)

	pPrev := h.prevLink(p)
	pSucc := h.succLink(p)

	h.setSize(prevHdr, prevSize+size)
	h.mark(prevHdr, true)

	merged := h.payloadOf(prevHdr) // same handle as `left`; size only
	h.setPrevLink(merged, pPrev)
	h.setSuccLink(merged, pSucc)
	h.setOutbound(pPrev, merged)
	if pSucc != nullHandle {
		h.setPrevLink(pSucc, merged)
	}
	return merged
}
