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
	"fmt"
	"log"
)

// CheckHeap audits every invariant the allocator must maintain between
// public calls: sentinel shape, block-by-block tiling and tagging, and
// free-list/heap consistency. It returns the first violation found, or
// nil if the heap is consistent. When verbose is true, the violation is
// also logged before being returned.
func (h *Allocator) CheckHeap(verbose bool) error {
	if err := h.checkSentinels(); err != nil {
		return h.report(verbose, err)
	}
	heapFree, err := h.checkBlocks()
	if err != nil {
		return h.report(verbose, err)
	}
	listFree, err := h.checkFreeList()
	if err != nil {
		return h.report(verbose, err)
	}
	if heapFree != listFree {
		return h.report(verbose, fmt.Errorf(
			"malloc: free block count mismatch: heap scan=%d, free-list traversal=%d", heapFree, listFree))
	}
	if listFree != h.freeCount {
		return h.report(verbose, fmt.Errorf(
			"malloc: free list size counter mismatch: counter=%d, traversal=%d", h.freeCount, listFree))
	}
	return nil
}

func (h *Allocator) report(verbose bool, err error) error {
	if verbose {
		log.Printf("checkheap: %v", err)
	}
	return err
}

func (h *Allocator) checkSentinels() error {
	if h.blockSize(1) != 2 || h.blockIsFree(1) {
		return fmt.Errorf("malloc: prologue header malformed at word 1")
	}
	if h.blockSize(2) != 2 || h.blockIsFree(2) {
		return fmt.Errorf("malloc: prologue footer malformed at word 2")
	}
	if h.blockSize(h.epilogueHdr) != 0 || h.blockIsFree(h.epilogueHdr) {
		return fmt.Errorf("malloc: epilogue malformed at word %d", h.epilogueHdr)
	}
	return nil
}

// checkBlocks walks every block from the prologue to the epilogue,
// checking alignment, minimum size, header/footer agreement, and the
// no-two-consecutive-frees invariant. It returns the number of free
// blocks encountered.
func (h *Allocator) checkBlocks() (int, error) {
	freeBlocks := 0
	prevWasFree := false

	for hdr := 1; hdr != h.epilogueHdr; hdr = h.nextBlockHeader(hdr) {
		payloadIdx := hdr + 1
		if payloadIdx%2 != 0 {
			return 0, fmt.Errorf("malloc: payload at word %d is not 8-byte aligned", payloadIdx)
		}

		size := h.blockSize(hdr)
		minSize := minBlockWords
		if hdr == 1 {
			minSize = 2
		}
		if size < minSize {
			return 0, fmt.Errorf("malloc: block at word %d has size %d, below minimum %d", hdr, size, minSize)
		}

		ftr := h.footerOf(hdr)
		if *h.word(hdr) != *h.word(ftr) {
			return 0, fmt.Errorf("malloc: header/footer mismatch for block at word %d", hdr)
		}

		free := h.blockIsFree(hdr)
		if free && prevWasFree {
			return 0, fmt.Errorf("malloc: two consecutive free blocks ending at word %d", hdr)
		}
		if free {
			freeBlocks++
		}
		prevWasFree = free
	}
	return freeBlocks, nil
}

// checkFreeList walks the free list from the head, checking that every
// link lies within the heap and that every forward edge has a matching
// backward edge. It returns the number of nodes visited.
func (h *Allocator) checkFreeList() (int, error) {
	count := 0
	pred := headHandle

	for cur := h.headNext(); cur != nullHandle; cur = h.succLink(cur) {
		off := idxOf(cur) * wordBytes
		if !h.arena.InBounds(off) {
			return 0, fmt.Errorf("malloc: free-list node %d lies outside the heap", cur)
		}
		if h.prevLink(cur) != pred {
			return 0, fmt.Errorf("malloc: free-list node %d's prev does not point back to %d", cur, pred)
		}
		count++
		pred = cur
	}
	return count, nil
}
