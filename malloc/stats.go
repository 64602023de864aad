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

// Stats summarizes the current state of the heap. It has no effect on
// allocator behavior; it exists for tests and callers that want
// introspection, the same role cznic/lldb's AllocStats plays for its
// Filer-backed allocator.
type Stats struct {
	TotalWords int // words managed, excluding sentinels
	AllocWords int // words currently allocated, including each block's own header/footer
	FreeWords  int // words currently free, including each block's own header/footer
	FreeBlocks int // number of free blocks found by the heap walk (the free list itself is not traversed)
}

// Stats walks the heap once and reports its current occupancy.
func (h *Allocator) Stats() Stats {
	var s Stats
	for hdr := h.nextBlockHeader(1); hdr != h.epilogueHdr; hdr = h.nextBlockHeader(hdr) {
		size := h.blockSize(hdr)
		s.TotalWords += size
		if h.blockIsFree(hdr) {
			s.FreeWords += size
			s.FreeBlocks++
		} else {
			s.AllocWords += size
		}
	}
	return s
}
