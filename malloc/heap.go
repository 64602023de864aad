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
	"unsafe"

	"github.com/gopherheap/galloc/arena"
)

// sentinelWords is the number of words Init reserves before the first
// real block: the head cell (1 word), the prologue header and footer
// (2 words, size=2, allocated), and the epilogue (1 word, size=0,
// allocated).
const sentinelWords = 4

// Allocator is a boundary-tag, explicit-free-list dynamic storage
// allocator over a single growable arena. The zero value is not usable;
// construct one with NewAllocator.
//
// Allocator is not safe for concurrent use.
type Allocator struct {
	arena *arena.Arena
	base  unsafe.Pointer
	opt   Option

	epilogueHdr int // word index of the current epilogue header
	freeCount   int // number of nodes reachable from the free list head
}

// NewAllocator constructs an Allocator with the given Option, reserving
// its backing arena and planting the initial sentinels and first free
// chunk.
func NewAllocator(opt Option) (*Allocator, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}

	h := &Allocator{
		arena: arena.New(opt.MaxArenaBytes),
		opt:   opt,
	}
	h.base = h.arena.Base()

	if err := h.init(); err != nil {
		return nil, err
	}
	return h, nil
}

// New constructs an Allocator with DefaultOption.
func New() (*Allocator, error) {
	return NewAllocator(DefaultOption())
}

func (h *Allocator) growArenaWords(words int) bool {
	_, ok := h.arena.Extend(words * wordBytes)
	return ok
}

// init plants the head cell, the prologue block, and the epilogue, then
// performs the initial extend that creates the first free chunk.
func (h *Allocator) init() error {
	if !h.growArenaWords(sentinelWords) {
		return fmt.Errorf("malloc: arena exhausted reserving %d sentinel words", sentinelWords)
	}

	h.setHeadNext(nullHandle)

	h.setSize(1, 2)
	h.mark(1, false) // prologue: allocated

	h.setSize(3, 0)
	h.mark(3, false) // epilogue: allocated
	h.epilogueHdr = 3

	if _, ok := h.extend(h.opt.ChunkWords); !ok {
		return fmt.Errorf("malloc: arena exhausted during initial extend of %d words", h.opt.ChunkWords)
	}
	return nil
}

// extend grows the arena by words (rounded up to an even count to keep
// every payload 8-byte aligned), repurposes the current epilogue slot as
// the header of the new free block, plants a fresh epilogue past it,
// pushes the new block onto the free list, and coalesces it with a free
// left neighbor if one exists.
func (h *Allocator) extend(words int) (handle, bool) {
	if words <= 0 {
		return nullHandle, false
	}
	if words%2 != 0 {
		words++
	}
	if !h.growArenaWords(words) {
		return nullHandle, false
	}

	startHdr := h.epilogueHdr
	h.setSize(startHdr, words)
	h.mark(startHdr, true) // free

	newEpilogue := startHdr + words
	h.setSize(newEpilogue, 0)
	h.mark(newEpilogue, false) // allocated
	h.epilogueHdr = newEpilogue

	p := h.payloadOf(startHdr)
	h.pushFront(p)
	return h.coalesce(p), true
}
