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

// The free list is doubly linked and LIFO: pushFront always installs the
// new node at the head, so the most recently released block is the first
// one a first-fit search considers.
//
// The head cell is a single word (the list's "next" pointer) at word
// index 0. It is NOT a block and has no prev/succ pair of its own;
// traversal distinguishes the head step ("follow head.next") from a
// block-internal step ("follow succLink, which lives at payload+1").
//
// A free block stores its two link words directly in its payload:
// payload[0] = prevLink, payload[1] = succLink.

// headNext reads the free list's head cell.
func (h *Allocator) headNext() handle {
	return handle(*h.word(0))
}

func (h *Allocator) setHeadNext(v handle) {
	*h.word(0) = uint32(v)
}

func (h *Allocator) prevLink(p handle) handle {
	return handle(*h.word(idxOf(p)))
}

func (h *Allocator) setPrevLink(p, v handle) {
	*h.word(idxOf(p)) = uint32(v)
}

func (h *Allocator) succLink(p handle) handle {
	return handle(*h.word(idxOf(p) + 1))
}

func (h *Allocator) setSuccLink(p, v handle) {
	*h.word(idxOf(p)+1) = uint32(v)
}

// setOutbound rewrites the pointer that currently flows out of from
// (head.next if from is the head cell, otherwise from's succLink) to
// point at to. It is the one place that needs to know the head cell is
// not an ordinary node.
func (h *Allocator) setOutbound(from, to handle) {
	if from == headHandle {
		h.setHeadNext(to)
	} else {
		h.setSuccLink(from, to)
	}
}

// pushFront installs p as the new head of the free list.
func (h *Allocator) pushFront(p handle) {
	old := h.headNext()
	h.setPrevLink(p, headHandle)
	h.setSuccLink(p, old)
	if old != nullHandle {
		h.setPrevLink(old, p)
	}
	h.setHeadNext(p)
	h.freeCount++
}

// unlink splices p out of the free list, wherever it currently sits.
func (h *Allocator) unlink(p handle) {
	prev := h.prevLink(p)
	succ := h.succLink(p)
	h.setOutbound(prev, succ)
	if succ != nullHandle {
		h.setPrevLink(succ, prev)
	}
	h.freeCount--
}
