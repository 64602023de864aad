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

// Package malloc implements a boundary-tag, explicit-free-list dynamic
// storage allocator over a single, monotonically-growing arena (see the
// sibling arena package).
//
// The heap is a sequence of contiguous blocks, each carrying a header word
// and (when non-empty) a mirrored footer word encoding (size, allocated)
// in 4-byte words. Free blocks additionally thread themselves through a
// single doubly-linked, LIFO free list: the most recently released block
// is always the first candidate a first-fit search considers. Release
// immediately coalesces a freed block with any free physical neighbor,
// using the footer of the previous block and the header of the next block
// (the "boundary tags") to find those neighbors in O(1).
//
// Allocator is not safe for concurrent use; callers must serialize access
// themselves.
package malloc
