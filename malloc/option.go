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

import "fmt"

const (
	// DefaultChunkWords is the default growth increment (in words) used
	// when a first-fit search misses and the arena must be extended.
	DefaultChunkWords = 1024

	// DefaultMaxArenaBytes is the default ceiling on how large the
	// backing arena is allowed to grow.
	DefaultMaxArenaBytes = 64 << 20 // 64MB
)

// Option configures an Allocator. Zero-value fields are not valid on
// their own; start from DefaultOption and override what you need, the
// same config-struct-plus-defaults shape as gopool.Option/DefaultOption.
type Option struct {
	// ChunkWords is the growth increment, in words: the minimum number of
	// words requested from the arena whenever a first-fit search misses.
	ChunkWords int

	// MaxArenaBytes bounds how large the arena is allowed to grow. It is
	// reserved in full up front so addresses handed out by Allocator are
	// never invalidated by a later Extend.
	MaxArenaBytes int

	// Verbose, when set, runs CheckHeap after every public call and
	// panics immediately if it finds a violated invariant, instead of
	// leaving the checker purely diagnostic.
	Verbose bool
}

// DefaultOption returns the default Option values.
func DefaultOption() Option {
	return Option{
		ChunkWords:    DefaultChunkWords,
		MaxArenaBytes: DefaultMaxArenaBytes,
		Verbose:       false,
	}
}

func (o Option) validate() error {
	if o.ChunkWords <= 0 {
		return fmt.Errorf("malloc: ChunkWords must be > 0, got %d", o.ChunkWords)
	}
	if o.MaxArenaBytes < minArenaBytes {
		return fmt.Errorf("malloc: MaxArenaBytes must be >= %d, got %d", minArenaBytes, o.MaxArenaBytes)
	}
	return nil
}

// minArenaBytes is the smallest arena that can hold the sentinels plus one
// minimum-size block.
const minArenaBytes = (sentinelWords + minBlockWords) * wordBytes
