// Copyright 2025 The Fixpp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import "math/bits"

// Bitset is a fixed-size bitmap, used for both the per-slot presence
// bitmap and the required-field bitmap of spec §3.
type Bitset struct {
	words []uint64
	n     int
}

// NewBitset allocates a Bitset able to hold n bits.
func NewBitset(n int) Bitset {
	return Bitset{words: make([]uint64, (n+63)/64), n: n}
}

// Len returns the number of bits this Bitset was sized for.
func (b *Bitset) Len() int { return b.n }

// Set sets or clears bit i.
func (b *Bitset) Set(i int, v bool) {
	w, m := i/64, uint64(1)<<(uint(i)%64)
	if v {
		b.words[w] |= m
	} else {
		b.words[w] &^= m
	}
}

// Get reports whether bit i is set.
func (b *Bitset) Get(i int) bool {
	w, m := i/64, uint64(1)<<(uint(i)%64)
	return b.words[w]&m != 0
}

// CountOnes returns the number of set bits (spec §3 invariant:
// present.count_ones() equals the number of set fields).
func (b *Bitset) CountOnes() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// All reports whether every bit is set -- used to check required_present
// is full before serializing (spec §4.6).
func (b *Bitset) All() bool {
	full, rem := b.n/64, b.n%64
	for i := 0; i < full; i++ {
		if b.words[i] != ^uint64(0) {
			return false
		}
	}
	if rem > 0 {
		mask := uint64(1)<<uint(rem) - 1
		if b.words[full]&mask != mask {
			return false
		}
	}
	return true
}

// Missing appends to dst the indices of every clear bit, in ascending
// order -- used to build a MissingRequired error listing the offending
// tags.
func (b *Bitset) Missing(dst []int) []int {
	for i := 0; i < b.n; i++ {
		if !b.Get(i) {
			dst = append(dst, i)
		}
	}
	return dst
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() Bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bitset{words: words, n: b.n}
}
