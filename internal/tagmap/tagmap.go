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

// Package tagmap implements the "small mapping from unknown tag id -> byte
// view" that spec §3 asks message storage to keep around for unparsed
// tags.
//
// The teacher this module is adapted from (hyperpb's internal/swiss) is a
// SIMD-probed open-addressing hash table tuned for millions of lookups
// per second against tables with thousands of entries. That table is the
// wrong shape for this job: spec §3 calls the overflow map "small", and in
// the overwhelming majority of frames it holds zero entries (every tag the
// counterparty sent was declared in the shape). Pulling in SIMD control
// bytes and group-probing for a map that is usually empty and rarely
// exceeds single digits of entries would be solving a problem this codec
// doesn't have. Map stays a flat slice of pairs, scanned linearly, which is
// both simpler and faster at this size than any hash table -- no hashing,
// no bucket layout, and it is a lookup the parser only performs once per
// unrecognized tag, never on the declared-field hot path.
package tagmap

// Map is the per-message overflow map of unknown tags.
type Map struct {
	pairs []pair
}

type pair struct {
	tag Tag
	val []byte
}

// Tag mirrors schema.Tag without importing it, to avoid a dependency
// cycle (schema does not need to know about the overflow map).
type Tag = int

// Set records val for tag, overwriting any previous value for the same
// tag (an unknown tag re-appearing simply updates the last-seen value;
// nothing in spec §4.5 requires preserving every repeat of an unknown
// tag).
func (m *Map) Set(tag Tag, val []byte) {
	for i := range m.pairs {
		if m.pairs[i].tag == tag {
			m.pairs[i].val = val
			return
		}
	}
	m.pairs = append(m.pairs, pair{tag: tag, val: val})
}

// Get returns the value stored for tag, and whether one was present.
func (m *Map) Get(tag Tag) ([]byte, bool) {
	for _, p := range m.pairs {
		if p.tag == tag {
			return p.val, true
		}
	}
	return nil, false
}

// Len returns the number of unknown tags captured.
func (m *Map) Len() int { return len(m.pairs) }

// Range calls f for every captured (tag, value) pair in insertion order.
func (m *Map) Range(f func(tag Tag, val []byte)) {
	for _, p := range m.pairs {
		f(p.tag, p.val)
	}
}

// Clone returns an independent copy of m, deep-copying each value -- used
// when promoting view storage (which borrows val from the input frame) to
// owned storage (spec §4.9).
func (m *Map) Clone() *Map {
	if m == nil || len(m.pairs) == 0 {
		return &Map{}
	}
	out := &Map{pairs: make([]pair, len(m.pairs))}
	for i, p := range m.pairs {
		cp := make([]byte, len(p.val))
		copy(cp, p.val)
		out.pairs[i] = pair{tag: p.tag, val: cp}
	}
	return out
}
