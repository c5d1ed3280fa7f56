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

package schema

import (
	"sort"
)

// Shape is the compiled, ordered entry list for a message (or a
// repeating-group's inner record). Its tables are derived once, at
// construction time, and indexed directly thereafter -- no dictionary
// lookup occurs while parsing or serializing a frame (spec §4.1, §9).
type Shape struct {
	Name    string
	MsgType MsgType

	Entries []Entry // declared order; this is the "tag sequence" of spec §3

	slotOf        []tagSlot // sorted by Tag, searched with sort.Search (spec Open Questions: "ship binary search")
	requiredSlots []int     // indices into Entries, in declared order
	maxInnerTag   Tag       // highest tag declared directly in this shape (not recursing into groups)
}

type tagSlot struct {
	tag  Tag
	slot int
}

// Build flattens entries into a Shape, deriving slotOf and requiredSlots.
// It fails if two entries share a tag id (spec §4.1).
func Build(name string, msgType MsgType, entries ...Entry) (*Shape, error) {
	s := &Shape{Name: name, MsgType: msgType, Entries: entries}

	s.slotOf = make([]tagSlot, 0, len(entries))
	for i, e := range entries {
		for _, existing := range s.slotOf {
			if existing.tag == e.Tag {
				return nil, &DuplicateTagError{Shape: name, Tag: e.Tag}
			}
		}
		s.slotOf = append(s.slotOf, tagSlot{tag: e.Tag, slot: i})
		if e.Tag > s.maxInnerTag {
			s.maxInnerTag = e.Tag
		}
	}
	sort.Slice(s.slotOf, func(i, j int) bool { return s.slotOf[i].tag < s.slotOf[j].tag })

	for i := range entries {
		if entries[i].Required {
			entries[i].requiredBit = len(s.requiredSlots)
			s.requiredSlots = append(s.requiredSlots, i)
		} else {
			entries[i].requiredBit = -1
		}
	}

	return s, nil
}

// MustBuild is Build, panicking on error. Schema definitions are meant to
// be constructed once at package-init time, the same way regexp.MustCompile
// or template.Must turn a definition-time error into a startup panic rather
// than a runtime error threaded through every caller.
func MustBuild(name string, msgType MsgType, entries ...Entry) *Shape {
	s, err := Build(name, msgType, entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// SlotOf returns the index into Entries for tag, and whether it is
// declared in this shape. Implemented as binary search over a sorted
// array, per spec §4.1 and the Open Questions note in §9 ("ship binary
// search").
func (s *Shape) SlotOf(tag Tag) (int, bool) {
	n := len(s.slotOf)
	i := sort.Search(n, func(i int) bool { return s.slotOf[i].tag >= tag })
	if i < n && s.slotOf[i].tag == tag {
		return s.slotOf[i].slot, true
	}
	return 0, false
}

// RequiredSlots returns the indices into Entries that are mandatory, in
// declared order. The caller's required-presence bitmap is indexed by
// position within this slice, not by Entries index.
func (s *Shape) RequiredSlots() []int { return s.requiredSlots }

// RequiredBitFor returns the bit index into a required-presence bitmap for
// the entry at the given Entries index, or -1 if that entry is optional.
func (s *Shape) RequiredBitFor(entryIdx int) int {
	return s.Entries[entryIdx].requiredBit
}

// NumRequired returns the number of required entries (the size R of
// spec §3's required_present bitmap).
func (s *Shape) NumRequired() int { return len(s.requiredSlots) }

// Len returns the slot count N (spec §3).
func (s *Shape) Len() int { return len(s.Entries) }
