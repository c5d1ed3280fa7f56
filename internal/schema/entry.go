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

import "github.com/abc-arbitrage/fixpp/internal/field"

// Entry is one declared position in a message shape: a scalar field or a
// repeating group. Component blocks are not a distinct Entry kind in this
// implementation -- per spec §4.1 they are "a named macro that expands
// inline into the parent's entry list during flattening", and in Go the
// natural equivalent of that expansion is a function returning []Entry
// that the caller splices into its own entry list with append. See
// Component below.
type Entry struct {
	Kind Kind
	Tag  Tag

	// Field-only:
	Type          field.Kind
	DataLengthTag Tag // for Type==field.Data, the tag carrying the byte count; 0 if none

	// Required marks this entry (field or group-count) as mandatory.
	Required bool

	// Group-only:
	Group *Group

	// requiredBit is resolved by Build/compile: index into the owning
	// shape's required-bitmap, or -1 if this entry is optional.
	requiredBit int
}

// Group describes a repeating group's inner shape: an ordered list of
// entries, the first of which is the group's declared leading tag. The
// parser does not require a record to start with that tag: a repeat of
// any declared inner tag starts the next record.
type Group struct {
	Inner *Shape
}

// Field builds a scalar Entry for an optional field.
func Field(tag Tag, kind field.Kind) Entry {
	return Entry{Kind: KindField, Tag: tag, Type: kind, requiredBit: -1}
}

// DataField builds a Data-typed Entry whose length is carried by
// lengthTag, a field that must appear earlier in the same shape (FIX's
// length-prefixed binary encoding, spec §3).
func DataField(tag Tag, lengthTag Tag) Entry {
	return Entry{Kind: KindField, Tag: tag, Type: field.Data, DataLengthTag: lengthTag, requiredBit: -1}
}

// Required marks an already-built Entry as mandatory, mirroring the
// source's Required<Tag> wrapper (spec §3, §4.1). It is a wrapper, not a
// new field kind, so it composes with Field, DataField, and RepeatingGroup
// equally -- including when an entry has already been inlined from a
// Component (supplemented feature; see SPEC_FULL.md).
func Required(e Entry) Entry {
	e.Required = true
	return e
}

// RepeatingGroup builds a group Entry. countTag carries the record count
// on the wire; inner is the group's own (flattened) entry list, in
// declared order, whose first entry is the nominal leading tag; record
// boundaries are detected by a repeat of any declared inner tag (spec §3,
// §4.5).
func RepeatingGroup(countTag Tag, inner ...Entry) Entry {
	shape, err := Build(fmtGroupName(countTag), "", inner...)
	if err != nil {
		panic(err)
	}
	return Entry{Kind: KindGroup, Tag: countTag, Group: &Group{Inner: shape}, requiredBit: -1}
}

func fmtGroupName(tag Tag) string {
	return "group<" + itoa(int(tag)) + ">"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Component returns its arguments unchanged. It exists purely so schema
// definitions can name a reusable subsequence of entries (e.g.
// InstrumentBlock()) the same way the source's ComponentBlock<...> does,
// documenting intent at the call site even though, unlike the source,
// Go's append-based flattening needs no separate expansion pass.
func Component(entries ...Entry) []Entry {
	return entries
}
