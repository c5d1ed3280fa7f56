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

// Package storage implements per-shape message storage (spec §3): slot
// cells in declared order, a presence bitmap, a required-presence bitmap,
// and an overflow map for unknown tags -- in both "view" (borrows from an
// input frame) and "owned" (independently allocated) flavors.
package storage

import (
	"fmt"

	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
	"github.com/abc-arbitrage/fixpp/internal/tagmap"
)

// Mode distinguishes view storage (borrows from an input buffer; spec §3
// "Lifecycle") from owned storage (independently allocated).
type Mode uint8

const (
	View Mode = iota
	Owned
)

// slot is one storage cell. A KindField entry occupies Value; a KindGroup
// entry occupies Records, one inner *Message per parsed/appended record.
type slot struct {
	value   field.Value
	records []*Message
}

// Message is the per-shape storage described by spec §3.
type Message struct {
	Shape *schema.Shape
	Mode  Mode

	slots           []slot
	present         Bitset
	requiredPresent Bitset
	unparsed        tagmap.Map
}

// New allocates empty storage for shape in the given mode.
func New(shape *schema.Shape, mode Mode) *Message {
	return &Message{
		Shape:           shape,
		Mode:            mode,
		slots:           make([]slot, shape.Len()),
		present:         NewBitset(shape.Len()),
		requiredPresent: NewBitset(shape.NumRequired()),
	}
}

// AbsentFieldError is returned by a typed getter when the field's presence
// bit is clear (spec §7 AbsentField{tag}).
type AbsentFieldError struct{ Tag schema.Tag }

func (e *AbsentFieldError) Error() string {
	return fmt.Sprintf("storage: tag %d is absent", e.Tag)
}

// UndeclaredTagError is returned when a caller names a tag that is not
// part of the message's shape (spec §4.2: "Out-of-schema tag is a
// compile-time error" -- approximated here as a returned error rather than
// a panic, since Go has no way to reject an arbitrary int Tag value at
// compile time without code generation).
type UndeclaredTagError struct {
	Shape string
	Tag   schema.Tag
}

func (e *UndeclaredTagError) Error() string {
	return fmt.Sprintf("storage: tag %d is not declared in shape %q", e.Tag, e.Shape)
}

// slotIndex resolves tag to a slot index, or returns UndeclaredTagError.
func (m *Message) slotIndex(tag schema.Tag) (int, error) {
	idx, ok := m.Shape.SlotOf(tag)
	if !ok {
		return 0, &UndeclaredTagError{Shape: m.Shape.Name, Tag: tag}
	}
	return idx, nil
}

// markPresent sets the presence bit for idx, and the corresponding
// required-presence bit if the entry is required.
func (m *Message) markPresent(idx int) {
	m.present.Set(idx, true)
	if bit := m.Shape.RequiredBitFor(idx); bit >= 0 {
		m.requiredPresent.Set(bit, true)
	}
}

// Present reports whether tag's slot has been assigned.
func (m *Message) Present(tag schema.Tag) bool {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return false
	}
	return m.present.Get(idx)
}

// RequiredPresent reports whether every required entry has been assigned
// (spec §4.6: serialization fails with MissingRequired if not).
func (m *Message) RequiredPresent() bool { return m.requiredPresent.All() }

// MissingRequiredTags returns the tag ids of every required entry that is
// not yet present, for a MissingRequired error.
func (m *Message) MissingRequiredTags() []schema.Tag {
	slots := m.Shape.RequiredSlots()
	var missing []schema.Tag
	for bit, entryIdx := range slots {
		if !m.requiredPresent.Get(bit) {
			missing = append(missing, m.Shape.Entries[entryIdx].Tag)
		}
	}
	return missing
}

// Unparsed returns the overflow map of unknown tags captured during
// parsing (spec §3 "unparsed").
func (m *Message) Unparsed() *tagmap.Map { return &m.unparsed }

// CountPresent returns the number of slots with their presence bit set
// (spec §8 property 2: bitmap consistency).
func (m *Message) CountPresent() int { return m.present.CountOnes() }

// MissingRequiredError is returned at serialize time (spec §4.6), or when
// appending an incomplete record to a repeating group (spec §4.2
// create_group(...).add "validates the record's required_present is
// full").
type MissingRequiredError struct {
	Shape string
	Tags  []schema.Tag
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("storage: shape %q is missing required tags %v", e.Shape, e.Tags)
}
