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

import "github.com/abc-arbitrage/fixpp/internal/schema"

// GroupBuilder is returned by CreateGroup (spec §4.2 create_group<T>(m,
// hint)): it reserves capacity for a repeating group's inner records and
// exposes Instance/Add/Len.
type GroupBuilder struct {
	msg   *Message
	idx   int
	inner *schema.Shape
}

// CreateGroup reserves capacity for tag's repeating group and returns a
// builder. The group's count-tag presence bit is set immediately: an
// empty group (hint==0, zero records ever added) is still a valid,
// present, zero-length group on the wire (spec §8, "Empty repeating group
// (N=0) is accepted").
func (m *Message) CreateGroup(tag schema.Tag, hint int) (*GroupBuilder, error) {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return nil, err
	}
	e := m.Shape.Entries[idx]
	if e.Kind != schema.KindGroup {
		return nil, &KindMismatchError{Tag: tag, Declared: e.Type, Wanted: "Group"}
	}
	if m.slots[idx].records == nil {
		m.slots[idx].records = make([]*Message, 0, hint)
	}
	m.markPresent(idx)
	return &GroupBuilder{msg: m, idx: idx, inner: e.Group.Inner}, nil
}

// Instance returns a new, empty inner record for this group, in the same
// storage mode (view/owned) as the parent message (spec §3 "A view
// record inside a repeating group shares the parent's buffer lifetime").
func (b *GroupBuilder) Instance() *Message {
	return New(b.inner, b.msg.Mode)
}

// Add appends rec to the group. It fails with MissingRequiredError if
// rec's required fields are not all present (spec §4.2).
func (b *GroupBuilder) Add(rec *Message) error {
	if !rec.RequiredPresent() {
		return &MissingRequiredError{Shape: rec.Shape.Name, Tags: rec.MissingRequiredTags()}
	}
	b.msg.slots[b.idx].records = append(b.msg.slots[b.idx].records, rec)
	return nil
}

// Len returns the number of records added so far.
func (b *GroupBuilder) Len() int { return len(b.msg.slots[b.idx].records) }

// Group returns the parsed/appended records for tag (spec §8 property 3:
// group cardinality). Fails with AbsentFieldError if the group was never
// created/parsed.
func (m *Message) Group(tag schema.Tag) ([]*Message, error) {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return nil, err
	}
	if m.Shape.Entries[idx].Kind != schema.KindGroup {
		return nil, &KindMismatchError{Tag: tag, Declared: m.Shape.Entries[idx].Type, Wanted: "Group"}
	}
	if !m.present.Get(idx) {
		return nil, &AbsentFieldError{Tag: tag}
	}
	return m.slots[idx].records, nil
}
