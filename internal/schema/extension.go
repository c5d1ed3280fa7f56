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
	"fmt"

	"github.com/abc-arbitrage/fixpp/internal/field"
)

// Change is one rewrite in an extension pipeline (spec §4.8). Changes
// compose left-to-right via Extend.
type Change interface {
	apply(entries []Entry) ([]Entry, error)
}

// AddTag appends a new Entry to the end of a shape's flattened entry list.
type AddTag struct{ Entry Entry }

func (c AddTag) apply(entries []Entry) ([]Entry, error) {
	if _, ok := findTag(entries, c.Entry.Tag); ok {
		return nil, fmt.Errorf("schema: AddTag: tag %d already present", c.Entry.Tag)
	}
	out := make([]Entry, len(entries), len(entries)+1)
	copy(out, entries)
	return append(out, c.Entry), nil
}

// ChangeType rebinds the primitive type of the entry carrying Tag.
type ChangeType struct {
	Tag  Tag
	Type field.Kind
}

func (c ChangeType) apply(entries []Entry) ([]Entry, error) {
	idx, ok := findTag(entries, c.Tag)
	if !ok {
		return nil, fmt.Errorf("schema: ChangeType: tag %d not present", c.Tag)
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	out[idx].Type = c.Type
	return out, nil
}

// ExtendGroup appends NewInner to the inner shape of the RepeatingGroup
// whose count tag is Group.
type ExtendGroup struct {
	Group    Tag
	NewInner []Entry
}

func (c ExtendGroup) apply(entries []Entry) ([]Entry, error) {
	idx, ok := findTag(entries, c.Group)
	if !ok || entries[idx].Kind != KindGroup {
		return nil, fmt.Errorf("schema: ExtendGroup: no group with count tag %d", c.Group)
	}
	out := make([]Entry, len(entries))
	copy(out, entries)

	innerEntries := append(append([]Entry{}, out[idx].Group.Inner.Entries...), c.NewInner...)
	shape, err := Build(out[idx].Group.Inner.Name, "", innerEntries...)
	if err != nil {
		return nil, err
	}
	out[idx].Group = &Group{Inner: shape}
	return out, nil
}

func findTag(entries []Entry, tag Tag) (int, bool) {
	for i, e := range entries {
		if e.Tag == tag {
			return i, true
		}
	}
	return 0, false
}

// Extend derives a new Shape from base by applying changes in order,
// keeping base's MsgType (an override must carry the same MsgType
// discriminator as the shape it replaces; spec §4.4 "statically enforced" --
// here enforced by construction, since Extend never lets the caller set a
// different MsgType).
func Extend(base *Shape, name string, changes ...Change) (*Shape, error) {
	entries := append([]Entry{}, base.Entries...)
	var err error
	for _, c := range changes {
		entries, err = c.apply(entries)
		if err != nil {
			return nil, fmt.Errorf("schema: extending %q: %w", base.Name, err)
		}
	}
	return Build(name, base.MsgType, entries...)
}

// MustExtend is Extend, panicking on error.
func MustExtend(base *Shape, name string, changes ...Change) *Shape {
	s, err := Extend(base, name, changes...)
	if err != nil {
		panic(err)
	}
	return s
}
