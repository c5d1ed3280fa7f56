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

package fixpp

import (
	"github.com/abc-arbitrage/fixpp/internal/schema"
	"github.com/abc-arbitrage/fixpp/internal/storage"
)

// Scalar enumerates the host types Set/Get/TryGet bind to -- the Go
// generic equivalent of the source's set<T>/get<T> template parameter
// (spec §4.2).
type Scalar = storage.Scalar

// NewMessage allocates empty owned storage for building a message by
// hand, e.g. ahead of a Write call.
func NewMessage(shape *schema.Shape) *Message {
	return storage.New(shape, storage.Owned)
}

// Set stores v under tag in m, converting it to tag's declared kind.
func Set[T Scalar](m *Message, tag Tag, v T) error {
	return storage.Set[T](m, tag, v)
}

// Get returns the value stored for tag, failing with AbsentField if the
// slot has not been assigned.
func Get[T Scalar](m *Message, tag Tag) (T, error) {
	return storage.Get[T](m, tag)
}

// TryGet is Get, reporting ok=false instead of an error when the slot is
// absent or of the wrong kind.
func TryGet[T Scalar](m *Message, tag Tag) (out T, ok bool) {
	return storage.TryGet[T](m, tag)
}

// View returns the raw byte view for a String or Data tag.
func View(m *Message, tag Tag) ([]byte, error) {
	return storage.View(m, tag)
}

// CreateGroup reserves capacity for tag's repeating group on m and
// returns a builder exposing Instance/Add/Len (spec §4.2
// create_group<T>).
func CreateGroup(m *Message, tag Tag, hint int) (*GroupBuilder, error) {
	return m.CreateGroup(tag, hint)
}

// GroupBuilder is a thin re-export of internal/storage.GroupBuilder.
type GroupBuilder = storage.GroupBuilder

// Group returns the parsed/appended records for tag.
func Group(m *Message, tag Tag) ([]*Message, error) {
	return m.Group(tag)
}
