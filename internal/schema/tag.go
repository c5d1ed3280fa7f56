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

// Package schema implements the FIX schema DSL: tags, message shapes,
// component-block flattening, and the compiled lookup tables (tag->slot,
// required-slot list) that the parser and serializer index into directly,
// with no per-message dictionary lookup on the hot path.
package schema

import "fmt"

// Tag is a FIX tag number, e.g. 35 for MsgType. A Tag carries no runtime
// state of its own; it is a key into a Shape's compiled tables.
type Tag int

// MsgType is the 1- or 2-character discriminator that identifies a message
// shape within a version (e.g. "D", "AG").
type MsgType string

// BeginString, BodyLength, MsgType and CheckSum are the framing tags the
// parser and serializer treat specially regardless of shape (spec §4.5,
// §4.6).
const (
	BeginStringTag Tag = 8
	BodyLengthTag  Tag = 9
	MsgTypeTag     Tag = 35
	CheckSumTag    Tag = 10
)

// Kind distinguishes the two entry shapes a Shape can be built from.
type Kind uint8

const (
	KindField Kind = iota
	KindGroup
)

func (k Kind) String() string {
	if k == KindGroup {
		return "Group"
	}
	return "Field"
}

// DuplicateTagError is returned by Build when two entries in the same
// (sub-)shape declare the same tag id; spec §4.1 requires this be rejected
// at schema-definition time.
type DuplicateTagError struct {
	Shape string
	Tag   Tag
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("schema: shape %q declares tag %d more than once", e.Shape, e.Tag)
}
