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
	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// Tag is a FIX tag number (spec §3).
type Tag = schema.Tag

// MsgType is a message shape's 1- or 2-character discriminator.
type MsgType = schema.MsgType

// Shape is a compiled, ordered entry list for a message or a repeating
// group's inner record (spec §4.1).
type Shape = schema.Shape

// Entry is one declared position in a Shape: a scalar field or a
// repeating group (spec §3).
type Entry = schema.Entry

// EntryKind distinguishes a scalar Entry from a repeating-group Entry.
type EntryKind = schema.Kind

const (
	EntryField = schema.KindField
	EntryGroup = schema.KindGroup
)

// Kind is a primitive FIX field type (spec §3).
type Kind = field.Kind

const (
	KindInt          = field.Int
	KindChar         = field.Char
	KindBool         = field.Bool
	KindFloat        = field.Float
	KindString       = field.String
	KindData         = field.Data
	KindUTCTimestamp = field.UTCTimestamp
)

// Decimal is the host representation of the FIX Float primitive
// (github.com/shopspring/decimal.Decimal).
type Decimal = field.Decimal

// BuildShape flattens entries into a Shape (spec §4.1). It fails if two
// entries share a tag id.
func BuildShape(name string, msgType MsgType, entries ...schema.Entry) (*Shape, error) {
	return schema.Build(name, msgType, entries...)
}

// Field, DataField, Required, and RepeatingGroup build Entry values for
// BuildShape/MustBuildShape (spec §3).
var (
	Field         = schema.Field
	DataField     = schema.DataField
	Required      = schema.Required
	RepeatingGroup = schema.RepeatingGroup
	Component     = schema.Component
)

// MustBuildShape is BuildShape, panicking on error -- the idiom for
// package-init-time schema definitions.
func MustBuildShape(name string, msgType MsgType, entries ...schema.Entry) *Shape {
	return schema.MustBuild(name, msgType, entries...)
}

// Extend and MustExtend derive a new Shape from base by applying a
// sequence of Changes (spec §4.8).
var (
	Extend     = schema.Extend
	MustExtend = schema.MustExtend
)

// AddTag, ChangeType, and ExtendGroup are the Changes Extend composes.
type (
	AddTag      = schema.AddTag
	ChangeType  = schema.ChangeType
	ExtendGroup = schema.ExtendGroup
)
