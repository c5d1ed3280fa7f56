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

// Package dictionary supplies a representative set of compiled message
// shapes -- the "exhaustive tag catalog" spec.md explicitly leaves out of
// scope, reduced to enough shapes to exercise every codec mechanism: a
// session message, a repeating group, a nested repeating group, and a
// market-data body with required and optional entries side by side.
package dictionary

import (
	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// StandardHeaderEntries returns a fresh copy of the header entries shared
// by FIX.4.2, FIX.4.3, FIX.4.4, and FIXT.1.1 session messages. It must
// return a fresh slice on every call: schema.Build mutates each Entry's
// requiredBit in place, so sharing one backing array across the four
// per-version header shapes would let the last Build silently clobber the
// others.
func StandardHeaderEntries() []schema.Entry {
	return []schema.Entry{
		schema.Field(schema.BeginStringTag, field.String),
		schema.Field(schema.BodyLengthTag, field.Int),
		schema.Field(schema.MsgTypeTag, field.String),
		schema.Required(schema.Field(34, field.Int)),    // MsgSeqNum
		schema.Required(schema.Field(49, field.String)), // SenderCompID
		schema.Required(schema.Field(56, field.String)), // TargetCompID
		schema.Required(schema.Field(52, field.UTCTimestamp)), // SendingTime
		schema.Field(43, field.Bool),          // PossDupFlag
		schema.Field(122, field.UTCTimestamp), // OrigSendingTime
	}
}

func newHeaderShape() *schema.Shape {
	return schema.MustBuild("StandardHeader", "", StandardHeaderEntries()...)
}

// HeaderShape builds a fresh StandardHeader shape, for callers assembling
// messages by hand against the default registry (e.g. tests, or a session
// layer built on top of this package).
func HeaderShape() *schema.Shape {
	return newHeaderShape()
}
