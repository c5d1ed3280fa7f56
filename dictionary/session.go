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

package dictionary

import (
	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// The shapes in this file are the framing-level session messages every FIX
// engine exchanges regardless of application domain. Parsing/writing them
// is in scope; orchestrating a session state machine around them (resend
// logic, sequence-number bookkeeping, logon handshakes) is not -- these
// are shapes, not a session layer.

// Logon builds the "A" message shape: EncryptMethod/HeartBtInt required,
// an optional ResetSeqNumFlag, and an optional length-prefixed RawData
// pair (95/96) exercising the Data primitive.
func Logon() *schema.Shape {
	return schema.MustBuild("Logon", "A",
		schema.Required(schema.Field(98, field.Int)),  // EncryptMethod
		schema.Required(schema.Field(108, field.Int)), // HeartBtInt
		schema.Field(141, field.Bool),                 // ResetSeqNumFlag
		schema.Field(95, field.Int),                   // RawDataLength
		schema.DataField(96, 95),                       // RawData
	)
}

// Heartbeat builds the "0" message shape.
func Heartbeat() *schema.Shape {
	return schema.MustBuild("Heartbeat", "0",
		schema.Field(112, field.String), // TestReqID
	)
}

// TestRequest builds the "1" message shape.
func TestRequest() *schema.Shape {
	return schema.MustBuild("TestRequest", "1",
		schema.Required(schema.Field(112, field.String)), // TestReqID
	)
}

// ResendRequest builds the "2" message shape.
func ResendRequest() *schema.Shape {
	return schema.MustBuild("ResendRequest", "2",
		schema.Required(schema.Field(7, field.Int)),  // BeginSeqNo
		schema.Required(schema.Field(16, field.Int)), // EndSeqNo
	)
}

// Reject builds the "3" message shape.
func Reject() *schema.Shape {
	return schema.MustBuild("Reject", "3",
		schema.Required(schema.Field(45, field.Int)), // RefSeqNum
		schema.Field(371, field.Int),                 // RefTagID
		schema.Field(372, field.String),               // RefMsgType
		schema.Field(373, field.Int),                  // SessionRejectReason
		schema.Field(58, field.String),                 // Text
	)
}

// SequenceReset builds the "4" message shape.
func SequenceReset() *schema.Shape {
	return schema.MustBuild("SequenceReset", "4",
		schema.Field(123, field.Bool),                 // GapFillFlag
		schema.Required(schema.Field(36, field.Int)),  // NewSeqNo
	)
}

// Logout builds the "5" message shape.
func Logout() *schema.Shape {
	return schema.MustBuild("Logout", "5",
		schema.Field(58, field.String), // Text
	)
}
