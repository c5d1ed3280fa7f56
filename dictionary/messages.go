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

// News builds the "B" message shape, carrying the NoMsgTypes repeating
// group spec.md scenario S2 exercises: two records, the second omitting
// the optional inner field.
func News() *schema.Shape {
	return schema.MustBuild("News", "B",
		schema.Required(schema.Field(148, field.String)), // Headline
		schema.RepeatingGroup(384, // NoMsgTypes
			schema.Required(schema.Field(372, field.String)), // RefMsgType (leading)
			schema.Field(385, field.Char),                    // MsgDirection
		),
	)
}

// NewOrderSingle builds the "D" message shape, carrying a nested
// repeating group (NoUnderlyings containing NoUnderlyingSecurityAltID)
// exercising spec.md scenario S3.
func NewOrderSingle() *schema.Shape {
	return schema.MustBuild("NewOrderSingle", "D",
		schema.Required(schema.Field(11, field.String)), // ClOrdID
		schema.Field(21, field.Char),                     // HandlInst
		schema.Required(schema.Field(55, field.String)),  // Symbol
		schema.Required(schema.Field(54, field.Char)),    // Side
		schema.Required(schema.Field(38, field.Float)),   // OrderQty
		schema.Required(schema.Field(40, field.Char)),    // OrdType
		schema.Field(44, field.Float),                     // Price
		schema.Required(schema.Field(60, field.UTCTimestamp)), // TransactTime
		schema.RepeatingGroup(711, // NoUnderlyings
			schema.Required(schema.Field(311, field.String)), // UnderlyingSymbol (leading)
			schema.RepeatingGroup(457, // NoUnderlyingSecurityAltID
				schema.Required(schema.Field(458, field.String)), // UnderlyingSecurityAltID (leading)
				schema.Field(459, field.String),                  // UnderlyingSecurityAltIDSource
			),
		),
	)
}

// MarketDataSnapshotFullRefresh builds the "W" message shape used by
// spec.md scenario S6 (write-then-parse round trip).
func MarketDataSnapshotFullRefresh() *schema.Shape {
	return schema.MustBuild("MarketDataSnapshotFullRefresh", "W",
		schema.Required(schema.Field(55, field.String)), // Symbol
		schema.RepeatingGroup(268, // NoMDEntries
			schema.Required(schema.Field(269, field.Char)), // MDEntryType (leading)
			schema.Field(270, field.Float),                 // MDEntryPx
			schema.Field(271, field.Float),                 // MDEntrySize
		),
	)
}
