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

package field

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decimal is the host representation of the FIX Float primitive. A plain
// float64 cannot round-trip prices and quantities exactly, so, like the
// quickfix-derived trade stores in the retrieval pack, fixpp backs Float
// with shopspring/decimal rather than a built-in numeric type.
type Decimal = decimal.Decimal

// Value is the host-native storage cell for one field slot. Every Kind
// populates exactly one of the typed members below; which one is
// determined by the slot's declared Kind, never inspected dynamically on
// the hot path.
//
// String and Data are the only kinds where "view" and "owned" storage
// differ: in view mode Bytes borrows from the input frame; in owned mode
// it is an independent copy. All other kinds are parsed into host-native
// form at parse time regardless of storage mode, since there is no cheaper
// representation for a fixed-shape scalar than the value itself.
type Value struct {
	Kind  Kind
	Int   int64
	Char  byte
	Bool  bool
	Dec   Decimal
	Bytes []byte // String, Data
	Time  time.Time
}

// AsString returns the String/Data value as a Go string. This allocates a
// copy even in view mode, since Go strings are immutable; callers on a
// latency-sensitive path that only need to compare or scan bytes should use
// Bytes directly instead.
func (v Value) AsString() string { return string(v.Bytes) }
