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

// Package field implements the primitive FIX field types: their textual
// encoding and their parse routines over a (ptr, len) byte view.
//
// Every value in the codec, scalar or group, ultimately bottoms out in one
// of the kinds declared here. A Kind is a pure compile-time tag; it carries
// no state of its own.
package field

import "fmt"

// Kind identifies one of the primitive FIX field types named in spec §3.
type Kind uint8

const (
	// Invalid is the zero Kind; no schema entry should ever carry it.
	Invalid Kind = iota
	Int
	Char
	Bool
	Float
	String
	Data
	UTCTimestamp
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Char:
		return "Char"
	case Bool:
		return "Bool"
	case Float:
		return "Float"
	case String:
		return "String"
	case Data:
		return "Data"
	case UTCTimestamp:
		return "UTCTimestamp"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// GoType is the host-language representation each Kind parses into. It is
// exported purely for documentation; the schema package encodes this
// mapping at compile time via the generic accessors in internal/storage.
func (k Kind) GoType() string {
	switch k {
	case Int:
		return "int64"
	case Char:
		return "byte"
	case Bool:
		return "bool"
	case Float:
		return "Decimal"
	case String:
		return "string"
	case Data:
		return "[]byte"
	case UTCTimestamp:
		return "time.Time"
	default:
		return "invalid"
	}
}
