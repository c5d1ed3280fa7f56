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

// Package serializer writes a parsed (or hand-built) header/body pair back
// to wire bytes: BodyLength and CheckSum are computed, not supplied by the
// caller (spec §4.6 "Serializing a frame").
package serializer

import (
	"fmt"

	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// ErrorKind is the closed taxonomy of write failures (spec §7).
type ErrorKind int

const (
	_ ErrorKind = iota
	MissingRequired
	UnknownTag
	BadValue
)

func (k ErrorKind) String() string {
	switch k {
	case MissingRequired:
		return "MissingRequired"
	case UnknownTag:
		return "UnknownTag"
	case BadValue:
		return "BadValue"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the concrete error type Write returns.
type Error struct {
	Kind   ErrorKind
	Tag    schema.Tag
	Detail string
	cause  error
}

func (e *Error) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("fixpp: write error %s at tag %d: %s", e.Kind, e.Tag, e.Detail)
	}
	return fmt.Sprintf("fixpp: write error %s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.cause }
