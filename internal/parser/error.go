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

// Package parser implements the FIX frame scanner: header/body
// classification, repeating-group recursion, and checksum/length
// validation (spec §4.5).
package parser

import (
	"fmt"

	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// ErrorKind is the closed taxonomy of parse failures from spec §7,
// mirrored on the errCode enum the teacher's error.go builds its errParse
// type around.
type ErrorKind int

const (
	_ ErrorKind = iota
	InvalidVersion
	UnknownMessageType
	UnknownTag
	MalformedField
	Truncated
	ChecksumMismatch
	BodyLengthMismatch
	MissingRequired
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidVersion:
		return "InvalidVersion"
	case UnknownMessageType:
		return "UnknownMessageType"
	case UnknownTag:
		return "UnknownTag"
	case MalformedField:
		return "MalformedField"
	case Truncated:
		return "Truncated"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case BodyLengthMismatch:
		return "BodyLengthMismatch"
	case MissingRequired:
		return "MissingRequired"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the concrete error type returned by Parse. It carries the
// offending tag id (when there is one) and the byte offset into the input
// at which the failure was detected (spec §7: "offending tag id or byte
// offset").
type Error struct {
	Kind       ErrorKind
	Tag        schema.Tag // 0 if not tag-specific
	ByteOffset int
	Detail     string // e.g. expected vs. actual for checksum/length mismatches
	cause      error
}

// Offset implements the optional `Offset() int` extension the teacher's
// error.go documents for its own parse errors.
func (e *Error) Offset() int { return e.ByteOffset }

func (e *Error) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("fixpp: parse error %s at tag %d, offset %d: %s", e.Kind, e.Tag, e.ByteOffset, e.Detail)
	}
	return fmt.Sprintf("fixpp: parse error %s at offset %d: %s", e.Kind, e.ByteOffset, e.Detail)
}

func (e *Error) Unwrap() error { return e.cause }
