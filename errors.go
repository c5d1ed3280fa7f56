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
	"github.com/abc-arbitrage/fixpp/internal/parser"
	"github.com/abc-arbitrage/fixpp/internal/serializer"
)

// ParseError is returned by Visit. It implements an Offset() int method,
// mirroring the optional extension the teacher's error.go documents for
// its own errParse type, so callers can locate the offending byte without
// a type switch.
type ParseError = parser.Error

// ParseErrorKind is the taxonomy of parse failures (spec §7).
type ParseErrorKind = parser.ErrorKind

const (
	InvalidVersion      = parser.InvalidVersion
	UnknownMessageType  = parser.UnknownMessageType
	UnknownTag          = parser.UnknownTag
	MalformedField      = parser.MalformedField
	Truncated           = parser.Truncated
	ChecksumMismatch    = parser.ChecksumMismatch
	BodyLengthMismatch  = parser.BodyLengthMismatch
	MissingRequiredFail = parser.MissingRequired
)

// WriteError is returned by Write.
type WriteError = serializer.Error

// WriteErrorKind is the taxonomy of write failures (spec §7).
type WriteErrorKind = serializer.ErrorKind

const (
	WriteMissingRequired = serializer.MissingRequired
	WriteUnknownTag      = serializer.UnknownTag
	WriteBadValue        = serializer.BadValue
)
