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
	"github.com/abc-arbitrage/fixpp/internal/cursor"
	"github.com/abc-arbitrage/fixpp/internal/dispatch"
	"github.com/abc-arbitrage/fixpp/internal/parser"
	"github.com/abc-arbitrage/fixpp/internal/serializer"
)

// ParseOption configures a Visit call. Structs wrapping an apply closure,
// rather than a plain functional-option func, so the option set can grow
// new dimensions without breaking existing call sites -- the same shape
// as the teacher's CompileOption/UnmarshalOption in options.go.
type ParseOption struct{ apply func(*parser.Options) }

// WithDispatcher supplies the version/msgtype -> shape resolver. Every
// Visit call needs one; there is no default.
func WithDispatcher(d *dispatch.Dispatcher) ParseOption {
	return ParseOption{func(o *parser.Options) { o.Dispatcher = d }}
}

// WithDelimiter overrides the wire field delimiter, for test harnesses
// that render frames with '|' instead of SOH (spec §4.3).
func WithDelimiter(delim byte) ParseOption {
	return ParseOption{func(o *parser.Options) { o.Delimiter = delim }}
}

// WithValidateChecksum enables CheckSum verification (spec §4.7).
func WithValidateChecksum(v bool) ParseOption {
	return ParseOption{func(o *parser.Options) { o.ValidateChecksum = v }}
}

// WithValidateLength enables BodyLength verification (spec §4.7).
func WithValidateLength(v bool) ParseOption {
	return ParseOption{func(o *parser.Options) { o.ValidateLength = v }}
}

// WithStrictMode rejects unknown tags with UnknownTag instead of
// capturing them into a message's unparsed map (spec §4.5).
func WithStrictMode(v bool) ParseOption {
	return ParseOption{func(o *parser.Options) { o.StrictMode = v }}
}

// WithMaxGroupDepth bounds repeating-group recursion (default
// parser.DefaultMaxGroupDepth).
func WithMaxGroupDepth(n int) ParseOption {
	return ParseOption{func(o *parser.Options) { o.MaxGroupDepth = n }}
}

func buildParseOptions(opts []ParseOption) parser.Options {
	o := parser.Options{
		Delimiter:     cursor.DefaultDelim,
		MaxGroupDepth: parser.DefaultMaxGroupDepth,
	}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WriteOption configures a Write call.
type WriteOption struct{ apply func(*serializer.Options) }

// WithWriteDelimiter overrides the field delimiter Write emits.
func WithWriteDelimiter(delim byte) WriteOption {
	return WriteOption{func(o *serializer.Options) { o.Delimiter = delim }}
}

func buildWriteOptions(opts []WriteOption) serializer.Options {
	o := serializer.Options{Delimiter: cursor.DefaultDelim}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}
