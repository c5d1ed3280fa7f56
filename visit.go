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
	"errors"

	"github.com/abc-arbitrage/fixpp/internal/parser"
	"github.com/abc-arbitrage/fixpp/internal/storage"
)

// Message is the view- or owned-storage handle a Visitor callback
// receives for one message (header or body). It is a thin re-export of
// internal/storage.Message's public surface.
type Message = storage.Message

// Visitor is invoked exactly once per successfully parsed frame (spec §5
// "the parser delivers a single visitor callback per frame").
type Visitor func(header, body *Message) error

// Visit parses one complete frame from data and invokes visitor with its
// header and body view storage. Both borrow from data and must not be
// retained past visitor's return (spec §5 "Buffer ownership"); call
// ToOwned on the message if it needs to outlive this call.
//
// A WithDispatcher option is required; Visit returns an error, not a
// runtime panic, if none is supplied.
func Visit(data []byte, visitor Visitor, opts ...ParseOption) error {
	popts := buildParseOptions(opts)
	if popts.Dispatcher == nil {
		return errors.New("fixpp: Visit requires a WithDispatcher option")
	}
	header, body, err := parser.Parse(data, popts)
	if err != nil {
		return err
	}
	return visitor(header, body)
}

// ToOwned promotes a view-storage message (and, recursively, every
// repeating-group record it contains) to independently allocated owned
// storage (spec §4.9).
func ToOwned(m *Message) *Message {
	return m.ToOwned()
}
