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

import "github.com/abc-arbitrage/fixpp/internal/dispatch"

// Version identifies one of the four BeginString values the codec
// recognizes (spec §6).
type Version = dispatch.Version

const (
	FIX42  = dispatch.FIX42
	FIX43  = dispatch.FIX43
	FIX44  = dispatch.FIX44
	FIXT11 = dispatch.FIXT11
)

// Dictionary is a version's registry of message shapes.
type Dictionary = dispatch.Dictionary

// NewDictionary builds a Dictionary, failing if two body shapes declare
// the same MsgType.
func NewDictionary(version Version, header *Shape, bodies ...*Shape) (*Dictionary, error) {
	return dispatch.NewDictionary(version, header, bodies...)
}

// Override replaces a version's default shape for a given MsgType with a
// caller-supplied one (spec §4.4).
type Override = dispatch.Override

// Dispatcher resolves (version, msgtype) pairs to shapes, preferring a
// caller override over a version's default dictionary entry.
type Dispatcher = dispatch.Dispatcher

// NewDispatcher builds a Dispatcher over registry, applying overrides.
func NewDispatcher(registry map[Version]*Dictionary, overrides ...Override) (*Dispatcher, error) {
	return dispatch.NewDispatcher(registry, overrides...)
}
