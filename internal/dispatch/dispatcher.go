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

package dispatch

import (
	"fmt"

	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// Dictionary is a version's registry of message shapes: one Header shape
// shared by every message, and a MsgType-keyed map of body shapes.
type Dictionary struct {
	Version Version
	Header  *schema.Shape
	Bodies  map[schema.MsgType]*schema.Shape
}

// NewDictionary builds a Dictionary, failing if two body shapes declare the
// same MsgType.
func NewDictionary(version Version, header *schema.Shape, bodies ...*schema.Shape) (*Dictionary, error) {
	d := &Dictionary{Version: version, Header: header, Bodies: make(map[schema.MsgType]*schema.Shape, len(bodies))}
	for _, b := range bodies {
		if _, ok := d.Bodies[b.MsgType]; ok {
			return nil, fmt.Errorf("dispatch: version %s declares MsgType %q more than once", version, b.MsgType)
		}
		d.Bodies[b.MsgType] = b
	}
	return d, nil
}

// UnknownVersionError is returned when BeginString does not match any
// recognized version (spec §7 InvalidVersion).
type UnknownVersionError struct{ Value string }

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("dispatch: unrecognized BeginString %q", e.Value)
}

// UnknownMessageTypeError is returned when no shape matches (version,
// msgtype) (spec §7 UnknownMessageType).
type UnknownMessageTypeError struct {
	Version Version
	MsgType schema.MsgType
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("dispatch: no shape for MsgType %q under %s", e.MsgType, e.Version)
}

// Override is one (version, msgtype) -> replacement shape entry in a
// caller's override set (spec §4.4, §6). The replacement must carry the
// same MsgType discriminator as whatever it's meant to replace.
type Override struct {
	Version Version
	MsgType schema.MsgType
	Shape   *schema.Shape
}

// Dispatcher resolves (version, msgtype) pairs to shapes, preferring a
// caller override over a version's default dictionary entry (spec §4.4
// steps 1-3).
type Dispatcher struct {
	registry  map[Version]*Dictionary
	overrides map[overrideKey]*schema.Shape
}

type overrideKey struct {
	version Version
	msgtype schema.MsgType
}

// NewDispatcher builds a Dispatcher over registry, applying overrides.
// Returns an error if an override's Shape.MsgType does not match the key
// it is registered under (spec §4.4: "An override must have the same
// MsgType discriminator as the default (statically enforced)").
func NewDispatcher(registry map[Version]*Dictionary, overrides ...Override) (*Dispatcher, error) {
	d := &Dispatcher{registry: registry, overrides: make(map[overrideKey]*schema.Shape, len(overrides))}
	for _, o := range overrides {
		if o.Shape.MsgType != o.MsgType {
			return nil, fmt.Errorf("dispatch: override shape %q has MsgType %q, want %q", o.Shape.Name, o.Shape.MsgType, o.MsgType)
		}
		d.overrides[overrideKey{o.Version, o.MsgType}] = o.Shape
	}
	return d, nil
}

// Dispatch resolves (version, msgtype) to a header shape and a body
// shape, applying overrides before falling back to the version's default
// dictionary entry.
func (d *Dispatcher) Dispatch(version Version, msgtype schema.MsgType) (header, body *schema.Shape, err error) {
	dict, ok := d.registry[version]
	if !ok {
		return nil, nil, &UnknownVersionError{Value: string(version)}
	}
	if override, ok := d.overrides[overrideKey{version, msgtype}]; ok {
		return dict.Header, override, nil
	}
	if b, ok := dict.Bodies[msgtype]; ok {
		return dict.Header, b, nil
	}
	return nil, nil, &UnknownMessageTypeError{Version: version, MsgType: msgtype}
}
