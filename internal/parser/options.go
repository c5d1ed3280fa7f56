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

package parser

import "github.com/abc-arbitrage/fixpp/internal/dispatch"

// DefaultMaxGroupDepth bounds repeating-group recursion. Large values
// enable a quadratic-ish DoS vector on adversarial input, per the
// teacher's own MaxDepth option (parse.go); fixpp exposes the same knob
// rather than hard-coding it.
const DefaultMaxGroupDepth = 64

// Options configures a single Parse call (spec §6 "Validation flags").
type Options struct {
	Delimiter        byte
	ValidateChecksum bool
	ValidateLength   bool
	StrictMode       bool
	MaxGroupDepth    int
	Dispatcher       *dispatch.Dispatcher
}
