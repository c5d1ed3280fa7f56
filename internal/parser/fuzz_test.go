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

package parser_test

import (
	"testing"

	"github.com/abc-arbitrage/fixpp/internal/parser"
)

// FuzzParse throws arbitrary bytes at Parse under every validation flag
// combination. Parse must never panic, regardless of how malformed or
// truncated the input is; a malformed frame is always reported as an
// error value, never a crash.
func FuzzParse(f *testing.F) {
	f.Add([]byte("8=FIX.4.2\x019=1\x0135=A\x0134=1\x0149=ABC\x0198=0\x01108=60\x0110=000\x01"))
	f.Add([]byte("8=FIX.4.2\x019=1\x0135=B\x01384=2\x01372=TEST\x01385=C\x01372=MD\x0110=000\x01"))
	f.Add([]byte(""))
	f.Add([]byte("8=FIX.4.2"))
	f.Add([]byte("\x01\x01\x01\x01"))

	dispatcher := testDispatcher(f, logonShape(), newsShape(), nestedGroupShape())

	f.Fuzz(func(t *testing.T, b []byte) {
		for _, opts := range []parser.Options{
			{Delimiter: '\x01', MaxGroupDepth: parser.DefaultMaxGroupDepth, Dispatcher: dispatcher},
			{Delimiter: '\x01', MaxGroupDepth: parser.DefaultMaxGroupDepth, Dispatcher: dispatcher, StrictMode: true},
			{Delimiter: '\x01', MaxGroupDepth: parser.DefaultMaxGroupDepth, Dispatcher: dispatcher, ValidateChecksum: true, ValidateLength: true},
		} {
			_, _, _ = parser.Parse(b, opts)
		}
	})
}
