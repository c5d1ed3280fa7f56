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

import "github.com/abc-arbitrage/fixpp/internal/serializer"

// Write renders header and body owned storage into one complete wire
// frame. BodyLength and CheckSum are computed, never read from header/
// body; callers never set tags 9 or 10 themselves (spec §4.6).
func Write(header, body *Message, opts ...WriteOption) ([]byte, error) {
	wopts := buildWriteOptions(opts)
	return serializer.Write(header, body, wopts)
}
