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

// Package dispatch recognizes the BeginString/MsgType pair at the front of
// a frame and resolves it to a compiled message shape, honoring a
// caller-supplied override set (spec §4.4).
package dispatch

import "encoding/binary"

// Version identifies one of the four BeginString values the codec
// recognizes (spec §6).
type Version string

const (
	FIX42  Version = "FIX.4.2"
	FIX43  Version = "FIX.4.3"
	FIX44  Version = "FIX.4.4"
	FIXT11 Version = "FIXT.1.1"
)

// packable holds the packed-u64 form of every recognized version whose
// BeginString is 7 bytes or shorter, matching spec §4.4: "Versions up to 7
// bytes are compared as packed little-endian u64 for speed; longer
// versions fall back to byte compare."
var packable = map[uint64]Version{
	pack7("FIX.4.2"): FIX42,
	pack7("FIX.4.3"): FIX43,
	pack7("FIX.4.4"): FIX44,
}

// longForm holds versions longer than 7 bytes, compared byte-for-byte.
var longForm = map[string]Version{
	string(FIXT11): FIXT11,
}

func pack7(s string) uint64 {
	return pack7Bytes([]byte(s))
}

func pack7Bytes(b []byte) uint64 {
	if len(b) > 7 {
		panic("dispatch: pack7 called with more than 7 bytes")
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

// Recognize matches raw (the bytes between "8=" and the delimiter) against
// the known BeginString values.
func Recognize(raw []byte) (Version, bool) {
	if len(raw) <= 7 {
		v, ok := packable[pack7Bytes(raw)]
		return v, ok
	}
	v, ok := longForm[string(raw)]
	return v, ok
}
