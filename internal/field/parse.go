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

package field

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMalformed is returned by Parse when raw does not match the textual
// grammar of kind. Callers should attach the offending tag id; see
// fixpp.ParseError.
type ErrMalformed struct {
	Kind Kind
	Raw  []byte
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("field: malformed %s value %q", e.Kind, e.Raw)
}

// Parse converts raw (the bytes between '=' and the delimiter) into a
// Value of the given kind. For String and Data, raw is retained as-is
// (borrowed); the caller decides whether to copy it when promoting to
// owned storage.
func Parse(kind Kind, raw []byte) (Value, error) {
	switch kind {
	case Int:
		n, err := parseInt(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: Int, Int: n}, nil
	case Char:
		if len(raw) != 1 {
			return Value{}, &ErrMalformed{Kind: Char, Raw: raw}
		}
		return Value{Kind: Char, Char: raw[0]}, nil
	case Bool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: Bool, Bool: b}, nil
	case Float:
		d, err := decimal.NewFromString(string(raw))
		if err != nil {
			return Value{}, &ErrMalformed{Kind: Float, Raw: raw}
		}
		return Value{Kind: Float, Dec: d}, nil
	case String:
		return Value{Kind: String, Bytes: raw}, nil
	case Data:
		return Value{Kind: Data, Bytes: raw}, nil
	case UTCTimestamp:
		t, err := parseUTCTimestamp(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: UTCTimestamp, Time: t}, nil
	default:
		return Value{}, fmt.Errorf("field: unknown kind %v", kind)
	}
}

func parseInt(raw []byte) (int64, error) {
	if len(raw) == 0 {
		return 0, &ErrMalformed{Kind: Int, Raw: raw}
	}
	neg := false
	i := 0
	if raw[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(raw) {
		return 0, &ErrMalformed{Kind: Int, Raw: raw}
	}
	var v int64
	for ; i < len(raw); i++ {
		d := raw[i]
		if d < '0' || d > '9' {
			return 0, &ErrMalformed{Kind: Int, Raw: raw}
		}
		v = v*10 + int64(d-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

func parseBool(raw []byte) (bool, error) {
	if len(raw) == 1 {
		switch raw[0] {
		case 'Y':
			return true, nil
		case 'N':
			return false, nil
		}
	}
	return false, &ErrMalformed{Kind: Bool, Raw: raw}
}

// utcLayouts covers both the with- and without-milliseconds forms of
// YYYYMMDD-HH:MM:SS[.sss], always interpreted as UTC per spec §3.
var utcLayouts = [...]string{
	"20060102-15:04:05.000",
	"20060102-15:04:05",
}

func parseUTCTimestamp(raw []byte) (time.Time, error) {
	for _, layout := range utcLayouts {
		if len(layout) != len(raw) {
			continue
		}
		t, err := time.Parse(layout, string(raw))
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ErrMalformed{Kind: UTCTimestamp, Raw: raw}
}
