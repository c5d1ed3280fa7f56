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

import "strconv"

// AppendText appends the canonical textual representation of v to dst and
// returns the extended slice. This is the inverse of Parse.
func AppendText(dst []byte, v Value) []byte {
	switch v.Kind {
	case Int:
		return strconv.AppendInt(dst, v.Int, 10)
	case Char:
		return append(dst, v.Char)
	case Bool:
		if v.Bool {
			return append(dst, 'Y')
		}
		return append(dst, 'N')
	case Float:
		return append(dst, v.Dec.String()...)
	case String, Data:
		return append(dst, v.Bytes...)
	case UTCTimestamp:
		return v.Time.UTC().AppendFormat(dst, "20060102-15:04:05.000")
	default:
		return dst
	}
}
