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

package storage

import (
	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// ToOwned deep-copies m into independently allocated owned storage (spec
// §4.9). Scalar kinds other than String/Data are already host-native
// values with no borrowed backing array, so only String/Data bytes,
// nested group records, and the unparsed overflow map need copying.
func (m *Message) ToOwned() *Message {
	out := New(m.Shape, Owned)
	out.present = m.present.Clone()
	out.requiredPresent = m.requiredPresent.Clone()
	out.unparsed = *m.unparsed.Clone()

	for i, e := range m.Shape.Entries {
		if !m.present.Get(i) {
			continue
		}
		switch e.Kind {
		case schema.KindField:
			v := m.slots[i].value
			if (e.Type == field.String || e.Type == field.Data) && v.Bytes != nil {
				cp := make([]byte, len(v.Bytes))
				copy(cp, v.Bytes)
				v.Bytes = cp
			}
			out.slots[i].value = v
		case schema.KindGroup:
			recs := make([]*Message, len(m.slots[i].records))
			for j, r := range m.slots[i].records {
				recs[j] = r.ToOwned()
			}
			out.slots[i].records = recs
		}
	}
	return out
}
