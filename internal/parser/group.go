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

import (
	"github.com/abc-arbitrage/fixpp/internal/cursor"
	"github.com/abc-arbitrage/fixpp/internal/schema"
	"github.com/abc-arbitrage/fixpp/internal/storage"
)

// parseGroup scans hint records of entry's inner shape into parent's
// group builder (spec §4.5 "Repeating group parsing"):
//
//   - a declared inner tag reappearing within the current record closes
//     it and opens a new one -- whichever inner tag happens to lead is
//     accepted, not only the shape's nominal leading tag;
//   - a tag that is not declared in the group's inner shape, but is
//     declared in ownerShape (the shape the group entry itself lives
//     in), closes the group: the cursor is rewound so the caller's own
//     loop re-reads that tag;
//   - CheckSum (10) always closes the group, even mid-record, since a
//     trailer can appear before a group reaches hint records;
//   - anything else is an undeclared tag and is captured into the
//     current record's own overflow map.
func parseGroup(cur *cursor.Cursor, parent *storage.Message, entry schema.Entry, hint int, offset int, opts Options, depth int, ownerShape *schema.Shape) error {
	if depth > opts.MaxGroupDepth {
		return &Error{Kind: MalformedField, Tag: entry.Tag, ByteOffset: offset, Detail: "max group recursion depth exceeded"}
	}

	gb, err := parent.CreateGroup(entry.Tag, hint)
	if err != nil {
		return wrapStorageErr(err, entry.Tag, offset)
	}
	inner := entry.Group.Inner

	var rec *storage.Message
	seen := make(map[schema.Tag]bool)

	closeRecord := func() error {
		if rec == nil {
			return nil
		}
		if addErr := gb.Add(rec); addErr != nil {
			return wrapStorageErr(addErr, entry.Tag, cur.Pos())
		}
		rec = nil
		seen = make(map[schema.Tag]bool)
		return nil
	}

	for {
		if cur.Eof() {
			return closeRecord()
		}

		snap := cur.Snapshot()
		tagStart := cur.Pos()
		t, toff, terr := readTagID(cur)
		if terr != nil {
			return terr
		}

		if t == schema.CheckSumTag {
			snap.Revert()
			return closeRecord()
		}

		if idx, ok := inner.SlotOf(t); ok {
			innerEntry := inner.Entries[idx]
			if seen[t] {
				if cerr := closeRecord(); cerr != nil {
					return cerr
				}
			}
			if rec == nil {
				rec = gb.Instance()
			}
			seen[t] = true
			if derr := dispatchEntry(cur, rec, innerEntry, toff, opts, depth+1, inner); derr != nil {
				return derr
			}
			continue
		}

		if _, ok := ownerShape.SlotOf(t); ok {
			snap.Revert()
			return closeRecord()
		}

		if opts.StrictMode {
			return &Error{Kind: UnknownTag, Tag: t, ByteOffset: tagStart}
		}
		raw, rerr := readUnknownRaw(cur, toff)
		if rerr != nil {
			return rerr
		}
		if rec == nil {
			rec = gb.Instance()
		}
		rec.Unparsed().Set(int(t), raw)
	}
}
