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
	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
	"github.com/abc-arbitrage/fixpp/internal/storage"
)

// readTagID reads a "<tag>=" prefix and returns the tag id plus the byte
// offset it started at.
func readTagID(cur *cursor.Cursor) (schema.Tag, int, error) {
	offset := cur.Pos()
	var n int64
	if !cur.MatchInt(&n) {
		return 0, offset, &Error{Kind: Truncated, ByteOffset: offset, Detail: "expected tag number"}
	}
	if !cur.MatchLiteral('=') {
		return 0, offset, &Error{Kind: MalformedField, ByteOffset: cur.Pos(), Detail: "expected '='"}
	}
	return schema.Tag(n), offset, nil
}

// readRawValue reads one field's value bytes and consumes its trailing
// delimiter, applying the length-prefixed Data convention when the entry
// declares a DataLengthTag (spec §3 "Data (length-prefixed binary)").
func readRawValue(cur *cursor.Cursor, msg *storage.Message, entry schema.Entry, offset int) ([]byte, error) {
	if entry.Type == field.Data && entry.DataLengthTag != 0 {
		n, gerr := storage.Get[int64](msg, entry.DataLengthTag)
		if gerr != nil {
			return nil, &Error{Kind: MalformedField, Tag: entry.Tag, ByteOffset: offset, Detail: "data length tag not set: " + gerr.Error(), cause: gerr}
		}
		raw, ok := cur.MatchN(int(n))
		if !ok {
			return nil, &Error{Kind: Truncated, Tag: entry.Tag, ByteOffset: offset}
		}
		if !cur.MatchDelim() {
			return nil, &Error{Kind: Truncated, Tag: entry.Tag, ByteOffset: cur.Pos()}
		}
		return raw, nil
	}
	raw, found := cur.MatchUntil(cur.Delim())
	if !found {
		return nil, &Error{Kind: Truncated, Tag: entry.Tag, ByteOffset: offset}
	}
	cur.MatchDelim()
	return raw, nil
}

// readUnknownRaw reads an undeclared tag's value the generic (delimiter
// terminated) way -- unknown tags by definition carry no schema telling
// us they are length-prefixed.
func readUnknownRaw(cur *cursor.Cursor, offset int) ([]byte, error) {
	raw, found := cur.MatchUntil(cur.Delim())
	if !found {
		return nil, &Error{Kind: Truncated, ByteOffset: offset}
	}
	cur.MatchDelim()
	return raw, nil
}

// readAndSet reads entry's value and stores it into msg.
func readAndSet(cur *cursor.Cursor, msg *storage.Message, entry schema.Entry, offset int) error {
	raw, err := readRawValue(cur, msg, entry, offset)
	if err != nil {
		return err
	}
	val, perr := field.Parse(entry.Type, raw)
	if perr != nil {
		return &Error{Kind: MalformedField, Tag: entry.Tag, ByteOffset: offset, Detail: perr.Error(), cause: perr}
	}
	if serr := msg.SetValue(entry.Tag, val); serr != nil {
		return &Error{Kind: MalformedField, Tag: entry.Tag, ByteOffset: offset, Detail: serr.Error(), cause: serr}
	}
	return nil
}

// dispatchEntry handles one declared tag: a scalar field is parsed and
// set directly; a group's count is read and its records parsed
// recursively (spec §4.5 "Repeating group parsing").
//
// ownerShape is the shape that directly contains entry -- used, only when
// entry is a group, to recognize "a tag valid for the surrounding
// message" while scanning the group's records.
func dispatchEntry(cur *cursor.Cursor, msg *storage.Message, entry schema.Entry, offset int, opts Options, depth int, ownerShape *schema.Shape) error {
	if entry.Kind == schema.KindGroup {
		var n int64
		if !cur.MatchInt(&n) {
			return &Error{Kind: MalformedField, Tag: entry.Tag, ByteOffset: offset, Detail: "expected group count"}
		}
		if !cur.MatchDelim() {
			return &Error{Kind: Truncated, Tag: entry.Tag, ByteOffset: cur.Pos()}
		}
		return parseGroup(cur, msg, entry, int(n), offset, opts, depth, ownerShape)
	}
	return readAndSet(cur, msg, entry, offset)
}

// wrapStorageErr adapts an internal/storage error into a parser.Error.
func wrapStorageErr(err error, tag schema.Tag, offset int) error {
	if _, ok := err.(*storage.MissingRequiredError); ok {
		return &Error{Kind: MissingRequired, Tag: tag, ByteOffset: offset, Detail: err.Error(), cause: err}
	}
	return &Error{Kind: MalformedField, Tag: tag, ByteOffset: offset, Detail: err.Error(), cause: err}
}
