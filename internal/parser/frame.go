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
	"github.com/abc-arbitrage/fixpp/internal/dispatch"
	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
	"github.com/abc-arbitrage/fixpp/internal/storage"
)

// Parse scans one complete FIX frame (BeginString through CheckSum) and
// returns its header and body as view storage -- neither borrows past the
// lifetime of data (spec §4.3 "Parsing a frame").
func Parse(data []byte, opts Options) (header, body *storage.Message, err error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = cursor.DefaultDelim
	}
	cur := cursor.NewDelim(data, delim)

	tag, offset, err := readTagID(cur)
	if err != nil {
		return nil, nil, err
	}
	if tag != schema.BeginStringTag {
		return nil, nil, &Error{Kind: MalformedField, Tag: tag, ByteOffset: offset, Detail: "expected BeginString (tag 8)"}
	}
	verRaw, found := cur.MatchUntil(delim)
	if !found {
		return nil, nil, &Error{Kind: Truncated, Tag: schema.BeginStringTag, ByteOffset: cur.Pos()}
	}
	cur.MatchDelim()
	version, ok := dispatch.Recognize(verRaw)
	if !ok {
		return nil, nil, &Error{Kind: InvalidVersion, Tag: schema.BeginStringTag, ByteOffset: offset, Detail: string(verRaw)}
	}

	tag, offset, err = readTagID(cur)
	if err != nil {
		return nil, nil, err
	}
	if tag != schema.BodyLengthTag {
		return nil, nil, &Error{Kind: MalformedField, Tag: tag, ByteOffset: offset, Detail: "expected BodyLength (tag 9)"}
	}
	var bodyLen int64
	if !cur.MatchInt(&bodyLen) {
		return nil, nil, &Error{Kind: MalformedField, Tag: schema.BodyLengthTag, ByteOffset: cur.Pos()}
	}
	if !cur.MatchDelim() {
		return nil, nil, &Error{Kind: Truncated, Tag: schema.BodyLengthTag, ByteOffset: cur.Pos()}
	}
	bodyStart := cur.Pos()

	tag, offset, err = readTagID(cur)
	if err != nil {
		return nil, nil, err
	}
	if tag != schema.MsgTypeTag {
		return nil, nil, &Error{Kind: MalformedField, Tag: tag, ByteOffset: offset, Detail: "expected MsgType (tag 35)"}
	}
	mtRaw, found := cur.MatchUntil(delim)
	if !found {
		return nil, nil, &Error{Kind: Truncated, Tag: schema.MsgTypeTag, ByteOffset: cur.Pos()}
	}
	cur.MatchDelim()
	msgType := schema.MsgType(mtRaw)

	headerShape, bodyShape, derr := opts.Dispatcher.Dispatch(version, msgType)
	if derr != nil {
		return nil, nil, wrapDispatchError(derr, offset)
	}

	header = storage.New(headerShape, storage.View)
	body = storage.New(bodyShape, storage.View)

	if serr := header.SetValue(schema.BeginStringTag, field.Value{Kind: field.String, Bytes: verRaw}); serr != nil {
		return nil, nil, wrapStorageErr(serr, schema.BeginStringTag, 0)
	}
	if serr := header.SetValue(schema.BodyLengthTag, field.Value{Kind: field.Int, Int: bodyLen}); serr != nil {
		return nil, nil, wrapStorageErr(serr, schema.BodyLengthTag, 0)
	}
	if serr := header.SetValue(schema.MsgTypeTag, field.Value{Kind: field.String, Bytes: mtRaw}); serr != nil {
		return nil, nil, wrapStorageErr(serr, schema.MsgTypeTag, 0)
	}

	inBody := false
	var checksumStart int
	var checksumRaw []byte

scan:
	for {
		if cur.Eof() {
			return nil, nil, &Error{Kind: Truncated, ByteOffset: cur.Pos(), Detail: "frame ended before CheckSum (tag 10)"}
		}

		tagStart := cur.Pos()
		t, toff, terr := readTagID(cur)
		if terr != nil {
			return nil, nil, terr
		}

		if t == schema.CheckSumTag {
			raw, ok := cur.MatchN(3)
			if !ok {
				return nil, nil, &Error{Kind: Truncated, Tag: schema.CheckSumTag, ByteOffset: cur.Pos()}
			}
			cur.MatchDelim()
			checksumStart = tagStart
			checksumRaw = raw
			break scan
		}

		if idx, ok := headerShape.SlotOf(t); ok {
			e := headerShape.Entries[idx]
			if derr := dispatchEntry(cur, header, e, toff, opts, 1, headerShape); derr != nil {
				return nil, nil, derr
			}
			continue
		}

		if idx, ok := bodyShape.SlotOf(t); ok {
			inBody = true
			e := bodyShape.Entries[idx]
			if derr := dispatchEntry(cur, body, e, toff, opts, 1, bodyShape); derr != nil {
				return nil, nil, derr
			}
			continue
		}

		if opts.StrictMode {
			return nil, nil, &Error{Kind: UnknownTag, Tag: t, ByteOffset: tagStart}
		}
		raw, rerr := readUnknownRaw(cur, toff)
		if rerr != nil {
			return nil, nil, rerr
		}
		if inBody {
			body.Unparsed().Set(int(t), raw)
		} else {
			header.Unparsed().Set(int(t), raw)
		}
	}

	if opts.ValidateLength {
		gotLen := int64(checksumStart - bodyStart)
		if gotLen != bodyLen {
			return nil, nil, &Error{
				Kind:       BodyLengthMismatch,
				Tag:        schema.BodyLengthTag,
				ByteOffset: bodyStart,
				Detail:     itoaPair(bodyLen, gotLen),
			}
		}
	}

	if opts.ValidateChecksum {
		wantSum, perr := field.Parse(field.Int, checksumRaw)
		if perr != nil {
			return nil, nil, &Error{Kind: MalformedField, Tag: schema.CheckSumTag, ByteOffset: checksumStart, Detail: perr.Error(), cause: perr}
		}
		gotSum := computeChecksum(cur.Bytes()[:checksumStart])
		if wantSum.Int != gotSum {
			return nil, nil, &Error{
				Kind:       ChecksumMismatch,
				Tag:        schema.CheckSumTag,
				ByteOffset: checksumStart,
				Detail:     itoaPair(wantSum.Int, gotSum),
			}
		}
	}

	if missing := header.MissingRequiredTags(); len(missing) > 0 {
		return nil, nil, &Error{Kind: MissingRequired, ByteOffset: 0, Detail: tagsDetail(missing)}
	}
	if missing := body.MissingRequiredTags(); len(missing) > 0 {
		return nil, nil, &Error{Kind: MissingRequired, ByteOffset: bodyStart, Detail: tagsDetail(missing)}
	}

	return header, body, nil
}

// computeChecksum sums every byte of data modulo 256 (spec §4.3
// "CheckSum is the sum of all preceding bytes, including delimiters, mod
// 256").
func computeChecksum(data []byte) int64 {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return int64(sum)
}

func wrapDispatchError(err error, offset int) error {
	switch e := err.(type) {
	case *dispatch.UnknownVersionError:
		return &Error{Kind: InvalidVersion, ByteOffset: offset, Detail: e.Error(), cause: err}
	case *dispatch.UnknownMessageTypeError:
		return &Error{Kind: UnknownMessageType, Tag: schema.MsgTypeTag, ByteOffset: offset, Detail: e.Error(), cause: err}
	default:
		return &Error{Kind: MalformedField, ByteOffset: offset, Detail: err.Error(), cause: err}
	}
}

func tagsDetail(tags []schema.Tag) string {
	s := "missing required tags: "
	for i, t := range tags {
		if i > 0 {
			s += ", "
		}
		s += itoa64(int64(t))
	}
	return s
}

func itoaPair(want, got int64) string {
	return "want " + itoa64(want) + ", got " + itoa64(got)
}

func itoa64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
