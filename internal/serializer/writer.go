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

package serializer

import (
	"bytes"
	"strconv"

	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
	"github.com/abc-arbitrage/fixpp/internal/storage"
)

// Options configures a single Write call.
type Options struct {
	Delimiter byte // 0 defaults to the wire SOH
}

// writer accumulates a sticky error across a sequence of append calls, the
// same shape as solidcoredata-dca's Writer (ts/writer.go): once err is set every
// later call is a no-op, and the caller checks err once at the end instead
// of threading it through every step.
type writer struct {
	err   error
	delim byte
	buf   bytes.Buffer
}

// Write renders header and body into one complete FIX frame: BeginString
// and BodyLength come from header's own BeginString field and a computed
// length, MsgType leads the body section, and CheckSum is computed over
// everything that precedes it (spec §4.6).
func Write(header, body *storage.Message, opts Options) ([]byte, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = 1 // cursor.DefaultDelim, avoided importing cursor to keep this package's dependency surface to what it needs
	}

	if !header.RequiredPresent() {
		return nil, &Error{Kind: MissingRequired, Detail: tagsDetail(header.MissingRequiredTags())}
	}
	if !body.RequiredPresent() {
		return nil, &Error{Kind: MissingRequired, Detail: tagsDetail(body.MissingRequiredTags())}
	}

	beginString, err := header.GetValue(schema.BeginStringTag)
	if err != nil {
		return nil, &Error{Kind: MissingRequired, Tag: schema.BeginStringTag, Detail: "header carries no BeginString", cause: err}
	}
	msgType, err := header.GetValue(schema.MsgTypeTag)
	if err != nil {
		return nil, &Error{Kind: MissingRequired, Tag: schema.MsgTypeTag, Detail: "header carries no MsgType", cause: err}
	}

	w := &writer{delim: delim}

	// The body section, per spec §4.6, begins at MsgType (tag 35) and runs
	// through the last body field; BeginString and BodyLength are framed
	// around it, and CheckSum is appended after.
	w.appendField(schema.MsgTypeTag, msgType)
	w.appendMessage(header, header.Shape, map[schema.Tag]bool{
		schema.BeginStringTag: true,
		schema.BodyLengthTag:  true,
		schema.MsgTypeTag:     true,
	})
	w.appendMessage(body, body.Shape, nil)
	if w.err != nil {
		return nil, w.err
	}
	bodyBytes := w.buf.Bytes()

	var out bytes.Buffer
	out.WriteString("8=")
	out.Write(beginString.Bytes)
	out.WriteByte(delim)
	out.WriteString("9=")
	out.WriteString(strconv.Itoa(len(bodyBytes)))
	out.WriteByte(delim)
	out.Write(bodyBytes)

	sum := checksumOf(out.Bytes())
	out.WriteString("10=")
	out.WriteString(pad3(sum))
	out.WriteByte(delim)

	return out.Bytes(), nil
}

// appendMessage writes every present entry of shape, in declared order,
// skipping tags named in skip (the three header fields Write already
// handled by hand).
func (w *writer) appendMessage(msg *storage.Message, shape *schema.Shape, skip map[schema.Tag]bool) {
	if w.err != nil {
		return
	}
	for _, e := range shape.Entries {
		if skip[e.Tag] || !msg.Present(e.Tag) {
			continue
		}
		if e.Kind == schema.KindGroup {
			w.appendGroup(msg, e)
			if w.err != nil {
				return
			}
			continue
		}
		val, err := msg.GetValue(e.Tag)
		if err != nil {
			w.err = &Error{Kind: BadValue, Tag: e.Tag, Detail: err.Error(), cause: err}
			return
		}
		w.appendField(e.Tag, val)
	}
}

func (w *writer) appendGroup(msg *storage.Message, e schema.Entry) {
	records, err := msg.Group(e.Tag)
	if err != nil {
		w.err = &Error{Kind: BadValue, Tag: e.Tag, Detail: err.Error(), cause: err}
		return
	}
	w.appendField(e.Tag, field.Value{Kind: field.Int, Int: int64(len(records))})
	for _, rec := range records {
		w.appendMessage(rec, e.Group.Inner, nil)
		if w.err != nil {
			return
		}
	}
}

func (w *writer) appendField(tag schema.Tag, val field.Value) {
	if w.err != nil {
		return
	}
	w.buf.WriteString(strconv.Itoa(int(tag)))
	w.buf.WriteByte('=')
	w.buf.Write(field.AppendText(nil, val))
	w.buf.WriteByte(w.delim)
}

func checksumOf(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}

func pad3(b byte) string {
	s := strconv.Itoa(int(b))
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func tagsDetail(tags []schema.Tag) string {
	s := "missing required tags: "
	for i, t := range tags {
		if i > 0 {
			s += ", "
		}
		s += strconv.Itoa(int(t))
	}
	return s
}
