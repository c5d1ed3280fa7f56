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
	"fmt"
	"time"

	"github.com/abc-arbitrage/fixpp/internal/field"
	"github.com/abc-arbitrage/fixpp/internal/schema"
)

// Scalar enumerates the host types a typed accessor can bind to -- the
// Go-generic equivalent of the source's set<T>/get<T> template parameter
// (spec §4.2).
type Scalar interface {
	int64 | byte | bool | field.Decimal | string | []byte | time.Time
}

// KindMismatchError is returned when T does not match the entry's declared
// field.Kind.
type KindMismatchError struct {
	Tag      schema.Tag
	Declared field.Kind
	Wanted   string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("storage: tag %d is declared %s, not %s", e.Tag, e.Declared, e.Wanted)
}

// SetValue stores v directly into tag's slot and marks it present. It is
// the untyped primitive typed accessors and the parser build on.
func (m *Message) SetValue(tag schema.Tag, v field.Value) error {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return err
	}
	e := m.Shape.Entries[idx]
	if e.Kind != schema.KindField {
		return &KindMismatchError{Tag: tag, Declared: e.Type, Wanted: "scalar"}
	}
	m.slots[idx].value = v
	m.markPresent(idx)
	return nil
}

// GetValue returns the raw Value stored for tag.
func (m *Message) GetValue(tag schema.Tag) (field.Value, error) {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return field.Value{}, err
	}
	if !m.present.Get(idx) {
		return field.Value{}, &AbsentFieldError{Tag: tag}
	}
	return m.slots[idx].value, nil
}

// Set stores v under tag, converting it to the entry's declared kind.
// Returns UndeclaredTagError if tag is not part of the shape, or
// KindMismatchError if T does not match the declared kind.
func Set[T Scalar](m *Message, tag schema.Tag, v T) error {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return err
	}
	e := m.Shape.Entries[idx]
	val, err := toValue(e, v)
	if err != nil {
		return err
	}
	m.slots[idx].value = val
	m.markPresent(idx)
	return nil
}

// Get returns the value stored for tag, failing with AbsentFieldError if
// the slot has not been assigned (spec §4.2 get<T>).
func Get[T Scalar](m *Message, tag schema.Tag) (T, error) {
	var zero T
	idx, err := m.slotIndex(tag)
	if err != nil {
		return zero, err
	}
	if !m.present.Get(idx) {
		return zero, &AbsentFieldError{Tag: tag}
	}
	return fromValue[T](m.Shape.Entries[idx], m.slots[idx].value)
}

// TryGet is Get, but reports ok=false instead of an error when the slot is
// absent (spec §4.2 try_get<T>). A type mismatch still yields ok=false.
func TryGet[T Scalar](m *Message, tag schema.Tag) (out T, ok bool) {
	v, err := Get[T](m, tag)
	if err != nil {
		return out, false
	}
	return v, true
}

// View returns the raw (ptr, len) byte view for a String or Data tag. This
// is meaningful on both view and owned storage: in view mode it borrows
// from the input frame, in owned mode it returns the owned copy (spec
// §4.2 view<T>, "on view storage only" -- relaxed here to also work on
// owned storage since returning an owned slice is harmless and the
// distinction only matters for who owns the backing array).
func View(m *Message, tag schema.Tag) ([]byte, error) {
	idx, err := m.slotIndex(tag)
	if err != nil {
		return nil, err
	}
	e := m.Shape.Entries[idx]
	if e.Type != field.String && e.Type != field.Data {
		return nil, &KindMismatchError{Tag: tag, Declared: e.Type, Wanted: "String or Data"}
	}
	if !m.present.Get(idx) {
		return nil, &AbsentFieldError{Tag: tag}
	}
	return m.slots[idx].value.Bytes, nil
}

func toValue[T Scalar](e schema.Entry, v T) (field.Value, error) {
	switch e.Type {
	case field.Int:
		n, ok := any(v).(int64)
		if !ok {
			return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
		}
		return field.Value{Kind: field.Int, Int: n}, nil
	case field.Char:
		c, ok := any(v).(byte)
		if !ok {
			return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
		}
		return field.Value{Kind: field.Char, Char: c}, nil
	case field.Bool:
		b, ok := any(v).(bool)
		if !ok {
			return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
		}
		return field.Value{Kind: field.Bool, Bool: b}, nil
	case field.Float:
		d, ok := any(v).(field.Decimal)
		if !ok {
			return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
		}
		return field.Value{Kind: field.Float, Dec: d}, nil
	case field.String:
		switch s := any(v).(type) {
		case string:
			return field.Value{Kind: field.String, Bytes: []byte(s)}, nil
		case []byte:
			return field.Value{Kind: field.String, Bytes: s}, nil
		}
		return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
	case field.Data:
		b, ok := any(v).([]byte)
		if !ok {
			return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
		}
		return field.Value{Kind: field.Data, Bytes: b}, nil
	case field.UTCTimestamp:
		t, ok := any(v).(time.Time)
		if !ok {
			return field.Value{}, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", v)}
		}
		return field.Value{Kind: field.UTCTimestamp, Time: t}, nil
	default:
		return field.Value{}, fmt.Errorf("storage: entry %d has no declared kind", e.Tag)
	}
}

func fromValue[T Scalar](e schema.Entry, val field.Value) (T, error) {
	var zero T
	switch e.Type {
	case field.Int:
		if n, ok := any(val.Int).(T); ok {
			return n, nil
		}
	case field.Char:
		if c, ok := any(val.Char).(T); ok {
			return c, nil
		}
	case field.Bool:
		if b, ok := any(val.Bool).(T); ok {
			return b, nil
		}
	case field.Float:
		if d, ok := any(val.Dec).(T); ok {
			return d, nil
		}
	case field.String:
		switch any(zero).(type) {
		case string:
			return any(string(val.Bytes)).(T), nil
		case []byte:
			return any(val.Bytes).(T), nil
		}
	case field.Data:
		if b, ok := any(val.Bytes).(T); ok {
			return b, nil
		}
	case field.UTCTimestamp:
		if t, ok := any(val.Time).(T); ok {
			return t, nil
		}
	}
	return zero, &KindMismatchError{Tag: e.Tag, Declared: e.Type, Wanted: fmt.Sprintf("%T", zero)}
}
