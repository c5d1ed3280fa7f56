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

package fixpp_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abc-arbitrage/fixpp"
	"github.com/abc-arbitrage/fixpp/dictionary"
	"github.com/abc-arbitrage/fixpp/internal/field"
)

func newTestHeader(t *testing.T, msgType string, seq int64) *fixpp.Message {
	t.Helper()
	h := fixpp.NewMessage(dictionary.HeaderShape())
	require.NoError(t, h.SetValue(8, field.Value{Kind: field.String, Bytes: []byte("FIX.4.4")}))
	require.NoError(t, h.SetValue(35, field.Value{Kind: field.String, Bytes: []byte(msgType)}))
	require.NoError(t, fixpp.Set[int64](h, 34, seq))
	require.NoError(t, fixpp.Set[string](h, 49, "SENDER"))
	require.NoError(t, fixpp.Set[string](h, 56, "TARGET"))
	require.NoError(t, fixpp.Set[time.Time](h, 52, time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)))
	return h
}

// TestMarketDataRoundTrip exercises Write -> Visit over
// MarketDataSnapshotFullRefresh ("W"): a repeating group with a required
// leading field and two optional trailing fields, the second record
// omitting one of them.
func TestMarketDataRoundTrip(t *testing.T) {
	t.Parallel()
	header := newTestHeader(t, "W", 7)
	body := fixpp.NewMessage(dictionary.MarketDataSnapshotFullRefresh())
	require.NoError(t, fixpp.Set[string](body, 55, "EUR/USD"))

	gb, err := fixpp.CreateGroup(body, 268, 2)
	require.NoError(t, err)

	bid := gb.Instance()
	require.NoError(t, fixpp.Set[byte](bid, 269, '0'))
	require.NoError(t, fixpp.Set[fixpp.Decimal](bid, 270, decimal.RequireFromString("1.2345")))
	require.NoError(t, fixpp.Set[fixpp.Decimal](bid, 271, decimal.RequireFromString("1000000")))
	require.NoError(t, gb.Add(bid))

	offer := gb.Instance()
	require.NoError(t, fixpp.Set[byte](offer, 269, '1'))
	require.NoError(t, fixpp.Set[fixpp.Decimal](offer, 270, decimal.RequireFromString("1.2350")))
	require.NoError(t, gb.Add(offer))

	wire, err := fixpp.Write(header, body)
	require.NoError(t, err)

	dispatcher := dictionary.NewDefaultDispatcher()
	var gotHeader, gotBody *fixpp.Message
	err = fixpp.Visit(wire, func(h, b *fixpp.Message) error {
		gotHeader, gotBody = h, b
		return nil
	}, fixpp.WithDispatcher(dispatcher), fixpp.WithValidateChecksum(true), fixpp.WithValidateLength(true))
	require.NoError(t, err)

	sender, err := fixpp.Get[string](gotHeader, 49)
	require.NoError(t, err)
	assert.Equal(t, "SENDER", sender)

	symbol, err := fixpp.Get[string](gotBody, 55)
	require.NoError(t, err)
	assert.Equal(t, "EUR/USD", symbol)

	recs, err := fixpp.Group(gotBody, 268)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	typ0, err := fixpp.Get[byte](recs[0], 269)
	require.NoError(t, err)
	assert.Equal(t, byte('0'), typ0)
	size0, ok := fixpp.TryGet[fixpp.Decimal](recs[0], 271)
	require.True(t, ok)
	assert.Equal(t, "1000000", size0.String())

	typ1, err := fixpp.Get[byte](recs[1], 269)
	require.NoError(t, err)
	assert.Equal(t, byte('1'), typ1)
	_, ok = fixpp.TryGet[fixpp.Decimal](recs[1], 271)
	assert.False(t, ok, "second record must not carry MDEntrySize: optional field omitted")
}

// TestVisitBuffersAreViewsUntilPromoted exercises ToOwned against the
// parser's buffer-ownership contract: view storage must not be read once
// the backing wire bytes are mutated, but an owned copy must survive it.
func TestVisitBuffersAreViewsUntilPromoted(t *testing.T) {
	t.Parallel()
	header := newTestHeader(t, "D", 1)
	body := fixpp.NewMessage(dictionary.NewOrderSingle())
	require.NoError(t, fixpp.Set[string](body, 11, "ORD-1"))
	require.NoError(t, fixpp.Set[string](body, 55, "EUR/USD"))
	require.NoError(t, fixpp.Set[byte](body, 54, '1'))
	require.NoError(t, fixpp.Set[fixpp.Decimal](body, 38, decimal.RequireFromString("100")))
	require.NoError(t, fixpp.Set[byte](body, 40, '2'))
	require.NoError(t, fixpp.Set[time.Time](body, 60, time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)))

	wire, err := fixpp.Write(header, body)
	require.NoError(t, err)

	dispatcher := dictionary.NewDefaultDispatcher()
	var owned *fixpp.Message
	err = fixpp.Visit(wire, func(h, b *fixpp.Message) error {
		owned = fixpp.ToOwned(b)
		return nil
	}, fixpp.WithDispatcher(dispatcher))
	require.NoError(t, err)

	// Corrupt the wire buffer after Visit returns; the promoted copy must
	// not alias it.
	for i := range wire {
		wire[i] = 'X'
	}
	clOrdID, err := fixpp.Get[string](owned, 11)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", clOrdID)
}

// TestWriteRejectsMissingRequiredField exercises the serializer's
// pre-write validation pass.
func TestWriteRejectsMissingRequiredField(t *testing.T) {
	t.Parallel()
	header := newTestHeader(t, "D", 1)
	body := fixpp.NewMessage(dictionary.NewOrderSingle())
	require.NoError(t, fixpp.Set[string](body, 11, "ORD-1"))
	// Symbol, Side, OrderQty, OrdType, TransactTime all left unset.

	_, err := fixpp.Write(header, body)
	require.Error(t, err)
	var werr *fixpp.WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, fixpp.WriteMissingRequired, werr.Kind)
}

// TestVisitStrictModeRejectsUnknownTag exercises WithStrictMode end to
// end through the public API.
func TestVisitStrictModeRejectsUnknownTag(t *testing.T) {
	t.Parallel()
	header := newTestHeader(t, "0", 1)
	body := fixpp.NewMessage(dictionary.Heartbeat())

	wire, err := fixpp.Write(header, body)
	require.NoError(t, err)

	// Splice an undeclared tag into the body before CheckSum. CheckSum is
	// always rendered as exactly 3 digits, so "10=000\x01" is the right
	// trailer length to carve off regardless of its actual value.
	spliced := append([]byte{}, wire[:len(wire)-len("10=000\x01")]...)
	spliced = append(spliced, []byte("9999=hello\x01")...)
	spliced = append(spliced, wire[len(wire)-len("10=000\x01"):]...)

	dispatcher := dictionary.NewDefaultDispatcher()
	err = fixpp.Visit(spliced, func(h, b *fixpp.Message) error { return nil },
		fixpp.WithDispatcher(dispatcher), fixpp.WithStrictMode(true))
	require.Error(t, err)
	var perr *fixpp.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, fixpp.UnknownTag, perr.Kind)
}
