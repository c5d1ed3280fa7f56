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

package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abc-arbitrage/fixpp/internal/cursor"
)

func TestMatchInt(t *testing.T) {
	t.Parallel()
	c := cursor.NewDelim([]byte("-123|rest"), '|')
	var n int64
	require.True(t, c.MatchInt(&n))
	assert.Equal(t, int64(-123), n)
	assert.Equal(t, 4, c.Pos())
}

func TestMatchIntNoDigit(t *testing.T) {
	t.Parallel()
	c := cursor.New([]byte("abc"))
	var n int64
	assert.False(t, c.MatchInt(&n))
	assert.Equal(t, 0, c.Pos())
}

func TestMatchUntil(t *testing.T) {
	t.Parallel()
	c := cursor.NewDelim([]byte("hello|world"), '|')
	view, found := c.MatchUntil('|')
	require.True(t, found)
	assert.Equal(t, "hello", string(view))
	require.True(t, c.MatchDelim())
	view, found = c.MatchUntil('|')
	assert.False(t, found)
	assert.Equal(t, "world", string(view))
}

func TestMatchN(t *testing.T) {
	t.Parallel()
	c := cursor.New([]byte("0123456789"))
	view, ok := c.MatchN(3)
	require.True(t, ok)
	assert.Equal(t, "012", string(view))

	_, ok = c.MatchN(100)
	assert.False(t, ok)
	assert.Equal(t, 3, c.Pos(), "a failed MatchN must not advance")
}

func TestSnapshotRevert(t *testing.T) {
	t.Parallel()
	c := cursor.New([]byte("abcdef"))
	snap := c.Snapshot()
	c.Advance(4)
	assert.Equal(t, 4, c.Pos())
	snap.Revert()
	assert.Equal(t, 0, c.Pos())
}

func TestToken(t *testing.T) {
	t.Parallel()
	c := cursor.New([]byte("abcdef"))
	tok := c.Token()
	c.Advance(3)
	assert.Equal(t, "abc", string(tok.End()))
}
