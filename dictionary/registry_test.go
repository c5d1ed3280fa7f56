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

package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abc-arbitrage/fixpp/dictionary"
	"github.com/abc-arbitrage/fixpp/internal/schema"
)

func TestNewRegistryCoversEveryVersion(t *testing.T) {
	t.Parallel()
	reg := dictionary.NewRegistry()
	for _, v := range dictionary.Versions {
		dict, ok := reg[v]
		require.True(t, ok, "missing dictionary for %s", v)
		for _, msgType := range []schema.MsgType{"A", "0", "1", "2", "3", "4", "5", "B", "D", "W"} {
			_, ok := dict.Bodies[msgType]
			assert.True(t, ok, "version %s missing MsgType %q", v, msgType)
		}
	}
}

func TestHeaderShapeIsIndependentPerCall(t *testing.T) {
	t.Parallel()
	a := dictionary.HeaderShape()
	b := dictionary.HeaderShape()
	assert.NotSame(t, a, b)

	idx, ok := a.SlotOf(34)
	require.True(t, ok)
	assert.Equal(t, 0, a.RequiredBitFor(idx))
}

func TestNewDefaultDispatcherResolvesEveryVersion(t *testing.T) {
	t.Parallel()
	d := dictionary.NewDefaultDispatcher()
	for _, v := range dictionary.Versions {
		_, body, err := d.Dispatch(v, "D")
		require.NoError(t, err)
		_, ok := body.SlotOf(11)
		assert.True(t, ok)
	}
}
