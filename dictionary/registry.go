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

package dictionary

import (
	"github.com/abc-arbitrage/fixpp/internal/dispatch"
)

// Versions lists every BeginString the default registry serves.
var Versions = []dispatch.Version{dispatch.FIX42, dispatch.FIX43, dispatch.FIX44, dispatch.FIXT11}

// NewRegistry builds the default version -> Dictionary registry: the same
// header layout and representative message set under each of the four
// recognized versions (spec §6 "Versions recognized").
func NewRegistry() map[dispatch.Version]*dispatch.Dictionary {
	reg := make(map[dispatch.Version]*dispatch.Dictionary, len(Versions))
	for _, v := range Versions {
		dict, err := dispatch.NewDictionary(v, newHeaderShape(),
			Logon(),
			Heartbeat(),
			TestRequest(),
			ResendRequest(),
			Reject(),
			SequenceReset(),
			Logout(),
			News(),
			NewOrderSingle(),
			MarketDataSnapshotFullRefresh(),
		)
		if err != nil {
			panic(err)
		}
		reg[v] = dict
	}
	return reg
}

// NewDefaultDispatcher builds a Dispatcher over NewRegistry with no
// overrides -- the configuration fixdump and the package-level tests use
// unless a caller supplies their own overrides via dispatch.Override.
func NewDefaultDispatcher() *dispatch.Dispatcher {
	d, err := dispatch.NewDispatcher(NewRegistry())
	if err != nil {
		panic(err)
	}
	return d
}
