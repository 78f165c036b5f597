// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package params

import (
	"encoding/json"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint digests p's canonical on-chain encoding: the dictionary's
// keys sorted, then JSON-encoded as an ordered array of [key, value] pairs
// so the digest doesn't depend on Go's randomized map iteration order.
// Two replicas that loaded "the same" schedule must compute identical
// fingerprints before a meter ever runs against it.
func Fingerprint(p GasParameters) [32]byte {
	dict := p.ToOnChainSchedule()
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	type entry struct {
		Key   string `json:"k"`
		Value uint64 `json:"v"`
	}
	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{Key: k, Value: dict[k]}
	}

	// Canonical encoding never fails: entries is a fixed, JSON-safe shape.
	canonical, _ := json.Marshal(entries)
	return blake2b.Sum256(canonical)
}
