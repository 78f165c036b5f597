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
	lru "github.com/hashicorp/golang-lru"

	"github.com/eth-classic/gas-meter/core/gas"
)

const defaultScheduleCacheSize = 128

// ScheduleCache caches assembled *gas.CostSchedule values keyed by a
// schedule's Fingerprint, the way core/blockchain.go caches recent blocks
// and bodies: a validator replaying many transactions against the same
// on-chain schedule shouldn't re-walk the dictionary and rebuild three
// TierTables on every single one.
type ScheduleCache struct {
	cache *lru.Cache
}

// NewScheduleCache creates a cache holding up to size assembled schedules.
// A size of 0 falls back to defaultScheduleCacheSize.
func NewScheduleCache(size int) (*ScheduleCache, error) {
	if size <= 0 {
		size = defaultScheduleCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ScheduleCache{cache: c}, nil
}

// Get returns the cached schedule for fingerprint, if present.
func (sc *ScheduleCache) Get(fingerprint [32]byte) (*gas.CostSchedule, bool) {
	v, ok := sc.cache.Get(fingerprint)
	if !ok {
		return nil, false
	}
	return v.(*gas.CostSchedule), true
}

// GetOrBuild returns the cached schedule for p's fingerprint, building and
// inserting it via ToCostSchedule on a miss.
func (sc *ScheduleCache) GetOrBuild(p GasParameters) *gas.CostSchedule {
	fp := Fingerprint(p)
	if s, ok := sc.Get(fp); ok {
		return s
	}
	s := p.ToCostSchedule()
	sc.cache.Add(fp, s)
	return s
}

// Invalidate evicts fingerprint's entry, if present. Called by
// ScheduleWatcher when the backing schedule file changes on disk.
func (sc *ScheduleCache) Invalidate(fingerprint [32]byte) {
	sc.cache.Remove(fingerprint)
}

// Len returns the number of cached schedules, for diagnostics.
func (sc *ScheduleCache) Len() int { return sc.cache.Len() }
