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

package gas

import "sort"

// tierBreakpoint is one (threshold, multiplier) entry in the ordered
// construction list for a TierTable. Entries are applied in order, so a
// repeated threshold silently overrides the multiplier of an earlier one
// with the same key (see stackSizeBreakpoints' duplicate 11500 entry in
// schedule.go).
type tierBreakpoint struct {
	threshold  uint64
	multiplier uint64
}

// TierTable is an immutable, monotone-keyed schedule mapping a cumulative
// counter value to a unit multiplier. It is a piecewise-constant price
// function over the counter's domain: Tier(x) floor-looks-up the active
// multiplier and exclusive-upper-bound-looks-up the next breakpoint, so a
// caller can cache both and only re-query on a real tier crossing.
type TierTable struct {
	thresholds  []uint64 // strictly increasing
	multipliers []uint64 // multipliers[i] applies for thresholds[i] <= x < thresholds[i+1]
	defaultMult uint64
}

// TierBreakpoint is the exported counterpart of tierBreakpoint, used by
// callers outside this package (params.GasParameters) that assemble a
// TierTable from a deserialized on-chain schedule rather than a fixed
// breakpoint table compiled into this package.
type TierBreakpoint struct {
	Threshold  uint64
	Multiplier uint64
}

// NewTierTable builds a TierTable from caller-supplied breakpoints, with
// the same last-write-wins duplicate-threshold semantics as the tables
// built into schedule.go.
func NewTierTable(breakpoints []TierBreakpoint, defaultMult uint64) *TierTable {
	internal := make([]tierBreakpoint, len(breakpoints))
	for i, bp := range breakpoints {
		internal[i] = tierBreakpoint{threshold: bp.Threshold, multiplier: bp.Multiplier}
	}
	return newTierTable(internal, defaultMult)
}

// newTierTable builds a TierTable from an ordered breakpoint list. Later
// entries win over earlier ones that share a threshold.
func newTierTable(breakpoints []tierBreakpoint, defaultMult uint64) *TierTable {
	byThreshold := make(map[uint64]uint64, len(breakpoints))
	for _, bp := range breakpoints {
		byThreshold[bp.threshold] = bp.multiplier
	}

	thresholds := make([]uint64, 0, len(byThreshold))
	for k := range byThreshold {
		thresholds = append(thresholds, k)
	}
	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i] < thresholds[j] })

	multipliers := make([]uint64, len(thresholds))
	for i, k := range thresholds {
		multipliers[i] = byThreshold[k]
	}

	return &TierTable{thresholds: thresholds, multipliers: multipliers, defaultMult: defaultMult}
}

// Tier returns the multiplier of the largest key <= x (or the table's
// default if x falls below every key, or the table is empty), plus the
// smallest key strictly greater than x. hasNext is false when x already
// sits in the table's final tier.
func (t *TierTable) Tier(x uint64) (mult uint64, next uint64, hasNext bool) {
	// idx is the index of the first threshold strictly greater than x.
	idx := sort.Search(len(t.thresholds), func(i int) bool { return t.thresholds[i] > x })

	if idx == 0 {
		if len(t.thresholds) == 0 {
			return t.defaultMult, 0, false
		}
		return t.defaultMult, t.thresholds[0], true
	}

	mult = t.multipliers[idx-1]
	if idx < len(t.thresholds) {
		return mult, t.thresholds[idx], true
	}
	return mult, 0, false
}
