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

// resourceCounter tracks one of the meter's three running counters
// (instruction count, stack height, stack size) plus its high-water mark
// and a cached current-multiplier / next-breakpoint pair, so the hot
// charge path only re-queries the backing TierTable on an actual tier
// crossing.
type resourceCounter struct {
	current       uint64
	highWaterMark uint64
	currentMult   uint64
	nextTierStart uint64
	hasNext       bool
}

func newResourceCounter(table *TierTable) resourceCounter {
	mult, next, hasNext := table.Tier(0)
	return resourceCounter{currentMult: mult, nextTierStart: next, hasNext: hasNext}
}

// increase applies a checked, non-negative delta, raises the high-water
// mark if exceeded, and re-syncs the cached tier only when the new value
// crosses the cached next breakpoint.
func (c *resourceCounter) increase(table *TierTable, delta uint64) error {
	v, ok := checkedAdd(c.current, delta)
	if !ok {
		return ErrArithmeticOverflow
	}
	if v > c.highWaterMark {
		c.highWaterMark = v
	}
	if c.hasNext && v > c.nextTierStart {
		c.currentMult, c.nextTierStart, c.hasNext = table.Tier(v)
	}
	c.current = v
	return nil
}

// decrease saturates at zero rather than failing; it never lowers the
// high-water mark and never re-syncs the tier cache, since a shrinking
// counter can never cross the cached next breakpoint (the comparison in
// increase is strictly ">", so it would never fire for a smaller value
// anyway — this just skips the dead check).
func (c *resourceCounter) decrease(delta uint64) {
	c.current = saturatingSub(c.current, delta)
}
