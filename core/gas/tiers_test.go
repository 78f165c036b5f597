// Copyright 2016 The go-ethereum Authors
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

import "testing"

func TestTierTableEmpty(t *testing.T) {
	table := newTierTable(nil, 7)
	mult, _, hasNext := table.Tier(0)
	if mult != 7 {
		t.Errorf("expected default multiplier 7, got %d", mult)
	}
	if hasNext {
		t.Error("expected no next breakpoint for an empty table")
	}
}

func TestTierTableFloorLookup(t *testing.T) {
	table := newTierTable([]tierBreakpoint{{0, 1}, {100, 2}, {200, 3}}, 1)

	cases := []struct {
		x        uint64
		wantMult uint64
		wantNext uint64
		hasNext  bool
	}{
		{0, 1, 100, true},
		{50, 1, 100, true},
		{99, 1, 100, true},
		{100, 2, 200, true},
		{150, 2, 200, true},
		{200, 3, 0, false},
		{1000, 3, 0, false},
	}
	for _, c := range cases {
		mult, next, hasNext := table.Tier(c.x)
		if mult != c.wantMult || next != c.wantNext || hasNext != c.hasNext {
			t.Errorf("Tier(%d) = (%d, %d, %v), want (%d, %d, %v)", c.x, mult, next, hasNext, c.wantMult, c.wantNext, c.hasNext)
		}
	}
}

func TestTierTableBelowSmallestKey(t *testing.T) {
	table := newTierTable([]tierBreakpoint{{50, 9}}, 1)
	mult, next, hasNext := table.Tier(10)
	if mult != 1 || next != 50 || !hasNext {
		t.Errorf("Tier(10) = (%d, %d, %v), want (1, 50, true)", mult, next, hasNext)
	}
}

func TestTierTableDuplicateThresholdLastWins(t *testing.T) {
	// Mirrors stackSizeBreakpoints' duplicate 11500 entry: the later
	// (29 -> 50) insert must silently override the earlier one.
	table := newTierTable([]tierBreakpoint{{0, 1}, {100, 29}, {100, 50}}, 1)
	mult, _, hasNext := table.Tier(100)
	if mult != 50 {
		t.Errorf("expected the second insert (50) to win for a duplicate threshold, got %d", mult)
	}
	if hasNext {
		t.Error("100 should be the final tier")
	}
}
