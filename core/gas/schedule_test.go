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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialCostScheduleBreakpoints(t *testing.T) {
	s := InitialCostSchedule()

	mult, next, hasNext := s.InstructionTiers.Tier(2999)
	require.Equal(t, uint64(1), mult)
	require.True(t, hasNext)
	require.Equal(t, uint64(3000), next)

	mult, _, _ = s.InstructionTiers.Tier(3000)
	require.Equal(t, uint64(2), mult)

	mult, _, hasNext = s.InstructionTiers.Tier(15000)
	require.Equal(t, uint64(100), mult)
	require.False(t, hasNext)
}

func TestInitialCostScheduleDuplicateStackSizeKey(t *testing.T) {
	s := InitialCostSchedule()
	mult, next, hasNext := s.StackSizeTiers.Tier(11500)
	require.Equal(t, uint64(50), mult, "the second 11500 entry must win")
	require.True(t, hasNext)
	require.Equal(t, uint64(20000), next)
}

func TestZeroCostSchedule(t *testing.T) {
	s := ZeroCostSchedule()
	for _, table := range []*TierTable{s.InstructionTiers, s.StackHeightTiers, s.StackSizeTiers} {
		mult, _, hasNext := table.Tier(0)
		require.Equal(t, uint64(0), mult)
		require.False(t, hasNext)

		mult, _, hasNext = table.Tier(1_000_000)
		require.Equal(t, uint64(0), mult)
		require.False(t, hasNext)
	}
}
