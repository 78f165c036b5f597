// Copyright 2014 The go-ethereum Authors
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

func TestNativeRegistryChargeCallDeductsHostCost(t *testing.T) {
	registry := NativeRegistry{
		"hash::sha2_256": &NativeFunction{
			Name:     "hash::sha2_256",
			ArgSizes: []uint64{SizeU64 * 4},
			RetSizes: []uint64{SizeU256},
			HostCost: func(args []uint64) uint64 { return 150 },
		},
	}

	m := NewMeter(InitialCostSchedule(), 10_000_000)
	before := m.Balance()

	_, err := registry.ChargeCall(m, "hash::sha2_256")
	require.NoError(t, err)
	require.EqualValues(t, 1, m.StackHeight(), "the single return value was pushed")

	spent := before - m.Balance()
	require.GreaterOrEqual(t, spent, uint64(150), "the host-reported cost must be deducted on top of the metered charges")

	st := m.GasStatement()
	require.Equal(t, spent, st.ExecutionGasUsed)
}

func TestNativeRegistryChargeCallUnknownFunctionPanics(t *testing.T) {
	registry := NativeRegistry{}
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	require.Panics(t, func() {
		_, _ = registry.ChargeCall(m, "does::not_exist")
	})
}

func TestNativeRegistryChargeCallWithoutHostCost(t *testing.T) {
	registry := NativeRegistry{
		"vector::empty": &NativeFunction{
			Name:     "vector::empty",
			ArgSizes: nil,
			RetSizes: []uint64{VecSize},
		},
	}

	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := registry.ChargeCall(m, "vector::empty")
	require.NoError(t, err)
	require.EqualValues(t, 1, m.StackHeight())
}
