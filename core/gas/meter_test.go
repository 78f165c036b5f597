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
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// dumpState spew.Sdumps a meter's counters into the test log on failure,
// the way accounts/cache_test.go leans on spew for diagnosing assertion
// failures in the teacher tree.
func dumpState(t *testing.T, m *Meter) {
	t.Helper()
	if !t.Failed() {
		return
	}
	t.Logf("meter state:\n%s", spew.Sdump(struct {
		GasLeft      uint64
		Instructions uint64
		StackHeight  uint64
		StackSize    uint64
	}{m.gasLeft, m.instructions.current, m.stackHeight.current, m.stackSize.current}))
}

// S1: a single LdU64 charge at the base tier.
func TestScenarioS1SingleLoad(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)

	_, err := m.ChargeSimpleInstr(LdU64)
	require.NoError(t, err)

	require.Equal(t, uint64(9_999_990), m.Balance())
	require.EqualValues(t, 1, m.InstructionsExecuted())
	require.EqualValues(t, 1, m.StackHeight())
	require.EqualValues(t, 8, m.StackSize())
}

// S2: a small budget is exhausted by repeated LdU64 charges; gas_left
// lands at exactly zero and every counter update up to the failure stuck.
func TestScenarioS2BudgetExhaustion(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 1000)
	defer dumpState(t, m)

	var lastErr error
	charged := 0
	for i := 0; i < 300; i++ {
		_, err := m.ChargeSimpleInstr(LdU64)
		if err != nil {
			lastErr = err
			break
		}
		charged++
	}

	require.ErrorIs(t, lastErr, ErrOutOfGas)
	require.Equal(t, uint64(0), m.Balance())
	require.Equal(t, 100, charged, "each LdU64 costs 10 at the base tier, so the 101st charge exhausts a 1000 budget")
	require.EqualValues(t, 101, m.InstructionsExecuted(), "the failed 101st charge still counted its instruction")
}

// S3: the zero schedule never deducts anything, regardless of budget.
func TestScenarioS3ZeroSchedule(t *testing.T) {
	m := NewMeter(ZeroCostSchedule(), 0)

	for i := 0; i < 500; i++ {
		_, err := m.ChargeSimpleInstr(LdU64)
		require.NoError(t, err)
		require.Equal(t, uint64(0), m.Balance())
	}

	st := m.GasStatement()
	require.Equal(t, uint64(0), st.ExecutionGasUsed)
	require.Equal(t, uint64(0), st.StorageGasUsed)
}

// S4: enough branch charges to cross the 3000 instruction-tier breakpoint.
func TestScenarioS4InstructionTierCrossing(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)

	for i := 0; i < 3001; i++ {
		_, err := m.ChargeBranch()
		require.NoError(t, err)
	}

	instrMult, _, _ := m.CurrentTierMultipliers()
	require.Equal(t, uint64(2), instrMult, "the 3001st instruction should have crossed into the second instruction tier")
}

// S5: stopping metering freezes gas_left but counters keep tracking.
func TestScenarioS5StopMetering(t *testing.T) {
	budget := uint64(10_000_000)
	m := NewMeter(InitialCostSchedule(), budget)
	m.StopMetering()
	require.False(t, m.IsMetering())

	for i := 0; i < 100; i++ {
		_, err := m.ChargeSimpleInstr(LdU8)
		require.NoError(t, err)
	}

	require.Equal(t, budget, m.Balance())
	require.EqualValues(t, 100, m.StackHeight())
	require.EqualValues(t, 100, m.StackSize())
}

// S6: a native call's pre/post phases both deduct from the same budget,
// plus the host-reported amount.
func TestScenarioS6NativeCall(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	before := m.Balance()

	_, err := m.ChargeNativeFunctionBeforeExecution([]uint64{SizeU64, SizeU64})
	require.NoError(t, err)
	require.EqualValues(t, 1, m.InstructionsExecuted())
	require.EqualValues(t, 0, m.StackHeight(), "the pre-execution phase only pops arguments")

	instrBefore := m.InstructionsExecuted()
	_, err = m.ChargeNativeFunction(500, []uint64{SizeU64})
	require.NoError(t, err)
	require.Equal(t, instrBefore, m.InstructionsExecuted(), "post-execution charges no additional instruction")
	require.EqualValues(t, 1, m.StackHeight(), "post-execution pushes the single return value")

	require.Less(t, m.Balance(), before)
	stmt := m.GasStatement()
	require.Equal(t, before-m.Balance(), stmt.ExecutionGasUsed, "native pre/post/host costs are all execution gas")
}

// Property 1: a non-overflowing sequence within budget leaves gas_left
// exactly budget minus the sum of costs, with no error.
func TestPropertyExactDeduction(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	var spent uint64
	for i := 0; i < 50; i++ {
		cost, err := m.ChargeSimpleInstr(LdU64)
		require.NoError(t, err)
		total, err := cost.Total()
		require.NoError(t, err)
		spent += total
	}
	require.Equal(t, uint64(10_000_000)-spent, m.Balance())
}

// Property 2: the first charge that would exceed gas_left fails and zeroes
// the balance; it does not partially apply.
func TestPropertyOutOfGasZeroesBalance(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 5)
	_, err := m.ChargeSimpleInstr(LdU64) // costs 10 at the base tier
	require.ErrorIs(t, err, ErrOutOfGas)
	require.Equal(t, uint64(0), m.Balance())
}

// Property 7: a u64::MAX delta in any dimension fails with an arithmetic
// error and leaves gas_left untouched.
func TestPropertyArithmeticOverflowLeavesBalanceUntouched(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.Charge(math.MaxUint64, 0, 0, 0, 0)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	require.Equal(t, uint64(10_000_000), m.Balance())

	_, err = m.Charge(0, math.MaxUint64, 0, 0, 0)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	require.Equal(t, uint64(10_000_000), m.Balance())

	_, err = m.Charge(0, 0, 0, math.MaxUint64, 0)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
	require.Equal(t, uint64(10_000_000), m.Balance())
}

func TestMeterTouchedOpcodesDiagnostic(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeSimpleInstr(LdU64)
	require.NoError(t, err)
	_, err = m.ChargeSimpleInstr(Add)
	require.NoError(t, err)

	touched := m.TouchedOpcodes()
	require.ElementsMatch(t, []string{"LdU64", "Add"}, touched)
}
