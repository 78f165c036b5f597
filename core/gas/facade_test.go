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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChargeBranchNoStackEffect(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeBranch()
	require.NoError(t, err)
	require.EqualValues(t, 1, m.InstructionsExecuted())
	require.EqualValues(t, 0, m.StackHeight())
	require.EqualValues(t, 0, m.StackSize())
}

func TestChargePopIsNotPriced(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	before := m.Balance()
	_, err := m.ChargePop(SizeU256)
	require.NoError(t, err)
	// pop's size drives size_out, never size_in, so memory gas is zero and
	// only the instruction tier's multiplier is charged.
	require.Equal(t, before-1, m.Balance())
}

func TestChargeCallPopsArityNoPush(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeCall(3, SizeU64*3)
	require.NoError(t, err)
	require.EqualValues(t, 0, m.StackHeight())

	_, err = m.ChargeCallGeneric(2, SizeU64*2)
	require.NoError(t, err)
	require.EqualValues(t, 0, m.StackHeight())
}

func TestChargeLdConstPushesLiteralSize(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeLdConst(SizeU128)
	require.NoError(t, err)
	require.EqualValues(t, 1, m.StackHeight())
	require.EqualValues(t, SizeU128, m.StackSize())
}

func TestChargeLdConstAfterDeserializationIsNoop(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	before := m.Balance()
	cost, err := m.ChargeLdConstAfterDeserialization()
	require.NoError(t, err)
	require.Equal(t, Cost{}, cost)
	require.Equal(t, before, m.Balance())
	require.EqualValues(t, 0, m.InstructionsExecuted())
}

func TestChargeCopyLocAndMoveLocAreIdentical(t *testing.T) {
	m1 := NewMeter(InitialCostSchedule(), 10_000_000)
	c1, err := m1.ChargeCopyLoc(SizeU64)
	require.NoError(t, err)

	m2 := NewMeter(InitialCostSchedule(), 10_000_000)
	c2, err := m2.ChargeMoveLoc(SizeU64)
	require.NoError(t, err)

	require.Equal(t, c1, c2)
}

func TestChargeStoreLocPopsNoPush(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeStoreLoc(SizeU64)
	require.NoError(t, err)
	require.EqualValues(t, 0, m.StackHeight())
	require.EqualValues(t, 0, m.StackSize())
}

func TestChargePackAddsStructOverhead(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargePack(2, SizeU64*2)
	require.NoError(t, err)
	require.EqualValues(t, SizeU64*2+StructSize, m.StackSize())
}

func TestChargePackOverflow(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargePack(1, math.MaxUint64)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestChargeUnpackPushesFields(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeUnpack(3, SizeU64*3)
	require.NoError(t, err)
	// one struct popped, 3 fields pushed: net stack-height effect is +2.
	require.EqualValues(t, 2, m.StackHeight())
}

func TestChargeReadRefPopsRefPushesValue(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeReadRef(SizeU256)
	require.NoError(t, err)
	// one reference popped, one value pushed: net stack-height effect is 0.
	require.EqualValues(t, 0, m.StackHeight())
	require.EqualValues(t, SizeU256-ReferenceSize, m.StackSize())
}

func TestChargeWriteRefPopsTwoPushesOne(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeWriteRef(SizeU256, SizeU64)
	require.NoError(t, err)
	// one push then two pops from an empty stack: the pops saturate at 0.
	require.EqualValues(t, 0, m.StackHeight())
	require.EqualValues(t, SizeU256-SizeU64, m.StackSize())
}

// ChargeEq folds both operand sizes into size_in; ChargeNeq, by design,
// does not. This asymmetry is load-bearing behavior, not a bug.
func TestChargeEqNeqAsymmetry(t *testing.T) {
	eq := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := eq.ChargeEq(SizeU64, SizeU64)
	require.NoError(t, err)
	require.EqualValues(t, SizeU64*2, eq.StackSize())

	neq := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err = neq.ChargeNeq(SizeU64, SizeU64)
	require.NoError(t, err)
	require.EqualValues(t, 0, neq.StackSize())
}

func TestChargeEqOverflow(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeEq(math.MaxUint64, 1)
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestChargeBorrowGlobalAndExists(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeBorrowGlobal(0)
	require.NoError(t, err)
	require.EqualValues(t, ReferenceSize, m.StackSize())

	m2 := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err = m2.ChargeExists(0)
	require.NoError(t, err)
	require.EqualValues(t, SizeBool, m2.StackSize())
}

func TestChargeMoveFromAndMoveTo(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err := m.ChargeMoveFrom(0, SizeU128)
	require.NoError(t, err)
	// one address popped, one resource value pushed: net stack-height is 0.
	require.EqualValues(t, 0, m.StackHeight())
	require.EqualValues(t, SizeU128, m.StackSize())

	m2 := NewMeter(InitialCostSchedule(), 10_000_000)
	_, err = m2.ChargeMoveTo(32, SizeU128)
	require.NoError(t, err)
	require.EqualValues(t, 0, m2.StackHeight())
}

func TestChargeVectorOps(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)

	_, err := m.ChargeVecPack(3, SizeU64*3)
	require.NoError(t, err)
	require.EqualValues(t, SizeU64*3+VecSize, m.StackSize())

	_, err = m.ChargeVecUnpack(3, SizeU64*3)
	require.NoError(t, err)

	_, err = m.ChargeVecLen()
	require.NoError(t, err)

	_, err = m.ChargeVecBorrow()
	require.NoError(t, err)

	_, err = m.ChargeVecPushBack(SizeU64)
	require.NoError(t, err)

	_, err = m.ChargeVecPopBack(SizeU64)
	require.NoError(t, err)

	_, err = m.ChargeVecSwap()
	require.NoError(t, err)
}

func TestChargeDropFrameAndLoadResourceAreNoops(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	before := m.Balance()

	cost, err := m.ChargeDropFrame()
	require.NoError(t, err)
	require.Equal(t, Cost{}, cost)

	cost, err = m.ChargeLoadResource()
	require.NoError(t, err)
	require.Equal(t, Cost{}, cost)

	require.Equal(t, before, m.Balance())
}

func TestChargeIOWriteAndChangeSetAreNoops(t *testing.T) {
	m := NewMeter(InitialCostSchedule(), 10_000_000)
	before := m.Balance()
	m.ChargeIOWrite(1 << 20)
	m.ChargeChangeSet(1 << 20)
	require.Equal(t, before, m.Balance())
	st := m.GasStatement()
	require.Equal(t, uint64(0), st.StorageGasUsed)
}
