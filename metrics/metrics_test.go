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

package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eth-classic/gas-meter/core/gas"
)

func TestRecordStatementSuccess(t *testing.T) {
	before := GasCharged.Count()
	okBefore := OutOfGas.Count()
	errBefore := ArithmeticErrors.Count()

	RecordStatement(gas.GasStatement{ExecutionGasUsed: 7, StorageGasUsed: 3}, nil)

	assert.Equal(t, before+1, GasCharged.Count())
	assert.Equal(t, int64(10), GasCharged.Max())
	assert.Equal(t, okBefore, OutOfGas.Count())
	assert.Equal(t, errBefore, ArithmeticErrors.Count())
}

func TestRecordStatementOutOfGas(t *testing.T) {
	before := OutOfGas.Count()

	// A wrapped ErrOutOfGas, the way cmd/gasmeter's trace runner returns
	// it, must still be recognized — this is the reason RecordStatement
	// uses errors.Is rather than a direct switch.
	wrapped := fmt.Errorf("gasmeter: trace step 3 (pop): %w", gas.ErrOutOfGas)
	RecordStatement(gas.GasStatement{}, wrapped)

	assert.Equal(t, before+1, OutOfGas.Count())
}

func TestRecordStatementArithmeticOverflow(t *testing.T) {
	before := ArithmeticErrors.Count()

	wrapped := fmt.Errorf("gasmeter: trace step 0 (call): %w", gas.ErrArithmeticOverflow)
	RecordStatement(gas.GasStatement{}, wrapped)

	assert.Equal(t, before+1, ArithmeticErrors.Count())
}

func TestRecordStatementUnrelatedError(t *testing.T) {
	okBefore := OutOfGas.Count()
	errBefore := ArithmeticErrors.Count()

	RecordStatement(gas.GasStatement{}, fmt.Errorf("some unrelated failure"))

	assert.Equal(t, okBefore, OutOfGas.Count())
	assert.Equal(t, errBefore, ArithmeticErrors.Count())
}

func TestRecordTierCrossing(t *testing.T) {
	instrBefore := InstructionTierCrossings.Count()
	heightBefore := StackHeightTierCrossings.Count()
	sizeBefore := StackSizeTierCrossings.Count()

	RecordTierCrossing("instruction")
	RecordTierCrossing("stack_height")
	RecordTierCrossing("stack_size")
	RecordTierCrossing("unknown_dimension")

	assert.Equal(t, instrBefore+1, InstructionTierCrossings.Count())
	assert.Equal(t, heightBefore+1, StackHeightTierCrossings.Count())
	assert.Equal(t, sizeBefore+1, StackSizeTierCrossings.Count())
}

func TestScheduleCacheInstrumentsRegistered(t *testing.T) {
	require.NotNil(t, ScheduleCachePopulate)
	require.NotNil(t, ScheduleCacheHits)
	require.NotNil(t, ScheduleCacheMisses)
}
