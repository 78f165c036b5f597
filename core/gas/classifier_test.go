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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifierChargeExecutionAccumulates(t *testing.T) {
	c := newClassifier()
	c.chargeExecution(10)
	c.chargeExecution(5)
	require.Equal(t, GasStatement{ExecutionGasUsed: 15}, c.statement())
}

func TestClassifierIOWriteAndChangeSetAreNoops(t *testing.T) {
	c := newClassifier()
	c.chargeIOWrite(1000)
	c.chargeChangeSet(1000)
	require.Equal(t, GasStatement{}, c.statement())
}

func TestTouchedOpcodesDeduplicates(t *testing.T) {
	tr := newTouchedOpcodes()
	tr.add("Add")
	tr.add("Add")
	tr.add("Sub")
	require.ElementsMatch(t, []string{"Add", "Sub"}, tr.list())
}

func TestTouchedOpcodesEmpty(t *testing.T) {
	tr := newTouchedOpcodes()
	require.Empty(t, tr.list())
}
