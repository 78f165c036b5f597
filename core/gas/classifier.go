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

import "gopkg.in/fatih/set.v0"

// GasStatement is a snapshot of the classifier's accumulators, taken once
// at the end of a transaction and handed off for settlement.
type GasStatement struct {
	ExecutionGasUsed uint64
	StorageGasUsed   uint64
}

// classifier partitions consumed gas into execution vs. storage buckets.
// The meter holds it as a plain value (not behind interior mutability or a
// shared pointer) since the meter itself is single-owner, single-threaded
// — spec's "shared-mutable accumulators" rationale doesn't apply here.
type classifier struct {
	executionGasUsed uint64
	storageGasUsed   uint64
}

func newClassifier() classifier {
	return classifier{}
}

// chargeExecution records n units of already-deducted gas as execution
// gas. Called by the facade after every successful Charge.
func (c *classifier) chargeExecution(n uint64) {
	c.executionGasUsed += n
}

// chargeIOWrite and chargeChangeSet are reserved extension points for a
// future storage-fee model. They are intentionally no-ops: inventing a
// storage pricing policy is out of scope here (see DESIGN.md).
func (c *classifier) chargeIOWrite(uint64)  {}
func (c *classifier) chargeChangeSet(uint64) {}

func (c *classifier) statement() GasStatement {
	return GasStatement{ExecutionGasUsed: c.executionGasUsed, StorageGasUsed: c.storageGasUsed}
}

// touchedOpcodes is a diagnostic-only record of which simple opcode
// mnemonics were charged during a transaction. It never participates in a
// cost computation, so it has no bearing on determinism; it exists purely
// for cmd/gasmeter's summary printer.
type touchedOpcodes struct {
	seen *set.Set
}

func newTouchedOpcodes() touchedOpcodes {
	return touchedOpcodes{seen: set.New()}
}

func (t *touchedOpcodes) add(name string) {
	t.seen.Add(name)
}

func (t *touchedOpcodes) list() []string {
	raw := t.seen.List()
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
