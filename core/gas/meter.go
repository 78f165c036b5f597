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

// Package gas implements the tiered gas meter: a single-owner,
// single-threaded per-transaction budget tracker consumed by a bytecode VM
// on every instruction and native call. See facade.go for the VM-facing
// entry points and classifier.go for execution/storage classification.
package gas

import "errors"

// The meter surfaces exactly two fatal outcomes. Neither is recovered
// internally; the VM must propagate and must not re-invoke a meter past a
// failure.
var (
	ErrOutOfGas           = errors.New("gas: out of gas")
	ErrArithmeticOverflow = errors.New("gas: arithmetic overflow")
)

// Cost is the priced breakdown of a single charge, one term per dimension.
type Cost struct {
	InstructionGas uint64
	MemoryGas      uint64
	StackHeightGas uint64
}

// Total sums the three dimensions with overflow checking.
func (c Cost) Total() (uint64, error) {
	total, ok := checkedAdd(c.InstructionGas, c.MemoryGas)
	if !ok {
		return 0, ErrArithmeticOverflow
	}
	total, ok = checkedAdd(total, c.StackHeightGas)
	if !ok {
		return 0, ErrArithmeticOverflow
	}
	return total, nil
}

// Meter is the per-transaction gas meter. It is created once per
// transaction and mutated exclusively by the executing VM thread; it is
// never shared across goroutines.
type Meter struct {
	schedule *CostSchedule
	gasLeft  uint64
	charging bool

	instructions resourceCounter
	stackHeight  resourceCounter
	stackSize    resourceCounter

	classifier classifier
	touched    touchedOpcodes
}

// NewMeter creates a meter bound to schedule with the given budget. Pass
// ZeroCostSchedule() for dry-run / metering-disabled execution.
func NewMeter(schedule *CostSchedule, budget uint64) *Meter {
	return &Meter{
		schedule:     schedule,
		gasLeft:      budget,
		charging:     true,
		instructions: newResourceCounter(schedule.InstructionTiers),
		stackHeight:  newResourceCounter(schedule.StackHeightTiers),
		stackSize:    newResourceCounter(schedule.StackSizeTiers),
		classifier:   newClassifier(),
		touched:      newTouchedOpcodes(),
	}
}

// Charge is the charge engine (C4): given a per-operation delta, it
// updates the three resource counters, detects tier crossings, computes a
// scalar cost, and deducts it from the budget.
//
// Ordering matters: counters are updated *before* their multipliers are
// read, so the very instruction that crosses into a new tier is priced at
// the new tier — a conservative choice that rules out a free
// tier-crossing step. Pops happen after the deduction, so a failed charge
// still leaves the stack-height counter reflecting the attempted push
// (the VM contract treats a failed instruction as having executed its
// pre-conditions for accounting purposes).
func (m *Meter) Charge(instrCount, pushes, pops, sizeIn, sizeOut uint64) (Cost, error) {
	if err := m.stackHeight.increase(m.schedule.StackHeightTiers, pushes); err != nil {
		return Cost{}, err
	}
	if err := m.instructions.increase(m.schedule.InstructionTiers, instrCount); err != nil {
		return Cost{}, err
	}
	if err := m.stackSize.increase(m.schedule.StackSizeTiers, sizeIn); err != nil {
		return Cost{}, err
	}

	instructionGas, ok := checkedMul(m.instructions.currentMult, instrCount)
	if !ok {
		return Cost{}, ErrArithmeticOverflow
	}
	memoryGas, ok := checkedMul(m.stackSize.currentMult, sizeIn)
	if !ok {
		return Cost{}, ErrArithmeticOverflow
	}
	stackHeightGas, ok := checkedMul(m.stackHeight.currentMult, pushes)
	if !ok {
		return Cost{}, ErrArithmeticOverflow
	}

	cost := Cost{InstructionGas: instructionGas, MemoryGas: memoryGas, StackHeightGas: stackHeightGas}
	total, err := cost.Total()
	if err != nil {
		return Cost{}, err
	}

	if err := m.deduct(total); err != nil {
		return Cost{}, err
	}

	// Pop-phase and size-out accounting: saturating, never fails. size_out
	// is intentionally not charged — stack-size growth (size_in) is the
	// priced dimension; size_out is preserved in the API for symmetry and
	// future refinement.
	m.stackHeight.decrease(pops)
	m.stackSize.decrease(sizeOut)

	return cost, nil
}

// deduct subtracts amount from gas_left, honoring the metering toggle. A
// deduction that would exceed gas_left zeroes it and fails with
// ErrOutOfGas rather than leaving a stale balance.
func (m *Meter) deduct(amount uint64) error {
	if !m.charging {
		return nil
	}
	if m.gasLeft < amount {
		m.gasLeft = 0
		return ErrOutOfGas
	}
	m.gasLeft -= amount
	return nil
}

// Balance returns the remaining budget (balance_internal in the VM
// contract).
func (m *Meter) Balance() uint64 { return m.gasLeft }

// StartMetering, StopMetering and IsMetering implement the charge switch
// (C7). Counters keep updating while metering is stopped, so high-water
// marks stay accurate; only the deduction against gas_left is skipped.
func (m *Meter) StartMetering() { m.charging = true }
func (m *Meter) StopMetering()  { m.charging = false }
func (m *Meter) IsMetering() bool { return m.charging }

// GasStatement returns the classifier's execution/storage snapshot.
func (m *Meter) GasStatement() GasStatement { return m.classifier.statement() }

// InstructionsExecuted, StackHeight and StackSize expose the live counter
// values and high-water marks for diagnostics and property tests.
func (m *Meter) InstructionsExecuted() uint64 { return m.instructions.current }
func (m *Meter) StackHeight() uint64          { return m.stackHeight.current }
func (m *Meter) StackSize() uint64            { return m.stackSize.current }

func (m *Meter) InstructionsHighWaterMark() uint64 { return m.instructions.highWaterMark }
func (m *Meter) StackHeightHighWaterMark() uint64  { return m.stackHeight.highWaterMark }
func (m *Meter) StackSizeHighWaterMark() uint64    { return m.stackSize.highWaterMark }

// CurrentTierMultipliers returns the cached current multiplier for each of
// the three dimensions, in (instruction, stack-height, stack-size) order —
// used by conformance tests to assert invariant 4 after a tier crossing.
func (m *Meter) CurrentTierMultipliers() (instr, height, size uint64) {
	return m.instructions.currentMult, m.stackHeight.currentMult, m.stackSize.currentMult
}

// TouchedOpcodes returns the mnemonics of every simple opcode charged
// through ChargeSimpleInstr during this transaction. Diagnostic only.
func (m *Meter) TouchedOpcodes() []string { return m.touched.list() }
