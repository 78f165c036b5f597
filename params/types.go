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

// Package params aggregates the gas meter's on-chain-tunable parameters: the
// three tier schedules plus named scalar constants mirroring the ones the
// facade methods in core/gas use for struct/vector/reference overhead and
// native-call seeding. It is the serialization and distribution boundary between a
// replicated ledger's on-chain dictionary and a core/gas.CostSchedule a
// meter actually runs against.
package params

import "github.com/eth-classic/gas-meter/core/gas"

// GasParameters is the full set of values a validator must agree on before
// two replicas can be trusted to charge identical gas for identical
// execution. ToOnChainSchedule/FromOnChainSchedule round-trip every field
// here through a string-keyed dictionary, not just the three tier tables.
type GasParameters struct {
	InstructionTiers []gas.TierBreakpoint
	StackHeightTiers []gas.TierBreakpoint
	StackSizeTiers   []gas.TierBreakpoint

	// Named scalar constants. Values mirror the literal constants spec.md
	// §4.5/§4.6 hard-codes. They round-trip through the on-chain
	// dictionary, but ToCostSchedule does not pass them to core/gas: the
	// facade methods always charge with core/gas's own constants.
	ReferenceSize uint64
	StructSize    uint64
	VecSize       uint64
	SmallestInt   uint64
	LargestInt    uint64

	// LoadConstBase, CallBase and NativeSeed are not read by core/gas
	// directly (the facade methods take their operand sizes as arguments),
	// but they are carried here because original_source/moveos exposes them
	// as named, independently governable costs; a future facade revision
	// can fold them in without another schema migration.
	LoadConstBase uint64
	CallBase      uint64
	NativeSeed    uint64
}

// Initial returns the production defaults: the exact breakpoints
// InitialCostSchedule() is built from, plus the literal constants spec.md
// hard-codes for struct/vector/reference overhead.
func Initial() GasParameters {
	return GasParameters{
		InstructionTiers: gas.DefaultInstructionBreakpoints(),
		StackHeightTiers: gas.DefaultStackHeightBreakpoints(),
		StackSizeTiers:   gas.DefaultStackSizeBreakpoints(),

		ReferenceSize: gas.ReferenceSize,
		StructSize:    gas.StructSize,
		VecSize:       gas.VecSize,
		SmallestInt:   gas.SizeU8,
		LargestInt:    gas.SizeU256,

		LoadConstBase: 1,
		CallBase:      1,
		NativeSeed:    1,
	}
}

// Zeros returns a GasParameters whose tier tables all collapse to a single
// 0 -> 0 tier and whose named constants are all zero: metering-disabled /
// dry-run mode, the parameter-level counterpart of gas.ZeroCostSchedule().
func Zeros() GasParameters {
	return GasParameters{
		InstructionTiers: []gas.TierBreakpoint{{Threshold: 0, Multiplier: 0}},
		StackHeightTiers: []gas.TierBreakpoint{{Threshold: 0, Multiplier: 0}},
		StackSizeTiers:   []gas.TierBreakpoint{{Threshold: 0, Multiplier: 0}},
	}
}

// ToCostSchedule assembles the *gas.CostSchedule the meter actually runs
// against from p's tier breakpoints.
func (p GasParameters) ToCostSchedule() *gas.CostSchedule {
	return gas.NewCostSchedule(
		gas.NewTierTable(p.InstructionTiers, gas.InstructionTierDefault),
		gas.NewTierTable(p.StackHeightTiers, gas.StackHeightTierDefault),
		gas.NewTierTable(p.StackSizeTiers, gas.StackSizeTierDefault),
	)
}
