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

// Default multipliers used by a dimension's TierTable when the counter
// value falls below that dimension's smallest breakpoint.
const (
	InstructionTierDefault uint64 = 1
	StackHeightTierDefault uint64 = 1
	StackSizeTierDefault   uint64 = 1
)

// CostSchedule bundles the three independent tier schedules the charge
// engine prices against. It is immutable after construction; pass it by
// pointer (read-only) or by value, never mutate a shared instance.
type CostSchedule struct {
	InstructionTiers *TierTable
	StackHeightTiers *TierTable
	StackSizeTiers   *TierTable
}

var instructionBreakpoints = []tierBreakpoint{
	{0, 1}, {3000, 2}, {6000, 3}, {8000, 5}, {9000, 9},
	{9500, 16}, {10000, 29}, {10500, 50}, {15000, 100},
}

var stackHeightBreakpoints = []tierBreakpoint{
	{0, 1}, {400, 2}, {800, 3}, {1200, 5}, {1500, 9},
	{1800, 16}, {2000, 29}, {2200, 50}, {5000, 100},
}

// stackSizeBreakpoints carries a duplicate 11500 threshold (29, then 50).
// The second entry silently overrides the first in newTierTable; that is
// preserved here verbatim for bit-exact compatibility rather than
// "corrected" — see DESIGN.md open-question 1.
var stackSizeBreakpoints = []tierBreakpoint{
	{0, 1}, {2000, 2}, {5000, 3}, {8000, 5}, {10000, 9},
	{11000, 16}, {11500, 29}, {11500, 50}, {20000, 100},
}

// InitialCostSchedule returns the production cost schedule with the
// breakpoints fixed by conformance tests.
func InitialCostSchedule() *CostSchedule {
	return &CostSchedule{
		InstructionTiers: newTierTable(instructionBreakpoints, InstructionTierDefault),
		StackHeightTiers: newTierTable(stackHeightBreakpoints, StackHeightTierDefault),
		StackSizeTiers:   newTierTable(stackSizeBreakpoints, StackSizeTierDefault),
	}
}

// NewCostSchedule assembles a CostSchedule from three already-built tier
// tables. params.GasParameters uses this to turn a deserialized on-chain
// dictionary into the schedule the meter actually runs against.
func NewCostSchedule(instruction, stackHeight, stackSize *TierTable) *CostSchedule {
	return &CostSchedule{
		InstructionTiers: instruction,
		StackHeightTiers: stackHeight,
		StackSizeTiers:   stackSize,
	}
}

// defaultBreakpoints exposes the three built-in breakpoint tables in the
// exported TierBreakpoint shape, so params.Initial() can seed a
// GasParameters whose tier tables match InitialCostSchedule()'s exactly
// without this package having to know about params.GasParameters.
func defaultBreakpoints(internal []tierBreakpoint) []TierBreakpoint {
	out := make([]TierBreakpoint, len(internal))
	for i, bp := range internal {
		out[i] = TierBreakpoint{Threshold: bp.threshold, Multiplier: bp.multiplier}
	}
	return out
}

// DefaultInstructionBreakpoints, DefaultStackHeightBreakpoints and
// DefaultStackSizeBreakpoints return copies of the breakpoint tables
// InitialCostSchedule builds from, including stack-size's duplicate 11500
// entry (see DESIGN.md open-question 1).
func DefaultInstructionBreakpoints() []TierBreakpoint { return defaultBreakpoints(instructionBreakpoints) }
func DefaultStackHeightBreakpoints() []TierBreakpoint { return defaultBreakpoints(stackHeightBreakpoints) }
func DefaultStackSizeBreakpoints() []TierBreakpoint   { return defaultBreakpoints(stackSizeBreakpoints) }

// ZeroCostSchedule returns the unmetered schedule: every dimension has a
// single 0 -> 0 tier, so every charge computes to zero cost.
func ZeroCostSchedule() *CostSchedule {
	return &CostSchedule{
		InstructionTiers: newTierTable([]tierBreakpoint{{0, 0}}, 0),
		StackHeightTiers: newTierTable([]tierBreakpoint{{0, 0}}, 0),
		StackSizeTiers:   newTierTable([]tierBreakpoint{{0, 0}}, 0),
	}
}
