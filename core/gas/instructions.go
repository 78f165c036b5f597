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

// stackDelta is the pure stack effect of a simple instruction: how many
// values it pops and pushes, and the abstract size of each side. The
// meter is invoked before operand types are resolved, so every entry here
// is a sound over-approximation, never an under-approximation — an
// adversarial program must never be under-charged.
type stackDelta struct {
	pops, pushes         uint64
	popSize, pushSize Size
}

// simpleInstructionCosts is the instruction cost map (C5): a total,
// exhaustive function from a closed opcode enumeration to its stack
// delta. Built once at init time and indexed directly by Opcode, mirroring
// the teacher's array-indexed jump table rather than a map with dynamic
// dispatch.
var simpleInstructionCosts [numOpcodes]stackDelta

func init() {
	// Nullary, stack-neutral. Ret's pops are accounted for at the
	// matching Call, not here.
	simpleInstructionCosts[Nop] = stackDelta{}
	simpleInstructionCosts[Ret] = stackDelta{}

	// Literal loads: no pops, one push of the literal's own size.
	simpleInstructionCosts[LdU8] = stackDelta{pushes: 1, pushSize: SizeU8}
	simpleInstructionCosts[LdU16] = stackDelta{pushes: 1, pushSize: SizeU16}
	simpleInstructionCosts[LdU32] = stackDelta{pushes: 1, pushSize: SizeU32}
	simpleInstructionCosts[LdU64] = stackDelta{pushes: 1, pushSize: SizeU64}
	simpleInstructionCosts[LdU128] = stackDelta{pushes: 1, pushSize: SizeU128}
	simpleInstructionCosts[LdU256] = stackDelta{pushes: 1, pushSize: SizeU256}
	simpleInstructionCosts[LdTrue] = stackDelta{pushes: 1, pushSize: SizeBool}
	simpleInstructionCosts[LdFalse] = stackDelta{pushes: 1, pushSize: SizeBool}

	// Borrow and freeze ops push a reference-sized word.
	simpleInstructionCosts[FreezeRef] = stackDelta{pushes: 1, pushSize: ReferenceSize}
	simpleInstructionCosts[ImmBorrowLoc] = stackDelta{pushes: 1, pushSize: ReferenceSize}
	simpleInstructionCosts[MutBorrowLoc] = stackDelta{pushes: 1, pushSize: ReferenceSize}
	simpleInstructionCosts[ImmBorrowField] = stackDelta{pushes: 1, pushSize: ReferenceSize}
	simpleInstructionCosts[MutBorrowField] = stackDelta{pushes: 1, pushSize: ReferenceSize}

	// Casts: push the destination size, pop the smallest integer size
	// (the source width is conservatively unknown here).
	simpleInstructionCosts[CastU8] = stackDelta{pops: 1, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeU8}
	simpleInstructionCosts[CastU16] = stackDelta{pops: 1, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeU16}
	simpleInstructionCosts[CastU32] = stackDelta{pops: 1, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeU32}
	simpleInstructionCosts[CastU64] = stackDelta{pops: 1, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeU64}
	simpleInstructionCosts[CastU128] = stackDelta{pops: 1, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeU128}
	simpleInstructionCosts[CastU256] = stackDelta{pops: 1, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeU256}

	// Binary arithmetic/bitwise/shift: 2 pops of the smallest integer
	// size, 1 push of the largest — a conservative over-approximation in
	// both directions.
	for _, op := range []Opcode{Add, Sub, Mul, Div, Mod, BitOr, BitAnd, Xor, Shl, Shr} {
		simpleInstructionCosts[op] = stackDelta{
			pops: 2, popSize: smallestIntegerSize,
			pushes: 1, pushSize: largestIntegerSize,
		}
	}

	// Logical binary: booleans in, boolean out.
	for _, op := range []Opcode{Or, And} {
		simpleInstructionCosts[op] = stackDelta{pops: 2, popSize: SizeBool, pushes: 1, pushSize: SizeBool}
	}

	// Relational compares: smallest-integer operands, boolean result.
	for _, op := range []Opcode{Lt, Gt, Le, Ge} {
		simpleInstructionCosts[op] = stackDelta{pops: 2, popSize: smallestIntegerSize, pushes: 1, pushSize: SizeBool}
	}

	simpleInstructionCosts[Not] = stackDelta{pops: 1, popSize: SizeBool, pushes: 1, pushSize: SizeBool}
	simpleInstructionCosts[Abort] = stackDelta{pops: 1, popSize: SizeU64}
}

// instructionCost looks up the stack delta for a simple opcode. It panics
// on a tag outside the closed enumeration, the same way an exhaustive
// switch over a sealed variant would fail loudly on an impossible case —
// this map is total over Opcode by construction, so the panic only fires
// on a caller bug (a byte value never converted through the enumeration).
func instructionCost(op Opcode) stackDelta {
	if int(op) >= len(simpleInstructionCosts) {
		panic("gas: opcode out of range for instruction cost map")
	}
	return simpleInstructionCosts[op]
}
