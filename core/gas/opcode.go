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

import "strings"

// Opcode is a tag for the simple, stack-only bytecode instructions priced
// directly from the instruction cost map (instructions.go). Opcodes with
// operand-dependent costs (calls, references, globals, vectors, natives)
// are not represented here; they are charged through their own facade
// method in facade.go.
type Opcode byte

const (
	Nop Opcode = iota
	Ret

	LdU8
	LdU16
	LdU32
	LdU64
	LdU128
	LdU256
	LdTrue
	LdFalse

	FreezeRef
	ImmBorrowLoc
	MutBorrowLoc
	ImmBorrowField
	MutBorrowField

	CastU8
	CastU16
	CastU32
	CastU64
	CastU128
	CastU256

	Add
	Sub
	Mul
	Div
	Mod
	BitOr
	BitAnd
	Xor
	Shl
	Shr

	Or
	And

	Lt
	Gt
	Le
	Ge

	Not
	Abort

	numOpcodes // sentinel: count of entries in the cost table, not a real opcode
)

var opcodeNames = [numOpcodes]string{
	Nop:            "Nop",
	Ret:            "Ret",
	LdU8:           "LdU8",
	LdU16:          "LdU16",
	LdU32:          "LdU32",
	LdU64:          "LdU64",
	LdU128:         "LdU128",
	LdU256:         "LdU256",
	LdTrue:         "LdTrue",
	LdFalse:        "LdFalse",
	FreezeRef:      "FreezeRef",
	ImmBorrowLoc:   "ImmBorrowLoc",
	MutBorrowLoc:   "MutBorrowLoc",
	ImmBorrowField: "ImmBorrowField",
	MutBorrowField: "MutBorrowField",
	CastU8:         "CastU8",
	CastU16:        "CastU16",
	CastU32:        "CastU32",
	CastU64:        "CastU64",
	CastU128:       "CastU128",
	CastU256:       "CastU256",
	Add:            "Add",
	Sub:            "Sub",
	Mul:            "Mul",
	Div:            "Div",
	Mod:            "Mod",
	BitOr:          "BitOr",
	BitAnd:         "BitAnd",
	Xor:            "Xor",
	Shl:            "Shl",
	Shr:            "Shr",
	Or:             "Or",
	And:            "And",
	Lt:             "Lt",
	Gt:             "Gt",
	Le:             "Le",
	Ge:             "Ge",
	Not:            "Not",
	Abort:          "Abort",
}

// String returns the opcode's mnemonic, or "unknown" for a tag outside
// the closed enumeration.
func (op Opcode) String() string {
	if int(op) < len(opcodeNames) && opcodeNames[op] != "" {
		return opcodeNames[op]
	}
	return "unknown"
}

var opcodesByLowerName map[string]Opcode

func init() {
	opcodesByLowerName = make(map[string]Opcode, numOpcodes)
	for op, name := range opcodeNames {
		if name != "" {
			opcodesByLowerName[strings.ToLower(name)] = Opcode(op)
		}
	}
}

// ParseOpcode resolves a mnemonic (case-insensitive, as printed by String)
// back to its Opcode, for trace readers that carry opcodes as text rather
// than as a compiled program.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodesByLowerName[strings.ToLower(name)]
	return op, ok
}
