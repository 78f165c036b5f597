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

// Abstract memory sizes, in bytes, used to price stack growth. These are
// language-independent units, not physical in-memory layouts.
const (
	SizeBool Size = 1
	SizeU8   Size = 1
	SizeU16  Size = 2
	SizeU32  Size = 4
	SizeU64  Size = 8
	SizeU128 Size = 16
	SizeU256 Size = 32

	// ReferenceSize is the abstract size of a reference or handle value.
	ReferenceSize Size = 8
	// StructSize is the abstract size of a struct value's own metadata,
	// exclusive of its fields.
	StructSize Size = 2
	// VecSize is the abstract size of a vector value's own metadata,
	// exclusive of its elements.
	VecSize Size = 8

	// smallestIntegerSize and largestIntegerSize back the conservative
	// over-approximation policy for ops whose real operand width isn't
	// known at charge time (casts, arithmetic, relational compares).
	smallestIntegerSize Size = SizeU8
	largestIntegerSize  Size = SizeU256
)

// Size is an abstract memory size, in bytes.
type Size = uint64

// checkedAdd returns a+b and true, or (0, false) if the sum would wrap
// past the range of a uint64.
func checkedAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// checkedMul returns a*b and true, or (0, false) if the product would wrap
// past the range of a uint64.
func checkedMul(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/a != b {
		return 0, false
	}
	return p, true
}

// saturatingSub returns a-b, floored at zero instead of wrapping.
func saturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}
