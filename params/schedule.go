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

package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/eth-classic/gas-meter/core/gas"
)

// ToOnChainSchedule flattens p into a string-keyed dictionary suitable for
// storage in an on-chain config object. Tier tables are flattened to
// "<dimension>.tier.<threshold>" -> multiplier entries so the dictionary
// stays a flat map rather than a nested document.
func (p GasParameters) ToOnChainSchedule() map[string]uint64 {
	out := map[string]uint64{
		"reference_size":  p.ReferenceSize,
		"struct_size":     p.StructSize,
		"vec_size":        p.VecSize,
		"smallest_int":    p.SmallestInt,
		"largest_int":     p.LargestInt,
		"load_const_base": p.LoadConstBase,
		"call_base":       p.CallBase,
		"native_seed":     p.NativeSeed,
	}
	flattenTiers(out, "instruction", p.InstructionTiers)
	flattenTiers(out, "stack_height", p.StackHeightTiers)
	flattenTiers(out, "stack_size", p.StackSizeTiers)
	return out
}

func flattenTiers(out map[string]uint64, dimension string, breakpoints []gas.TierBreakpoint) {
	for _, bp := range breakpoints {
		out[fmt.Sprintf("%s.tier.%d", dimension, bp.Threshold)] = bp.Multiplier
	}
}

// FromOnChainSchedule parses a dictionary produced by ToOnChainSchedule back
// into a GasParameters. It is strict about the scalar keys (all eight must
// be present) but tolerant of a dimension contributing zero tier entries
// beyond its implicit 0 threshold, matching how a genesis config in the
// teacher tree allows a fork's gas table to be sparse.
func FromOnChainSchedule(dict map[string]uint64) (GasParameters, error) {
	var p GasParameters

	scalars := map[string]*uint64{
		"reference_size":  &p.ReferenceSize,
		"struct_size":     &p.StructSize,
		"vec_size":        &p.VecSize,
		"smallest_int":    &p.SmallestInt,
		"largest_int":     &p.LargestInt,
		"load_const_base": &p.LoadConstBase,
		"call_base":       &p.CallBase,
		"native_seed":     &p.NativeSeed,
	}
	for key, dst := range scalars {
		v, ok := dict[key]
		if !ok {
			return GasParameters{}, fmt.Errorf("params: on-chain schedule missing %q", key)
		}
		*dst = v
	}

	instr, err := parseTierDimension(dict, "instruction")
	if err != nil {
		return GasParameters{}, err
	}
	height, err := parseTierDimension(dict, "stack_height")
	if err != nil {
		return GasParameters{}, err
	}
	size, err := parseTierDimension(dict, "stack_size")
	if err != nil {
		return GasParameters{}, err
	}
	p.InstructionTiers = instr
	p.StackHeightTiers = height
	p.StackSizeTiers = size

	return p, nil
}

func parseTierDimension(dict map[string]uint64, dimension string) ([]gas.TierBreakpoint, error) {
	prefix := dimension + ".tier."
	var out []gas.TierBreakpoint
	for key, mult := range dict {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		thresholdStr := strings.TrimPrefix(key, prefix)
		threshold, err := strconv.ParseUint(thresholdStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("params: bad tier key %q: %v", key, err)
		}
		out = append(out, gas.TierBreakpoint{Threshold: threshold, Multiplier: mult})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Threshold < out[j].Threshold })
	return out, nil
}
