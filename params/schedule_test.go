package params

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth-classic/gas-meter/core/gas"
)

func TestOnChainScheduleRoundTrip(t *testing.T) {
	want := Initial()
	dict := want.ToOnChainSchedule()

	got, err := FromOnChainSchedule(dict)
	require.NoError(t, err)
	require.Equal(t, want.ReferenceSize, got.ReferenceSize)
	require.Equal(t, want.StructSize, got.StructSize)
	require.Equal(t, want.VecSize, got.VecSize)
	require.Equal(t, want.SmallestInt, got.SmallestInt)
	require.Equal(t, want.LargestInt, got.LargestInt)
	require.Equal(t, want.LoadConstBase, got.LoadConstBase)
	require.Equal(t, want.CallBase, got.CallBase)
	require.Equal(t, want.NativeSeed, got.NativeSeed)
	require.ElementsMatch(t, want.InstructionTiers, got.InstructionTiers)
	require.ElementsMatch(t, want.StackHeightTiers, got.StackHeightTiers)
	require.ElementsMatch(t, want.StackSizeTiers, got.StackSizeTiers)
}

func TestFromOnChainScheduleRejectsMissingScalar(t *testing.T) {
	dict := Initial().ToOnChainSchedule()
	delete(dict, "call_base")

	_, err := FromOnChainSchedule(dict)
	require.Error(t, err)
	require.Contains(t, err.Error(), "call_base")
}

func TestFromOnChainScheduleToleratesSparseTierDimension(t *testing.T) {
	dict := Zeros().ToOnChainSchedule()

	got, err := FromOnChainSchedule(dict)
	require.NoError(t, err)
	require.Equal(t, []gas.TierBreakpoint{{Threshold: 0, Multiplier: 0}}, got.InstructionTiers)
}

func TestFlattenTiersKeyFormat(t *testing.T) {
	out := map[string]uint64{}
	flattenTiers(out, "instruction", []gas.TierBreakpoint{{Threshold: 100, Multiplier: 7}})
	require.Equal(t, uint64(7), out["instruction.tier.100"])
}

func TestParseTierDimensionRejectsBadKey(t *testing.T) {
	dict := map[string]uint64{"instruction.tier.notanumber": 1}
	_, err := parseTierDimension(dict, "instruction")
	require.Error(t, err)
}

func TestParseTierDimensionSortsByThreshold(t *testing.T) {
	dict := map[string]uint64{
		"instruction.tier.200": 2,
		"instruction.tier.50":  1,
		"instruction.tier.0":   0,
	}
	got, err := parseTierDimension(dict, "instruction")
	require.NoError(t, err)
	require.Equal(t, []gas.TierBreakpoint{
		{Threshold: 0, Multiplier: 0},
		{Threshold: 50, Multiplier: 1},
		{Threshold: 200, Multiplier: 2},
	}, got)
}
