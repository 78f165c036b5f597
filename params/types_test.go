package params

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth-classic/gas-meter/core/gas"
)

// tierResult bundles Tier's three return values so they can be compared
// in a single assertion.
type tierResult struct {
	mult, next uint64
	hasNext    bool
}

func tierAt(tt *gas.TierTable, x uint64) tierResult {
	mult, next, hasNext := tt.Tier(x)
	return tierResult{mult, next, hasNext}
}

func TestInitialMatchesDefaultCostSchedule(t *testing.T) {
	p := Initial()
	want := gas.InitialCostSchedule()
	got := p.ToCostSchedule()

	require.Equal(t, tierAt(want.InstructionTiers, 0), tierAt(got.InstructionTiers, 0))
	require.Equal(t, tierAt(want.InstructionTiers, 20000), tierAt(got.InstructionTiers, 20000))
	require.Equal(t, tierAt(want.StackHeightTiers, 11500), tierAt(got.StackHeightTiers, 11500))
	require.Equal(t, tierAt(want.StackSizeTiers, 11500), tierAt(got.StackSizeTiers, 11500))
}

func TestZerosCollapsesToUnmetered(t *testing.T) {
	p := Zeros()
	sched := p.ToCostSchedule()

	require.Equal(t, uint64(0), tierAt(sched.InstructionTiers, 999999).mult)
	require.Equal(t, uint64(0), tierAt(sched.StackHeightTiers, 999999).mult)
	require.Equal(t, uint64(0), tierAt(sched.StackSizeTiers, 999999).mult)
	require.Equal(t, uint64(0), p.ReferenceSize)
	require.Equal(t, uint64(0), p.CallBase)
}
