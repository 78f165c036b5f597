package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministicAcrossEquivalentSchedules(t *testing.T) {
	a := Initial()
	b := Initial()
	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintDiffersOnScalarChange(t *testing.T) {
	a := Initial()
	b := Initial()
	b.CallBase++
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintIndependentOfDictKeyOrder(t *testing.T) {
	p := Initial()
	// ToOnChainSchedule rebuilds the map fresh each call; Go randomizes
	// map iteration order, so calling it (and therefore Fingerprint)
	// repeatedly exercises the sort-before-encode path rather than
	// accidentally relying on a stable map.
	fp1 := Fingerprint(p)
	fp2 := Fingerprint(p)
	fp3 := Fingerprint(p)
	require.Equal(t, fp1, fp2)
	require.Equal(t, fp2, fp3)
}

func TestFingerprintDiffersOnTierChange(t *testing.T) {
	a := Zeros()
	b := Zeros()
	b.InstructionTiers[0].Multiplier = 5
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
