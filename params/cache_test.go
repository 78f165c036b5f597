package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleCacheGetOrBuildCachesOnFingerprint(t *testing.T) {
	cache, err := NewScheduleCache(4)
	require.NoError(t, err)

	p := Initial()
	first := cache.GetOrBuild(p)
	require.Equal(t, 1, cache.Len())

	second := cache.GetOrBuild(p)
	require.Same(t, first, second)
	require.Equal(t, 1, cache.Len())
}

func TestScheduleCacheDistinctSchedulesDistinctEntries(t *testing.T) {
	cache, err := NewScheduleCache(4)
	require.NoError(t, err)

	a := Initial()
	b := Zeros()

	cache.GetOrBuild(a)
	cache.GetOrBuild(b)
	require.Equal(t, 2, cache.Len())
}

func TestScheduleCacheInvalidate(t *testing.T) {
	cache, err := NewScheduleCache(4)
	require.NoError(t, err)

	p := Initial()
	cache.GetOrBuild(p)

	fp := Fingerprint(p)
	_, ok := cache.Get(fp)
	require.True(t, ok)

	cache.Invalidate(fp)
	_, ok = cache.Get(fp)
	require.False(t, ok)
}

func TestNewScheduleCacheDefaultsSizeWhenNonPositive(t *testing.T) {
	cache, err := NewScheduleCache(0)
	require.NoError(t, err)
	require.NotNil(t, cache)
}
