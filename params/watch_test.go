// +build darwin,!ios freebsd linux,!arm64 netbsd solaris windows

package params

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleWatcherLoadsInitialSchedule(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, SaveSchedule(fs, "/schedule.json", Initial()))

	w, err := NewScheduleWatcher(fs, "/schedule.json", nil)
	require.NoError(t, err)
	require.Equal(t, Fingerprint(Initial()), Fingerprint(w.Current()))
}

func TestNewScheduleWatcherMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewScheduleWatcher(fs, "/missing.json", nil)
	require.Error(t, err)
}

func TestScheduleWatcherReloadKeepsPriorOnParseFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, SaveSchedule(fs, "/schedule.json", Initial()))

	w, err := NewScheduleWatcher(fs, "/schedule.json", nil)
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/schedule.json", []byte("not json"), 0644))
	w.reload()

	require.Equal(t, Fingerprint(Initial()), Fingerprint(w.Current()))
}

func TestScheduleWatcherReloadPicksUpValidChange(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, SaveSchedule(fs, "/schedule.json", Initial()))

	cache, err := NewScheduleCache(4)
	require.NoError(t, err)

	w, err := NewScheduleWatcher(fs, "/schedule.json", cache)
	require.NoError(t, err)
	cache.GetOrBuild(w.Current())

	changed := Initial()
	changed.CallBase = 42
	require.NoError(t, SaveSchedule(fs, "/schedule.json", changed))

	w.reload()
	require.Equal(t, Fingerprint(changed), Fingerprint(w.Current()))

	_, ok := cache.Get(Fingerprint(Initial()))
	require.False(t, ok)
}

func TestScheduleWatcherCloseBeforeStartIsNoop(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, SaveSchedule(fs, "/schedule.json", Initial()))

	w, err := NewScheduleWatcher(fs, "/schedule.json", nil)
	require.NoError(t, err)
	w.Close()
}
