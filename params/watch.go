// Copyright 2016 The go-ethereum Authors
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

// +build darwin,!ios freebsd linux,!arm64 netbsd solaris windows

package params

import (
	"time"

	"github.com/rjeczalik/notify"
	"github.com/spf13/afero"

	"github.com/eth-classic/gas-meter/logger/glog"
)

const debounceDuration = 500 * time.Millisecond

// ScheduleWatcher watches a schedule file for changes on disk and
// invalidates the corresponding ScheduleCache entry, mirroring
// accounts/cache.go's watcher for the keystore directory. It is config
// hot-reload, not transaction-state persistence: it only ever refreshes
// what GasParameters a future transaction will be charged under.
type ScheduleWatcher struct {
	fs    afero.Fs
	path  string
	cache *ScheduleCache

	current GasParameters
	ev      chan notify.EventInfo
	quit    chan struct{}
	running bool
}

// NewScheduleWatcher loads path once to establish the starting schedule,
// then returns a watcher ready to Start().
func NewScheduleWatcher(fs afero.Fs, path string, cache *ScheduleCache) (*ScheduleWatcher, error) {
	initial, err := LoadSchedule(fs, path)
	if err != nil {
		return nil, err
	}
	return &ScheduleWatcher{
		fs:      fs,
		path:    path,
		cache:   cache,
		current: initial,
		ev:      make(chan notify.EventInfo, 10),
		quit:    make(chan struct{}),
	}, nil
}

// Current returns the most recently loaded schedule.
func (w *ScheduleWatcher) Current() GasParameters { return w.current }

// Start begins watching in the background. Safe to call once; a second
// call on an already-running watcher is a no-op.
func (w *ScheduleWatcher) Start() error {
	if w.running {
		return nil
	}
	if err := notify.Watch(w.path, w.ev, notify.All); err != nil {
		return err
	}
	w.running = true
	go w.loop()
	return nil
}

// Close stops the watcher and releases the underlying filesystem watch.
func (w *ScheduleWatcher) Close() {
	if !w.running {
		return
	}
	close(w.quit)
	notify.Stop(w.ev)
	w.running = false
}

func (w *ScheduleWatcher) loop() {
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-w.quit:
			return
		case <-w.ev:
			debounce.Reset(debounceDuration)
		case <-debounce.C:
			w.reload()
		}
	}
}

func (w *ScheduleWatcher) reload() {
	old := Fingerprint(w.current)
	fresh, err := LoadSchedule(w.fs, w.path)
	if err != nil {
		glog.Warningf("params: reload of %s failed, keeping prior schedule: %v", w.path, err)
		return
	}
	w.current = fresh
	if w.cache != nil {
		w.cache.Invalidate(old)
	}
	glog.Infof("params: reloaded schedule from %s (fingerprint %x)", w.path, Fingerprint(fresh))
}
