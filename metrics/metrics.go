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

// Package metrics centralizes the registration of gas-meter observability
// instruments. core/gas itself never imports this package — it reports
// through a Classifier's GasStatement, and the caller (cmd/gasmeter) feeds
// that statement here after each transaction, keeping the charge hot path
// free of metrics overhead.
package metrics

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"runtime"
	"time"

	gometrics "github.com/rcrowley/go-metrics"

	"github.com/eth-classic/gas-meter/core/gas"
	"github.com/eth-classic/gas-meter/logger/glog"
)

// reg is the metrics destination.
var reg = gometrics.NewRegistry()

var (
	// GasCharged records the total gas deducted per completed transaction.
	GasCharged = gometrics.NewRegisteredHistogram("gas/charged", reg, gometrics.NewExpDecaySample(1028, 0.015))

	// OutOfGas and ArithmeticErrors count the two fatal outcomes a meter
	// ever surfaces.
	OutOfGas         = gometrics.NewRegisteredMeter("gas/error/outofgas", reg)
	ArithmeticErrors = gometrics.NewRegisteredMeter("gas/error/arithmetic", reg)

	// TierCrossings counts, per dimension, how many times a transaction's
	// resource counter advanced into a new tier.
	InstructionTierCrossings = gometrics.NewRegisteredCounter("gas/tier/instruction", reg)
	StackHeightTierCrossings = gometrics.NewRegisteredCounter("gas/tier/stackheight", reg)
	StackSizeTierCrossings   = gometrics.NewRegisteredCounter("gas/tier/stacksize", reg)

	// ScheduleCachePopulate times how long params.ScheduleCache.GetOrBuild
	// takes to assemble a schedule from an on-chain dictionary on a cache
	// miss.
	ScheduleCachePopulate = gometrics.NewRegisteredTimer("params/schedule/populate", reg)
	ScheduleCacheHits     = gometrics.NewRegisteredMeter("params/schedule/hit", reg)
	ScheduleCacheMisses   = gometrics.NewRegisteredMeter("params/schedule/miss", reg)
)

var (
	MemAllocs = gometrics.GetOrRegisterGauge("memory/allocs", reg)
	MemFrees  = gometrics.GetOrRegisterGauge("memory/frees", reg)
	MemInuse  = gometrics.GetOrRegisterGauge("memory/inuse", reg)
	MemPauses = gometrics.GetOrRegisterGauge("memory/pauses", reg)

	DiskReads      = gometrics.GetOrRegisterGauge("disk/readcount", reg)
	DiskReadBytes  = gometrics.GetOrRegisterGauge("disk/readdata", reg)
	DiskWrites     = gometrics.GetOrRegisterGauge("disk/writecount", reg)
	DiskWriteBytes = gometrics.GetOrRegisterGauge("disk/writedata", reg)
)

// diskStats is the per process disk I/O statistics.
type diskStats struct {
	ReadCount  int64 // Number of read operations executed
	ReadBytes  int64 // Total number of bytes read
	WriteCount int64 // Number of write operations executed
	WriteBytes int64 // Total number of byte written
}

// RecordStatement folds a completed transaction's gas statement into the
// registry: the total charged (execution + storage) and, when the meter
// stopped on an error, the matching error meter.
func RecordStatement(st gas.GasStatement, chargeErr error) {
	total := st.ExecutionGasUsed + st.StorageGasUsed
	GasCharged.Update(int64(total))

	switch {
	case errors.Is(chargeErr, gas.ErrOutOfGas):
		OutOfGas.Mark(1)
	case errors.Is(chargeErr, gas.ErrArithmeticOverflow):
		ArithmeticErrors.Mark(1)
	}
}

// RecordTierCrossing increments the crossing counter for dimension, called
// by cmd/gasmeter's trace runner whenever Meter.CurrentTierMultipliers
// reports a change from the previous reading.
func RecordTierCrossing(dimension string) {
	switch dimension {
	case "instruction":
		InstructionTierCrossings.Inc(1)
	case "stack_height":
		StackHeightTierCrossings.Inc(1)
	case "stack_size":
		StackSizeTierCrossings.Inc(1)
	}
}

// Collect writes the registry to file every few seconds, in the same
// dump-a-JSON-line-on-a-timer style the teacher uses for its p2p/download
// counters.
func Collect(file string) {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		glog.Fatal(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	encoder := json.NewEncoder(w)

	for range time.Tick(3 * time.Second) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		MemAllocs.Update(int64(mem.Mallocs))
		MemFrees.Update(int64(mem.Frees))
		MemInuse.Update(int64(mem.Alloc))
		MemPauses.Update(int64(mem.PauseTotalNs))

		var disk diskStats
		readDiskStats(&disk)
		DiskReads.Update(disk.ReadCount)
		DiskReadBytes.Update(disk.ReadBytes)
		DiskWrites.Update(disk.WriteCount)
		DiskWriteBytes.Update(disk.WriteBytes)

		if err := encoder.Encode(reg); err != nil {
			glog.Errorf("metrics: log to %q: %s", file, err)
		}
		if err := w.Flush(); err != nil {
			glog.Errorf("metrics: log to %q: %s", file, err)
		}
	}
}
