// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// gasmeter drives a core/gas.Meter from the command line: either replaying
// a recorded trace of opcode/native-call steps in one shot (run), or
// charging steps one at a time from a REPL (repl). It is diagnostic
// tooling built against the meter's public API, not part of that API.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"gopkg.in/urfave/cli.v1"

	"github.com/eth-classic/gas-meter/core/gas"
	"github.com/eth-classic/gas-meter/logger"
	"github.com/eth-classic/gas-meter/logger/glog"
	"github.com/eth-classic/gas-meter/metrics"
	"github.com/eth-classic/gas-meter/params"
)

// mlogComponentGasmeter registers the single mlog line this binary emits:
// one RUN/COMPLETE record per `run` invocation, written when --logfile
// is given.
var mlogComponentGasmeter = logger.MLogRegisterAvailable("gasmeter", []logger.MLogT{mlogRunComplete})

var mlogRunComplete = logger.MLogT{
	Description: "Emitted once when a `run` invocation finishes, successfully or not.",
	Receiver:    "GASMETER",
	Verb:        "RUN",
	Subject:     "COMPLETE",
	Details: []logger.MLogDetailT{
		{Owner: "RUN", Key: "OUTCOME"},
		{Owner: "RUN", Key: "GAS_LEFT"},
		{Owner: "RUN", Key: "EXECUTION_GAS"},
		{Owner: "RUN", Key: "STORAGE_GAS"},
		{Owner: "RUN", Key: "INSTRUCTIONS"},
	},
}

// Version is the application revision identifier. It can be set with the
// linker as in: go build -ldflags "-X main.Version="`git describe --tags`
var Version = "unknown"

var (
	ScheduleFlag = cli.StringFlag{
		Name:  "schedule",
		Usage: "path to a JSON gas schedule (params.GasParameters.ToOnChainSchedule format); defaults to the built-in schedule",
	}
	TraceFlag = cli.StringFlag{
		Name:  "trace",
		Usage: "path to a JSON trace of opcode/native-call steps",
	}
	BudgetFlag = cli.Uint64Flag{
		Name:  "budget",
		Usage: "starting gas balance",
		Value: 10000000,
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "sets the verbosity level",
	}
	DataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "directory a relative --logfile path is resolved against",
	}
	LogFileFlag = cli.StringFlag{
		Name:  "logfile",
		Usage: "also append an mlog RUN/COMPLETE audit line to FILE (default: none)",
	}
	MetricsFlag = cli.StringFlag{
		Name:  "metrics",
		Usage: "write the metrics registry (gas charged, tier crossings, schedule cache, memory/disk) as JSON lines to FILE every few seconds",
	}
)

var app *cli.App

var scheduleCache *params.ScheduleCache

func init() {
	app = cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = Version
	app.Usage = "the gas meter command line interface"
	app.Flags = []cli.Flag{VerbosityFlag}
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "replay a recorded trace against a meter and print the final gas statement",
			Action: runCommand,
			Flags:  []cli.Flag{ScheduleFlag, TraceFlag, BudgetFlag, DataDirFlag, LogFileFlag, MetricsFlag},
		},
		{
			Name:   "repl",
			Usage:  "charge opcodes one at a time from an interactive prompt",
			Action: replCommand,
			Flags:  []cli.Flag{ScheduleFlag, BudgetFlag},
		},
	}

	sc, err := params.NewScheduleCache(0)
	if err != nil {
		// defaultScheduleCacheSize is a fixed positive constant; lru.New
		// only errors on a non-positive size.
		panic(err)
	}
	scheduleCache = sc
}

func loadScheduleFlag(ctx *cli.Context) (params.GasParameters, error) {
	path := ctx.String(ScheduleFlag.Name)
	if path == "" {
		return params.Initial(), nil
	}
	return params.LoadSchedule(afero.NewOsFs(), path)
}

// buildSchedule assembles p's cost schedule through scheduleCache,
// recording a hit or a timed miss to the metrics registry either way.
func buildSchedule(p params.GasParameters) *gas.CostSchedule {
	fp := params.Fingerprint(p)
	if s, ok := scheduleCache.Get(fp); ok {
		metrics.ScheduleCacheHits.Mark(1)
		return s
	}
	metrics.ScheduleCacheMisses.Mark(1)
	start := time.Now()
	s := scheduleCache.GetOrBuild(p)
	metrics.ScheduleCachePopulate.UpdateSince(start)
	return s
}

func runCommand(ctx *cli.Context) error {
	glog.SetToStderr(true)
	glog.SetV(ctx.GlobalInt(VerbosityFlag.Name))

	if s := ctx.String(MetricsFlag.Name); s != "" {
		go metrics.Collect(s)
	}

	p, err := loadScheduleFlag(ctx)
	if err != nil {
		return err
	}

	tracePath := ctx.String(TraceFlag.Name)
	if tracePath == "" {
		return fmt.Errorf("gasmeter: --trace is required")
	}
	steps, err := loadTrace(afero.NewOsFs(), tracePath)
	if err != nil {
		return err
	}

	m := gas.NewMeter(buildSchedule(p), ctx.Uint64(BudgetFlag.Name))
	runErr := runTrace(m, steps, nil)

	st := m.GasStatement()
	metrics.RecordStatement(st, runErr)
	summary := fmt.Sprintf("gas_left=%d execution=%d storage=%d instructions=%d touched=%v",
		m.Balance(), st.ExecutionGasUsed, st.StorageGasUsed, m.InstructionsExecuted(), m.TouchedOpcodes())

	outcome := "OK"
	if runErr != nil {
		outcome = fmt.Sprintf("FAIL: %v", runErr)
		color.Red("%s", outcome)
		color.Red("%s", summary)
	} else {
		color.Green("%s", outcome)
		color.Green("%s", summary)
	}

	logRunMLog(ctx, outcome, m, st)

	if runErr != nil {
		return runErr
	}
	return nil
}

// logRunMLog writes a RUN/COMPLETE mlog line to --logfile, when given.
// Silent when --logfile is empty: mlog is opt-in audit tooling, not the
// default output path.
func logRunMLog(ctx *cli.Context, outcome string, m *gas.Meter, st gas.GasStatement) {
	logFile := ctx.String(LogFileFlag.Name)
	if logFile == "" {
		return
	}

	logger.SetMLogWriter(logger.Writer(ctx.String(DataDirFlag.Name), logFile))
	if err := logger.MLogRegisterComponentsFromContext("gasmeter"); err != nil {
		glog.Errorf("gasmeter: mlog: %v", err)
		return
	}

	line := mlogRunComplete.SetDetailValues(outcome, m.Balance(), st.ExecutionGasUsed, st.StorageGasUsed, m.InstructionsExecuted()).String()
	mlogComponentGasmeter.Send(line)
}

func replCommand(ctx *cli.Context) error {
	glog.SetToStderr(true)
	glog.SetV(ctx.GlobalInt(VerbosityFlag.Name))

	p, err := loadScheduleFlag(ctx)
	if err != nil {
		return err
	}
	m := gas.NewMeter(buildSchedule(p), ctx.Uint64(BudgetFlag.Name))
	return runREPL(m)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
