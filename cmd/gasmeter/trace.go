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

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/eth-classic/gas-meter/core/gas"
	"github.com/eth-classic/gas-meter/metrics"
)

// traceStep is one line of a recorded execution: either a simple opcode
// (Op set) or a native call (Native set), never both. Args carries the
// operand-dependent facade arguments, in the order the matching Charge*
// method in facade.go expects them.
type traceStep struct {
	Op     string   `json:"op,omitempty"`
	Native string   `json:"native,omitempty"`
	Args   []uint64 `json:"args,omitempty"`
}

// loadTrace reads a JSON array of traceStep from path through fs.
func loadTrace(fs afero.Fs, path string) ([]traceStep, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("gasmeter: reading trace %s: %v", path, err)
	}
	var steps []traceStep
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil, fmt.Errorf("gasmeter: parsing trace %s: %v", path, err)
	}
	return steps, nil
}

// runTrace drives steps through m in order, stopping at the first error
// the meter returns. natives resolves any Native-tagged steps; it may be
// nil if the trace has none. After every step it compares m's tier
// multipliers against their pre-step values and reports each dimension
// that crossed into a new tier to the metrics registry.
func runTrace(m *gas.Meter, steps []traceStep, natives gas.NativeRegistry) error {
	prevInstr, prevHeight, prevSize := m.CurrentTierMultipliers()

	for i, step := range steps {
		var err error
		switch {
		case step.Native != "":
			_, err = natives.ChargeCall(m, step.Native)
		case step.Op != "":
			err = chargeOp(m, step.Op, step.Args)
		default:
			return fmt.Errorf("gasmeter: trace step %d has neither op nor native", i)
		}

		instr, height, size := m.CurrentTierMultipliers()
		if instr != prevInstr {
			metrics.RecordTierCrossing("instruction")
		}
		if height != prevHeight {
			metrics.RecordTierCrossing("stack_height")
		}
		if size != prevSize {
			metrics.RecordTierCrossing("stack_size")
		}
		prevInstr, prevHeight, prevSize = instr, height, size

		if err != nil {
			return fmt.Errorf("gasmeter: trace step %d (%s%s): %w", i, step.Op, step.Native, err)
		}
	}
	return nil
}

// chargeOp dispatches a single textual opcode to its facade method. Simple
// (nullary/no-operand-size) opcodes resolve through ParseOpcode and
// ChargeSimpleInstr; everything else is recognized by name against the
// facade methods that take operand sizes, mirroring the fixed set
// facade.go implements.
func chargeOp(m *gas.Meter, op string, args []uint64) error {
	arg := func(i int) uint64 {
		if i < len(args) {
			return args[i]
		}
		return 0
	}

	switch strings.ToLower(op) {
	case "branch":
		_, err := m.ChargeBranch()
		return err
	case "pop":
		_, err := m.ChargePop(arg(0))
		return err
	case "call":
		_, err := m.ChargeCall(arg(0), arg(1))
		return err
	case "callgeneric":
		_, err := m.ChargeCallGeneric(arg(0), arg(1))
		return err
	case "ldconst":
		_, err := m.ChargeLdConst(arg(0))
		return err
	case "ldconstafterdeserialization":
		_, err := m.ChargeLdConstAfterDeserialization()
		return err
	case "copyloc":
		_, err := m.ChargeCopyLoc(arg(0))
		return err
	case "moveloc":
		_, err := m.ChargeMoveLoc(arg(0))
		return err
	case "storeloc":
		_, err := m.ChargeStoreLoc(arg(0))
		return err
	case "pack":
		_, err := m.ChargePack(arg(0), arg(1))
		return err
	case "unpack":
		_, err := m.ChargeUnpack(arg(0), arg(1))
		return err
	case "readref":
		_, err := m.ChargeReadRef(arg(0))
		return err
	case "writeref":
		_, err := m.ChargeWriteRef(arg(0), arg(1))
		return err
	case "eq":
		_, err := m.ChargeEq(arg(0), arg(1))
		return err
	case "neq":
		_, err := m.ChargeNeq(arg(0), arg(1))
		return err
	case "borrowglobal":
		_, err := m.ChargeBorrowGlobal(arg(0))
		return err
	case "exists":
		_, err := m.ChargeExists(arg(0))
		return err
	case "movefrom":
		_, err := m.ChargeMoveFrom(arg(0), arg(1))
		return err
	case "moveto":
		_, err := m.ChargeMoveTo(arg(0), arg(1))
		return err
	case "vecpack":
		_, err := m.ChargeVecPack(arg(0), arg(1))
		return err
	case "vecunpack":
		_, err := m.ChargeVecUnpack(arg(0), arg(1))
		return err
	case "veclen":
		_, err := m.ChargeVecLen()
		return err
	case "vecborrow":
		_, err := m.ChargeVecBorrow()
		return err
	case "vecpushback":
		_, err := m.ChargeVecPushBack(arg(0))
		return err
	case "vecpopback":
		_, err := m.ChargeVecPopBack(arg(0))
		return err
	case "vecswap":
		_, err := m.ChargeVecSwap()
		return err
	case "dropframe":
		_, err := m.ChargeDropFrame()
		return err
	case "loadresource":
		_, err := m.ChargeLoadResource()
		return err
	case "iowrite":
		m.ChargeIOWrite(arg(0))
		return nil
	case "changeset":
		m.ChargeChangeSet(arg(0))
		return nil
	}

	if simple, ok := gas.ParseOpcode(op); ok {
		_, err := m.ChargeSimpleInstr(simple)
		return err
	}
	return fmt.Errorf("unknown opcode %q", op)
}
