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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/eth-classic/gas-meter/core/gas"
)

const replHistoryLimit = 1000

// runREPL drives an interactive line-at-a-time session against m: each
// line names an opcode plus its operand sizes, charged immediately so a
// developer can watch gas_left deduct live. A bare "quit" or an EOF (^D)
// ends the session.
func runREPL(m *gas.Meter) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("gasmeter repl — type an opcode and its operand sizes, e.g. `ldu64` or `call 2 16`")
	fmt.Println("type `quit` or press ^D to exit")

	for {
		input, err := line.Prompt(fmt.Sprintf("gas_left=%d> ", m.Balance()))
		if err == io.EOF || input == "quit" {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if err := replCharge(m, input); err != nil {
			color.Red("error: %v", err)
			continue
		}
		color.Green("ok — gas_left=%d, statement=%+v", m.Balance(), m.GasStatement())
	}
}

// replCharge parses "<opcode> [arg ...]" and charges it, reusing chargeOp
// so the repl and the trace runner never diverge on opcode dispatch.
func replCharge(m *gas.Meter, input string) error {
	fields := strings.Fields(input)
	op := fields[0]
	args := make([]uint64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return fmt.Errorf("bad operand %q: %v", f, err)
		}
		args = append(args, n)
	}
	return chargeOp(m, op, args)
}
