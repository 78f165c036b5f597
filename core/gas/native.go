// Copyright 2014 The go-ethereum Authors
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

package gas

// NativeFunction describes a host-provided function invoked from
// bytecode, for the purposes of driving the two-phase native charging
// protocol (ChargeNativeFunctionBeforeExecution / ChargeNativeFunction).
// It plays the role the teacher's PrecompiledAccount plays for EVM
// precompiles: a name, its argument/return shape, and a host-reported
// cost function — except here the cost is reported after the fact by the
// host rather than computed up front from input bytes.
type NativeFunction struct {
	Name     string
	ArgSizes []uint64
	RetSizes []uint64
	// HostCost computes the amount the native host itself reports for a
	// given call, deducted directly by ChargeNativeFunction on top of the
	// metered pre/post charges.
	HostCost func(args []uint64) uint64
}

// NativeRegistry is a name-keyed lookup table of native functions, used by
// tests and cmd/gasmeter's trace runner to resolve a trace's native-call
// steps without hand-rolling argument/return shapes inline.
type NativeRegistry map[string]*NativeFunction

// ChargeCall runs both phases of fn's charging protocol against m: the
// pre-execution charge for fn's arguments, then the post-execution charge
// for its return values plus its reported host cost.
func (r NativeRegistry) ChargeCall(m *Meter, name string) (Cost, error) {
	fn, ok := r[name]
	if !ok {
		panic("gas: unknown native function " + name)
	}

	if _, err := m.ChargeNativeFunctionBeforeExecution(fn.ArgSizes); err != nil {
		return Cost{}, err
	}

	amount := uint64(0)
	if fn.HostCost != nil {
		amount = fn.HostCost(fn.ArgSizes)
	}
	return m.ChargeNativeFunction(amount, fn.RetSizes)
}
