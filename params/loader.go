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

package params

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// LoadSchedule reads an on-chain gas dictionary from a JSON file through fs,
// the same afero.Fs indirection node/config.go uses for its config blob —
// production code passes an afero.OsFs, tests pass an afero.MemMapFs so no
// test ever touches the real filesystem.
func LoadSchedule(fs afero.Fs, path string) (GasParameters, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return GasParameters{}, fmt.Errorf("params: reading schedule %s: %v", path, err)
	}

	var dict map[string]uint64
	if err := json.Unmarshal(raw, &dict); err != nil {
		return GasParameters{}, fmt.Errorf("params: parsing schedule %s: %v", path, err)
	}

	return FromOnChainSchedule(dict)
}

// SaveSchedule writes p's on-chain dictionary to path through fs, the
// write-side counterpart of LoadSchedule.
func SaveSchedule(fs afero.Fs, path string, p GasParameters) error {
	raw, err := json.MarshalIndent(p.ToOnChainSchedule(), "", "  ")
	if err != nil {
		return fmt.Errorf("params: encoding schedule: %v", err)
	}
	return afero.WriteFile(fs, path, raw, 0644)
}
