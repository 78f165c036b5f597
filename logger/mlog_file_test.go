// Copyright 2017 The go-ethereum Authors
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

package logger

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mlogExampleT = MLogT{
	Description: "Struct for testing mlog lines.",
	Receiver:    "TESTER",
	Verb:        "TESTING",
	Subject:     "MLOG",
	Details: []MLogDetailT{
		{Owner: "FROM", Key: "UDP_ADDRESS"},
		{Owner: "FROM", Key: "ID"},
		{Owner: "NEIGHBORS", Key: "BYTES_TRANSFERRED"},
	},
}

func TestMLogRegisterAvailable(t *testing.T) {
	before := len(MLogRegistryAvailable)
	c := MLogRegisterAvailable("mlogtest", []MLogT{mlogExampleT})
	assert.Equal(t, mlogComponent("mlogtest"), c)
	require.Len(t, MLogRegistryAvailable[c], 1)
	assert.Len(t, MLogRegistryAvailable, before+1)
}

func TestMLogRegisterComponentsFromContext(t *testing.T) {
	MLogRegisterAvailable("mlogtest2", []MLogT{mlogExampleT})

	require.NoError(t, MLogRegisterComponentsFromContext("mlogtest2"))
	assert.NotNil(t, MLogRegistryActive[mlogComponent("mlogtest2")])

	err := MLogRegisterComponentsFromContext("definitely-not-registered")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestMLogComponentSend(t *testing.T) {
	MLogRegisterAvailable("mlogtest3", []MLogT{mlogExampleT})
	require.NoError(t, MLogRegisterComponentsFromContext("mlogtest3"))

	var buf bytes.Buffer
	prev := mlogWriter
	SetMLogWriter(&buf)
	defer SetMLogWriter(prev)
	MLogRegisterActive("mlogtest3")

	line := mlogExampleT.SetDetailValues("10.0.0.1:30303", "abc", 42).String()
	mlogComponent("mlogtest3").Send(line)

	assert.Contains(t, buf.String(), "TESTER")
	assert.Contains(t, buf.String(), "10.0.0.1:30303")

	// Sending on a component that was never activated is a silent no-op.
	buf.Reset()
	mlogComponent("never-activated").Send(line)
	assert.Empty(t, buf.String())
}

func TestMLogTSetDetailValues(t *testing.T) {
	m := mlogExampleT.SetDetailValues("addr", "id", 7)
	assert.Equal(t, "addr", m.Details[0].Value)
	assert.Equal(t, "id", m.Details[1].Value)
	assert.Equal(t, 7, m.Details[2].Value)

	// The original template is untouched; SetDetailValues returns a copy.
	assert.Nil(t, mlogExampleT.Details[0].Value)
}

func TestMLogTString(t *testing.T) {
	m := mlogExampleT.SetDetailValues("addr", "id", 7)
	s := m.String()
	assert.Equal(t, "TESTER TESTING MLOG [addr] [id] [7]", s)

	doc := m.String(true)
	assert.Contains(t, doc, m.Description)
}

func TestSetMLogDirAndCreateMLogFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "mlog_test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	SetMLogDir(dir)
	f, filename, err := CreateMLogFile(time.Now())
	require.NoError(t, err)
	defer f.Close()

	assert.NotEmpty(t, filename)
	assert.True(t, strings.HasPrefix(filename, dir))
}

func TestCreateMLogFileNoDir(t *testing.T) {
	SetMLogDir("")
	_, _, err := CreateMLogFile(time.Now())
	require.Error(t, err)
}
