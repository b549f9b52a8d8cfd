package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiply = `00000100 # LDI R0,8
00000000
00001000
00000100 # LDI R1,9
00000001
00001001
00000101 # MUL R0,R1
00000000
00000001
00000110 # PRN R0
00000000
00011011 # HLT
`

const multiplyCanonical = `10000010 # LDI R0,8
00000000
00001000
10000010 # LDI R1,9
00000001
00001001
10100010 # MUL R0,R1
00000000
00000001
01000111 # PRN R0
00000000
00000001 # HLT
`

func doCommand(stdin string, args ...string) (stdout string, stderr string, err error) {
	out := &bytes.Buffer{}
	errout := &bytes.Buffer{}

	cmd := newCommand(strings.NewReader(stdin), out)
	cmd.SetOut(errout)
	cmd.SetErr(errout)
	cmd.SetArgs(args)

	err = cmd.Execute()
	stdout = out.String()
	stderr = errout.String()
	return
}

func TestRunStdin(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := doCommand(multiply, "run")
	assert.NoError(err)
	assert.Equal("72\n", stdout)
}

func TestRunFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "mult.ls8")
	require.NoError(t, os.WriteFile(path, []byte(multiply), 0o644))

	stdout, _, err := doCommand("", "run", path)
	assert.NoError(err)
	assert.Equal("72\n", stdout)
}

func TestRunCanonical(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := doCommand(multiplyCanonical, "run", "--isa", "canonical")
	assert.NoError(err)
	assert.Equal("72\n", stdout)
}

func TestRunUsage(t *testing.T) {
	assert := assert.New(t)

	stdout, stderr, err := doCommand(multiply, "run", "a.ls8", "b.ls8")
	assert.Error(err)
	assert.Empty(stdout)
	assert.Contains(stderr, "run [program-file]")
}

func TestRunMissingFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "missing.ls8")
	_, stderr, err := doCommand("", "run", path)
	assert.ErrorIs(err, os.ErrNotExist)
	assert.NotContains(stderr, "Usage:")
}

func TestRunSyntax(t *testing.T) {
	assert := assert.New(t)

	_, _, err := doCommand("00000100\nbogus\n", "run")
	assert.Error(err)
	assert.ErrorContains(err, "-: line 2 'bogus'")
}

func TestRunTooLarge(t *testing.T) {
	assert := assert.New(t)

	_, _, err := doCommand(multiply, "run", "--memory", "8")
	assert.ErrorContains(err, "out of range")
}

func TestRunUnknownIsa(t *testing.T) {
	assert := assert.New(t)

	_, _, err := doCommand(multiply, "run", "--isa", "z80")
	assert.ErrorContains(err, "z80")
}

func TestRunInterval(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := doCommand(multiply, "run", "--interval", "1ms")
	assert.NoError(err)
	assert.Equal("72\n", stdout)
}
