package cpu

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// encode returns the bytes of op and its operands.
func encode(t *testing.T, enc *Encoding, op Opcode, args ...uint8) []uint8 {
	t.Helper()

	code, ok := enc.Encode(op)
	require.True(t, ok, "%v has no %v encoding", enc, op)

	return append([]uint8{code}, args...)
}

// newLoaded creates a cpu with the instructions loaded at address 0, and
// PRN output captured in the returned buffer.
func newLoaded(t *testing.T, enc *Encoding, insts ...[]uint8) (cpu *Cpu, output *bytes.Buffer) {
	t.Helper()

	cpu = NewCpu(MEMORY_SIZE)
	cpu.Encoding = enc
	output = &bytes.Buffer{}
	cpu.Output = output

	prog := &Program{Codes: slices.Concat(insts...)}
	require.NoError(t, prog.Load(cpu))

	return
}
