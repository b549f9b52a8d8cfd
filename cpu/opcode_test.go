package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP", OP_NOP.String())
	assert.Equal("LDI", OP_LDI.String())
	assert.Equal("HLT", OP_HLT.String())
	assert.Equal("PRA", OP_PRA.String())
	assert.Equal("Opcode(23)", Opcode(23).String())
}

func TestEncoding_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, enc := range encodings {
		for op := OP_NOP; op <= OP_PRA; op++ {
			code, ok := enc.Encode(op)
			assert.True(ok, "%v %v", enc, op)

			decoded, ok := enc.Decode(code)
			assert.True(ok)
			assert.Equal(op, decoded, "%v 0x%02x", enc, code)
		}

		_, ok := enc.Encode(Opcode(99))
		assert.False(ok)
	}
}

func TestEncoding_V2(t *testing.T) {
	assert := assert.New(t)

	table := map[uint8]Opcode{
		0b00000000: OP_NOP,
		0b00000100: OP_LDI,
		0b00000101: OP_MUL,
		0b00000110: OP_PRN,
		0b00001010: OP_PSH,
		0b00001011: OP_POP,
		0b00011011: OP_HLT,
	}

	for code, op := range table {
		decoded, ok := EncodingV2.Decode(code)
		assert.True(ok)
		assert.Equal(op, decoded)
	}

	_, ok := EncodingV2.Decode(0xff)
	assert.False(ok)
}

func TestEncoding_CanonicalArity(t *testing.T) {
	assert := assert.New(t)

	for op := OP_NOP; op <= OP_PRA; op++ {
		inst, ok := Dispatch(op)
		if !ok {
			continue
		}

		code, ok := EncodingCanonical.Encode(op)
		assert.True(ok)
		assert.Equal(inst.Arity, int(code>>6), "%v 0b%08b", op, code)
	}
}

func TestEncodingByName(t *testing.T) {
	assert := assert.New(t)

	enc, err := EncodingByName("v2")
	assert.NoError(err)
	assert.Equal(EncodingV2, enc)

	enc, err = EncodingByName("Canonical")
	assert.NoError(err)
	assert.Equal(EncodingCanonical, enc)
	assert.Equal("canonical", enc.String())

	_, err = EncodingByName("v3")
	assert.ErrorIs(err, ErrEncodingUnknown)
	assert.ErrorContains(err, "canonical, v2")

	assert.Equal([]string{"canonical", "v2"}, EncodingNames())
}

func TestDispatch(t *testing.T) {
	assert := assert.New(t)

	arity := map[Opcode]int{
		OP_NOP: 0, OP_HLT: 0,
		OP_INC: 1, OP_DEC: 1, OP_JMP: 1, OP_JEQ: 1, OP_JNE: 1,
		OP_PSH: 1, OP_POP: 1, OP_PRN: 1,
		OP_LDI: 2, OP_LDS: 2, OP_ADD: 2, OP_SUB: 2, OP_MUL: 2, OP_DIV: 2, OP_CMP: 2,
	}

	for op, n := range arity {
		inst, ok := Dispatch(op)
		assert.True(ok, op.String())
		assert.NotNil(inst.Handler)
		assert.Equal(n, inst.Arity, op.String())
	}
}
