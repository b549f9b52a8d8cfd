package cpu

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Opcode is a decoded instruction type, independent of its byte encoding.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0)  // NOP
	OP_LDI = Opcode(1)  // LDI
	OP_LDS = Opcode(2)  // LDS
	OP_ADD = Opcode(3)  // ADD
	OP_SUB = Opcode(4)  // SUB
	OP_MUL = Opcode(5)  // MUL
	OP_DIV = Opcode(6)  // DIV
	OP_INC = Opcode(7)  // INC
	OP_DEC = Opcode(8)  // DEC
	OP_CMP = Opcode(9)  // CMP
	OP_JMP = Opcode(10) // JMP
	OP_JEQ = Opcode(11) // JEQ
	OP_JNE = Opcode(12) // JNE
	OP_PSH = Opcode(13) // PSH
	OP_POP = Opcode(14) // POP
	OP_PRN = Opcode(15) // PRN
	OP_HLT = Opcode(16) // HLT

	// Reserved, no defined semantics.
	OP_CAL = Opcode(17) // CAL
	OP_RET = Opcode(18) // RET
	OP_INT = Opcode(19) // INT
	OP_IRT = Opcode(20) // IRT
	OP_STR = Opcode(21) // STR
	OP_PRA = Opcode(22) // PRA
)

// Reserved returns true for opcodes that are named but not executable.
func (op Opcode) Reserved() bool {
	_, ok := Dispatch(op)
	return !ok
}

// Encoding maps opcode bytes to opcodes.
type Encoding struct {
	Name   string
	decode map[uint8]Opcode
	encode map[Opcode]uint8
}

func newEncoding(name string, codes map[Opcode]uint8) (enc *Encoding) {
	enc = &Encoding{
		Name:   name,
		decode: make(map[uint8]Opcode, len(codes)),
		encode: maps.Clone(codes),
	}

	for op, code := range codes {
		if _, dup := enc.decode[code]; dup {
			panic(fmt.Sprintf("encoding %v: duplicate code 0x%02x", name, code))
		}
		enc.decode[code] = op
	}

	return
}

// EncodingV2 is the LS-8 v2.0 instruction encoding.
var EncodingV2 = newEncoding("v2", map[Opcode]uint8{
	OP_NOP: 0b00000000,
	OP_LDI: 0b00000100,
	OP_MUL: 0b00000101,
	OP_PRN: 0b00000110,
	OP_PRA: 0b00000111,
	OP_STR: 0b00001001,
	OP_PSH: 0b00001010,
	OP_POP: 0b00001011,
	OP_ADD: 0b00001100,
	OP_SUB: 0b00001101,
	OP_DIV: 0b00001110,
	OP_CAL: 0b00001111,
	OP_RET: 0b00010000,
	OP_JMP: 0b00010001,
	OP_LDS: 0b00010010,
	OP_JEQ: 0b00010011,
	OP_JNE: 0b00010100,
	OP_CMP: 0b00010110,
	OP_INC: 0b00010111,
	OP_DEC: 0b00011000,
	OP_INT: 0b00011001,
	OP_IRT: 0b00011010,
	OP_HLT: 0b00011011,
})

// EncodingCanonical carries the operand count in the top two bits of
// every opcode byte.
var EncodingCanonical = newEncoding("canonical", map[Opcode]uint8{
	OP_NOP: 0b00000000,
	OP_HLT: 0b00000001,
	OP_RET: 0b00010001,
	OP_IRT: 0b00010011,
	OP_PSH: 0b01000101,
	OP_POP: 0b01000110,
	OP_PRN: 0b01000111,
	OP_PRA: 0b01001000,
	OP_CAL: 0b01010000,
	OP_INT: 0b01010010,
	OP_JMP: 0b01010100,
	OP_JEQ: 0b01010101,
	OP_JNE: 0b01010110,
	OP_INC: 0b01100101,
	OP_DEC: 0b01100110,
	OP_LDI: 0b10000010,
	OP_LDS: 0b10000011,
	OP_STR: 0b10000100,
	OP_ADD: 0b10100000,
	OP_SUB: 0b10100001,
	OP_MUL: 0b10100010,
	OP_DIV: 0b10100011,
	OP_CMP: 0b10100111,
})

var _encodings = map[string]*Encoding{
	EncodingV2.Name:        EncodingV2,
	EncodingCanonical.Name: EncodingCanonical,
}

// EncodingByName returns the named encoding.
func EncodingByName(name string) (enc *Encoding, err error) {
	enc, ok := _encodings[strings.ToLower(name)]
	if !ok {
		err = fmt.Errorf("%w: %v (have %v)", ErrEncodingUnknown, name, strings.Join(EncodingNames(), ", "))
	}
	return
}

// EncodingNames returns the sorted names of all encodings.
func EncodingNames() []string {
	return slices.Sorted(maps.Keys(_encodings))
}

// Decode the opcode byte code.
func (enc *Encoding) Decode(code uint8) (op Opcode, ok bool) {
	op, ok = enc.decode[code]
	return
}

// Encode the opcode as a byte.
func (enc *Encoding) Encode(op Opcode) (code uint8, ok bool) {
	code, ok = enc.encode[op]
	return
}

// String returns the encoding name.
func (enc *Encoding) String() string {
	return enc.Name
}
