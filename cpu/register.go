package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers, r0-r7.
	REGISTER_SP    = 7    // Register used as the stack pointer.
	STACK_TOP      = 0xf8 // Initial stack pointer.
)

// Registers is the register file.
//
// Only the general purpose registers are masked to 8 bits. The program
// counter is a plain address, checked against memory when dereferenced.
type Registers struct {
	General [REGISTER_COUNT]uint8 // r0-r7, r7 is the stack pointer.
	PC      int                   // Address of the next opcode to fetch.
	IR      uint8                 // Most recently fetched opcode.
	Equal   bool                  // Result of the last CMP.
}

// Reset the register file to the power-on state.
func (reg *Registers) Reset() {
	clear(reg.General[:])
	reg.General[REGISTER_SP] = STACK_TOP
	reg.PC = 0
	reg.IR = 0
	reg.Equal = false
}

// Get the value of general purpose register index.
func (reg *Registers) Get(index uint8) (value uint8, err error) {
	if int(index) >= len(reg.General) {
		err = ErrRegister(index)
		return
	}

	value = reg.General[index]
	return
}

// Set general purpose register index to value & 0xff.
func (reg *Registers) Set(index uint8, value int) (err error) {
	if int(index) >= len(reg.General) {
		err = ErrRegister(index)
		return
	}

	reg.General[index] = uint8(value & 0xff)
	return
}

// SP returns the stack pointer.
func (reg *Registers) SP() uint8 {
	return reg.General[REGISTER_SP]
}
