package cpu

// The stack lives in memory, below STACK_TOP, and grows down. Register r7
// holds the address of the most recently pushed byte.

// push writes register src below the stack pointer, then decrements it.
// Pushing r7 stores the decremented pointer. On error no state changes.
func push(reg *Registers, mem *Memory, src uint8) (err error) {
	sp := reg.SP() - 1

	value, err := reg.Get(src)
	if err != nil {
		return
	}
	if src == REGISTER_SP {
		value = sp
	}

	err = mem.Write(int(sp), value)
	if err != nil {
		return
	}

	reg.General[REGISTER_SP] = sp
	return
}

// pop reads the top of stack into register dst, then increments the stack
// pointer. Popping into r7 increments the popped value.
func pop(reg *Registers, mem *Memory, dst uint8) (err error) {
	value, err := mem.Read(int(reg.SP()))
	if err != nil {
		return
	}

	err = reg.Set(dst, int(value))
	if err != nil {
		return
	}

	reg.General[REGISTER_SP]++
	return
}

// StackDepth returns the number of bytes pushed below STACK_TOP.
func (reg *Registers) StackDepth() int {
	return int(uint8(STACK_TOP - reg.SP()))
}
