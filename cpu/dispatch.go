package cpu

import (
	"fmt"
	"io"
)

// Handler executes the instruction whose opcode is at reg.PC.
//
// A handler consumes its own operand bytes, which follow the opcode, and
// returns the address of the next instruction to fetch. The engine commits
// next to the program counter; it never advances the counter itself.
type Handler func(reg *Registers, mem *Memory, out io.Writer) (next int, err error)

// Instruction is a Dispatch Table entry.
type Instruction struct {
	Arity   int     // Number of operand bytes after the opcode.
	Handler Handler // Instruction semantics.
}

var _dispatch = [...]Instruction{
	OP_NOP: {0, execNop},
	OP_LDI: {2, execLdi},
	OP_LDS: {2, execLds},
	OP_ADD: {2, execAlu2(ALU_OP_ADD)},
	OP_SUB: {2, execAlu2(ALU_OP_SUB)},
	OP_MUL: {2, execAlu2(ALU_OP_MUL)},
	OP_DIV: {2, execAlu2(ALU_OP_DIV)},
	OP_INC: {1, execAlu1(ALU_OP_INC)},
	OP_DEC: {1, execAlu1(ALU_OP_DEC)},
	OP_CMP: {2, execAlu2(ALU_OP_CMP)},
	OP_JMP: {1, execJmp},
	OP_JEQ: {1, execJumpIf(true)},
	OP_JNE: {1, execJumpIf(false)},
	OP_PSH: {1, execPsh},
	OP_POP: {1, execPop},
	OP_PRN: {1, execPrn},
	OP_HLT: {0, execHlt},
}

// Dispatch returns the Dispatch Table entry for op.
// Reserved opcodes have no entry.
func Dispatch(op Opcode) (inst Instruction, ok bool) {
	if op < 0 || int(op) >= len(_dispatch) {
		return
	}

	inst = _dispatch[op]
	ok = inst.Handler != nil
	return
}

// operands reads the n bytes following the opcode at reg.PC, and returns
// them with the address just past them.
func operands(reg *Registers, mem *Memory, n int) (args []uint8, next int, err error) {
	args = make([]uint8, n)
	for i := range n {
		args[i], err = mem.Read(reg.PC + 1 + i)
		if err != nil {
			return
		}
	}

	next = reg.PC + 1 + n
	return
}

func execNop(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	next = reg.PC + 1
	return
}

func execHlt(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	next = reg.PC + 1
	err = ErrHalted
	return
}

// LDI r,imm
func execLdi(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	args, next, err := operands(reg, mem, 2)
	if err != nil {
		return
	}

	err = reg.Set(args[0], int(args[1]))
	return
}

// LDS ra,rb loads ra from the register whose index is held in rb.
func execLds(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	args, next, err := operands(reg, mem, 2)
	if err != nil {
		return
	}

	index, err := reg.Get(args[1])
	if err != nil {
		return
	}

	value, err := reg.Get(index)
	if err != nil {
		return
	}

	err = reg.Set(args[0], int(value))
	return
}

// execAlu2 returns a handler for a two register ALU instruction, with
// its output written back to the first register.
func execAlu2(op AluOp) Handler {
	return func(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
		args, next, err := operands(reg, mem, 2)
		if err != nil {
			return
		}

		a, err := reg.Get(args[0])
		if err != nil {
			return
		}
		b, err := reg.Get(args[1])
		if err != nil {
			return
		}

		output, equal, store := Alu(op, a, b)
		if op == ALU_OP_CMP {
			reg.Equal = equal
		}
		if store {
			err = reg.Set(args[0], int(output))
		}
		return
	}
}

// execAlu1 returns a handler for a single register ALU instruction.
func execAlu1(op AluOp) Handler {
	return func(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
		args, next, err := operands(reg, mem, 1)
		if err != nil {
			return
		}

		a, err := reg.Get(args[0])
		if err != nil {
			return
		}

		output, _, store := Alu(op, a, 0)
		if store {
			err = reg.Set(args[0], int(output))
		}
		return
	}
}

// JMP r
func execJmp(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	args, next, err := operands(reg, mem, 1)
	if err != nil {
		return
	}

	target, err := reg.Get(args[0])
	if err != nil {
		return
	}

	next = int(target)
	return
}

// execJumpIf returns a handler that jumps when the equal flag is want.
// The flag is left as is.
func execJumpIf(want bool) Handler {
	return func(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
		args, next, err := operands(reg, mem, 1)
		if err != nil {
			return
		}

		target, err := reg.Get(args[0])
		if err != nil {
			return
		}

		if reg.Equal == want {
			next = int(target)
		}
		return
	}
}

// PSH r
func execPsh(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	args, next, err := operands(reg, mem, 1)
	if err != nil {
		return
	}

	err = push(reg, mem, args[0])
	return
}

// POP r
func execPop(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	args, next, err := operands(reg, mem, 1)
	if err != nil {
		return
	}

	err = pop(reg, mem, args[0])
	return
}

// PRN r writes the decimal value of r and a newline.
func execPrn(reg *Registers, mem *Memory, out io.Writer) (next int, err error) {
	args, next, err := operands(reg, mem, 1)
	if err != nil {
		return
	}

	value, err := reg.Get(args[0])
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(out, "%d\n", value)
	return
}
