// Package cpu implements the processor of the LS-8 virtual machine.
//
// The CPU consists of a flat byte memory (256 bytes by default), eight 8-bit general-purpose
// registers (r0-r7, with r7 as the stack pointer), a program counter, an
// instruction register, and an equal flag set by CMP.
//
// Every cycle fetches the opcode at the program counter, decodes it through
// an Encoding into an Opcode, and runs the Handler registered for it in the
// Dispatch Table. Handlers consume their own operands and return the next
// program counter. Bytes with no handler halt the CPU.
//
// Memory and register accesses out of range are trapped. DIV by zero is a
// no-op.
package cpu
