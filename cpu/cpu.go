package cpu

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// State is the execution state of the Cpu.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Encoding *Encoding // Opcode byte encoding.
	Output   io.Writer // Destination of PRN output.

	Memory    *Memory   // Program and stack memory.
	Registers Registers // Register file.
	State     State     // Running or halted.

	Ticks int // Executed cycles since reset.
}

// NewCpu creates a new CPU with size bytes of memory.
func NewCpu(size int) (cpu *Cpu) {
	cpu = &Cpu{
		Encoding: EncodingV2,
		Output:   io.Discard,
		Memory:   NewMemory(size),
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Zeros memory.
// - Zeros the registers, and sets the stack pointer to STACK_TOP.
// - Zeros statistics counters.
// - Sets the CPU state to running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Registers.Reset()
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
}

// Poke stores value at address, for program loading.
func (cpu *Cpu) Poke(address int, value uint8) (err error) {
	return cpu.Memory.Write(address, value)
}

// Peek returns the value at address.
func (cpu *Cpu) Peek(address int) (value uint8, err error) {
	return cpu.Memory.Read(address)
}

// Halted returns true once the CPU has stopped.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	reg := &cpu.Registers

	text += fmt.Sprintf("% 5s: %02X\n", "pc", reg.PC)
	text += fmt.Sprintf("% 5s: %02X\n", "ir", reg.IR)
	text += fmt.Sprintf("% 5s: %v\n", "equal", reg.Equal)
	for n, val := range reg.General {
		name := fmt.Sprintf("r%d", n)
		if n == REGISTER_SP {
			name = "sp"
		}
		text += fmt.Sprintf("% 5s: %02X\n", name, val)
	}
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)

	return
}

// Fetch reads the opcode at the program counter into the instruction
// register, and looks it up in the Dispatch Table. The returned ok is
// false for bytes with no executable instruction.
func (cpu *Cpu) Fetch() (op Opcode, inst Instruction, ok bool, err error) {
	reg := &cpu.Registers

	reg.IR, err = cpu.Memory.Read(reg.PC)
	if err != nil {
		return
	}

	op, ok = cpu.Encoding.Decode(reg.IR)
	if !ok {
		return
	}

	inst, ok = Dispatch(op)
	return
}

// Tick executes a single CPU instruction cycle.
//
// An opcode byte without an instruction halts the CPU, leaving the program
// counter at that opcode. Ticking a halted CPU returns ErrHalted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted() {
		return ErrHalted
	}

	reg := &cpu.Registers
	pc := reg.PC

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Address: pc, Code: reg.IR}, err)
		}
	}()

	op, inst, ok, err := cpu.Fetch()
	if err != nil {
		return
	}

	cpu.Ticks++

	if !ok {
		if cpu.Verbose {
			if _, known := cpu.Encoding.Decode(reg.IR); known {
				log.Printf("%02x: reserved opcode %v, halting", pc, op)
			} else {
				log.Printf("%02x: invalid opcode 0x%02x, halting", pc, reg.IR)
			}
		}
		cpu.State = STATE_HALTED
		return
	}

	if cpu.Verbose {
		log.Printf("%02x: %v", pc, op)
	}

	next, err := inst.Handler(reg, cpu.Memory, cpu.Output)
	if errors.Is(err, ErrHalted) {
		cpu.State = STATE_HALTED
		err = nil
	}
	if err != nil {
		return
	}

	reg.PC = next

	return
}

// Run ticks the CPU until it halts.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}
