// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs LS-8 programs: a cpu.Cpu with a loaded cpu.Program,
// ticked by a clock.
package emulator

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ezrec/ls8/cpu"
)

// Emulator state. CPU + program listing + clock.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	// Interval between cycles. Zero runs cycles back to back.
	Interval time.Duration
}

// NewEmulator creates a new emulator with size bytes of memory.
// A size of zero or less selects cpu.MEMORY_SIZE.
func NewEmulator(size int) (emu *Emulator) {
	if size <= 0 {
		size = cpu.MEMORY_SIZE
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(size),
		Program: &cpu.Program{},
	}

	return
}

// Reset the CPU, and load the program at address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Program.Load(emu.Cpu)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", len(emu.Program.Codes))
	}

	return
}

// LineNo returns the program line number of the opcode at the program counter.
func (emu *Emulator) LineNo() int {
	return emu.Program.Line(emu.Cpu.Registers.PC)
}

// Tick performs a single cycle. The returned done is true once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	address := emu.Cpu.Registers.PC
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	return
}

// Run ticks the emulator until the CPU halts, an error occurs, or ctx is done.
//
// Cancelling ctx only pauses the clock. Machine state is kept, and a later
// Run continues with the next cycle.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	var clock <-chan time.Time
	if emu.Interval > 0 {
		ticker := time.NewTicker(emu.Interval)
		defer ticker.Stop()
		clock = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if clock != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock:
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			if done && emu.Verbose {
				log.Printf("emulator: halted after %d ticks", emu.Cpu.Ticks)
			}
			return
		}
	}
}
