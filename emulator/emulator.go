// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"
	"log"
	"slices"

	"github.com/ezrec/mipsim/cpu"
)

// Trace is called after every completed cycle.
type Trace func(lineno int, cycle cpu.Cycle)

// Emulator state. CPU + program listing + configuration.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Config Config // Configuration, fixed at creation.
	Trace  Trace  // Optional per-cycle observer.
}

// NewEmulator creates a new emulator from a validated configuration.
func NewEmulator(config Config) (emu *Emulator, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(config.Memory),
		Program: &cpu.Program{},
		Config:  config,
	}

	return
}

// Assemble parses a source listing with the configured equates, and
// resets the emulator to run it.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Config.Equates {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	err = emu.Reset()
	return
}

// Reset the CPU, install the program words, and seed memory: every data
// label's value is also written at the address equal to that value.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = false

	emu.Cpu.Load(emu.Program.Words)
	emu.Cpu.Reset()

	for _, label := range emu.Program.DataOrder {
		value := emu.Program.Data[label]
		err = emu.Cpu.Memory.Write(int64(value), value)
		if err != nil {
			err = &ErrSeed{Label: label, Err: err}
			return
		}
		if emu.Verbose {
			log.Printf("seed: %v: mem[%d] <- %d", label, value, value)
		}
	}

	emu.Cpu.Verbose = emu.Verbose

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the next word to execute, or 0
// if the program is exhausted.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Registers returns a copy of the register file.
func (emu *Emulator) Registers() cpu.RegFile {
	return emu.Cpu.Register
}

// Memory returns a copy of the data memory.
func (emu *Emulator) Memory() []int32 {
	return slices.Clone(emu.Cpu.Memory.Data)
}

// Tick performs a single cycle of the emulator. Running past the last
// word is not an error; it reports done.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	limit := emu.Config.MaxSteps
	if limit > 0 && emu.Cpu.Ticks >= limit && int(pc) < len(emu.Cpu.Code) {
		err = ErrStepLimit
		return
	}

	cycle, err := emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrPcEmpty) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Config.Trace {
		log.Printf("%d: %03d: %v => %v", lineno, cycle.Pc, cycle.Word, cycle.Effect)
	}

	if emu.Trace != nil {
		emu.Trace(lineno, cycle)
	}

	return
}

// Run ticks until the program is exhausted or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
