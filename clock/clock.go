// Package clock runs an emulator on a discrete event simulation engine,
// one emulator cycle per clock tick.
package clock

import (
	"log"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/ezrec/mipsim/emulator"
)

// Core is a ticking component that steps an emulator.
type Core struct {
	*sim.TickingComponent

	Verbose  bool
	Emulator *emulator.Emulator

	Cycles int   // Cycles completed on this core.
	Done   bool  // Set once the program is exhausted.
	Err    error // First runtime error; the core stops ticking.
}

// NewCore creates a core clocked at freq on the engine.
func NewCore(name string, engine sim.Engine, freq sim.Freq, emu *emulator.Emulator) (c *Core) {
	c = &Core{Emulator: emu}
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)

	return
}

// Tick runs one emulator cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.Done || c.Err != nil {
		return false
	}

	done, err := c.Emulator.Tick()
	if err != nil {
		c.Err = err
		if c.Verbose {
			log.Printf("%v: %v", c.Name(), err)
		}
		return false
	}

	if done {
		c.Done = true
		if c.Verbose {
			log.Printf("%v: done after %d cycles", c.Name(), c.Cycles)
		}
		return false
	}

	c.Cycles++
	return true
}

// Frequency converts a clock rate in MHz.
func Frequency(mhz float64) sim.Freq {
	return sim.Freq(mhz) * sim.MHz
}

// Run executes the emulator's program to completion on a new serial engine,
// returning the simulated time it took.
func Run(emu *emulator.Emulator, freq sim.Freq) (elapsed sim.VTimeInSec, err error) {
	engine := sim.NewSerialEngine()

	core := NewCore("Core", engine, freq, emu)
	core.Verbose = emu.Verbose
	core.TickLater()

	err = engine.Run()
	if err != nil {
		return
	}

	elapsed = engine.CurrentTime()
	err = core.Err

	return
}
