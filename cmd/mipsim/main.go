// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/mipsim/clock"
	"github.com/ezrec/mipsim/emulator"
)

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func main() {
	var compile string
	var config_path string
	var binary bool
	var clocked bool
	var dump int
	var verbose bool

	flag.StringVar(&compile, "c", "-", ".asm file to assemble and run")
	flag.StringVar(&config_path, "config", "", ".yaml emulator configuration")
	flag.BoolVar(&binary, "b", false, "Print the binary listing, do not execute")
	flag.BoolVar(&clocked, "clock", false, "Run on the clocked simulation engine")
	flag.IntVar(&dump, "m", -1, "Memory words to report (overrides the configuration)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	config := emulator.DefaultConfig()
	if len(config_path) != 0 {
		var err error
		config, err = emulator.LoadConfig(config_path)
		if err != nil {
			fatalf("%v", err)
		}
	}

	if dump >= 0 {
		config.Dump = dump
		err := config.Validate()
		if err != nil {
			fatalf("-m %v: %v", dump, err)
		}
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
		atexit.Register(func() { file.Close() })
		inf = file
	}

	emu, err := emulator.NewEmulator(config)
	if err != nil {
		fatalf("%v", err)
	}
	emu.Verbose = verbose

	err = emu.Assemble(inf)
	if err != nil {
		fatalf("%v: %v", compile, err)
	}

	if binary {
		err = writeListing(os.Stdout, emu.Program)
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
		atexit.Exit(0)
	}

	if clocked {
		var elapsed sim.VTimeInSec
		elapsed, err = clock.Run(emu, clock.Frequency(config.ClockMHz))
		if verbose {
			log.Printf("%v: %d cycles, %v simulated seconds", compile, emu.Ticks(), elapsed)
		}
	} else {
		err = emu.Run()
	}

	// The state is reported even when the run failed.
	tabular := term.IsTerminal(int(os.Stdout.Fd()))
	report_err := writeState(os.Stdout, emu.Registers(), emu.Memory(), config.Dump, tabular)
	if report_err != nil {
		fatalf("%v", report_err)
	}

	if err != nil {
		fatalf("%v: %v", compile, err)
	}

	atexit.Exit(0)
}
