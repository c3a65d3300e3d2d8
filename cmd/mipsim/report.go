package main

import (
	"fmt"
	"io"

	"github.com/ezrec/mipsim/cpu"
)

const (
	REPORT_REG_COLUMNS = 4 // Registers per row in tabular reports.
	REPORT_MEM_COLUMNS = 8 // Memory words per row in tabular reports.
)

// writeListing writes the encoded program, one word per line, followed by
// the symbol table.
func writeListing(w io.Writer, prog *cpu.Program) (err error) {
	for pc, dbg := range prog.Listing() {
		_, err = fmt.Fprintf(w, "%04d: %v  %-24v ; line %d\n", pc, dbg.Word.Bits(), dbg.Text, dbg.LineNo)
		if err != nil {
			return
		}
	}

	for name, value := range prog.Symbols() {
		_, err = fmt.Fprintf(w, "; %v = %d\n", name, value)
		if err != nil {
			return
		}
	}

	return
}

// writeState writes the register file and the first words of memory,
// either as aligned rows or as name=value lines.
func writeState(w io.Writer, regs cpu.RegFile, mem []int32, words int, tabular bool) (err error) {
	words = min(words, len(mem))

	if !tabular {
		for n := range cpu.REGISTER_COUNT {
			_, err = fmt.Fprintf(w, "%v=%d\n", cpu.Register(n), regs[n])
			if err != nil {
				return
			}
		}
		for n := range words {
			_, err = fmt.Fprintf(w, "mem[%d]=%d\n", n, mem[n])
			if err != nil {
				return
			}
		}
		return
	}

	for n := range cpu.REGISTER_COUNT {
		sep := " "
		if (n+1)%REPORT_REG_COLUMNS == 0 {
			sep = "\n"
		}
		_, err = fmt.Fprintf(w, "%5v: %11d%v", cpu.Register(n), regs[n], sep)
		if err != nil {
			return
		}
	}

	for n := 0; n < words; n += REPORT_MEM_COLUMNS {
		_, err = fmt.Fprintf(w, "%04d:", n)
		if err != nil {
			return
		}
		for _, value := range mem[n:min(n+REPORT_MEM_COLUMNS, words)] {
			_, err = fmt.Fprintf(w, " %11d", value)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintln(w)
		if err != nil {
			return
		}
	}

	return
}
