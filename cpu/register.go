package cpu

import (
	"strconv"
	"strings"
)

// Register is a register file index, 0 through 31.
type Register uint8

const (
	REGISTER_COUNT = 32 // Size of the register file.

	REG_ZERO = Register(0)  // Hardwired zero.
	REG_SP   = Register(29) // Stack pointer by convention.
	REG_RA   = Register(31) // Return address by convention.
)

var registerNames = [REGISTER_COUNT]string{
	"$zero", "$at", "$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3",
	"$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3",
	"$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1",
	"$gp", "$sp", "$fp", "$ra",
}

var registerMap = func() map[string]Register {
	m := make(map[string]Register, REGISTER_COUNT)
	for n, name := range registerNames {
		m[name] = Register(n)
	}
	return m
}()

// String returns the conventional register name.
func (reg Register) String() string {
	if int(reg) >= REGISTER_COUNT {
		return "$" + strconv.Itoa(int(reg))
	}
	return registerNames[reg]
}

// ParseRegister accepts a conventional name ($zero ... $ra) or a bare
// numeric index ($0 ... $31).
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := registerMap[word]
	if ok {
		return
	}

	digits, ok := strings.CutPrefix(word, "$")
	if !ok || len(digits) == 0 || len(digits) > 2 || strings.Trim(digits, "0123456789") != "" {
		err = ErrRegister(word)
		return
	}

	n, _ := strconv.Atoi(digits)
	if n >= REGISTER_COUNT {
		err = ErrRegister(word)
		return
	}

	reg = Register(n)
	return
}

// RegFile is the register file. Register 0 always reads as zero and
// writes to it are discarded.
type RegFile [REGISTER_COUNT]int32

// Read returns the value of a register.
func (rf *RegFile) Read(reg Register) int32 {
	if reg == REG_ZERO || int(reg) >= REGISTER_COUNT {
		return 0
	}
	return rf[reg]
}

// Write sets a register, returning false if the write was discarded.
func (rf *RegFile) Write(reg Register, value int32) (written bool) {
	if reg == REG_ZERO || int(reg) >= REGISTER_COUNT {
		return
	}
	rf[reg] = value
	written = true
	return
}

// Reset clears all registers.
func (rf *RegFile) Reset() {
	clear(rf[:])
}
