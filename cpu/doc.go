// Package cpu implements the assembler and the single-cycle processor model
// for a teaching subset of MIPS32.
//
// The assembler resolves a source listing into a data segment, a text
// segment and a label map in one forward scan, then encodes every text line
// into a fixed 32-bit R, I or J format word. Immediates may be written as
// compile-time $(...) expressions over data labels and .equ constants.
//
// The processor owns a 32 entry register file (register 0 is hardwired to
// zero), a flat word-addressed memory and a program counter indexing the
// encoded words. Each Tick runs one fetch, decode, execute and write-back
// cycle. Execution stops when the program counter runs past the last word.
package cpu
