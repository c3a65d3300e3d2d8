package cpu

import (
	"iter"

	"github.com/ezrec/mipsim/internal"
)

// Line is a label-free text segment line with its source line number.
type Line struct {
	LineNo int
	Text   string
}

// Program is a resolved, and after Assemble an encoded, source listing.
type Program struct {
	Data      map[string]int32 // Data label to initial value.
	DataOrder []string         // Data labels in declaration order.
	Text      []Line           // Text segment; index is the PC.
	Label     map[string]int   // Text label to text segment index.
	Words     []Word           // Encoded text segment.
}

// Debug relates a PC to its source.
type Debug struct {
	*Line
	Word Word
	Pc   uint32
}

// Assemble encodes every text line. The program must be fully resolved
// first; encoding never interleaves with resolution.
func (prog *Program) Assemble() (err error) {
	words := make([]Word, 0, len(prog.Text))
	for index, line := range prog.Text {
		var word Word
		word, err = Encode(line.Text, prog.Data, prog.Label, index)
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
		words = append(words, word)
	}

	prog.Words = words

	return
}

// Debug returns the source for a PC, or a zero Debug if out of range.
func (prog *Program) Debug(pc uint32) (dbg Debug) {
	if int64(pc) >= int64(len(prog.Text)) {
		return
	}

	dbg.Line = &prog.Text[pc]
	dbg.Pc = pc
	if int(pc) < len(prog.Words) {
		dbg.Word = prog.Words[pc]
	}

	return
}

// Binary returns the encoded words as unsigned integers.
func (prog *Program) Binary() (bins []uint32) {
	for _, word := range prog.Words {
		bins = append(bins, uint32(word))
	}

	return
}

// Listing iterates the encoded program in PC order.
func (prog *Program) Listing() iter.Seq2[uint32, Debug] {
	return func(yield func(pc uint32, dbg Debug) bool) {
		for pc := range prog.Words {
			if !yield(uint32(pc), prog.Debug(uint32(pc))) {
				return
			}
		}
	}
}

// Symbols iterates data labels with their values, then text labels with
// their indexes, each group sorted by name.
func (prog *Program) Symbols() iter.Seq2[string, int64] {
	return func(yield func(name string, value int64) bool) {
		for name, value := range internal.Sorted(prog.Data) {
			if !yield(name, int64(value)) {
				return
			}
		}
		for name, index := range internal.Sorted(prog.Label) {
			if !yield(name, int64(index)) {
				return
			}
		}
	}
}
