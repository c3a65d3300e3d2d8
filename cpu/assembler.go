// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Section is the source section a line belongs to.
type Section int

//go:generate go tool stringer -linecomment -type=Section
const (
	SECTION_NONE = Section(0) // none
	SECTION_DATA = Section(1) // .data
	SECTION_TEXT = Section(2) // .text
)

// Assembler resolves and encodes a source listing.
//
// Resolution is a single forward scan that builds the data segment, the
// text segment and the text label map. Encoding only starts once the scan
// is complete, so forward and backward label references both resolve.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int32 // Predefined equates.
	Equate    map[string]int32 // Map of .equ constants.
}

// Predefine defines a new equate or redefines an existing one, visible to
// every subsequent Parse.
func (asm *Assembler) Predefine(equ string, value int32) {
	if asm.predefine == nil {
		asm.predefine = map[string]int32{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reLabel      = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reWord       = regexp.MustCompile(`\$?[A-Za-z_][A-Za-z0-9_]*`)
)

// valueOf parses a simple number: decimal, 0x hex, 0o octal or 0b binary,
// optionally negative.
func valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// wordOf parses a number that must fit a 32-bit word, signed or unsigned.
func wordOf(word string) (value int32, err error) {
	v64, err := valueOf(word)
	if err != nil {
		return
	}

	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = int32(uint32(v64))
	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string, data map[string]int32) (value int32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range data {
		pred[key] = starlark.MakeInt(int(val))
	}
	for key, val := range asm.Equate {
		pred[key] = starlark.MakeInt(int(val))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xffffffff || st_int64 < -int64(0x80000000) {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(uint32(st_int64))
	return
}

// expand replaces $(...) expressions and bare .equ names in a line.
func (asm *Assembler) expand(line string, data map[string]int32) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], data)
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	if len(asm.Equate) == 0 {
		return
	}

	out = reWord.ReplaceAllStringFunc(out, func(word string) string {
		if word[0] == '$' {
			// Register names are never equates.
			return word
		}
		value, ok := asm.Equate[word]
		if !ok {
			return word
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// stripComment removes '#' and ';' comments.
func stripComment(text string) string {
	if n := strings.IndexAny(text, "#;"); n >= 0 {
		text = text[:n]
	}
	return strings.TrimSpace(text)
}

// Resolve scans the input once, building the data segment, the text
// segment and the text label map. No instruction is encoded.
func (asm *Assembler) Resolve(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Equate = make(map[string]int32, len(asm.predefine))
	maps.Copy(asm.Equate, asm.predefine)

	prog = &Program{
		Data:  map[string]int32{},
		Label: map[string]int{},
	}

	section := SECTION_NONE

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = stripComment(text)
		if len(line) == 0 {
			continue
		}

		words := strings.Fields(line)
		switch words[0] {
		case ".data":
			section = SECTION_DATA
			continue
		case ".text":
			section = SECTION_TEXT
			continue
		case ".equ":
			err = asm.parseEquate(words, prog)
			if err != nil {
				return
			}
			continue
		}

		switch section {
		case SECTION_DATA:
			err = asm.parseData(prog, line)
		case SECTION_TEXT:
			err = asm.parseText(prog, line, lineno)
		default:
			err = ErrSectionMissing
		}
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return
}

// parseEquate handles '.equ NAME VALUE'.
func (asm *Assembler) parseEquate(words []string, prog *Program) (err error) {
	if len(words) != 3 || !reLabel.MatchString(words[1]) {
		err = ErrEquateSyntax
		return
	}

	name := words[1]
	_, equ_dup := asm.Equate[name]
	_, data_dup := prog.Data[name]
	_, text_dup := prog.Label[name]
	if equ_dup || data_dup || text_dup {
		err = ErrEquateDuplicate
		return
	}

	text, err := asm.expand(words[2], prog.Data)
	if err != nil {
		return
	}

	value, err := wordOf(text)
	if err != nil {
		return
	}

	asm.Equate[name] = value

	return
}

// parseData handles 'label: directive value...'. Only the first value is
// kept; the directive is not interpreted.
func (asm *Assembler) parseData(prog *Program, line string) (err error) {
	before, after, ok := strings.Cut(line, ":")
	if !ok {
		err = ErrSegmentMalformed
		return
	}

	label := strings.TrimSpace(before)
	if !reLabel.MatchString(label) {
		err = ErrLabelSyntax
		return
	}

	after, err = asm.expand(after, prog.Data)
	if err != nil {
		return
	}

	words := strings.Fields(strings.ReplaceAll(after, ",", " "))
	if len(words) < 2 {
		err = ErrSegmentMalformed
		return
	}

	_, data_dup := prog.Data[label]
	_, equ_dup := asm.Equate[label]
	if data_dup || equ_dup {
		err = ErrLabelDuplicate
		return
	}

	value, err := wordOf(words[1])
	if err != nil {
		return
	}

	prog.Data[label] = value
	prog.DataOrder = append(prog.DataOrder, label)

	return
}

// parseText handles '[label:]... [mnemonic operands]'. A label maps to the
// length of the text segment before the instruction is appended. Equates
// are expanded only after the labels are split off.
func (asm *Assembler) parseText(prog *Program, line string, lineno int) (err error) {
	for {
		before, after, ok := strings.Cut(line, ":")
		if !ok {
			break
		}

		label := strings.TrimSpace(before)
		if !reLabel.MatchString(label) {
			err = ErrLabelSyntax
			return
		}

		_, text_dup := prog.Label[label]
		_, equ_dup := asm.Equate[label]
		if text_dup || equ_dup {
			err = ErrLabelDuplicate
			return
		}

		prog.Label[label] = len(prog.Text)
		line = strings.TrimSpace(after)
	}

	if len(line) == 0 {
		return
	}

	if line[0] == '.' {
		// Directives such as .globl or .align occupy no text index.
		if asm.Verbose {
			log.Printf("%v: ignoring directive %v\n", lineno, line)
		}
		return
	}

	line, err = asm.expand(line, prog.Data)
	if err != nil {
		return
	}

	prog.Text = append(prog.Text, Line{LineNo: lineno, Text: line})

	return
}

// Parse resolves the input, then encodes every text line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog, err = asm.Resolve(input)
	if err != nil {
		return
	}

	err = prog.Assemble()
	if err != nil {
		return
	}

	if asm.Verbose {
		for n, word := range prog.Words {
			log.Printf("%3d: %v %v\n", n, word.Bits(), prog.Text[n].Text)
		}
	}

	return
}
