package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, program []string) (prog *Program) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Text))
	assert.Equal(0, len(prog.Words))
	assert.Equal(0, len(prog.Data))
	assert.Equal(0, len(prog.Label))
}

func TestAssemblerResolve(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".data",
		"val: .word 5",
		"neg: .word -3, 7   # only the first value is kept",
		"",
		".text",
		"main: addi $t0, $zero, 10",
		"",
		"      add $t1, $t0, $t0",
		"loop:",
		"      beq $t0, $t1, done",
		"done: sw $t1, 0($zero)",
	}

	asm := &Assembler{}
	prog, err := asm.Resolve(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal(map[string]int32{"val": 5, "neg": -3}, prog.Data)
	assert.Equal([]string{"val", "neg"}, prog.DataOrder)
	assert.Equal(map[string]int{"main": 0, "loop": 2, "done": 3}, prog.Label)
	assert.Equal([]Line{
		{6, "addi $t0, $zero, 10"},
		{8, "add $t1, $t0, $t0"},
		{10, "beq $t0, $t1, done"},
		{11, "sw $t1, 0($zero)"},
	}, prog.Text)

	// Nothing is encoded by Resolve.
	assert.Nil(prog.Words)
}

func TestAssemblerEndToEnd(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t, []string{
		".data",
		"val: .word 5",
		".text",
		"addi $t0, $zero, 10",
		"addi $t1, $zero, 20",
		"add $t2, $t0, $t1",
		"sw $t2, 0($zero)",
		"lw $t3, 0($zero)",
	})

	assert.Equal([]uint32{
		0x2008000a,
		0x20090014,
		0x01095020,
		0xac0a0000,
		0x8c0b0000,
	}, prog.Binary())
}

func TestAssemblerForwardReference(t *testing.T) {
	assert := assert.New(t)

	forward := parse(t, []string{
		".text",
		"beq $t0, $t1, ahead",
		"add $t2, $t0, $t1",
		"ahead: add $t3, $t0, $t1",
	})

	backward := parse(t, []string{
		".text",
		"behind: add $t3, $t0, $t1",
		"add $t2, $t0, $t1",
		"beq $t0, $t1, behind",
	})

	// Same relative distance in the same direction encodes identically.
	same := parse(t, []string{
		".text",
		"add $t3, $t0, $t1",
		"beq $t0, $t1, there",
		"add $t2, $t0, $t1",
		"there: add $t3, $t0, $t1",
	})

	assert.Equal(uint32(0x11280001), uint32(forward.Words[0]))
	assert.Equal(forward.Words[0], same.Words[1])
	assert.Equal(uint32(0x1128fffd), uint32(backward.Words[2]))
}

func TestAssemblerComments(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t, []string{
		"# header comment",
		".data ; data section",
		"x: .word 0x10  # hex",
		".text",
		".globl main",
		"main: ADDI $t0, $zero, 1 ; upper case mnemonic",
	})

	assert.Equal(int32(16), prog.Data["x"])
	assert.Equal(0, prog.Label["main"])
	assert.Equal(1, len(prog.Words))
	assert.Equal(uint32(0x20080001), uint32(prog.Words[0]))
}

func TestAssemblerMultipleLabels(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t, []string{
		".text",
		"first: second: addi $t0, $zero, 1",
		"third:",
		"fourth:",
		"addi $t0, $zero, 2",
		"end:",
	})

	assert.Equal(map[string]int{"first": 0, "second": 0, "third": 1, "fourth": 1, "end": 2}, prog.Label)
	assert.Equal(2, len(prog.Words))
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	prog := parse(t, []string{
		".equ SIZE 4",
		".data",
		"base: .word 8",
		"end: .word $(base + SIZE * 2)",
		".text",
		"addi $t0, $zero, $(end - base)",
		"size: addi $t1, $zero, SIZE",
		"lw $t2, SIZE($t0)",
		"addi $t3, $zero, $(-SIZE)",
	})

	assert.Equal(int32(16), prog.Data["end"])
	assert.Equal(map[string]int{"size": 1}, prog.Label)
	assert.Equal("addi $t1, $zero, 4", prog.Text[1].Text)
	assert.Equal(uint32(0x20080008), uint32(prog.Words[0]))
	assert.Equal(uint32(0x20090004), uint32(prog.Words[1]))
	assert.Equal(uint32(0x8d0a0004), uint32(prog.Words[2]))
	assert.Equal(uint32(0x200bfffc), uint32(prog.Words[3]))
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("LIMIT", 3)

	prog, err := asm.Parse(strings.NewReader(".text\naddi $t0, $zero, LIMIT"))
	assert.NoError(err)
	assert.Equal(uint32(0x20080003), uint32(prog.Words[0]))

	// Predefines survive into the next Parse.
	prog, err = asm.Parse(strings.NewReader(".text\naddi $t0, $zero, $(LIMIT+1)"))
	assert.NoError(err)
	assert.Equal(uint32(0x20080004), uint32(prog.Words[0]))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		program []string
		lineno  int
		err     error
	}{
		{"no-section", []string{"add $t0, $t1, $t2"}, 1, ErrSectionMissing},
		{"data-no-colon", []string{".data", "val .word 5"}, 2, ErrSegmentMalformed},
		{"data-no-value", []string{".data", "val: .word"}, 2, ErrSegmentMalformed},
		{"data-bad-value", []string{".data", "val: .word five"}, 2, ErrParseNumber("five")},
		{"data-too-big", []string{".data", "val: .word 0x100000000"}, 2, ErrParseNumber("0x100000000")},
		{"data-duplicate", []string{".data", "a: .word 1", "a: .word 2"}, 3, ErrLabelDuplicate},
		{"data-bad-label", []string{".data", "1a: .word 1"}, 2, ErrLabelSyntax},
		{"text-duplicate", []string{".text", "a: add $t0, $t1, $t2", "a: add $t0, $t1, $t2"}, 3, ErrLabelDuplicate},
		{"text-bad-label", []string{".text", "bad label: add $t0, $t1, $t2"}, 2, ErrLabelSyntax},
		{"equ-syntax", []string{".equ X"}, 1, ErrEquateSyntax},
		{"equ-duplicate", []string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{"expression", []string{".text", "addi $t0, $zero, $(nope + 1)"}, 2, ErrParseExpression("nope + 1")},
		{"unknown", []string{".text", "mult $t0, $t1"}, 2, ErrInstructionInvalid},
		{"register", []string{".text", "add $t0, $t1, $t99"}, 2, ErrRegisterInvalid},
		{"label", []string{".text", "j nowhere"}, 2, ErrLabelMissing("nowhere")},
		{"equ-then-text-label", []string{".equ done 2", ".text", "beq $zero, $zero, done", "done: addi $t2, $zero, 7"}, 4, ErrLabelDuplicate},
		{"equ-then-data-label", []string{".equ val 3", ".data", "val: .word 5"}, 3, ErrLabelDuplicate},
		{"text-label-then-equ", []string{".text", "done: addi $t2, $zero, 7", ".equ done 2"}, 3, ErrEquateDuplicate},
		{"data-label-then-equ", []string{".data", "val: .word 5", ".equ val 3"}, 3, ErrEquateDuplicate},
		{"late-line", []string{".text", "add $t0, $t1, $t2", "add $t0, $t1, $t2", "beq $t0, $t1, gone"}, 4, ErrLabelMissing("gone")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}
