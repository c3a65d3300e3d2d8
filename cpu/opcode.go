package cpu

import (
	"strings"
)

// Format is the instruction shape, determining the bit-field layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
	FORMAT_J = Format(2) // J
)

// Opcode is the 6-bit primary operation field.
type Opcode uint8

const (
	OPCODE_SPECIAL = Opcode(0x00) // R format; operation selected by funct
	OPCODE_J       = Opcode(0x02)
	OPCODE_JAL     = Opcode(0x03)
	OPCODE_BEQ     = Opcode(0x04)
	OPCODE_BNE     = Opcode(0x05)
	OPCODE_ADDI    = Opcode(0x08)
	OPCODE_ADDIU   = Opcode(0x09)
	OPCODE_SLTI    = Opcode(0x0a)
	OPCODE_SLTIU   = Opcode(0x0b)
	OPCODE_ANDI    = Opcode(0x0c)
	OPCODE_ORI     = Opcode(0x0d)
	OPCODE_XORI    = Opcode(0x0e)
	OPCODE_LUI     = Opcode(0x0f)
	OPCODE_LB      = Opcode(0x20)
	OPCODE_LH      = Opcode(0x21)
	OPCODE_LW      = Opcode(0x23)
	OPCODE_LBU     = Opcode(0x24)
	OPCODE_LHU     = Opcode(0x25)
	OPCODE_SB      = Opcode(0x28)
	OPCODE_SH      = Opcode(0x29)
	OPCODE_SW      = Opcode(0x2b)
)

// Funct is the 6-bit secondary operation field of R format words.
type Funct uint8

const (
	FUNCT_ADD  = Funct(0x20)
	FUNCT_ADDU = Funct(0x21)
	FUNCT_SUB  = Funct(0x22)
	FUNCT_SUBU = Funct(0x23)
	FUNCT_AND  = Funct(0x24)
	FUNCT_OR   = Funct(0x25)
	FUNCT_XOR  = Funct(0x26)
	FUNCT_NOR  = Funct(0x27)
	FUNCT_SLT  = Funct(0x2a)
	FUNCT_SLTU = Funct(0x2b)
)

// Mnemonic is the textual instruction name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MN_ADD   = Mnemonic(0)  // add
	MN_ADDU  = Mnemonic(1)  // addu
	MN_SUB   = Mnemonic(2)  // sub
	MN_SUBU  = Mnemonic(3)  // subu
	MN_AND   = Mnemonic(4)  // and
	MN_OR    = Mnemonic(5)  // or
	MN_XOR   = Mnemonic(6)  // xor
	MN_NOR   = Mnemonic(7)  // nor
	MN_SLT   = Mnemonic(8)  // slt
	MN_SLTU  = Mnemonic(9)  // sltu
	MN_ADDI  = Mnemonic(10) // addi
	MN_ADDIU = Mnemonic(11) // addiu
	MN_ANDI  = Mnemonic(12) // andi
	MN_ORI   = Mnemonic(13) // ori
	MN_XORI  = Mnemonic(14) // xori
	MN_SLTI  = Mnemonic(15) // slti
	MN_SLTIU = Mnemonic(16) // sltiu
	MN_LUI   = Mnemonic(17) // lui
	MN_LW    = Mnemonic(18) // lw
	MN_SW    = Mnemonic(19) // sw
	MN_LB    = Mnemonic(20) // lb
	MN_LBU   = Mnemonic(21) // lbu
	MN_LH    = Mnemonic(22) // lh
	MN_LHU   = Mnemonic(23) // lhu
	MN_SB    = Mnemonic(24) // sb
	MN_SH    = Mnemonic(25) // sh
	MN_BEQ   = Mnemonic(26) // beq
	MN_BNE   = Mnemonic(27) // bne
	MN_J     = Mnemonic(28) // j
	MN_JAL   = Mnemonic(29) // jal
)

// Instruction is one row of the instruction-set table.
type Instruction struct {
	Mnemonic Mnemonic
	Format   Format
	Opcode   Opcode
	Funct    Funct // FORMAT_R only.
	Branch   bool  // Operands are 'rt, rs, label' with a PC-relative offset.
}

// instructionTable is indexed by Mnemonic.
var instructionTable = [...]Instruction{
	MN_ADD:   {MN_ADD, FORMAT_R, OPCODE_SPECIAL, FUNCT_ADD, false},
	MN_ADDU:  {MN_ADDU, FORMAT_R, OPCODE_SPECIAL, FUNCT_ADDU, false},
	MN_SUB:   {MN_SUB, FORMAT_R, OPCODE_SPECIAL, FUNCT_SUB, false},
	MN_SUBU:  {MN_SUBU, FORMAT_R, OPCODE_SPECIAL, FUNCT_SUBU, false},
	MN_AND:   {MN_AND, FORMAT_R, OPCODE_SPECIAL, FUNCT_AND, false},
	MN_OR:    {MN_OR, FORMAT_R, OPCODE_SPECIAL, FUNCT_OR, false},
	MN_XOR:   {MN_XOR, FORMAT_R, OPCODE_SPECIAL, FUNCT_XOR, false},
	MN_NOR:   {MN_NOR, FORMAT_R, OPCODE_SPECIAL, FUNCT_NOR, false},
	MN_SLT:   {MN_SLT, FORMAT_R, OPCODE_SPECIAL, FUNCT_SLT, false},
	MN_SLTU:  {MN_SLTU, FORMAT_R, OPCODE_SPECIAL, FUNCT_SLTU, false},
	MN_ADDI:  {MN_ADDI, FORMAT_I, OPCODE_ADDI, 0, false},
	MN_ADDIU: {MN_ADDIU, FORMAT_I, OPCODE_ADDIU, 0, false},
	MN_ANDI:  {MN_ANDI, FORMAT_I, OPCODE_ANDI, 0, false},
	MN_ORI:   {MN_ORI, FORMAT_I, OPCODE_ORI, 0, false},
	MN_XORI:  {MN_XORI, FORMAT_I, OPCODE_XORI, 0, false},
	MN_SLTI:  {MN_SLTI, FORMAT_I, OPCODE_SLTI, 0, false},
	MN_SLTIU: {MN_SLTIU, FORMAT_I, OPCODE_SLTIU, 0, false},
	MN_LUI:   {MN_LUI, FORMAT_I, OPCODE_LUI, 0, false},
	MN_LW:    {MN_LW, FORMAT_I, OPCODE_LW, 0, false},
	MN_SW:    {MN_SW, FORMAT_I, OPCODE_SW, 0, false},
	MN_LB:    {MN_LB, FORMAT_I, OPCODE_LB, 0, false},
	MN_LBU:   {MN_LBU, FORMAT_I, OPCODE_LBU, 0, false},
	MN_LH:    {MN_LH, FORMAT_I, OPCODE_LH, 0, false},
	MN_LHU:   {MN_LHU, FORMAT_I, OPCODE_LHU, 0, false},
	MN_SB:    {MN_SB, FORMAT_I, OPCODE_SB, 0, false},
	MN_SH:    {MN_SH, FORMAT_I, OPCODE_SH, 0, false},
	MN_BEQ:   {MN_BEQ, FORMAT_I, OPCODE_BEQ, 0, true},
	MN_BNE:   {MN_BNE, FORMAT_I, OPCODE_BNE, 0, true},
	MN_J:     {MN_J, FORMAT_J, OPCODE_J, 0, false},
	MN_JAL:   {MN_JAL, FORMAT_J, OPCODE_JAL, 0, false},
}

// mnemonicMap maps lower case mnemonic text to its mnemonic.
var mnemonicMap = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, len(instructionTable))
	for _, inst := range instructionTable {
		m[inst.Mnemonic.String()] = inst.Mnemonic
	}
	return m
}()

// Instructions returns a copy of the instruction-set table.
func Instructions() []Instruction {
	return append([]Instruction(nil), instructionTable[:]...)
}

// Lookup finds the table row for a mnemonic, ignoring case.
func Lookup(name string) (inst Instruction, ok bool) {
	mn, ok := mnemonicMap[strings.ToLower(name)]
	if !ok {
		return
	}

	inst = mn.Instruction()
	return
}

// Instruction returns the table row of the mnemonic.
func (mn Mnemonic) Instruction() Instruction {
	return instructionTable[mn]
}

// FormatOf returns the format implied by an opcode alone.
func FormatOf(op Opcode) Format {
	switch op {
	case OPCODE_SPECIAL:
		return FORMAT_R
	case OPCODE_J, OPCODE_JAL:
		return FORMAT_J
	default:
		return FORMAT_I
	}
}

// Disassemble finds the table row matching a word's opcode and funct.
func Disassemble(word Word) (inst Instruction, ok bool) {
	op := word.Opcode()
	for _, inst = range instructionTable {
		if inst.Opcode != op {
			continue
		}
		if inst.Format == FORMAT_R && inst.Funct != word.Funct() {
			continue
		}
		ok = true
		return
	}

	inst = Instruction{}
	return
}
