package cpu

import (
	"fmt"
)

// Word is one encoded 32-bit instruction.
//
// Bit 31 is the first bit of the bit string, so the field offsets read
// left to right as:
//
//	R: opcode[0:6) rs[6:11) rt[11:16) rd[16:21) shamt[21:26) funct[26:32)
//	I: opcode[0:6) rs[6:11) rt[11:16) immediate[16:32)
//	J: opcode[0:6) target[6:32)
type Word uint32

const (
	WORD_BITS   = 32
	TARGET_MASK = 0x3ff_ffff // 26-bit jump target.
	IMM_MASK    = 0xffff     // 16-bit immediate.
)

// MakeWordR packs an R format word.
func MakeWordR(op Opcode, rs, rt, rd Register, shamt uint8, funct Funct) Word {
	return Word((uint32(op&0x3f) << 26) |
		(uint32(rs&0x1f) << 21) |
		(uint32(rt&0x1f) << 16) |
		(uint32(rd&0x1f) << 11) |
		(uint32(shamt&0x1f) << 6) |
		(uint32(funct&0x3f) << 0))
}

// MakeWordI packs an I format word.
func MakeWordI(op Opcode, rs, rt Register, imm uint16) Word {
	return Word((uint32(op&0x3f) << 26) |
		(uint32(rs&0x1f) << 21) |
		(uint32(rt&0x1f) << 16) |
		(uint32(imm) << 0))
}

// MakeWordJ packs a J format word.
func MakeWordJ(op Opcode, target uint32) Word {
	return Word((uint32(op&0x3f) << 26) | (target & TARGET_MASK))
}

func (word Word) Opcode() Opcode {
	return Opcode((word >> 26) & 0x3f)
}

func (word Word) Rs() Register {
	return Register((word >> 21) & 0x1f)
}

func (word Word) Rt() Register {
	return Register((word >> 16) & 0x1f)
}

func (word Word) Rd() Register {
	return Register((word >> 11) & 0x1f)
}

func (word Word) Shamt() uint8 {
	return uint8((word >> 6) & 0x1f)
}

func (word Word) Funct() Funct {
	return Funct((word >> 0) & 0x3f)
}

// Immediate returns the low 16 bits, unextended.
func (word Word) Immediate() uint16 {
	return uint16(word & IMM_MASK)
}

// Target returns the low 26 bits.
func (word Word) Target() uint32 {
	return uint32(word & TARGET_MASK)
}

// Bits returns the 32 character bit string, most significant bit first.
func (word Word) Bits() string {
	return fmt.Sprintf("%032b", uint32(word))
}

// Fields are the positionally extracted fields of a word. No field is
// validated; every field is extracted regardless of format.
type Fields struct {
	Opcode    Opcode
	Rs        Register
	Rt        Register
	Rd        Register
	Shamt     uint8
	Funct     Funct
	Immediate uint16
	Target    uint32
}

// Decode extracts every field of the word.
func (word Word) Decode() Fields {
	return Fields{
		Opcode:    word.Opcode(),
		Rs:        word.Rs(),
		Rt:        word.Rt(),
		Rd:        word.Rd(),
		Shamt:     word.Shamt(),
		Funct:     word.Funct(),
		Immediate: word.Immediate(),
		Target:    word.Target(),
	}
}

// Format returns the format implied by the opcode.
func (fields Fields) Format() Format {
	return FormatOf(fields.Opcode)
}

// SignedImmediate returns the immediate sign-extended to 32 bits.
func (fields Fields) SignedImmediate() int32 {
	return int32(int16(fields.Immediate))
}

// String renders the fields relevant to the format.
func (fields Fields) String() string {
	switch fields.Format() {
	case FORMAT_R:
		return fmt.Sprintf("op=%d rs=%d rt=%d rd=%d shamt=%d funct=%d",
			fields.Opcode, fields.Rs, fields.Rt, fields.Rd, fields.Shamt, fields.Funct)
	case FORMAT_J:
		return fmt.Sprintf("op=%d target=%d", fields.Opcode, fields.Target)
	default:
		return fmt.Sprintf("op=%d rs=%d rt=%d imm=%d",
			fields.Opcode, fields.Rs, fields.Rt, fields.SignedImmediate())
	}
}

// String returns an assembly-like rendering of the word.
func (word Word) String() string {
	inst, ok := Disassemble(word)
	if !ok {
		return fmt.Sprintf(".word 0x%08x", uint32(word))
	}

	mn := inst.Mnemonic.String()
	switch inst.Format {
	case FORMAT_R:
		return fmt.Sprintf("%v %v, %v, %v", mn, word.Rd(), word.Rs(), word.Rt())
	case FORMAT_J:
		return fmt.Sprintf("%v %d", mn, word.Target())
	}

	imm := int16(word.Immediate())
	if inst.Branch {
		return fmt.Sprintf("%v %v, %v, %+d", mn, word.Rt(), word.Rs(), imm)
	}
	if inst.Opcode >= OPCODE_LB {
		return fmt.Sprintf("%v %v, %d(%v)", mn, word.Rt(), imm, word.Rs())
	}
	return fmt.Sprintf("%v %v, %v, %d", mn, word.Rt(), word.Rs(), imm)
}
