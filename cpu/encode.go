package cpu

import (
	"strings"
)

// OperandKind is how the source operand of a general I format
// instruction was written.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_IMMEDIATE   = OperandKind(0) // immediate
	OPERAND_BASE_OFFSET = OperandKind(1) // base+offset
	OPERAND_DATA_LABEL  = OperandKind(2) // data-label
)

// Operand is the resolved source operand of a general I format instruction.
type Operand struct {
	Kind   OperandKind
	Base   Register // rs
	Offset int64    // Immediate, before range checking.
	Label  string   // OPERAND_DATA_LABEL only.
}

const (
	IMM_MIN    = -0x8000 // Smallest encodable immediate.
	IMM_MAX    = 0xffff  // Largest encodable immediate; 0x8000 and up read back negative.
	OFFSET_MIN = -0x8000 // Smallest branch offset.
	OFFSET_MAX = 0x7fff  // Largest branch offset.
)

// ResolveOperand decides how the operands following rt are written, in
// priority order:
//
//   - 'rs, imm': an immediate with an explicit base register.
//   - 'offset(base)': a base register with an offset; the offset may be
//     empty, a number or a data label.
//   - 'label': a data label; its value is the immediate and the base is $zero.
//   - 'imm': a bare number; the base is $zero.
//   - 'base': a base register with a zero offset.
func ResolveOperand(words []string, data map[string]int32) (operand Operand, err error) {
	switch {
	case len(words) == 0:
		err = ErrOperandMissing
		return
	case len(words) > 2:
		err = ErrOperandExtra
		return
	}

	if len(words) == 2 {
		operand.Kind = OPERAND_IMMEDIATE
		operand.Base, err = ParseRegister(words[0])
		if err != nil {
			return
		}
		operand.Offset, err = valueOf(words[1])
		return
	}

	word := words[0]

	if strings.Contains(word, "(") {
		offset, rest, _ := strings.Cut(word, "(")
		base, ok := strings.CutSuffix(rest, ")")
		if !ok {
			err = ErrRegister(rest)
			return
		}
		operand.Kind = OPERAND_BASE_OFFSET
		operand.Base, err = ParseRegister(strings.TrimSpace(base))
		if err != nil {
			return
		}
		offset = strings.TrimSpace(offset)
		if value, ok := data[offset]; ok {
			operand.Offset = int64(value)
			operand.Label = offset
		} else if len(offset) > 0 {
			operand.Offset, err = valueOf(offset)
		}
		return
	}

	value, ok := data[word]
	if ok {
		operand.Kind = OPERAND_DATA_LABEL
		operand.Base = REG_ZERO
		operand.Offset = int64(value)
		operand.Label = word
		return
	}

	imm, imm_err := valueOf(word)
	if imm_err == nil {
		operand.Kind = OPERAND_IMMEDIATE
		operand.Base = REG_ZERO
		operand.Offset = imm
		return
	}

	operand.Kind = OPERAND_BASE_OFFSET
	operand.Base, err = ParseRegister(word)
	return
}

// registers parses every word as a register.
func registers(words ...string) (regs []Register, err error) {
	regs = make([]Register, len(words))
	for n, word := range words {
		regs[n], err = ParseRegister(word)
		if err != nil {
			return
		}
	}
	return
}

// operandCount checks for an exact number of operands.
func operandCount(words []string, count int) (err error) {
	switch {
	case len(words) < count:
		err = ErrOperandMissing
	case len(words) > count:
		err = ErrOperandExtra
	}
	return
}

// Encode translates one label-free instruction line into a word. The index
// is the line's position in the text segment, used for PC-relative branch
// offsets.
func Encode(line string, data map[string]int32, label map[string]int, index int) (word Word, err error) {
	words := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(words) == 0 {
		err = ErrOperandMissing
		return
	}

	inst, ok := Lookup(words[0])
	if !ok {
		err = ErrMnemonic(words[0])
		return
	}

	args := words[1:]

	switch inst.Format {
	case FORMAT_R:
		// rd, rs, rt
		err = operandCount(args, 3)
		if err != nil {
			return
		}
		var regs []Register
		regs, err = registers(args...)
		if err != nil {
			return
		}
		rd, rs, rt := regs[0], regs[1], regs[2]
		word = MakeWordR(inst.Opcode, rs, rt, rd, 0, inst.Funct)
	case FORMAT_I:
		if inst.Branch {
			// rt, rs, label
			err = operandCount(args, 3)
			if err != nil {
				return
			}
			var regs []Register
			regs, err = registers(args[0], args[1])
			if err != nil {
				return
			}
			rt, rs := regs[0], regs[1]
			target, ok := label[args[2]]
			if !ok {
				err = ErrLabelMissing(args[2])
				return
			}
			offset := target - (index + 1)
			if offset < OFFSET_MIN || offset > OFFSET_MAX {
				err = ErrImmediateRange
				return
			}
			word = MakeWordI(inst.Opcode, rs, rt, uint16(offset&IMM_MASK))
			return
		}

		// rt, operand...
		if len(args) == 0 {
			err = ErrOperandMissing
			return
		}
		var rt Register
		rt, err = ParseRegister(args[0])
		if err != nil {
			return
		}
		var operand Operand
		operand, err = ResolveOperand(args[1:], data)
		if err != nil {
			return
		}
		if operand.Offset < IMM_MIN || operand.Offset > IMM_MAX {
			err = ErrImmediateRange
			return
		}
		word = MakeWordI(inst.Opcode, operand.Base, rt, uint16(operand.Offset&IMM_MASK))
	case FORMAT_J:
		// label
		err = operandCount(args, 1)
		if err != nil {
			return
		}
		target, ok := label[args[0]]
		if !ok {
			err = ErrLabelMissing(args[0])
			return
		}
		if target < 0 || target > TARGET_MASK {
			err = ErrTargetRange
			return
		}
		word = MakeWordJ(inst.Opcode, uint32(target))
	default:
		err = ErrMnemonic(words[0])
	}

	return
}
