package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// EffectKind is the kind of state update an executed word requests.
type EffectKind int

//go:generate go tool stringer -linecomment -type=EffectKind
const (
	EFFECT_NONE     = EffectKind(0) // none
	EFFECT_REGISTER = EffectKind(1) // register
	EFFECT_MEMORY   = EffectKind(2) // memory
	EFFECT_BRANCH   = EffectKind(3) // branch
)

// Effect is the result of Execute, applied by WriteBack.
type Effect struct {
	Kind     EffectKind
	Register Register // EFFECT_REGISTER target.
	Address  int64    // EFFECT_MEMORY target.
	Value    int32    // Register or memory value, or the branch offset.
}

// String renders the effect as a state delta.
func (effect Effect) String() string {
	switch effect.Kind {
	case EFFECT_REGISTER:
		return fmt.Sprintf("%v <- %d", effect.Register, effect.Value)
	case EFFECT_MEMORY:
		return fmt.Sprintf("mem[%d] <- %d", effect.Address, effect.Value)
	case EFFECT_BRANCH:
		return fmt.Sprintf("pc += %d", effect.Value)
	default:
		return "-"
	}
}

// Cycle is the observable outcome of one Tick.
type Cycle struct {
	Pc      uint32 // PC before fetch.
	Word    Word
	Fields  Fields
	Effect  Effect
	Written bool // False if the effect was discarded (writes to $zero, untaken branches).
}

// Cpu is one execution session: register file, memory, program counter
// and the instruction memory it fetches from. Sessions share nothing.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint32  // Index of the next word to fetch.
	Register RegFile // Register file.
	Memory   *Memory // Data memory.
	Code     []Word  // Instruction memory.

	Ticks int // Completed cycles.
}

// NewCpu creates a new CPU with a memory of the given size in words.
func NewCpu(words int) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(words),
	}

	return
}

// Load installs the instruction memory and rewinds the PC.
func (cpu *Cpu) Load(code []Word) {
	cpu.Code = code
	cpu.Pc = 0
}

// Reset clears the registers, memory, PC and tick counter. The
// instruction memory is kept.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Memory.Reset()
	cpu.Pc = 0
	cpu.Ticks = 0
}

// String returns the register file as text.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%5s: %d\n", "pc", cpu.Pc)
	for n := range REGISTER_COUNT {
		reg := Register(n)
		fmt.Fprintf(&sb, "%5s: %d\n", reg, cpu.Register.Read(reg))
	}

	text = sb.String()
	return
}

// Fetch returns the word at the PC and advances the PC by one.
func (cpu *Cpu) Fetch() (word Word, err error) {
	if int64(cpu.Pc) >= int64(len(cpu.Code)) {
		err = ErrPcEmpty
		return
	}

	word = cpu.Code[cpu.Pc]
	cpu.Pc++

	return
}

// Decode extracts the fields of a word. No field is validated.
func (cpu *Cpu) Decode(word Word) Fields {
	return word.Decode()
}

// Execute computes the effect of decoded fields against the current state.
// The only state it reads beyond the register file is memory, for loads.
func (cpu *Cpu) Execute(fields Fields) (effect Effect, err error) {
	rs := cpu.Register.Read(fields.Rs)
	rt := cpu.Register.Read(fields.Rt)
	imm := fields.SignedImmediate()

	switch fields.Opcode {
	case OPCODE_SPECIAL:
		var value int32
		switch fields.Funct {
		case FUNCT_ADD:
			value = rs + rt
		case FUNCT_SUB:
			value = rs - rt
		case FUNCT_AND:
			value = rs & rt
		case FUNCT_OR:
			value = rs | rt
		case FUNCT_SLT:
			if rs < rt {
				value = 1
			}
		default:
			err = ErrOperationUnsupported
			return
		}
		effect = Effect{Kind: EFFECT_REGISTER, Register: fields.Rd, Value: value}
	case OPCODE_ADDI:
		effect = Effect{Kind: EFFECT_REGISTER, Register: fields.Rt, Value: rs + imm}
	case OPCODE_LW:
		address := int64(rs) + int64(imm)
		var value int32
		value, err = cpu.Memory.Read(address)
		if err != nil {
			return
		}
		effect = Effect{Kind: EFFECT_REGISTER, Register: fields.Rt, Value: value}
	case OPCODE_SW:
		address := int64(rs) + int64(imm)
		effect = Effect{Kind: EFFECT_MEMORY, Address: address, Value: rt}
	case OPCODE_BEQ:
		if rs == rt {
			effect = Effect{Kind: EFFECT_BRANCH, Value: imm}
		} else {
			effect = Effect{Kind: EFFECT_NONE}
		}
	default:
		err = ErrOperationUnsupported
		return
	}

	return
}

// WriteBack applies an effect. Writes to $zero are discarded.
func (cpu *Cpu) WriteBack(effect Effect) (written bool, err error) {
	switch effect.Kind {
	case EFFECT_NONE:
		// Untaken branch.
	case EFFECT_REGISTER:
		written = cpu.Register.Write(effect.Register, effect.Value)
	case EFFECT_MEMORY:
		err = cpu.Memory.Write(effect.Address, effect.Value)
		if err != nil {
			return
		}
		written = true
	case EFFECT_BRANCH:
		// The PC has already advanced past the branch in Fetch.
		target := int64(cpu.Pc) + int64(effect.Value)
		if target < 0 {
			err = ErrPcRange
			return
		}
		cpu.Pc = uint32(target)
		written = true
	default:
		err = ErrOperationUnsupported
	}

	return
}

// Tick runs one fetch, decode, execute and write-back cycle. It returns
// ErrPcEmpty once the PC has run past the instruction memory.
func (cpu *Cpu) Tick() (cycle Cycle, err error) {
	cycle.Pc = cpu.Pc

	cycle.Word, err = cpu.Fetch()
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrWord(cycle.Word), err)
		}
	}()

	cycle.Fields = cpu.Decode(cycle.Word)

	cycle.Effect, err = cpu.Execute(cycle.Fields)
	if err != nil {
		return
	}

	cycle.Written, err = cpu.WriteBack(cycle.Effect)
	if err != nil {
		return
	}

	cpu.Ticks++

	if cpu.Verbose {
		log.Printf("%03d: %v %v => %v", cycle.Pc, cycle.Word.Bits(), cycle.Fields, cycle.Effect)
	}

	return
}
