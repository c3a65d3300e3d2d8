package cpu

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcEmpty              = errors.New(f("pc empty"))
	ErrOperationUnsupported = errors.New(f("operation unsupported"))
	ErrMemoryBounds         = errors.New(f("memory out of bounds"))
	ErrPcRange              = errors.New(f("branch target before start of program"))

	// Assembler errors
	ErrSectionMissing     = errors.New(f("line outside .data or .text"))
	ErrSegmentMalformed   = errors.New(f("malformed data line"))
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction unsupported"))
	ErrImmediateRange     = errors.New(f("immediate out of 16-bit range"))
	ErrTargetRange        = errors.New(f("jump target out of 26-bit range"))
)

// ErrLabelMissing is an unresolved label reference.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrRegister is an unknown or out-of-range register token.
type ErrRegister string

func (er ErrRegister) Error() string {
	return f("'%v' is not a register", string(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}

// ErrMnemonic is a mnemonic absent from the instruction-set table.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not a supported instruction", string(em))
}

func (em ErrMnemonic) Unwrap() error {
	return ErrInstructionInvalid
}

// ErrWord is a word the processor could not execute.
type ErrWord Word

func (ew ErrWord) Error() string {
	return f("word %v (%v)", Word(ew).Bits(), Word(ew).Decode().String())
}

func (ew ErrWord) Is(err error) (ok bool) {
	_, ok = err.(ErrWord)
	return
}

// ErrAddress is a memory access outside the memory array.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %v", int64(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrMemoryBounds
}

// ErrSyntax locates an assembler error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
