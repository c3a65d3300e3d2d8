package emulator

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint32
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (pc %d) %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrSeed is a data label whose value could not seed memory.
type ErrSeed struct {
	Label string
	Err   error
}

func (err *ErrSeed) Error() string {
	return f("data label %v: %v", err.Label, err.Err)
}

func (err *ErrSeed) Unwrap() error {
	return err.Err
}
