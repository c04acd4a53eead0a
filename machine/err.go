package machine

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	// Value construction errors
	ErrNumberRange    = errors.New(f("number out of range"))
	ErrCharacterRange = errors.New(f("character out of range"))

	// Fault taxonomy. The first fault raised is fatal to the run.
	ErrBadParamType     = errors.New(f("bad parameter type"))
	ErrEmptyHands       = errors.New(f("empty hands"))
	ErrDirectType       = errors.New(f("invalid type for direct address"))
	ErrDirectRange      = errors.New(f("direct address out of range"))
	ErrIndirectType     = errors.New(f("invalid type for indirect address"))
	ErrIndirectRange    = errors.New(f("indirect address out of range"))
	ErrReadEmpty        = errors.New(f("copyfrom reading empty address"))
	ErrReadEmptyInd     = errors.New(f("copyfrom indirect reading empty address"))
	ErrAddendHands      = errors.New(f("bad addend type in hands"))
	ErrSubtrahendHands  = errors.New(f("bad subtrahend type in hands"))
	ErrAddendMemory     = errors.New(f("bad addend type in memory"))
	ErrSubtrahendMemory = errors.New(f("bad subtrahend type in memory"))
	ErrBumpMemory       = errors.New(f("bad type for bump in memory"))
	ErrOverflow         = errors.New(f("overflow"))
	ErrUnderflow        = errors.New(f("underflow"))

	// Inbox exhaustion sentinel; normal termination, not a fault.
	ErrInboxEmpty = errors.New(f("inbox empty"))

	// Listing errors, raised by Program.Validate before a run starts.
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("operand not allowed"))
	ErrOperandKind    = errors.New(f("operand kind invalid"))
	ErrTargetRange    = errors.New(f("jump target out of range"))
)

// ErrListing reports a defective instruction in a program listing.
// Pos is the one-based instruction position.
type ErrListing struct {
	Pos  int
	Inst Instruction
	Err  error
}

func (err *ErrListing) Error() string {
	return f("instruction %d '%v' %v", err.Pos, err.Inst, err.Err)
}

func (err *ErrListing) Unwrap() error {
	return err.Err
}

// ErrFault reports the instruction that faulted a run. Pos is the
// one-based instruction position, Step the number of executed steps.
type ErrFault struct {
	Pos  int
	Step int
	Inst Instruction
	Err  error
}

func (err *ErrFault) Error() string {
	return f("step %d instruction %d '%v' %v", err.Step, err.Pos, err.Inst, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
