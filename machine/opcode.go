package machine

import (
	"fmt"
)

// Op is an opcode from the fixed instruction catalog.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INBOX          = Op(0)  // inbox
	OP_OUTBOX         = Op(1)  // outbox
	OP_COPYFROM       = Op(2)  // copyfrom
	OP_COPYFROM_IND   = Op(3)  // copyfrom.ind
	OP_COPYTO         = Op(4)  // copyto
	OP_COPYTO_IND     = Op(5)  // copyto.ind
	OP_ADD            = Op(6)  // add
	OP_ADD_IND        = Op(7)  // add.ind
	OP_SUB            = Op(8)  // sub
	OP_SUB_IND        = Op(9)  // sub.ind
	OP_BUMP_PLUS      = Op(10) // bump+
	OP_BUMP_PLUS_IND  = Op(11) // bump+.ind
	OP_BUMP_MINUS     = Op(12) // bump-
	OP_BUMP_MINUS_IND = Op(13) // bump-.ind
	OP_JUMP           = Op(14) // jump
	OP_JUMP_ZERO      = Op(15) // jump.z
	OP_JUMP_NEG       = Op(16) // jump.n

	OP_COUNT = 17
)

// Indirect returns true if the opcode follows one level of pointer
// indirection through the floor.
func (op Op) Indirect() bool {
	switch op {
	case OP_COPYFROM_IND, OP_COPYTO_IND, OP_ADD_IND, OP_SUB_IND,
		OP_BUMP_PLUS_IND, OP_BUMP_MINUS_IND:
		return true
	}
	return false
}

// OperandKind returns the expected operand tag for the opcode:
// KIND_MEM_ADDR for the memory opcodes, KIND_PROG_ADDR for the jumps,
// and KIND_EMPTY for INBOX and OUTBOX, which take no operand.
func (op Op) OperandKind() (kind Kind) {
	switch op {
	case OP_INBOX, OP_OUTBOX:
		kind = KIND_EMPTY
	case OP_JUMP, OP_JUMP_ZERO, OP_JUMP_NEG:
		kind = KIND_PROG_ADDR
	default:
		kind = KIND_MEM_ADDR
	}

	return
}

// Instruction is an opcode plus its optional operand value.
type Instruction struct {
	Op  Op
	Arg Value
}

// MakeInst creates an operand-less instruction.
func MakeInst(op Op) Instruction {
	return Instruction{Op: op}
}

// MakeInstAddr creates a memory instruction addressing floor slot n.
func MakeInstAddr(op Op, n int) Instruction {
	return Instruction{Op: op, Arg: MakeAddr(n)}
}

// MakeInstJump creates a jump instruction targeting the one-based
// instruction position n.
func MakeInstJump(op Op, n int) Instruction {
	return Instruction{Op: op, Arg: MakeLabel(n)}
}

// String returns the assembly-style representation of the instruction.
func (inst Instruction) String() (out string) {
	out = inst.Op.String()
	if inst.Op.OperandKind() != KIND_EMPTY {
		out = fmt.Sprintf("%v %v", out, inst.Arg)
	}

	return
}

// Program is an ordered, immutable sequence of instructions. Jump targets
// are one-based instruction positions, converted to zero-based indexes
// during dispatch.
type Program struct {
	Instructions []Instruction
}

// MakeProgram creates a program from an instruction listing.
func MakeProgram(insts ...Instruction) *Program {
	return &Program{Instructions: insts}
}

// Validate checks the program for listing-time defects: a missing or
// wrongly-tagged operand, an operand on INBOX/OUTBOX, or a jump target
// outside the listing. Address range violations are a run-time concern and
// are not checked here.
func (prog *Program) Validate() (err error) {
	for n, inst := range prog.Instructions {
		err = prog.validateInst(inst)
		if err != nil {
			err = &ErrListing{Pos: n + 1, Inst: inst, Err: err}
			return
		}
	}

	return
}

func (prog *Program) validateInst(inst Instruction) (err error) {
	if inst.Op < 0 || inst.Op >= OP_COUNT {
		err = ErrOpcodeInvalid
		return
	}

	kind := inst.Op.OperandKind()
	switch kind {
	case KIND_EMPTY:
		if !inst.Arg.IsEmpty() {
			err = ErrOperandExtra
		}
	case KIND_PROG_ADDR:
		if inst.Arg.IsEmpty() {
			err = ErrOperandMissing
			return
		}
		if inst.Arg.Kind() != KIND_PROG_ADDR {
			err = ErrOperandKind
			return
		}
		target := inst.Arg.Number()
		if target < 1 || target > len(prog.Instructions) {
			err = ErrTargetRange
		}
	case KIND_MEM_ADDR:
		if inst.Arg.IsEmpty() {
			err = ErrOperandMissing
			return
		}
		// The engine accepts a plain number as a direct address; both
		// tags make a valid listing.
		if inst.Arg.Kind() != KIND_MEM_ADDR && inst.Arg.Kind() != KIND_NUMBER {
			err = ErrOperandKind
		}
	}

	return
}
