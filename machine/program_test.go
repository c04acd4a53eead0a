package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst Instruction
		out  string
	}){
		{MakeInst(OP_INBOX), "inbox"},
		{MakeInst(OP_OUTBOX), "outbox"},
		{MakeInstAddr(OP_COPYFROM, 3), "copyfrom [3]"},
		{MakeInstAddr(OP_COPYFROM_IND, 0), "copyfrom.ind [0]"},
		{MakeInstAddr(OP_BUMP_PLUS, 0), "bump+ [0]"},
		{MakeInstJump(OP_JUMP, 1), "jump #1"},
		{MakeInstJump(OP_JUMP_ZERO, 4), "jump.z #4"},
		{MakeInstJump(OP_JUMP_NEG, 2), "jump.n #2"},
	}

	for _, entry := range table {
		assert.Equal(entry.out, entry.inst.String())
	}
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	good := MakeProgram(
		MakeInst(OP_INBOX),
		MakeInstJump(OP_JUMP_ZERO, 4),
		MakeInstJump(OP_JUMP, 1),
		MakeInst(OP_OUTBOX),
		MakeInstJump(OP_JUMP, 1),
	)
	assert.NoError(good.Validate())

	table := [](struct {
		name string
		prog *Program
		err  error
	}){
		{"operand-on-inbox", MakeProgram(
			Instruction{Op: OP_INBOX, Arg: MakeNumber(1)},
		), ErrOperandExtra},
		{"missing-address", MakeProgram(
			MakeInst(OP_COPYFROM),
		), ErrOperandMissing},
		{"label-as-address", MakeProgram(
			Instruction{Op: OP_COPYFROM, Arg: MakeLabel(1)},
		), ErrOperandKind},
		{"missing-target", MakeProgram(
			MakeInst(OP_JUMP),
		), ErrOperandMissing},
		{"address-as-target", MakeProgram(
			Instruction{Op: OP_JUMP, Arg: MakeAddr(1)},
		), ErrOperandKind},
		{"target-zero", MakeProgram(
			MakeInstJump(OP_JUMP, 0),
		), ErrTargetRange},
		{"target-past-end", MakeProgram(
			MakeInst(OP_INBOX),
			MakeInstJump(OP_JUMP, 3),
		), ErrTargetRange},
		{"bad-opcode", MakeProgram(
			MakeInst(Op(99)),
		), ErrOpcodeInvalid},
	}

	for _, entry := range table {
		err := entry.prog.Validate()
		assert.ErrorIs(err, entry.err, entry.name)

		listing := &ErrListing{}
		assert.True(errors.As(err, &listing), entry.name)
		assert.NotEmpty(listing.Error(), entry.name)
	}
}

func TestValidatePosition(t *testing.T) {
	assert := assert.New(t)

	prog := MakeProgram(
		MakeInst(OP_INBOX),
		MakeInst(OP_OUTBOX),
		MakeInstJump(OP_JUMP, 9),
	)

	err := prog.Validate()

	listing := &ErrListing{}
	assert.True(errors.As(err, &listing))
	assert.Equal(3, listing.Pos)
	assert.Equal(OP_JUMP, listing.Inst.Op)
}

func TestOperandKinds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(KIND_EMPTY, OP_INBOX.OperandKind())
	assert.Equal(KIND_EMPTY, OP_OUTBOX.OperandKind())
	assert.Equal(KIND_MEM_ADDR, OP_COPYTO_IND.OperandKind())
	assert.Equal(KIND_MEM_ADDR, OP_SUB.OperandKind())
	assert.Equal(KIND_PROG_ADDR, OP_JUMP_NEG.OperandKind())

	assert.False(OP_COPYFROM.Indirect())
	assert.True(OP_COPYFROM_IND.Indirect())
	assert.True(OP_BUMP_MINUS_IND.Indirect())
	assert.False(OP_JUMP.Indirect())
}
