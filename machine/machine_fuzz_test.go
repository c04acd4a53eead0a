package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzExecute runs arbitrary single-instruction programs against a small
// populated floor. Every run must reach a terminal state without panicking,
// and every error must be a wrapped taxonomy fault.
func FuzzExecute(f *testing.F) {
	for op := range OP_COUNT {
		f.Add(uint8(op), int16(0), int16(0))
		f.Add(uint8(op), int16(2), int16(1))
		f.Add(uint8(op), int16(-1), int16(-1000))
		f.Add(uint8(op), int16(999), int16(2))
	}

	f.Fuzz(func(t *testing.T, op uint8, arg int16, hands int16) {
		assert := assert.New(t)

		inst := Instruction{Op: Op(int(op) % OP_COUNT)}
		switch inst.Op.OperandKind() {
		case KIND_MEM_ADDR:
			inst.Arg = MakeAddr(int(arg))
		case KIND_PROG_ADDR:
			inst.Arg = MakeLabel(int(arg))
		}

		fl := NewFloor(4)
		fl.Slots[0] = MakeNumber(int(arg) % (NUMBER_MAX + 1))
		fl.Slots[1] = MakeCharacter('A' + byte(uint16(arg)%26))
		fl.Slots[2] = MakeNumber(NUMBER_MAX)
		// Slot 3 left empty.

		in := &sliceInbox{values: []Value{MakeNumber(1)}}
		out := &sliceOutbox{}

		m := NewMachine(MakeProgram(inst), fl, in, out)
		switch int(hands) % 3 {
		case 1:
			m.Hands = MakeNumber(int(hands) % (NUMBER_MAX + 1))
		case 2:
			m.Hands = MakeCharacter('A' + byte(uint16(hands)%26))
		}

		halt, err := m.Run()
		assert.NotEqual(HALT_NONE, halt)
		assert.LessOrEqual(m.Steps, m.Limit)

		if err != nil {
			assert.Equal(HALT_FAULT, halt)
			fault := &ErrFault{}
			assert.ErrorAs(err, &fault)
			assert.Equal(1, fault.Pos)
		} else {
			assert.NotEqual(HALT_FAULT, halt)
		}
	})
}
