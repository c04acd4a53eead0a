package room

import (
	"github.com/ezrec/hrm/machine"
)

// Rooms is the built-in level catalog, keyed by level name.
var Rooms = map[string]*Room{
	MailRoom.Name:                   MailRoom,
	RainySummer.Name:                RainySummer,
	ZeroPreservationInitiative.Name: ZeroPreservationInitiative,
}

// MailRoom forwards three inbox values to the outbox, one at a time.
var MailRoom = &Room{
	Name: "mail-room",
	Inbox: []machine.Value{
		machine.MakeNumber(1),
		machine.MakeNumber(-2),
		machine.MakeNumber(9),
	},
	Program: machine.MakeProgram(
		machine.MakeInst(machine.OP_INBOX),  // 1
		machine.MakeInst(machine.OP_OUTBOX), // 2
		machine.MakeInst(machine.OP_INBOX),  // 3
		machine.MakeInst(machine.OP_OUTBOX), // 4
		machine.MakeInst(machine.OP_INBOX),  // 5
		machine.MakeInst(machine.OP_OUTBOX), // 6
	),
}

// RainySummer sums each pair of inbox values.
var RainySummer = &Room{
	Name: "rainy-summer",
	Size: 3,
	Inbox: []machine.Value{
		machine.MakeNumber(3),
		machine.MakeNumber(9),
		machine.MakeNumber(-4),
		machine.MakeNumber(4),
		machine.MakeNumber(1),
		machine.MakeNumber(0),
	},
	Program: machine.MakeProgram(
		machine.MakeInst(machine.OP_INBOX),         // 1
		machine.MakeInstAddr(machine.OP_COPYTO, 0), // 2
		machine.MakeInst(machine.OP_INBOX),         // 3
		machine.MakeInstAddr(machine.OP_ADD, 0),    // 4
		machine.MakeInst(machine.OP_OUTBOX),        // 5
		machine.MakeInstJump(machine.OP_JUMP, 1),   // 6
	),
}

// ZeroPreservationInitiative forwards only the zeros from the inbox.
// Characters flow through the zero test, so the room relaxes the
// conditional-jump policy the way the game behaves.
var ZeroPreservationInitiative = &Room{
	Name:  "zero-preservation-initiative",
	Size:  9,
	Chars: machine.CHAR_FALLTHROUGH,
	Inbox: []machine.Value{
		machine.MakeNumber(7),
		machine.MakeNumber(0),
		machine.MakeNumber(5),
		machine.MakeCharacter('D'),
		machine.MakeNumber(0),
		machine.MakeNumber(0),
		machine.MakeNumber(0),
		machine.MakeNumber(0),
	},
	Program: machine.MakeProgram(
		machine.MakeInst(machine.OP_INBOX),            // 1
		machine.MakeInstJump(machine.OP_JUMP_ZERO, 4), // 2
		machine.MakeInstJump(machine.OP_JUMP, 1),      // 3
		machine.MakeInst(machine.OP_OUTBOX),           // 4
		machine.MakeInstJump(machine.OP_JUMP, 1),      // 5
	),
}
