// Package room holds per-program machine configurations: the floor size
// and preset contents, the instruction listing, and the sample input data
// shipped with each level. Rooms are static configuration; the machine
// package does the work.
package room

import (
	"github.com/ezrec/hrm/machine"
	"github.com/ezrec/hrm/queue"
)

// Room is the configuration one program runs against.
type Room struct {
	Name   string                // Level name.
	Size   int                   // Floor slots.
	Preset map[int]machine.Value // Slots that start non-empty.

	Inbox   []machine.Value    // Sample input data from the game.
	Chars   machine.CharPolicy // Conditional-jump policy for characters.
	Program *machine.Program   // Instruction listing.
}

// Floor builds the room's floor with the preset slots applied.
func (room *Room) Floor() (fl *machine.Floor) {
	fl = machine.NewFloor(room.Size)
	for index, v := range room.Preset {
		fl.Slots[index] = v
	}

	return
}

// Machine wires a fresh machine over the room. A nil inbox runs the
// room's sample input in batch mode; a nil outbox collects into an
// unbounded buffer.
func (room *Room) Machine(in machine.Inbox, out machine.Outbox) (m *machine.Machine) {
	if in == nil {
		in = &queue.Batch{Values: room.Inbox}
	}
	if out == nil {
		out = &queue.Buffer{}
	}

	m = machine.NewMachine(room.Program, room.Floor(), in, out)
	m.Chars = room.Chars

	return
}

// Validate checks the room's program listing.
func (room *Room) Validate() (err error) {
	return room.Program.Validate()
}
