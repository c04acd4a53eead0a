// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"log"
)

// Inbox supplies input values to the machine. Take returns the next value
// in order, or ok false once the source is exhausted. Under batch
// scheduling Take never blocks; under interactive scheduling it blocks
// until a value arrives or the source is closed.
type Inbox interface {
	Take() (v Value, ok bool)
}

// Outbox collects output values in emission order.
type Outbox interface {
	Put(v Value) error
}

// STEP_LIMIT is the default instruction-count ceiling. Reaching the ceiling
// is a forced normal stop, not a fault.
const STEP_LIMIT = 1000

// Halt is the terminal state of a run.
type Halt int

//go:generate go tool stringer -linecomment -type=Halt
const (
	HALT_NONE  = Halt(0) // running
	HALT_INBOX = Halt(1) // inbox exhausted
	HALT_END   = Halt(2) // end of program
	HALT_LIMIT = Halt(3) // step limit
	HALT_FAULT = Halt(4) // fault
)

// CharPolicy selects how the conditional jumps treat a character in the
// hands. The game leaves this case unspecified, so it is an explicit knob
// rather than a guess.
type CharPolicy int

//go:generate go tool stringer -linecomment -type=CharPolicy
const (
	CHAR_FAULT       = CharPolicy(0) // fault
	CHAR_FALLTHROUGH = CharPolicy(1) // fallthrough
)

// Machine is the execution context of one run: the hands register, the
// program counter, and references to the program, floor, and queues. The
// floor and both queues are supplied by the caller and survive the run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Instruction listing under execution.
	Floor   *Floor   // Room memory.
	In      Inbox    // Input queue.
	Out     Outbox   // Output queue.

	Limit int        // Instruction-count ceiling.
	Chars CharPolicy // Conditional-jump policy for characters.

	Hands Value // The accumulator.
	Pc    int   // Zero-based program counter.
	Steps int   // Executed instruction count.

	halt  Halt
	fault error
}

// NewMachine creates a machine for one run over the given program, floor,
// and queues, with the hands empty and the default step ceiling.
func NewMachine(prog *Program, fl *Floor, in Inbox, out Outbox) (m *Machine) {
	m = &Machine{
		Program: prog,
		Floor:   fl,
		In:      in,
		Out:     out,
		Limit:   STEP_LIMIT,
	}

	return
}

// Halt returns the terminal state, HALT_NONE while still runnable.
func (m *Machine) Halt() Halt {
	return m.halt
}

// Fault returns the fault that ended the run, or nil.
func (m *Machine) Fault() error {
	return m.fault
}

// Reset rewinds the execution context so the same program can run again.
// The floor and queues are caller-owned and are not touched.
func (m *Machine) Reset() {
	m.Hands = Empty()
	m.Pc = 0
	m.Steps = 0
	m.halt = HALT_NONE
	m.fault = nil
}

// Tick executes the instruction at the program counter. done reports a
// terminal state: inbox exhaustion, the counter leaving the listing, the
// step ceiling, or a fault. Only a fault returns an error.
func (m *Machine) Tick() (done bool, err error) {
	if m.halt != HALT_NONE {
		done = true
		err = m.fault
		return
	}

	if m.Steps >= m.Limit {
		m.halt = HALT_LIMIT
		done = true
		return
	}

	if m.Pc < 0 || m.Pc >= len(m.Program.Instructions) {
		m.halt = HALT_END
		done = true
		return
	}

	inst := m.Program.Instructions[m.Pc]
	pos := m.Pc + 1

	if m.Verbose {
		log.Printf("%3d: %v", pos, inst)
	}

	m.Steps++
	err = m.execute(inst)
	if errors.Is(err, ErrInboxEmpty) {
		m.halt = HALT_INBOX
		done = true
		err = nil
		return
	}
	if err != nil {
		err = &ErrFault{Pos: pos, Step: m.Steps, Inst: inst, Err: err}
		m.halt = HALT_FAULT
		m.fault = err
		done = true
	}

	return
}

// Run executes the program to completion and reports the terminal state.
// err is nil unless the run faulted, in which case it is an *ErrFault
// wrapping one taxonomy member; the first fault ends the run.
func (m *Machine) Run() (halt Halt, err error) {
	var done bool
	for !done {
		done, err = m.Tick()
	}

	halt = m.halt
	return
}

// execute dispatches a single instruction. The program counter advances by
// one unless the instruction itself sets it. On a fault nothing has been
// mutated: the hands, the floor, and the counter are as they were.
func (m *Machine) execute(inst Instruction) (err error) {
	next := m.Pc + 1

	switch inst.Op {
	case OP_INBOX:
		v, ok := m.In.Take()
		if !ok {
			err = ErrInboxEmpty
			return
		}
		m.Hands = v

	case OP_OUTBOX:
		if m.Hands.IsEmpty() {
			err = ErrEmptyHands
			return
		}
		err = m.Out.Put(m.Hands)
		if err != nil {
			return
		}
		// The hands keep their value; only copyto empties them.

	case OP_COPYFROM, OP_COPYFROM_IND:
		var index int
		index, err = m.resolve(inst)
		if err != nil {
			return
		}
		v := m.Floor.Slots[index]
		if v.IsEmpty() {
			err = ErrReadEmpty
			if inst.Op == OP_COPYFROM_IND {
				err = ErrReadEmptyInd
			}
			return
		}
		m.Hands = v

	case OP_COPYTO, OP_COPYTO_IND:
		var index int
		index, err = m.resolve(inst)
		if err != nil {
			return
		}
		if m.Hands.IsEmpty() {
			err = ErrEmptyHands
			return
		}
		m.Floor.Slots[index] = m.Hands
		m.Hands = Empty()

	case OP_ADD, OP_ADD_IND, OP_SUB, OP_SUB_IND:
		err = m.arith(inst)
		if err != nil {
			return
		}

	case OP_BUMP_PLUS, OP_BUMP_PLUS_IND, OP_BUMP_MINUS, OP_BUMP_MINUS_IND:
		err = m.bump(inst)
		if err != nil {
			return
		}

	case OP_JUMP:
		// One-based listing position to zero-based index.
		next = inst.Arg.Number() - 1

	case OP_JUMP_ZERO, OP_JUMP_NEG:
		var taken bool
		taken, err = m.test(inst.Op)
		if err != nil {
			return
		}
		if taken {
			next = inst.Arg.Number() - 1
		}

	default:
		err = ErrOpcodeInvalid
		return
	}

	m.Pc = next
	return
}

// resolve validates the instruction's address operand against the floor.
func (m *Machine) resolve(inst Instruction) (index int, err error) {
	if inst.Op.Indirect() {
		index, err = m.Floor.Indirect(inst.Arg)
	} else {
		index, err = m.Floor.Direct(inst.Arg)
	}

	return
}

// arith performs add and sub. Both operands must be numbers; the result
// is range-checked before the hands are updated.
func (m *Machine) arith(inst Instruction) (err error) {
	sub := inst.Op == OP_SUB || inst.Op == OP_SUB_IND

	handsErr := ErrAddendHands
	memoryErr := ErrAddendMemory
	if sub {
		handsErr = ErrSubtrahendHands
		memoryErr = ErrSubtrahendMemory
	}

	if m.Hands.IsEmpty() {
		err = ErrEmptyHands
		return
	}
	if m.Hands.Kind() != KIND_NUMBER {
		err = handsErr
		return
	}

	index, err := m.resolve(inst)
	if err != nil {
		return
	}

	v := m.Floor.Slots[index]
	if v.Kind() != KIND_NUMBER {
		// An empty slot fails the required number check as well.
		err = memoryErr
		return
	}

	n := m.Hands.Number()
	if sub {
		n -= v.Number()
	} else {
		n += v.Number()
	}

	err = checkNumberRange(n)
	if err != nil {
		return
	}

	m.Hands = MakeNumber(n)
	return
}

// bump increments or decrements a floor slot in place, range-checks the
// result, writes it back, and mirrors the new value into the hands.
func (m *Machine) bump(inst Instruction) (err error) {
	minus := inst.Op == OP_BUMP_MINUS || inst.Op == OP_BUMP_MINUS_IND

	index, err := m.resolve(inst)
	if err != nil {
		return
	}

	v := m.Floor.Slots[index]
	if v.Kind() != KIND_NUMBER {
		err = ErrBumpMemory
		return
	}

	n := v.Number()
	if minus {
		n -= 1
	} else {
		n += 1
	}

	err = checkNumberRange(n)
	if err != nil {
		return
	}

	bumped := MakeNumber(n)
	m.Floor.Slots[index] = bumped
	m.Hands = bumped
	return
}

// test evaluates a conditional jump against the hands.
func (m *Machine) test(op Op) (taken bool, err error) {
	switch m.Hands.Kind() {
	case KIND_NUMBER:
		n := m.Hands.Number()
		if op == OP_JUMP_ZERO {
			taken = n == 0
		} else {
			taken = n < 0
		}
	case KIND_EMPTY:
		err = ErrEmptyHands
	case KIND_CHAR:
		if m.Chars != CHAR_FALLTHROUGH {
			err = ErrBadParamType
		}
		// A character is neither zero nor negative; the branch is
		// never taken.
	default:
		err = ErrBadParamType
	}

	return
}
