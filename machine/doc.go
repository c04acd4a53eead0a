// Package machine implements the Human Resource Machine execution engine.
//
// The machine executes a fixed program against a small random-access memory
// (the room "floor"), an input queue (the inbox) and an output queue (the
// outbox). A single-slot accumulator, the "hands", mediates all data
// movement. Every value is tagged: empty, a number in -999..999, a character
// 'A'..'Z', or an address operand. The first precondition violation faults
// the run; an empty inbox is the normal way a program ends.
package machine
