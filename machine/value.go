package machine

import (
	"fmt"
	"strconv"
)

// Kind is the tag of a Value.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_EMPTY     = Kind(0) // empty
	KIND_NUMBER    = Kind(1) // number
	KIND_CHAR      = Kind(2) // char
	KIND_MEM_ADDR  = Kind(3) // addr
	KIND_PROG_ADDR = Kind(4) // label
)

// Inclusive range of a number value.
const (
	NUMBER_MIN = -999
	NUMBER_MAX = 999
)

// Value is the tagged datum that flows through the hands, the floor, and
// the queues. A character is stored as its ASCII code.
type Value struct {
	kind Kind
	num  int16
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// NewNumber returns a number value, or ErrNumberRange if n is outside
// NUMBER_MIN..NUMBER_MAX.
func NewNumber(n int) (v Value, err error) {
	if n < NUMBER_MIN || n > NUMBER_MAX {
		err = ErrNumberRange
		return
	}

	v = Value{kind: KIND_NUMBER, num: int16(n)}
	return
}

// NewCharacter returns a character value, or ErrCharacterRange if c is not
// in 'A'..'Z'.
func NewCharacter(c byte) (v Value, err error) {
	if c < 'A' || c > 'Z' {
		err = ErrCharacterRange
		return
	}

	v = Value{kind: KIND_CHAR, num: int16(c)}
	return
}

// MakeNumber is NewNumber for static room data; panics on a bad payload.
func MakeNumber(n int) Value {
	v, err := NewNumber(n)
	if err != nil {
		panic(err)
	}
	return v
}

// MakeCharacter is NewCharacter for static room data; panics on a bad payload.
func MakeCharacter(c byte) Value {
	v, err := NewCharacter(c)
	if err != nil {
		panic(err)
	}
	return v
}

// MakeAddr returns a memory address operand for floor slot n.
// The index is validated against a specific floor at execution time.
func MakeAddr(n int) Value {
	return Value{kind: KIND_MEM_ADDR, num: int16(n)}
}

// MakeLabel returns a program address operand for the one-based
// instruction position n, as used by the jump opcodes.
func MakeLabel(n int) Value {
	return Value{kind: KIND_PROG_ADDR, num: int16(n)}
}

// Kind returns the tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the value is empty.
func (v Value) IsEmpty() bool {
	return v.kind == KIND_EMPTY
}

// Number returns the numeric payload. Only meaningful for the number and
// address kinds; callers check the kind first.
func (v Value) Number() int {
	return int(v.num)
}

// Character returns the character payload. Only meaningful for KIND_CHAR.
func (v Value) Character() byte {
	return byte(v.num)
}

// String returns a compact printable form of the value.
func (v Value) String() (out string) {
	switch v.kind {
	case KIND_EMPTY:
		out = "empty"
	case KIND_NUMBER:
		out = strconv.Itoa(int(v.num))
	case KIND_CHAR:
		out = fmt.Sprintf("'%c'", byte(v.num))
	case KIND_MEM_ADDR:
		out = fmt.Sprintf("[%d]", v.num)
	case KIND_PROG_ADDR:
		out = fmt.Sprintf("#%d", v.num)
	default:
		out = fmt.Sprintf("%v(%d)", v.kind, v.num)
	}

	return
}

// checkNumberRange verifies an arithmetic result against the inclusive
// number bounds. A result exactly on a bound is valid.
func checkNumberRange(n int) (err error) {
	if n > NUMBER_MAX {
		err = ErrOverflow
	} else if n < NUMBER_MIN {
		err = ErrUnderflow
	}

	return
}
