package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirect(t *testing.T) {
	assert := assert.New(t)

	fl := NewFloor(3)

	table := [](struct {
		name  string
		addr  Value
		index int
		err   error
	}){
		{"first", MakeAddr(0), 0, nil},
		{"last", MakeAddr(2), 2, nil},
		{"number-tag", MakeNumber(1), 1, nil},
		{"past-end", MakeAddr(3), 0, ErrDirectRange},
		{"negative", MakeAddr(-1), 0, ErrDirectRange},
		{"empty", Empty(), 0, ErrDirectType},
		{"char", MakeCharacter('A'), 0, ErrDirectType},
		{"label", MakeLabel(1), 0, ErrDirectType},
	}

	for _, entry := range table {
		index, err := fl.Direct(entry.addr)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.index, index, entry.name)
	}
}

func TestIndirect(t *testing.T) {
	assert := assert.New(t)

	fl := NewFloor(4)
	fl.Slots[0] = MakeNumber(2)       // valid pointer
	fl.Slots[1] = MakeCharacter('B')  // pointer with a bad tag
	fl.Slots[2] = MakeNumber(9)       // pointer past the floor
	// Slot 3 left empty: an empty pointer fails the direct tag check.

	table := [](struct {
		name  string
		addr  Value
		index int
		err   error
	}){
		{"good-pointer", MakeAddr(0), 2, nil},
		{"char-pointer", MakeAddr(1), 0, ErrDirectType},
		{"far-pointer", MakeAddr(2), 0, ErrDirectRange},
		{"empty-pointer", MakeAddr(3), 0, ErrDirectType},
		{"operand-past-end", MakeAddr(9), 0, ErrIndirectRange},
		{"operand-negative", MakeAddr(-1), 0, ErrIndirectRange},
		{"operand-char", MakeCharacter('A'), 0, ErrIndirectType},
		{"operand-empty", Empty(), 0, ErrIndirectType},
	}

	for _, entry := range table {
		index, err := fl.Indirect(entry.addr)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.index, index, entry.name)
	}
}
