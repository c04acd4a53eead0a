package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int{NUMBER_MIN, -1, 0, 1, 42, NUMBER_MAX} {
		v, err := NewNumber(n)
		assert.NoError(err)
		assert.Equal(KIND_NUMBER, v.Kind())
		assert.Equal(n, v.Number())
	}

	for _, n := range []int{NUMBER_MIN - 1, NUMBER_MAX + 1, -32768, 32767} {
		_, err := NewNumber(n)
		assert.ErrorIs(err, ErrNumberRange)
	}
}

func TestCharacter(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []byte{'A', 'M', 'Z'} {
		v, err := NewCharacter(c)
		assert.NoError(err)
		assert.Equal(KIND_CHAR, v.Kind())
		assert.Equal(c, v.Character())
	}

	for _, c := range []byte{'a', 'z', '@', '[', '0', 0} {
		_, err := NewCharacter(c)
		assert.ErrorIs(err, ErrCharacterRange)
	}
}

func TestNumberRangeCheck(t *testing.T) {
	assert := assert.New(t)

	// A result exactly on a bound is valid.
	assert.NoError(checkNumberRange(NUMBER_MAX))
	assert.NoError(checkNumberRange(NUMBER_MIN))
	assert.NoError(checkNumberRange(0))

	assert.ErrorIs(checkNumberRange(NUMBER_MAX+1), ErrOverflow)
	assert.ErrorIs(checkNumberRange(NUMBER_MIN-1), ErrUnderflow)
}

func TestValueString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		v   Value
		out string
	}){
		{Empty(), "empty"},
		{MakeNumber(-7), "-7"},
		{MakeNumber(0), "0"},
		{MakeCharacter('D'), "'D'"},
		{MakeAddr(3), "[3]"},
		{MakeLabel(4), "#4"},
	}

	for _, entry := range table {
		assert.Equal(entry.out, entry.v.String())
	}
}

func TestMakePanics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { MakeNumber(NUMBER_MAX + 1) })
	assert.Panics(func() { MakeCharacter('a') })
}
