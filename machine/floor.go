package machine

// Floor is the room's fixed-size memory: an ordered sequence of
// optionally-empty value slots, zero-indexed. The size never changes
// during a run.
type Floor struct {
	Slots []Value
}

// NewFloor creates a floor with the given number of empty slots.
func NewFloor(size int) (fl *Floor) {
	return &Floor{Slots: make([]Value, size)}
}

// Size returns the number of slots on the floor.
func (fl *Floor) Size() int {
	return len(fl.Slots)
}

// Direct resolves a direct address operand to a slot index. The operand
// must be number-tagged and within 0..Size()-1.
func (fl *Floor) Direct(addr Value) (index int, err error) {
	switch addr.Kind() {
	case KIND_NUMBER, KIND_MEM_ADDR:
		// pass
	default:
		err = ErrDirectType
		return
	}

	index = addr.Number()
	if index < 0 || index >= len(fl.Slots) {
		err = ErrDirectRange
	}

	return
}

// Indirect resolves an indirect address operand to a slot index. The
// operand designates a pointer slot, validated with the indirect fault
// kinds; the value stored there is then itself resolved as a direct
// address. Indirection is exactly one level deep.
func (fl *Floor) Indirect(addr Value) (index int, err error) {
	switch addr.Kind() {
	case KIND_NUMBER, KIND_MEM_ADDR:
		// pass
	default:
		err = ErrIndirectType
		return
	}

	pointer := addr.Number()
	if pointer < 0 || pointer >= len(fl.Slots) {
		err = ErrIndirectRange
		return
	}

	index, err = fl.Direct(fl.Slots[pointer])
	return
}
