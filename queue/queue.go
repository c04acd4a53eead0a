// Package queue provides the input and output queue implementations for
// the machine: a batch inbox prepared before the run, an interactive inbox
// that blocks for values, and a bounded outbox buffer.
package queue

import (
	"iter"

	"github.com/ezrec/hrm/machine"
)

// Batch is a slice-backed inbox. Values are consumed strictly front to
// back and never replenished; Take never blocks. Exhaustion is the normal
// termination signal, not an error.
type Batch struct {
	Values []machine.Value

	next int
}

var _ machine.Inbox = (*Batch)(nil)

// Take returns the next value, or ok false once the queue is exhausted.
func (b *Batch) Take() (v machine.Value, ok bool) {
	if b.next >= len(b.Values) {
		return
	}

	v = b.Values[b.next]
	b.next++
	ok = true
	return
}

// Rewind resets consumption to the front of the queue.
func (b *Batch) Rewind() {
	b.next = 0
}

// Remaining returns the number of values not yet consumed.
func (b *Batch) Remaining() int {
	return len(b.Values) - b.next
}

// Interactive is a channel-backed inbox. Take blocks the calling goroutine
// until a value is sent on C or the channel is closed, after which the
// inbox reads exhausted.
type Interactive struct {
	C chan machine.Value
}

var _ machine.Inbox = (*Interactive)(nil)

// NewInteractive creates an interactive inbox with an unbuffered channel.
func NewInteractive() (in *Interactive) {
	return &Interactive{C: make(chan machine.Value)}
}

// Take blocks for the next value; ok is false once C is closed.
func (in *Interactive) Take() (v machine.Value, ok bool) {
	v, ok = <-in.C
	return
}

// Close ends the input source. A Take blocked in the machine then reads
// exhausted and the run halts normally.
func (in *Interactive) Close() {
	close(in.C)
}

// Buffer is the outbox: values appended strictly in emission order.
// Capacity, when non-zero, bounds the buffer; the host configures it.
type Buffer struct {
	Capacity int // Capacity in values, 0 for unbounded.

	Values []machine.Value
}

var _ machine.Outbox = (*Buffer)(nil)

// Put appends a value, or returns ErrBufferFull at the capacity limit.
func (buf *Buffer) Put(v machine.Value) (err error) {
	if buf.Capacity > 0 && len(buf.Values) >= buf.Capacity {
		err = ErrBufferFull
		return
	}

	buf.Values = append(buf.Values, v)
	return
}

// All returns an iterator over the collected values in emission order.
func (buf *Buffer) All() iter.Seq[machine.Value] {
	return func(yield func(machine.Value) bool) {
		for _, v := range buf.Values {
			if !yield(v) {
				return
			}
		}
	}
}

// Rewind discards the collected values.
func (buf *Buffer) Rewind() {
	buf.Values = buf.Values[:0]
}
