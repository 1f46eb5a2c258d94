package internal

import (
	"bytes"
	"fmt"
)

// Emitter appends brainfuck instructions to an output buffer and tracks where the
// tape cursor is after each appended instruction. Every primitive is a pure function
// of the current cursor and the requested intent, so a program can be translated one
// line at a time without lookahead.
//
// The buffer is append-only. An Emitter is not safe for concurrent use.
type Emitter struct {
	cursor int
	output bytes.Buffer
}

const (
	opRight     = '>'
	opLeft      = '<'
	opIncrement = '+'
	opDecrement = '-'
	opOutput    = '.'
)

// zeroCell drives the current cell down to 0 whatever it held before.
const zeroCell = "[-]"

// printUntilNull prints cells from the cursor on until it reaches a zero cell.
const printUntilNull = "[.>]"

func NewEmitter() *Emitter {
	return &Emitter{output: bytes.Buffer{}}
}

// Cursor returns the cell the emitted program points at. It is only meaningful
// up to the last PutUntilNull call, see PutUntilNull.
func (e *Emitter) Cursor() int {
	return e.cursor
}

// MoveTo moves the cursor to target. A negative target is a caller bug and panics,
// the tracked cursor would no longer match the emitted program.
func (e *Emitter) MoveTo(target int) {
	if target < 0 {
		panic(fmt.Sprintf("emitter: move to negative cell %d", target))
	}
	if target >= e.cursor {
		e.repeat(opRight, target-e.cursor)
	} else {
		e.repeat(opLeft, e.cursor-target)
	}
	e.cursor = target
}

// StoreExact makes the current cell hold value, modulo the cell width of the
// target machine.
func (e *Emitter) StoreExact(value int) {
	e.output.WriteString(zeroCell)
	e.repeat(opIncrement, value)
}

// StoreAdd adds value to the current cell.
func (e *Emitter) StoreAdd(value int) {
	e.repeat(opIncrement, value)
}

// StoreSub subtracts value from the current cell, wrapping on the target machine.
func (e *Emitter) StoreSub(value int) {
	e.repeat(opDecrement, value)
}

// StoreChar sets the current cell to the byte value of c.
func (e *Emitter) StoreChar(c byte) {
	e.StoreExact(int(c))
}

// StoreBytes stores b into consecutive cells starting at the cursor and leaves the
// cursor on the cell after the last byte.
func (e *Emitter) StoreBytes(b []byte) {
	for _, c := range b {
		e.StoreExact(int(c))
		e.MoveTo(e.cursor + 1)
	}
}

// Put prints the current cell.
func (e *Emitter) Put() {
	e.output.WriteByte(opOutput)
}

// PutMultiple prints n consecutive cells and leaves the cursor after the last one.
func (e *Emitter) PutMultiple(n int) {
	for i := 0; i < n; i++ {
		e.Put()
		e.MoveTo(e.cursor + 1)
	}
}

// PutUntilNull prints cells until a zero cell. Where the loop stops depends on the
// tape contents at run time, so the tracked cursor is left untouched and must not
// be relied upon afterwards.
func (e *Emitter) PutUntilNull() {
	e.output.WriteString(printUntilNull)
}

// Output returns the program emitted so far.
func (e *Emitter) Output() string {
	return e.output.String()
}

// Bytes returns a copy of the program emitted so far.
func (e *Emitter) Bytes() []byte {
	return append([]byte(nil), e.output.Bytes()...)
}

func (e *Emitter) Len() int {
	return e.output.Len()
}

func (e *Emitter) repeat(op byte, n int) {
	for i := 0; i < n; i++ {
		e.output.WriteByte(op)
	}
}
