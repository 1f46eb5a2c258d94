package bfvm

import (
	"bufio"
	"context"
	"errors"
	"io"
)

const DefaultTapeSize = 30000

// checkEvery is how many instructions run between two context checks.
const checkEvery = 4096

var (
	ErrTapeUnderflow = errors.New("cursor moved left of cell 0")
	ErrStepLimit     = errors.New("step limit reached")
)

// Machine runs a lexed program over a byte tape. Cells wrap at 256, reading at end
// of input leaves the cell unchanged, and the tape grows to the right on demand.
type Machine struct {
	program  []Instruction
	tape     []byte
	pointer  int
	pc       int
	steps    int
	maxSteps int
	in       *bufio.Reader
	out      *bufio.Writer
}

type MachineOption func(m *Machine)

// WithMaxSteps stops the run with ErrStepLimit after n instructions. 0 means no limit.
func WithMaxSteps(n int) MachineOption {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

func WithTapeSize(n int) MachineOption {
	return func(m *Machine) {
		if n < 1 {
			n = 1
		}
		m.tape = make([]byte, n)
	}
}

func NewMachine(program []Instruction, in io.Reader, out io.Writer, opts ...MachineOption) *Machine {
	m := &Machine{
		program: program,
		tape:    make([]byte, DefaultTapeSize),
		out:     bufio.NewWriter(out),
	}
	if in != nil {
		m.in = bufio.NewReader(in)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes the program until it ends, fails, or ctx is done. Output is flushed
// in every case.
func (m *Machine) Run(ctx context.Context) (err error) {
	defer func() {
		flushErr := m.out.Flush()
		if err == nil {
			err = flushErr
		}
	}()
	for m.pc < len(m.program) {
		if m.steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if m.maxSteps > 0 && m.steps >= m.maxSteps {
			return ErrStepLimit
		}
		m.steps++
		if err := m.step(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) step() error {
	ins := m.program[m.pc]
	switch ins.Op {
	case OpRight:
		m.pointer++
		if m.pointer == len(m.tape) {
			m.tape = append(m.tape, 0)
		}
	case OpLeft:
		if m.pointer == 0 {
			return ErrTapeUnderflow
		}
		m.pointer--
	case OpIncrement:
		m.tape[m.pointer]++
	case OpDecrement:
		m.tape[m.pointer]--
	case OpOutput:
		if err := m.out.WriteByte(m.tape[m.pointer]); err != nil {
			return err
		}
	case OpInput:
		if m.in == nil {
			break
		}
		b, err := m.in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		m.tape[m.pointer] = b
	case OpLoopOpen:
		if m.tape[m.pointer] == 0 {
			m.pc = ins.Jump
		}
	case OpLoopClose:
		if m.tape[m.pointer] != 0 {
			m.pc = ins.Jump
		}
	}
	m.pc++
	return nil
}

// Pointer returns the cell the machine points at.
func (m *Machine) Pointer() int {
	return m.pointer
}

// Cell returns the value of cell i, cells never touched hold 0.
func (m *Machine) Cell(i int) byte {
	if i < 0 || i >= len(m.tape) {
		return 0
	}
	return m.tape[i]
}

// Steps returns how many instructions ran.
func (m *Machine) Steps() int {
	return m.steps
}

// Run lexes and runs src.
func Run(ctx context.Context, src string, in io.Reader, out io.Writer, opts ...MachineOption) (*Machine, error) {
	program, err := Lex(src)
	if err != nil {
		return nil, err
	}
	m := NewMachine(program, in, out, opts...)
	return m, m.Run(ctx)
}
