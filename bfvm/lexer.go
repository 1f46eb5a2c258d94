package bfvm

import (
	"errors"
	"fmt"

	"github.com/xiaobogaga/lbf/util"
)

// A small brainfuck machine, used to run translated programs and to check what
// they do rather than how they are spelled.

type Op byte

const (
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpIncrement Op = '+'
	OpDecrement Op = '-'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopOpen  Op = '['
	OpLoopClose Op = ']'
)

// Instruction is one op. For loop ops Jump is the index of the matching bracket.
type Instruction struct {
	Op   Op
	Jump int
	// Pos is the byte offset of the op in the source.
	Pos int
}

var ErrUnbalancedBrackets = errors.New("unbalanced brackets")

// Lex keeps the eight ops of src, drops every other byte, and matches brackets.
func Lex(src string) ([]Instruction, error) {
	var program []Instruction
	var opened []int
	for i := 0; i < len(src); i++ {
		c := src[i]
		if !util.IsBrainfuckOp(c) {
			continue
		}
		ins := Instruction{Op: Op(c), Pos: i}
		switch ins.Op {
		case OpLoopOpen:
			opened = append(opened, len(program))
		case OpLoopClose:
			if len(opened) == 0 {
				return nil, fmt.Errorf("%w: unexpected ] at offset %d", ErrUnbalancedBrackets, i)
			}
			open := opened[len(opened)-1]
			opened = opened[:len(opened)-1]
			program[open].Jump = len(program)
			ins.Jump = open
		}
		program = append(program, ins)
	}
	if len(opened) != 0 {
		return nil, fmt.Errorf("%w: unclosed [ at offset %d", ErrUnbalancedBrackets, program[opened[len(opened)-1]].Pos)
	}
	return program, nil
}
