package internal

import (
	"fmt"
	"math"
)

// Interpreter translates lbf source lines into brainfuck through an Emitter. It holds
// no state of its own between lines; the cursor lives in the Emitter, which is shared
// by every ParseLine call of one translation.
type Interpreter struct {
	emitter *Emitter
}

func NewInterpreter(emitter *Emitter) *Interpreter {
	return &Interpreter{emitter: emitter}
}

func (interpreter *Interpreter) Emitter() *Emitter {
	return interpreter.emitter
}

// ParseLine translates one source line. A rejected line leaves the emitter exactly
// as it was, including the sugar advance.
func (interpreter *Interpreter) ParseLine(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	err = interpreter.apply(cmd)
	if err != nil {
		return err
	}
	if hasSugarMarker(line) {
		interpreter.emitter.MoveTo(interpreter.emitter.Cursor() + 1)
	}
	return nil
}

// Output returns the brainfuck program translated so far.
func (interpreter *Interpreter) Output() string {
	return interpreter.emitter.Output()
}

func (interpreter *Interpreter) apply(cmd Command) error {
	emitter := interpreter.emitter
	switch c := cmd.(type) {
	case MoveCommand:
		target, err := interpreter.moveTarget(c)
		if err != nil {
			return err
		}
		emitter.MoveTo(target)
	case StoreCommand:
		// Subtracting past zero is left to the target machine, the cell value is not
		// known while translating.
		switch c.Mode {
		case Exact:
			emitter.StoreExact(c.Value)
		case Increase:
			emitter.StoreAdd(c.Value)
		case Decrease:
			emitter.StoreSub(c.Value)
		}
	case StoreCharCommand:
		emitter.StoreChar(c.Char)
	case StoreStringCommand:
		emitter.StoreBytes(c.Text)
	case PutCommand:
		emitter.Put()
	case PutWideCommand:
		if c.UntilNull {
			emitter.PutUntilNull()
		} else {
			emitter.PutMultiple(c.Count)
		}
	case AdvanceCommand:
		emitter.MoveTo(emitter.Cursor() + 1)
	default:
		return makeError(UnknownCommand, fmt.Sprintf("%v", cmd), "unsupported command")
	}
	return nil
}

func (interpreter *Interpreter) moveTarget(c MoveCommand) (int, error) {
	cursor := interpreter.emitter.Cursor()
	switch c.Mode {
	case Increase:
		if c.Amount > math.MaxInt-cursor {
			return 0, makeError(Overflow, c.String(),
				fmt.Sprintf("cannot move %d cells right of cell %d", c.Amount, cursor))
		}
		return cursor + c.Amount, nil
	case Decrease:
		if c.Amount > cursor {
			return 0, makeError(Underflow, c.String(),
				fmt.Sprintf("cannot move %d cells left of cell %d", c.Amount, cursor))
		}
		return cursor - c.Amount, nil
	default:
		return c.Amount, nil
	}
}
