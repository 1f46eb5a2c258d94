package internal

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	EmptyLine ErrorKind = iota
	MissingCommand
	UnknownCommand
	MissingArgument
	InvalidPrefix
	InvalidNumber
	InvalidCharacter
	Underflow
	UnexpectedToken
	Overflow
)

var errorKindNames = map[ErrorKind]string{
	EmptyLine:        "EmptyLine",
	MissingCommand:   "MissingCommand",
	UnknownCommand:   "UnknownCommand",
	MissingArgument:  "MissingArgument",
	InvalidPrefix:    "InvalidPrefix",
	InvalidNumber:    "InvalidNumber",
	InvalidCharacter: "InvalidCharacter",
	Underflow:        "Underflow",
	UnexpectedToken:  "UnexpectedToken",
	Overflow:         "Overflow",
}

func (kind ErrorKind) String() string {
	name, exist := errorKindNames[kind]
	if !exist {
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
	return name
}

// SyntaxError is returned for a line that was rejected. Nothing is emitted for
// a rejected line.
type SyntaxError struct {
	Kind ErrorKind
	// Near is the offending token, empty when there is none.
	Near string
	Msg  string
}

func (err *SyntaxError) Error() string {
	if err.Near == "" {
		return fmt.Sprintf("SyntaxError: %s", err.Msg)
	}
	return fmt.Sprintf("SyntaxError: %s near %q", err.Msg, err.Near)
}

func makeError(kind ErrorKind, near string, msg string) error {
	return &SyntaxError{Kind: kind, Near: near, Msg: msg}
}

// IsKind reports whether err is, or wraps, a SyntaxError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		return false
	}
	return syntaxErr.Kind == kind
}

// LineError attaches the source position to a rejected line.
type LineError struct {
	File string
	// Line is 1-based.
	Line int
	Err  error
}

func (err *LineError) Error() string {
	if err.File == "" {
		return fmt.Sprintf("line %d: %v", err.Line, err.Err)
	}
	return fmt.Sprintf("%s:%d: %v", err.File, err.Line, err.Err)
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// LineErrors collects every rejected line of a best-effort translation.
type LineErrors []*LineError

func (errs LineErrors) Error() string {
	bf := strings.Builder{}
	bf.WriteString(fmt.Sprintf("%d line(s) failed to translate", len(errs)))
	for _, err := range errs {
		bf.WriteString("\n\t")
		bf.WriteString(err.Error())
	}
	return bf.String()
}

// Unwrap lets errors.Is and errors.As look at every collected line.
func (errs LineErrors) Unwrap() []error {
	ret := make([]error, 0, len(errs))
	for _, err := range errs {
		ret = append(ret, err)
	}
	return ret
}
