package internal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

const (
	SourceSuffix = ".lbf"
	TargetSuffix = ".bf"
)

// Session drives one translation: it feeds a source stream line by line into an
// Interpreter and decides what to do with rejected lines.
//
// In strict mode the first rejected line stops the translation. Otherwise each
// rejected line is logged and skipped, and Translate returns all of them at the end.
type Session struct {
	fileName    string
	lineCounter int
	strict      bool
	logger      io.Writer
	interpreter *Interpreter
}

type Option func(session *Session)

func WithStrict(strict bool) Option {
	return func(session *Session) {
		session.strict = strict
	}
}

// WithLogger sets where best-effort failures are reported, os.Stderr by default.
func WithLogger(w io.Writer) Option {
	return func(session *Session) {
		session.logger = w
	}
}

// WithFileName sets the name used in reported errors.
func WithFileName(name string) Option {
	return func(session *Session) {
		session.fileName = name
	}
}

func NewSession(opts ...Option) *Session {
	session := &Session{
		logger:      os.Stderr,
		interpreter: NewInterpreter(NewEmitter()),
	}
	for _, opt := range opts {
		opt(session)
	}
	return session
}

// TranslateFile translates the source file at path.
func (session *Session) TranslateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()
	if session.fileName == "" {
		session.fileName = filepath.Base(path)
	}
	return session.Translate(f)
}

// Translate reads rd to the end. Blank lines and lines starting with `//` are skipped
// but still counted, so reported line numbers match the source.
func (session *Session) Translate(rd io.Reader) error {
	reader := bufio.NewReader(rd)
	var failed LineErrors
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		session.lineCounter++
		lineErr := session.translateLine(line)
		if lineErr != nil {
			if session.strict {
				return lineErr
			}
			fmt.Fprintf(session.logger, "[Translator]: skip %v\n", lineErr)
			failed = append(failed, lineErr)
		}
		if err == io.EOF {
			break
		}
	}
	if len(failed) != 0 {
		return failed
	}
	return nil
}

func (session *Session) translateLine(line string) *LineError {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if isBlankOrComment(line) {
		return nil
	}
	err := session.interpreter.ParseLine(line)
	if err != nil {
		return &LineError{File: session.fileName, Line: session.lineCounter, Err: err}
	}
	return nil
}

func isBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) == 0 || strings.HasPrefix(trimmed, "//")
}

// Output returns the brainfuck program translated so far.
func (session *Session) Output() string {
	return session.interpreter.Output()
}

// Cursor returns the emitter's cursor.
func (session *Session) Cursor() int {
	return session.interpreter.Emitter().Cursor()
}

// WriteTo writes the translated program to w unchanged.
func (session *Session) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(session.interpreter.Emitter().Bytes()).WriteTo(w)
}

func (session *Session) SaveTo(path string) error {
	return ioutil.WriteFile(path, session.interpreter.Emitter().Bytes(), 0666)
}

// OutputPath derives the default target path from a source path: `prog.lbf`
// becomes `prog.bf`, any other name gets `.bf` appended.
func OutputPath(input string) string {
	if strings.HasSuffix(input, SourceSuffix) {
		return strings.TrimSuffix(input, SourceSuffix) + TargetSuffix
	}
	return input + TargetSuffix
}
