package internal

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Translate(t *testing.T) {
	contents := `
// print "ok" and a newline
storec o!
storec k!

store :10
move :0
putw 3`
	session := NewSession(WithStrict(true))
	err := session.Translate(strings.NewReader(contents))
	assert.Nil(t, err)
	assert.Equal(t, 3, session.Cursor())
	_, out := runEmitted(t, session.interpreter.Emitter())
	assert.Equal(t, "ok\n", out)
}

func TestSession_CRLF(t *testing.T) {
	session := NewSession(WithStrict(true))
	err := session.Translate(strings.NewReader("storec a!\r\nput\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, 1, session.Cursor())
}

func TestSession_StrictStopsAtFirstError(t *testing.T) {
	contents := "move :1\n\nbanana\nmove :5\n"
	session := NewSession(WithStrict(true), WithFileName("prog.lbf"))
	err := session.Translate(strings.NewReader(contents))
	require.NotNil(t, err)
	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 3, lineErr.Line)
	assert.True(t, IsKind(err, UnknownCommand))
	assert.Equal(t, `prog.lbf:3: SyntaxError: unknown command near "banana"`, err.Error())
	assert.Equal(t, 1, session.Cursor())
}

func TestSession_BestEffortCollectsErrors(t *testing.T) {
	contents := "move :1\nmove 2\nmove +1\nstorec ab\nput"
	logs := &bytes.Buffer{}
	session := NewSession(WithLogger(logs))
	err := session.Translate(strings.NewReader(contents))
	require.NotNil(t, err)
	var lineErrs LineErrors
	require.True(t, errors.As(err, &lineErrs))
	require.Len(t, lineErrs, 2)
	assert.Equal(t, 2, lineErrs[0].Line)
	assert.True(t, IsKind(lineErrs[0], InvalidPrefix))
	assert.Equal(t, 4, lineErrs[1].Line)
	assert.True(t, IsKind(lineErrs[1], InvalidCharacter))
	assert.True(t, IsKind(err, InvalidPrefix))
	assert.Equal(t, ">>.", session.Output())
	assert.Equal(t, 2, strings.Count(logs.String(), "[Translator]: skip line"))
}

func TestSession_Files(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.lbf")
	require.Nil(t, ioutil.WriteFile(input, []byte("move :2\nstore +3\n"), 0666))
	session := NewSession(WithStrict(true))
	require.Nil(t, session.TranslateFile(input))
	output := OutputPath(input)
	assert.Equal(t, filepath.Join(dir, "prog.bf"), output)
	require.Nil(t, session.SaveTo(output))
	content, err := ioutil.ReadFile(output)
	require.Nil(t, err)
	assert.Equal(t, ">>+++", string(content))

	buf := &bytes.Buffer{}
	n, err := session.WriteTo(buf)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, ">>+++", buf.String())

	err = NewSession().TranslateFile(filepath.Join(dir, "missing.lbf"))
	assert.NotNil(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "a/prog.bf", OutputPath("a/prog.lbf"))
	assert.Equal(t, "prog.txt.bf", OutputPath("prog.txt"))
}
