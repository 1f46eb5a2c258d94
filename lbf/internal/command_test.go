package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	testData := []struct {
		line     string
		expected Command
	}{
		{line: "move :5", expected: MoveCommand{Mode: Exact, Amount: 5}},
		{line: "move +12", expected: MoveCommand{Mode: Increase, Amount: 12}},
		{line: "  move\t-3  ", expected: MoveCommand{Mode: Decrease, Amount: 3}},
		{line: "move :5!", expected: MoveCommand{Mode: Exact, Amount: 5}},
		{line: "store :10", expected: StoreCommand{Mode: Exact, Value: 10}},
		{line: "store +0", expected: StoreCommand{Mode: Increase, Value: 0}},
		{line: "store -7 !", expected: StoreCommand{Mode: Decrease, Value: 7}},
		{line: "storec h!", expected: StoreCharCommand{Char: 'h'}},
		{line: "storec h", expected: StoreCharCommand{Char: 'h'}},
		{line: "storec <space>!", expected: StoreCharCommand{Char: ' '}},
		{line: "storec !!", expected: StoreCharCommand{Char: '!'}},
		{line: "storec é", expected: StoreCharCommand{Char: 0xE9}},
		{line: "storestr hello  world", expected: StoreStringCommand{Text: []byte("hello world")}},
		{line: "storestr hi !", expected: StoreStringCommand{Text: []byte("hi")}},
		{line: "put", expected: PutCommand{}},
		{line: "put!", expected: PutCommand{}},
		{line: "putw 3", expected: PutWideCommand{Count: 3}},
		{line: "move :16777216", expected: MoveCommand{Mode: Exact, Amount: MaxCount}},
		{line: "putw *", expected: PutWideCommand{UntilNull: true}},
		{line: ">", expected: AdvanceCommand{}},
		{line: ">!", expected: AdvanceCommand{}},
	}
	for _, data := range testData {
		cmd, err := ParseCommand(data.line)
		assert.Nil(t, err, data.line)
		assert.Equal(t, data.expected, cmd, data.line)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	testData := []struct {
		line string
		kind ErrorKind
	}{
		{line: "", kind: EmptyLine},
		{line: " \t ", kind: EmptyLine},
		{line: "!", kind: MissingCommand},
		{line: "banana", kind: UnknownCommand},
		{line: "MOVE :1", kind: UnknownCommand},
		{line: "move", kind: MissingArgument},
		{line: "store", kind: MissingArgument},
		{line: "storec", kind: MissingArgument},
		{line: "storestr", kind: MissingArgument},
		{line: "storestr !", kind: MissingArgument},
		{line: "putw", kind: MissingArgument},
		{line: "move 5", kind: InvalidPrefix},
		{line: "store x5", kind: InvalidPrefix},
		{line: "move !", kind: InvalidPrefix},
		{line: "move :", kind: InvalidNumber},
		{line: "move :abc", kind: InvalidNumber},
		{line: "store +-1", kind: InvalidNumber},
		{line: "store :5! ", kind: InvalidNumber},
		{line: "store :99999999999999999999999", kind: InvalidNumber},
		{line: "putw -1", kind: InvalidNumber},
		{line: "move :16777217", kind: InvalidNumber},
		{line: "store +999999999999", kind: InvalidNumber},
		{line: "putw 999999999999", kind: InvalidNumber},
		{line: "putw many", kind: InvalidNumber},
		{line: "storec !", kind: InvalidCharacter},
		{line: "storec ab", kind: InvalidCharacter},
		{line: "storec 好", kind: InvalidCharacter},
		{line: "put 1", kind: UnexpectedToken},
		{line: "move :1 :2", kind: UnexpectedToken},
		{line: "> >", kind: UnexpectedToken},
	}
	for _, data := range testData {
		cmd, err := ParseCommand(data.line)
		assert.Nil(t, cmd, data.line)
		assert.True(t, IsKind(err, data.kind), "%q: expect %s, got %v", data.line, data.kind, err)
	}
}

func TestCommand_String(t *testing.T) {
	testData := []string{"move :5", "move -2", "store +3", "storec h", "storec <space>", "storestr hi there",
		"put", "putw 4", "putw *", ">"}
	for _, line := range testData {
		cmd, err := ParseCommand(line)
		assert.Nil(t, err)
		assert.Equal(t, line, cmd.String())
	}
}

func TestSyntaxError_Error(t *testing.T) {
	_, err := ParseCommand("banana")
	assert.Equal(t, `SyntaxError: unknown command near "banana"`, err.Error())
	_, err = ParseCommand("")
	assert.Equal(t, "SyntaxError: line empty", err.Error())
}
