package internal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xiaobogaga/lbf/util"
)

// A lbf source file is a sequence of lines, one command per line:
//
// move :n|+n|-n   moves the cursor to cell n, n cells right or n cells left.
// store :n|+n|-n  sets the current cell to n, adds n to it or subtracts n from it.
// storec c        sets the current cell to the byte value of c, `<space>` stands for ' '.
// storestr text   stores text into consecutive cells, the cursor ends after the last byte.
// put             prints the current cell.
// putw n|*        prints n cells moving right, or prints until a zero cell.
// >               moves the cursor one cell right.
//
// A line ending with `!` moves the cursor one cell right after its command ran.

type KeyWordTP int

const (
	MoveKeyWordTP KeyWordTP = iota
	StoreKeyWordTP
	StoreCharKeyWordTP
	StoreStringKeyWordTP
	PutKeyWordTP
	PutWideKeyWordTP
	AdvanceKeyWordTP
)

var keyWordsMap = map[string]KeyWordTP{
	"move":     MoveKeyWordTP,
	"store":    StoreKeyWordTP,
	"storec":   StoreCharKeyWordTP,
	"storestr": StoreStringKeyWordTP,
	"put":      PutKeyWordTP,
	"putw":     PutWideKeyWordTP,
	">":        AdvanceKeyWordTP,
}

const (
	sugarMarker  = '!'
	spaceLiteral = "<space>"
	untilNull    = "*"
)

// NumberMode is selected by the prefix of a numeric argument.
type NumberMode int

const (
	// Exact is the `:` prefix.
	Exact NumberMode = iota
	// Increase is the `+` prefix.
	Increase
	// Decrease is the `-` prefix.
	Decrease
)

var numberPrefixes = map[byte]NumberMode{
	':': Exact,
	'+': Increase,
	'-': Decrease,
}

func (mode NumberMode) String() string {
	switch mode {
	case Exact:
		return ":"
	case Increase:
		return "+"
	case Decrease:
		return "-"
	}
	return fmt.Sprintf("NumberMode(%d)", int(mode))
}

// Command is one parsed source line. The set of implementations is closed, see
// the type switch in Interpreter.apply.
type Command interface {
	fmt.Stringer
	command()
}

type MoveCommand struct {
	Mode   NumberMode
	Amount int
}

type StoreCommand struct {
	Mode  NumberMode
	Value int
}

type StoreCharCommand struct {
	Char byte
}

type StoreStringCommand struct {
	Text []byte
}

type PutCommand struct{}

// PutWideCommand prints Count cells, or every cell up to a zero one when UntilNull is set.
type PutWideCommand struct {
	Count     int
	UntilNull bool
}

type AdvanceCommand struct{}

func (MoveCommand) command()        {}
func (StoreCommand) command()       {}
func (StoreCharCommand) command()   {}
func (StoreStringCommand) command() {}
func (PutCommand) command()         {}
func (PutWideCommand) command()     {}
func (AdvanceCommand) command()     {}

func (c MoveCommand) String() string  { return fmt.Sprintf("move %s%d", c.Mode, c.Amount) }
func (c StoreCommand) String() string { return fmt.Sprintf("store %s%d", c.Mode, c.Value) }
func (c StoreCharCommand) String() string {
	if c.Char == ' ' {
		return "storec " + spaceLiteral
	}
	return fmt.Sprintf("storec %c", c.Char)
}
func (c StoreStringCommand) String() string { return fmt.Sprintf("storestr %s", c.Text) }
func (PutCommand) String() string           { return "put" }
func (c PutWideCommand) String() string {
	if c.UntilNull {
		return "putw " + untilNull
	}
	return fmt.Sprintf("putw %d", c.Count)
}
func (AdvanceCommand) String() string { return ">" }

// hasSugarMarker checks the raw line, not the trimmed one: trailing spaces after
// the marker disable it.
func hasSugarMarker(line string) bool {
	return len(line) > 0 && line[len(line)-1] == sugarMarker
}

// tokenize splits the trimmed line on whitespace. When the raw line carries the
// sugar marker it is removed from the last token, which may leave that token empty.
func tokenize(line string) ([]string, error) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) == 0 {
		return nil, makeError(EmptyLine, "", "line empty")
	}
	tokens := strings.Fields(trimmed)
	if hasSugarMarker(line) {
		last := len(tokens) - 1
		tokens[last] = tokens[last][:len(tokens[last])-1]
	}
	return tokens, nil
}

// ParseCommand validates one source line and returns the command it holds. It
// never looks at emitter state; cursor dependent checks happen when the command
// is applied.
func ParseCommand(line string) (Command, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	token := tokens[0]
	if len(token) == 0 {
		return nil, makeError(MissingCommand, "", "no command")
	}
	keyWordTP, exist := keyWordsMap[token]
	if !exist {
		return nil, makeError(UnknownCommand, token, "unknown command")
	}
	args := tokens[1:]
	var cmd Command
	switch keyWordTP {
	case MoveKeyWordTP:
		cmd, args, err = parseMove(args)
	case StoreKeyWordTP:
		cmd, args, err = parseStore(args)
	case StoreCharKeyWordTP:
		cmd, args, err = parseStoreChar(args)
	case StoreStringKeyWordTP:
		cmd, args, err = parseStoreString(args)
	case PutKeyWordTP:
		cmd = PutCommand{}
	case PutWideKeyWordTP:
		cmd, args, err = parsePutWide(args)
	case AdvanceKeyWordTP:
		cmd = AdvanceCommand{}
	default:
		err = makeError(UnknownCommand, token, "unknown command")
	}
	if err != nil {
		return nil, err
	}
	err = parseRemainTokens(args)
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseMove(args []string) (Command, []string, error) {
	if len(args) == 0 {
		return nil, nil, makeError(MissingArgument, "", "missing argument (cell to move to)")
	}
	mode, amount, err := parsePrefixedNumber(args[0])
	if err != nil {
		return nil, nil, err
	}
	return MoveCommand{Mode: mode, Amount: amount}, args[1:], nil
}

func parseStore(args []string) (Command, []string, error) {
	if len(args) == 0 {
		return nil, nil, makeError(MissingArgument, "", "missing argument (value to store)")
	}
	mode, value, err := parsePrefixedNumber(args[0])
	if err != nil {
		return nil, nil, err
	}
	return StoreCommand{Mode: mode, Value: value}, args[1:], nil
}

func parseStoreChar(args []string) (Command, []string, error) {
	if len(args) == 0 {
		return nil, nil, makeError(MissingArgument, "", "missing argument (character to store)")
	}
	c, err := parseChar(args[0])
	if err != nil {
		return nil, nil, err
	}
	return StoreCharCommand{Char: c}, args[1:], nil
}

// parseStoreString takes every remaining token, joined by single spaces.
func parseStoreString(args []string) (Command, []string, error) {
	if len(args) > 0 && len(args[len(args)-1]) == 0 {
		args = args[:len(args)-1]
	}
	text := strings.Join(args, " ")
	if len(text) == 0 {
		return nil, nil, makeError(MissingArgument, "", "missing argument (text to store)")
	}
	return StoreStringCommand{Text: []byte(text)}, nil, nil
}

func parsePutWide(args []string) (Command, []string, error) {
	if len(args) == 0 {
		return nil, nil, makeError(MissingArgument, "", "missing argument (cell count or *)")
	}
	if args[0] == untilNull {
		return PutWideCommand{UntilNull: true}, args[1:], nil
	}
	count, err := parseNumber(args[0], args[0])
	if err != nil {
		return nil, nil, err
	}
	return PutWideCommand{Count: count}, args[1:], nil
}

// parsePrefixedNumber checks the prefix before the digits, so `5` is an invalid
// prefix rather than an invalid number.
func parsePrefixedNumber(token string) (NumberMode, int, error) {
	if len(token) == 0 {
		return 0, 0, makeError(InvalidPrefix, token, "invalid number prefix, expect one of :, +, -")
	}
	mode, exist := numberPrefixes[token[0]]
	if !exist {
		return 0, 0, makeError(InvalidPrefix, token, "invalid number prefix, expect one of :, +, -")
	}
	value, err := parseNumber(token[1:], token)
	if err != nil {
		return 0, 0, err
	}
	return mode, value, nil
}

// MaxCount bounds every numeric argument. Each unit becomes at least one emitted
// instruction, so one line can never grow the output by more than this.
const MaxCount = 1 << 24

func parseNumber(digits string, near string) (int, error) {
	if !util.IsDigits(digits) {
		return 0, makeError(InvalidNumber, near, "invalid number")
	}
	value, err := strconv.Atoi(digits)
	if err != nil || value > MaxCount {
		return 0, makeError(InvalidNumber, near, fmt.Sprintf("number out of range, max %d", MaxCount))
	}
	return value, nil
}

func parseChar(token string) (byte, error) {
	if token == spaceLiteral {
		return ' ', nil
	}
	if len(token) == 0 {
		return 0, makeError(InvalidCharacter, token, "empty character")
	}
	r, size := utf8.DecodeRuneInString(token)
	if size != len(token) {
		return 0, makeError(InvalidCharacter, token, "expect a single character")
	}
	if r == utf8.RuneError || r > 0xFF {
		return 0, makeError(InvalidCharacter, token, "character does not fit in a cell")
	}
	return byte(r), nil
}

// parseRemainTokens rejects anything left on the line after the command's arguments.
// An empty token only remains when the sugar marker stood on its own.
func parseRemainTokens(args []string) error {
	for _, arg := range args {
		if len(arg) != 0 {
			return makeError(UnexpectedToken, arg, "unexpected token")
		}
	}
	return nil
}
