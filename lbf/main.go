package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// lbf translates line based brainfuck sources (.lbf) to brainfuck (.bf), and can run
// the result on a builtin brainfuck machine.

var rootCmd = &cobra.Command{
	Use:   "lbf",
	Short: "Translate line based brainfuck to brainfuck",
	Long: `lbf reads a .lbf source file, one command per line, and writes the
equivalent brainfuck program. Commands:

  move :n|+n|-n    move the cursor to cell n, n cells right or n cells left
  store :n|+n|-n   set, increase or decrease the current cell
  storec c         set the current cell to a character, <space> for ' '
  storestr text    store text in consecutive cells
  put              print the current cell
  putw n|*         print n cells, or print until a zero cell
  >                move the cursor one cell right

A line ending with ! also moves the cursor one cell right after its command.
Lines starting with // are comments.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[Translator]: "+format+"\n", args...)
}
