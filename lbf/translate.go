package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiaobogaga/lbf/lbf/internal"
)

var (
	outputPath string
	strict     bool
	verbose    bool
)

var translateCmd = &cobra.Command{
	Use:   "translate source.lbf",
	Short: "Translate a .lbf file to brainfuck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := outputPath
		if output == "" {
			output = internal.OutputPath(input)
		}
		start := time.Now()
		session, err := translate(input)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Println(session.Output())
		}
		err = session.SaveTo(output)
		if err != nil {
			logf("failed to save to path: %s, err: %v", output, err)
			return err
		}
		if verbose {
			logf("translated %s to %s in %v", input, output, time.Since(start))
		}
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "the saved path, defaults to the source path with a .bf suffix")
	translateCmd.Flags().BoolVar(&strict, "strict", false, "stop at the first line that fails to translate")
	translateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "whether print translate result")
}

// translate translates the file at input. In best-effort mode the session is returned
// with the lines that did translate; failed lines were already logged.
func translate(input string) (*internal.Session, error) {
	session := internal.NewSession(internal.WithStrict(strict))
	err := session.TranslateFile(input)
	if err == nil {
		return session, nil
	}
	if lineErrs, ok := err.(internal.LineErrors); ok && !strict {
		logf("skipped %d line(s) of %s", len(lineErrs), input)
		return session, nil
	}
	logf("failed to translate program: %s, err: %v", input, err)
	return nil, err
}
