package main

import (
	"context"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiaobogaga/lbf/bfvm"
	"github.com/xiaobogaga/lbf/lbf/internal"
)

var maxSteps int

var runCmd = &cobra.Command{
	Use:   "run program",
	Short: "Run a .lbf or .bf program on the builtin brainfuck machine",
	Long: `Run executes a program on a 30000 cell tape of wrapping bytes, growing to
the right when needed. A .lbf file is translated first, any other file is
read as brainfuck.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadProgram(args[0])
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		_, err = bfvm.Run(ctx, src, os.Stdin, os.Stdout, bfvm.WithMaxSteps(maxSteps))
		if err != nil {
			logf("failed to run program: %s, err: %v", args[0], err)
		}
		return err
	},
}

func init() {
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions, 0 means no limit")
	runCmd.Flags().BoolVar(&strict, "strict", false, "stop at the first line that fails to translate")
}

func loadProgram(path string) (string, error) {
	if strings.HasSuffix(path, internal.SourceSuffix) {
		session, err := translate(path)
		if err != nil {
			return "", err
		}
		return session.Output(), nil
	}
	content, err := ioutil.ReadFile(path)
	if err != nil {
		logf("failed to read program: %s, err: %v", path, err)
		return "", err
	}
	return string(content), nil
}
