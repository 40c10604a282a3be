// Package main is the entry point for tfinfra.
package main

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/devantler-tech/tfinfra/internal/buildmeta"
	"github.com/devantler-tech/tfinfra/pkg/cli/cmd"
	"github.com/devantler-tech/tfinfra/pkg/utils/notify"
)

func main() {
	os.Exit(runSafely(os.Args[1:], func(args []string) int {
		return run(args, os.Stdout, os.Stderr)
	}, os.Stderr))
}

// runSafely turns a panic in runner into an error line and exit code 1.
//
//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "panic recovered: %v\n%s", r, debug.Stack())

			exitCode = 1
		}
	}()

	return runner(args)
}

// run executes one command. Every failure ends up as a single error line on errOut.
func run(args []string, out, errOut io.Writer) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := cmd.Execute(rootCmd)
	if err != nil {
		notify.Errorf(errOut, "%v", err)

		return 1
	}

	return 0
}
