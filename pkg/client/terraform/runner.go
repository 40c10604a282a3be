package terraform

import (
	"context"
	"io"
	"os/exec"
)

// Command is one process invocation.
type Command struct {
	Dir    string
	Name   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes commands and blocks until they exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run starts the command and waits for it. A non-zero exit is returned as *exec.ExitError.
func (ExecRunner) Run(ctx context.Context, cmd Command) error {
	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.Dir
	proc.Stdout = cmd.Stdout
	proc.Stderr = cmd.Stderr

	return proc.Run() //nolint:wrapcheck // wrapped by the client with the subcommand
}
