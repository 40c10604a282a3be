package terraform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/devantler-tech/tfinfra/pkg/fsutil"
)

// Defaults for Options.
const (
	DefaultBinary    = "terraform"
	DefaultDir       = "terraform"
	DefaultStateFile = "../terraform.tfstate"
)

// Options configures a Client.
type Options struct {
	// Binary is the terraform executable.
	Binary string
	// Dir holds one terraform configuration directory per cloud.
	Dir string
	// StateFile is passed as -state, relative to the cloud directory.
	StateFile string
	// Stdout and Stderr receive the streamed output of life-cycle commands.
	Stdout io.Writer
	Stderr io.Writer
}

// Client runs terraform for one cloud configuration at a time.
type Client struct {
	binary    string
	dir       string
	stateFile string
	stdout    io.Writer
	stderr    io.Writer
	runner    Runner
}

// NewClient creates a client. Empty options fall back to the package defaults and
// a nil runner to ExecRunner.
func NewClient(opts Options, runner Runner) *Client {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}

	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}

	if opts.StateFile == "" {
		opts.StateFile = DefaultStateFile
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if runner == nil {
		runner = ExecRunner{}
	}

	return &Client{
		binary:    opts.Binary,
		dir:       opts.Dir,
		stateFile: opts.StateFile,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		runner:    runner,
	}
}

// WorkDir returns the configuration directory of the named cloud.
func (c *Client) WorkDir(cloud string) string {
	return filepath.Join(c.dir, cloud)
}

// WriteVars writes lines as the variables file of the named cloud and returns its path.
func (c *Client) WriteVars(cloud string, lines []string) (string, error) {
	path := filepath.Join(c.WorkDir(cloud), VarsFileName)

	err := fsutil.WriteFile(path, []byte(strings.Join(lines, "\n")))
	if err != nil {
		return "", fmt.Errorf("write %s: %w", VarsFileName, err)
	}

	return path, nil
}

// Run executes a life-cycle subcommand, e.g. "apply" or "destroy -force", streaming
// its output.
func (c *Client) Run(ctx context.Context, cloud string, subcommand ...string) error {
	err := c.runner.Run(ctx, Command{
		Dir:    c.WorkDir(cloud),
		Name:   c.binary,
		Args:   c.args(subcommand...),
		Stdout: c.stdout,
		Stderr: c.stderr,
	})
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrCommandFailed, c.binary, strings.Join(subcommand, " "), err)
	}

	return nil
}

// Output queries `terraform output -json` and decodes it. The captured stderr is part
// of the error when the query fails.
func (c *Client) Output(ctx context.Context, cloud string) (Outputs, error) {
	var stdout, stderr bytes.Buffer

	err := c.runner.Run(ctx, Command{
		Dir:    c.WorkDir(cloud),
		Name:   c.binary,
		Args:   c.args("output", "-json"),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return nil, fmt.Errorf(
			"%w: retrieving terraform output: %w: %s",
			ErrCommandFailed,
			err,
			strings.TrimSpace(stderr.String()),
		)
	}

	return ParseOutputs(stdout.Bytes())
}

func (c *Client) args(subcommand ...string) []string {
	args := make([]string, 0, len(subcommand)+1)
	args = append(args, subcommand...)

	return append(args, "-state="+c.stateFile)
}
