// Package logging builds the leveled logger shared by all components of one invocation.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New creates a text logger writing to writer (stderr when nil) at the named level.
// Colors are only used when writer is a terminal.
func New(writer io.Writer, level string) (*logrus.Logger, error) {
	if writer == nil {
		writer = os.Stderr
	}

	if level == "" {
		level = DefaultLevel
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(writer)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    !isTerminal(writer),
		QuoteEmptyFields: true,
	})

	return logger, nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}
