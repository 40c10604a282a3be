package terraform

import "errors"

var (
	// ErrCommandFailed is returned when terraform exits non-zero.
	ErrCommandFailed = errors.New("terraform command failed")

	// ErrInvalidOutput is returned when the output query is not a key to {value,type,sensitive} mapping.
	ErrInvalidOutput = errors.New("invalid terraform output")

	// ErrOutputNotFound is returned when a required output key is missing.
	ErrOutputNotFound = errors.New("terraform output not found")

	// ErrUnexpectedOutputType is returned when an output value has the wrong type.
	ErrUnexpectedOutputType = errors.New("unexpected terraform output type")
)
