package fsutil

import "errors"

// ErrEmptyOutputPath is returned when a write is requested without a destination.
var ErrEmptyOutputPath = errors.New("output path cannot be empty")

// ErrEmptyPath is returned when a path to resolve is empty.
var ErrEmptyPath = errors.New("path cannot be empty")
