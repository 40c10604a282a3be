package cloud

import "errors"

var (
	// ErrNoBackendDetected is returned when no variant finds all its required parameters.
	ErrNoBackendDetected = errors.New("no cloud detected")

	// ErrInvalidRegion is returned when the region parameter is not in the catalog.
	ErrInvalidRegion = errors.New("wrong region")

	// ErrInvalidZone is returned when a requested zone is not available.
	ErrInvalidZone = errors.New("wrong zone")

	// ErrMissingParameter is returned when a custom parameter a variant relies on is absent.
	ErrMissingParameter = errors.New("missing custom parameter")
)
