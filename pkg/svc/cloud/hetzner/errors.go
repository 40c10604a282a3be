package hetzner

import "errors"

// ErrMissingClusterName is returned when servers cannot be selected without a cluster name.
var ErrMissingClusterName = errors.New("general.cluster.name is required to list hetzner servers")
