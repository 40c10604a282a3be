package digitalocean

import "errors"

// ErrMissingRoles is returned when a machine group declares no roles.
var ErrMissingRoles = errors.New("machine group has no roles")
