// Package notify prints the user-facing lines of the CLI: titles, progress, success
// and error messages, each prefixed with a coloured symbol.
package notify
