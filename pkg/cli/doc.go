// Package cli holds the command-line layer of tfinfra.
//
//   - cli/cmd: the cobra root command and the protocol subcommands
package cli
