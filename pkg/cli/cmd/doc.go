// Package cmd provides the command-line interface for tfinfra.
//
// The root command carries the settings flags and one subcommand per protocol command:
//   - discover: print the command manifest
//   - plan, apply, destroy, graph: run terraform for the detected cloud
//   - output: print the cluster descriptor from the current state
package cmd
