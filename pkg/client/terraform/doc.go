// Package terraform is the process boundary to the terraform binary: it runs life-cycle
// subcommands in a per-cloud working directory, renders the variables file and decodes
// the JSON output query.
package terraform
