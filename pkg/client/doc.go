// Package client provides wrappers around the external tools tfinfra drives.
//
//   - terraform: runs the terraform binary per cloud configuration and decodes its outputs
package client
