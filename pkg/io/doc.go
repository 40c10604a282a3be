// Package io provides the configuration and document I/O of tfinfra.
//
// Subpackages:
//   - configmanager: settings from flags, environment and tfinfra.yaml
//   - marshaller: typed serialization helpers
//   - parameters: the memoized parameters document
//
// For low-level file writes and path resolution, see the fsutil package.
package io
