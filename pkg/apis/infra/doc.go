// Package infra groups the versioned infrastructure API types.
//
//   - v1alpha1: current version of the parameters and descriptor formats
package infra
