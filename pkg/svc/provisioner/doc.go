// Package provisioner drives the terraform life-cycle of the selected cloud: every
// command regenerates the variables file first, apply also writes the cluster
// descriptor.
package provisioner
