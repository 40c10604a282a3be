// Package v1alpha1 defines the parameters document read from parameters.yaml, the flat
// variable set handed to terraform, the machine inventory, and the cluster descriptor
// written to output.yaml.
package v1alpha1
