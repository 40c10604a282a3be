// Package fsutil provides the small filesystem helpers shared by the provisioner:
// absolute path resolution for the parameters/result files and directory-creating writes
// for the variables file and the cluster descriptor.
package fsutil
