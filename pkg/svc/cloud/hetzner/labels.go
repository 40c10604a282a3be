package hetzner

import "fmt"

// Labels the terraform configuration puts on every server.
const (
	// LabelClusterName is the cluster a server belongs to.
	LabelClusterName = "tfinfra.cluster.name"

	// LabelNodeRole is the machine group role of a server, e.g. "master".
	LabelNodeRole = "tfinfra.node.role"
)

// ClusterSelector returns the label selector matching the servers of a cluster.
func ClusterSelector(clusterName string) string {
	return fmt.Sprintf("%s=%s", LabelClusterName, clusterName)
}
