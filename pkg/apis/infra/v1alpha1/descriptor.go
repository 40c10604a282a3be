package v1alpha1

// ClusterDescriptor is the result document: a deep copy of the parameters document
// extended with the inventory, the cluster API endpoints and the provider tag.
type ClusterDescriptor map[string]any

// NewClusterDescriptor wraps a parameters tree. The tree must not be shared with
// the parameters it was copied from.
func NewClusterDescriptor(tree map[string]any) ClusterDescriptor {
	if tree == nil {
		tree = map[string]any{}
	}

	return ClusterDescriptor(tree)
}

// Kubernetes returns general.cluster.kubernetes, creating missing levels.
func (d ClusterDescriptor) Kubernetes() map[string]any {
	return nested(d, SectionGeneral, "cluster", "kubernetes")
}

// Custom returns the custom section, creating it when missing.
func (d ClusterDescriptor) Custom() map[string]any {
	return nested(d, SectionCustom)
}

// SetInventory replaces the inventory.
func (d ClusterDescriptor) SetInventory(records []MachineRecord) {
	d[SectionInventory] = records
}

// Inventory returns the inventory set by SetInventory, or nil.
func (d ClusterDescriptor) Inventory() []MachineRecord {
	records, _ := d[SectionInventory].([]MachineRecord)

	return records
}

func nested(root map[string]any, keys ...string) map[string]any {
	current := root

	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}

		current = next
	}

	return current
}
