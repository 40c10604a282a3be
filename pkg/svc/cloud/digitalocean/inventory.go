package digitalocean

import (
	"fmt"
	"slices"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
)

// Inventory decodes every machine group, in ascending group order, from its parallel
// hostname, private and public IP lists. Every group must declare at least one role.
func (p *Plugin) Inventory(outputs terraform.Outputs) ([]v1alpha1.MachineRecord, error) {
	params := p.Parameters()

	var inventory []v1alpha1.MachineRecord

	for _, name := range params.MachineGroupNames() {
		group := params.General.Cluster.Machines[name]
		if len(group.Roles) == 0 {
			return nil, fmt.Errorf("%w: '%s'", ErrMissingRoles, name)
		}

		records, err := p.groupRecords(outputs, name, group.Roles)
		if err != nil {
			return nil, err
		}

		inventory = append(inventory, records...)
	}

	return inventory, nil
}

// groupRecords pairs the i-th element of each list. Decoding stops at the first index
// missing from any list, so ragged lists are truncated to the shortest one.
func (p *Plugin) groupRecords(outputs terraform.Outputs, group string, roles []string) ([]v1alpha1.MachineRecord, error) {
	hostnames, err := outputs.List(group + "_" + suffixHostnames)
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the output
	}

	privateIPs, err := outputs.List(group + "_" + suffixPrivateIPs)
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the output
	}

	publicIPs, err := outputs.List(group + "_" + suffixPublicIPs)
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the output
	}

	count := min(len(hostnames), len(privateIPs), len(publicIPs))
	if count != len(hostnames) || count != len(privateIPs) || count != len(publicIPs) {
		p.logger.Debugf(
			"machine group '%s' has ragged outputs (%d hostnames, %d private, %d public), using %d",
			group, len(hostnames), len(privateIPs), len(publicIPs), count,
		)
	}

	records := make([]v1alpha1.MachineRecord, 0, count)

	for i := range count {
		records = append(records, v1alpha1.MachineRecord{
			Name:      hostnames[i],
			PublicIP:  publicIPs[i],
			PrivateIP: privateIPs[i],
			Roles:     slices.Clone(roles),
		})
	}

	return records, nil
}
