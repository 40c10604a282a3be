package hetzner

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Inventory lists the servers labelled with the cluster name, sorted by role and
// then by server name. Servers without a role label are skipped.
func (p *Plugin) Inventory(ctx context.Context) ([]v1alpha1.MachineRecord, error) {
	clusterName := p.Parameters().General.Cluster.Name
	if clusterName == "" {
		return nil, ErrMissingClusterName
	}

	clients, err := p.apiClients()
	if err != nil {
		return nil, err
	}

	servers, err := clients.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
		ListOpts: hcloud.ListOpts{LabelSelector: ClusterSelector(clusterName)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	inventory := make([]v1alpha1.MachineRecord, 0, len(servers))

	for _, server := range servers {
		role := server.Labels[LabelNodeRole]
		if role == "" {
			p.logger.Debugf("server '%s' has no %s label, skipping", server.Name, LabelNodeRole)

			continue
		}

		inventory = append(inventory, v1alpha1.MachineRecord{
			Name:      server.Name,
			PublicIP:  publicIP(server),
			PrivateIP: privateIP(server),
			Roles:     []string{role},
		})
	}

	slices.SortFunc(inventory, func(a, b v1alpha1.MachineRecord) int {
		return cmp.Or(cmp.Compare(a.Roles[0], b.Roles[0]), cmp.Compare(a.Name, b.Name))
	})

	return inventory, nil
}

func publicIP(server *hcloud.Server) string {
	if server.PublicNet.IPv4.IP == nil {
		return ""
	}

	return server.PublicNet.IPv4.IP.String()
}

func privateIP(server *hcloud.Server) string {
	if len(server.PrivateNet) == 0 || server.PrivateNet[0].IP == nil {
		return ""
	}

	return server.PrivateNet[0].IP.String()
}

func hasRole(record v1alpha1.MachineRecord, role string) bool {
	return slices.Contains(record.Roles, role)
}
