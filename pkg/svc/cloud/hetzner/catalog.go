package hetzner

import (
	"github.com/devantler-tech/tfinfra/pkg/svc/cloud"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Name is the variant name and custom parameter prefix.
const Name = "hetzner"

// ProviderTag is written to the descriptor as the cloud provider.
const ProviderTag = "hcloud"

// Catalog lists the network zones, used as regions, and the server types.
var Catalog = cloud.Catalog{
	Name:         Name,
	RequiredKeys: []string{"token"},
	SecretKeys:   []string{"token"},
	InstanceTypes: []string{
		"cx22", "cx32", "cx42", "cx52",
		"cpx11", "cpx21", "cpx31", "cpx41", "cpx51",
		"cax11", "cax21", "cax31", "cax41",
		"ccx13", "ccx23", "ccx33", "ccx43", "ccx53", "ccx63",
	},
	DefaultInstanceType: "cx22",
	Regions: []string{
		string(hcloud.NetworkZoneEUCentral),
		string(hcloud.NetworkZoneUSEast),
		string(hcloud.NetworkZoneUSWest),
		string(hcloud.NetworkZoneAPSouthEast),
	},
	DefaultRegion: string(hcloud.NetworkZoneEUCentral),
}

// OutputMasterLBIPv4 is the load balancer address in front of the masters.
const OutputMasterLBIPv4 = "master_lb_ipv4"
