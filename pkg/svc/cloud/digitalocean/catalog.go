package digitalocean

import "github.com/devantler-tech/tfinfra/pkg/svc/cloud"

// Name is the variant name and custom parameter prefix.
const Name = "digitalocean"

// Catalog lists the supported regions and droplet sizes.
var Catalog = cloud.Catalog{
	Name:                Name,
	RequiredKeys:        []string{"token"},
	SecretKeys:          []string{"token"},
	InstanceTypes:       []string{"512mb", "1gb", "2gb", "4gb", "8gb", "16gb", "32gb", "48gb", "64gb"},
	DefaultInstanceType: "1gb",
	Regions: []string{
		"ams1", "ams2", "ams3",
		"blr1",
		"fra1",
		"lon1",
		"nyc1", "nyc2", "nyc3",
		"sfo1", "sfo2",
		"sgp1",
		"tor1",
	},
	DefaultRegion: "lon1",
}

// Terraform outputs read by the endpoints.
const (
	OutputMasterFloatingIP = "master_floating_ip"
	OutputMasterPublicIPs  = "master_public_ips"
)

// Per machine group outputs, named <group>_<suffix>.
const (
	suffixHostnames  = "hostnames"
	suffixPrivateIPs = "private_ips"
	suffixPublicIPs  = "public_ips"
)
