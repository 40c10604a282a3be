package v1alpha1

// Top-level sections of the parameters document.
const (
	SectionGeneral   = "general"
	SectionCustom    = "custom"
	SectionInventory = "inventory"
)

// Keys of general.cluster.kubernetes stamped by the cloud plugins.
const (
	KeyMasterAPIURL         = "masterApiUrl"
	KeyMasterAPIURLExternal = "masterApiUrlExternal"
	KeyMasterSAN            = "masterSan"
	KeyCloudProvider        = "cloudProvider"
)

// RedactedValue replaces secret custom parameters in the cluster descriptor.
const RedactedValue = "-removed-"

// Machine roles used by the cloud plugins that do not read roles from the machine groups.
const (
	RoleMaster  = "master"
	RoleWorker  = "worker"
	RoleBastion = "bastion"
)

// General is the cluster-wide section of the parameters document.
type General struct {
	Authentication Authentication `mapstructure:"authentication"`
	Cluster        Cluster        `mapstructure:"cluster"`
}

// Authentication holds the credentials used to reach the provisioned machines.
type Authentication struct {
	SSH SSH `mapstructure:"ssh"`
}

// SSH is the key pair installed on every machine.
type SSH struct {
	User       string `mapstructure:"user"`
	PrivateKey string `mapstructure:"privateKey"`
	PubKey     string `mapstructure:"pubKey"`
}

// Cluster describes the cluster name, its machine groups and the kubernetes block
// that is carried through to the descriptor.
type Cluster struct {
	Name       string                  `mapstructure:"name"`
	Kubernetes map[string]any          `mapstructure:"kubernetes"`
	Machines   map[string]MachineGroup `mapstructure:"machines"`
}

// MachineGroup is the desired shape of one group of machines, e.g. "master" or "worker".
type MachineGroup struct {
	Count        int      `mapstructure:"count"`
	Cores        int      `mapstructure:"cores"`
	Memory       int      `mapstructure:"memory"`
	InstanceType string   `mapstructure:"instanceType"`
	Roles        []string `mapstructure:"roles"`
}

// MachineRecord is one provisioned machine in the inventory.
type MachineRecord struct {
	Name      string   `json:"name"                yaml:"name"`
	PublicIP  string   `json:"publicIP,omitempty"  yaml:"publicIP,omitempty"`
	PrivateIP string   `json:"privateIP,omitempty" yaml:"privateIP,omitempty"`
	Roles     []string `json:"roles"               yaml:"roles"`
}

// Variables is the flat variable set consumed by terraform. Values are strings,
// integers or string lists.
type Variables map[string]any

// Merge copies every entry of other into v, overwriting existing keys.
func (v Variables) Merge(other Variables) {
	for key, value := range other {
		v[key] = value
	}
}
