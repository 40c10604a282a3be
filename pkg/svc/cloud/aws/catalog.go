package aws

import "github.com/devantler-tech/tfinfra/pkg/svc/cloud"

// Name is the variant name and custom parameter prefix.
const Name = "aws"

// Catalog lists the supported regions and instance types.
var Catalog = cloud.Catalog{
	Name:                Name,
	RequiredKeys:        []string{"access_key", "secret_key"},
	SecretKeys:          []string{"secret_key"},
	DefaultInstanceType: "m3.medium",
	DefaultRegion:       "eu-west-1",
	Regions: []string{
		"us-east-1",
		"us-west-2",
		"us-west-1",
		"eu-west-1",
		"eu-central-1",
		"ap-southeast-1",
		"ap-northeast-1",
		"ap-southeast-2",
		"ap-northeast-2",
		"ap-south-1",
		"sa-east-1",
	},
	InstanceTypes: []string{
		"c1.medium", "c1xlarge",
		"c3.2xlarge", "c3.4xlarge", "c3.8xlarge", "c3.large", "c3.xlarge",
		"c4.2xlarge", "c4.4xlarge", "c4.8xlarge", "c4.large", "c4.xlarge",
		"cc2.8xlarge", "cg1.4xlarge", "cr1.8xlarge",
		"d2.2xlarge", "d2.4xlarge", "d2.8xlarge", "d2.xlarge",
		"g2.2xlarge", "g2.8xlarge",
		"hi1.4xlarge", "hs1.8xlarge",
		"i2.2xlarge", "i2.4xlarge", "i2.8xlarge", "i2.xlarge",
		"m1.large", "m1.medium", "m1.small", "m1.xlarge",
		"m2.2xlarge", "m2.4xlarge", "m2.xlarge",
		"m3.2xlarge", "m3.large", "m3.medium", "m3.xlarge",
		"m4.10xlarge", "m4.2xlarge", "m4.4xlarge", "m4.large", "m4.xlarge",
		"r3.2xlarge", "r3.4xlarge", "r3.8xlarge", "r3.large", "r3.xlarge",
		"t1.micro",
		"t2.large", "t2.medium", "t2.micro", "t2.nano", "t2.small",
		"x1.32xlarge",
	},
}

// Terraform outputs read by the inventory and endpoints.
const (
	OutputMasterASG          = "master_asg"
	OutputWorkerASG          = "worker_asg"
	OutputBastionInstanceID  = "bastion_instance_id"
	OutputMasterELBDNSName   = "master_elb_dns_name"
	OutputBastionInstanceEIP = "bastion_instance_eip"
)

// Flocker toggle. The parameter is not prefixed with the variant name and doubles as
// the terraform variable name.
const (
	ParamFlockerEnabled    = "flocker_enabled"
	OutputFlockerAccessKey = "flocker_access_key"
	OutputFlockerSecretKey = "flocker_secret_key"
)
