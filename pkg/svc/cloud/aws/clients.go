package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2API is the subset of the EC2 client used by the plugin.
type EC2API interface {
	DescribeAvailabilityZones(
		ctx context.Context,
		params *ec2.DescribeAvailabilityZonesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeAvailabilityZonesOutput, error)
	DescribeInstances(
		ctx context.Context,
		params *ec2.DescribeInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeInstancesOutput, error)
}

// AutoScalingAPI is the subset of the Auto Scaling client used by the plugin.
type AutoScalingAPI interface {
	DescribeAutoScalingGroups(
		ctx context.Context,
		params *autoscaling.DescribeAutoScalingGroupsInput,
		optFns ...func(*autoscaling.Options),
	) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
}

// Clients are the API clients of one credential and region.
type Clients struct {
	EC2         EC2API
	AutoScaling AutoScalingAPI
}

// ClientFactory builds Clients for static credentials in region.
type ClientFactory func(ctx context.Context, accessKey, secretKey, region string) (Clients, error)

// NewClients builds SDK clients from static credentials.
func NewClients(ctx context.Context, accessKey, secretKey, region string) (Clients, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return Clients{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return Clients{
		EC2:         ec2.NewFromConfig(cfg),
		AutoScaling: autoscaling.NewFromConfig(cfg),
	}, nil
}
