package aws_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/stretchr/testify/mock"
)

type mockEC2 struct {
	mock.Mock
}

func (m *mockEC2) DescribeAvailabilityZones(
	ctx context.Context,
	params *ec2.DescribeAvailabilityZonesInput,
	_ ...func(*ec2.Options),
) (*ec2.DescribeAvailabilityZonesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeAvailabilityZonesOutput)

	return out, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

func (m *mockEC2) DescribeInstances(
	ctx context.Context,
	params *ec2.DescribeInstancesInput,
	_ ...func(*ec2.Options),
) (*ec2.DescribeInstancesOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeInstancesOutput)

	return out, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

type mockAutoScaling struct {
	mock.Mock
}

func (m *mockAutoScaling) DescribeAutoScalingGroups(
	ctx context.Context,
	params *autoscaling.DescribeAutoScalingGroupsInput,
	_ ...func(*autoscaling.Options),
) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*autoscaling.DescribeAutoScalingGroupsOutput)

	return out, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}
