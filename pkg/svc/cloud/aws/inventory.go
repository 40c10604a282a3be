package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
)

// Inventory lists the master group, the worker group and the bastion, in that order.
func (p *Plugin) Inventory(ctx context.Context, outputs terraform.Outputs) ([]v1alpha1.MachineRecord, error) {
	clients, err := p.apiClients(ctx)
	if err != nil {
		return nil, err
	}

	var inventory []v1alpha1.MachineRecord

	for _, group := range []struct {
		output string
		role   string
	}{
		{output: OutputMasterASG, role: v1alpha1.RoleMaster},
		{output: OutputWorkerASG, role: v1alpha1.RoleWorker},
	} {
		name, err := outputs.String(group.output)
		if err != nil {
			return nil, err //nolint:wrapcheck // already names the output
		}

		instances, err := autoScalingInstances(ctx, clients, name)
		if err != nil {
			return nil, err
		}

		for _, instance := range instances {
			inventory = append(inventory, record(instance, group.role))
		}
	}

	bastionID, err := outputs.String(OutputBastionInstanceID)
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the output
	}

	bastion, err := describeInstances(ctx, clients.EC2, []string{bastionID})
	if err != nil {
		return nil, err
	}

	inventory = append(inventory, record(bastion[0], v1alpha1.RoleBastion))

	p.logger.Debugf("aws inventory has %d machines", len(inventory))

	return inventory, nil
}

func autoScalingInstances(ctx context.Context, clients Clients, name string) ([]types.Instance, error) {
	result, err := clients.AutoScaling.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe auto scaling group %s: %w", name, err)
	}

	if len(result.AutoScalingGroups) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrAutoScalingGroupNotFound, name)
	}

	members := result.AutoScalingGroups[0].Instances
	if len(members) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, awssdk.ToString(member.InstanceId))
	}

	return describeInstances(ctx, clients.EC2, ids)
}

// describeInstances returns the instances in the order of ids, following every result page.
func describeInstances(ctx context.Context, api EC2API, ids []string) ([]types.Instance, error) {
	byID := map[string]types.Instance{}

	pages := ec2.NewDescribeInstancesPaginator(api, &ec2.DescribeInstancesInput{InstanceIds: ids})
	for pages.HasMorePages() {
		result, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances %v: %w", ids, err)
		}

		for _, reservation := range result.Reservations {
			for _, instance := range reservation.Instances {
				byID[awssdk.ToString(instance.InstanceId)] = instance
			}
		}
	}

	instances := make([]types.Instance, 0, len(ids))

	for _, id := range ids {
		instance, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
		}

		instances = append(instances, instance)
	}

	return instances, nil
}

func record(instance types.Instance, role string) v1alpha1.MachineRecord {
	return v1alpha1.MachineRecord{
		Name:      awssdk.ToString(instance.InstanceId),
		PublicIP:  awssdk.ToString(instance.PublicIpAddress),
		PrivateIP: awssdk.ToString(instance.PrivateIpAddress),
		Roles:     []string{role},
	}
}
