package aws

import "errors"

var (
	// ErrAutoScalingGroupNotFound is returned when an auto scaling group named by a
	// terraform output does not exist.
	ErrAutoScalingGroupNotFound = errors.New("auto scaling group not found")

	// ErrInstanceNotFound is returned when an instance id does not resolve.
	ErrInstanceNotFound = errors.New("instance not found")
)
