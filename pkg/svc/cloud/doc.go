// Package cloud defines the cloud plugin contract and the behaviour shared by every
// variant: detection from the custom parameters, region and zone resolution, the
// required-key variables and instance-type validation.
//
// Each variant lives in its own sub-package and embeds Base. Select picks the first
// variant whose required parameters are all present.
package cloud
