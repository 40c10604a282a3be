package terraform_test

import (
	"testing"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
	"github.com/devantler-tech/tfinfra/pkg/client/terraform"
	"github.com/stretchr/testify/assert"
)

func TestRenderVars(t *testing.T) {
	t.Parallel()

	lines := terraform.RenderVars(v1alpha1.Variables{
		"region":          "eu-west-1",
		"master_count":    1,
		"zones":           []string{"eu-west-1a", "eu-west-1b"},
		"flocker_enabled": 1,
		"cluster_name":    "demo",
		"enabled":         true,
		"weights":         []int{1, 2},
		"empty":           []string{},
	})

	assert.Equal(t, []string{
		`cluster_name = "demo"`,
		`empty = ""`,
		`flocker_enabled = "1"`,
		`master_count = "1"`,
		`region = "eu-west-1"`,
		`zones = "eu-west-1a,eu-west-1b"`,
	}, lines)
}

func TestRenderVars_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, terraform.RenderVars(nil))
}
