package terraform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/devantler-tech/tfinfra/pkg/apis/infra/v1alpha1"
)

// VarsFileName is the variables file terraform loads from its working directory.
const VarsFileName = "terraform.tfvars"

// RenderVars renders vars as tfvars lines sorted by key. Strings and integers render as
// key = "value", string lists as key = "a,b,c". Values of any other type are omitted.
func RenderVars(vars v1alpha1.Variables) []string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	lines := make([]string, 0, len(keys))

	for _, key := range keys {
		rendered, ok := renderValue(vars[key])
		if !ok {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s = \"%s\"", key, rendered))
	}

	return lines
}

func renderValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int, int32, int64:
		return fmt.Sprint(typed), true
	case []string:
		return strings.Join(typed, ","), true
	default:
		return "", false
	}
}
