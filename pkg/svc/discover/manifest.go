// Package discover describes the commands this provider offers to the host
// orchestrator.
package discover

import (
	"fmt"

	yamlmarshaller "github.com/devantler-tech/tfinfra/pkg/io/marshaller/yaml"
)

// Protocol constants.
const (
	ProviderVersion = 1
	ProviderType    = "infra"
	CommandType     = "docker"
)

// Files exchanged with the host orchestrator, relative to the working directory.
const (
	ParameterFile = "parameters.yaml"
	ResultFile    = "output.yaml"
	StatePath     = "terraform/terraform.tfstate"
)

// Protocol command names.
const (
	CommandDiscover = "discover"
	CommandPlan     = "plan"
	CommandApply    = "apply"
	CommandDestroy  = "destroy"
	CommandGraph    = "graph"
)

// Manifest is the document printed by the discover command.
type Manifest struct {
	Provider Provider               `json:"provider"`
	Commands map[string]CommandSpec `json:"commands"`
}

// Provider identifies the kind of provider.
type Provider struct {
	Version int    `json:"version"`
	Type    string `json:"type"`
}

// CommandSpec tells the host how to run a command and which files it exchanges.
type CommandSpec struct {
	Type          string     `json:"type"`
	Execs         [][]string `json:"execs"`
	ParameterFile string     `json:"parameterFile,omitempty"`
	ResultFile    string     `json:"resultFile,omitempty"`
	PersistPaths  []string   `json:"persistPaths,omitempty"`
}

// NewManifest returns the manifest of the terraform infra provider.
func NewManifest() Manifest {
	commands := map[string]CommandSpec{
		CommandDiscover: command(CommandDiscover),
	}

	for _, name := range []string{CommandPlan, CommandApply, CommandDestroy, CommandGraph} {
		spec := command(name)
		spec.ParameterFile = ParameterFile
		spec.PersistPaths = []string{StatePath}

		if name == CommandApply {
			spec.ResultFile = ResultFile
		}

		commands[name] = spec
	}

	return Manifest{
		Provider: Provider{Version: ProviderVersion, Type: ProviderType},
		Commands: commands,
	}
}

// YAML renders the manifest.
func (m Manifest) YAML() (string, error) {
	out, err := yamlmarshaller.NewMarshaller[Manifest]().Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}

	return out, nil
}

func command(name string) CommandSpec {
	return CommandSpec{
		Type:  CommandType,
		Execs: [][]string{{name}},
	}
}
