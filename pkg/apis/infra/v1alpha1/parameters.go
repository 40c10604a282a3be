package v1alpha1

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParameters is returned when the parameters document cannot be decoded.
var ErrInvalidParameters = errors.New("invalid parameters document")

// Parameters is the decoded parameters document. It is immutable after parsing:
// Tree returns a fresh deep copy on every call.
type Parameters struct {
	General General
	Custom  map[string]any

	source []byte
}

// ParseParameters decodes a parameters document. The general section is decoded into
// typed structs; the custom section is kept as a flat key/value mapping.
func ParseParameters(data []byte) (*Parameters, error) {
	tree, err := decodeTree(data)
	if err != nil {
		return nil, err
	}

	params := &Parameters{
		Custom: map[string]any{},
		source: bytes.Clone(data),
	}

	if general, ok := tree[SectionGeneral]; ok && general != nil {
		err = decodeGeneral(general, &params.General)
		if err != nil {
			return nil, err
		}
	}

	if custom, ok := tree[SectionCustom]; ok && custom != nil {
		values, isMap := custom.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: section %q must be a mapping", ErrInvalidParameters, SectionCustom)
		}

		params.Custom = values
	}

	return params, nil
}

// Tree returns a deep copy of the whole parameters document.
func (p *Parameters) Tree() (map[string]any, error) {
	return decodeTree(p.source)
}

// CustomValue returns the custom parameter stored under key rendered as a string.
// A key that is present with an empty value yields "" and true.
func (p *Parameters) CustomValue(key string) (string, bool) {
	value, ok := p.Custom[key]
	if !ok {
		return "", false
	}

	if value == nil {
		return "", true
	}

	return fmt.Sprint(value), true
}

// HasCustom reports whether key is present in the custom section.
func (p *Parameters) HasCustom(key string) bool {
	_, ok := p.Custom[key]

	return ok
}

// MachineGroupNames returns the machine group names in ascending order.
func (p *Parameters) MachineGroupNames() []string {
	names := make([]string, 0, len(p.General.Cluster.Machines))
	for name := range p.General.Cluster.Machines {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func decodeTree(data []byte) (map[string]any, error) {
	tree := map[string]any{}

	err := yaml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	return tree, nil
}

func decodeGeneral(input any, general *General) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           general,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("%w: section %q: %w", ErrInvalidParameters, SectionGeneral, err)
	}

	return nil
}
