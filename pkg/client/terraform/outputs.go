package terraform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// OutputValue is one entry of `terraform output -json`.
type OutputValue struct {
	Value     any  `json:"value"`
	Type      any  `json:"type"`
	Sensitive bool `json:"sensitive"`
}

// Outputs maps output names to their values.
type Outputs map[string]OutputValue

// ParseOutputs decodes the output query. Every entry must be an object carrying a value.
func ParseOutputs(data []byte) (Outputs, error) {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: not a mapping", ErrInvalidOutput)
	}

	outputs := make(Outputs, len(raw))

	for key, entry := range raw {
		var fields map[string]json.RawMessage

		err = json.Unmarshal(entry, &fields)
		if err != nil || fields == nil {
			return nil, fmt.Errorf("%w: output %q is not an object", ErrInvalidOutput, key)
		}

		if _, ok := fields["value"]; !ok {
			return nil, fmt.Errorf("%w: output %q has no value", ErrInvalidOutput, key)
		}

		var value OutputValue

		decoder := json.NewDecoder(bytes.NewReader(entry))
		decoder.UseNumber()

		err = decoder.Decode(&value)
		if err != nil {
			return nil, fmt.Errorf("%w: output %q: %w", ErrInvalidOutput, key, err)
		}

		outputs[key] = value
	}

	return outputs, nil
}

// Has reports whether key is present.
func (o Outputs) Has(key string) bool {
	_, ok := o[key]

	return ok
}

// String returns the value of key rendered as a string. Numbers and booleans are
// formatted; lists and maps are rejected.
func (o Outputs) String(key string) (string, error) {
	entry, ok := o[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOutputNotFound, key)
	}

	switch value := entry.Value.(type) {
	case string:
		return value, nil
	case json.Number, bool:
		return fmt.Sprint(value), nil
	default:
		return "", fmt.Errorf("%w: %s is %T, want string", ErrUnexpectedOutputType, key, entry.Value)
	}
}

// List returns the value of key as a list. Strings are split on commas, lists are
// returned element by element.
func (o Outputs) List(key string) ([]string, error) {
	entry, ok := o[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotFound, key)
	}

	switch value := entry.Value.(type) {
	case string:
		return strings.Split(value, ","), nil
	case []any:
		items := make([]string, 0, len(value))
		for _, item := range value {
			items = append(items, fmt.Sprint(item))
		}

		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s is %T, want list", ErrUnexpectedOutputType, key, entry.Value)
	}
}
