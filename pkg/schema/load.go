package schema

import (
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML definition from r and validates its structure.
func Load(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrBadDefinition, err)
	}
	return LoadBytes(data)
}

// LoadBytes decodes a YAML definition and validates its structure.
func LoadBytes(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Join(ErrBadDefinition, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadJSON decodes a JSON definition and validates its structure.
func LoadJSON(data []byte) (*Definition, error) {
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Join(ErrBadDefinition, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
