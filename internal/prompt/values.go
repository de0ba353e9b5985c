package prompt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadValuesFile for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported values file format")

// Values holds the current free-text value of every registry key.
type Values [KeyCount]string

// DefaultValues returns the values a new session starts from.
func DefaultValues() Values {
	var v Values
	for _, f := range registry {
		v[f.Key] = f.DefaultValue
	}
	return v
}

// EmptyValues returns a record with every field blank.
func EmptyValues() Values {
	return Values{}
}

// Get returns the value of k, or "" for keys outside the registry.
func (v Values) Get(k Key) string {
	if !k.Valid() {
		return ""
	}
	return v[k]
}

// Set replaces the value of k in place. Keys outside the registry are ignored.
func (v *Values) Set(k Key, value string) {
	if !k.Valid() {
		return
	}
	v[k] = value
}

// With returns a copy of v with k replaced.
func (v Values) With(k Key, value string) Values {
	v.Set(k, value)
	return v
}

// Map returns the wire form keyed by field name.
func (v Values) Map() map[string]string {
	m := make(map[string]string, KeyCount)
	for _, f := range registry {
		m[f.Name] = v[f.Key]
	}
	return m
}

// ApplyMap overlays m on base. Absent names keep the base value, an explicit
// empty string clears the field and unknown names are rejected.
func ApplyMap(base Values, m map[string]string) (Values, error) {
	out := base
	for name, value := range m {
		k, err := ParseKey(name)
		if err != nil {
			return base, err
		}
		out[k] = value
	}
	return out, nil
}

// MarshalJSON encodes the values as an object in registry order.
func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range registry {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(v[f.Key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON overlays the decoded object on the receiver's current contents.
func (v *Values) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out, err := ApplyMap(*v, m)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// MarshalYAML encodes the values as a mapping in registry order.
func (v Values) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range registry {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v[f.Key]},
		)
	}
	return node, nil
}

// UnmarshalYAML overlays the decoded mapping on the receiver's current contents.
func (v *Values) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]string
	if err := value.Decode(&m); err != nil {
		return err
	}
	out, err := ApplyMap(*v, m)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// LoadValuesFile reads a brief from disk and overlays it on base. The format
// is chosen by extension: .yaml, .yml, .toml or .json.
func LoadValuesFile(path string, base Values) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read values file: %w", err)
	}

	var m map[string]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".json":
		err = json.Unmarshal(data, &m)
	default:
		return base, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return base, fmt.Errorf("parse values file %s: %w", filepath.Base(path), err)
	}

	out, err := ApplyMap(base, m)
	if err != nil {
		return base, fmt.Errorf("values file %s: %w", filepath.Base(path), err)
	}
	return out, nil
}
