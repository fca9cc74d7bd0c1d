package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyKeyPath is returned when a key path is empty.
var ErrEmptyKeyPath = errors.New("empty key path")

// ParseKeyPath splits a dotted key path into its segments.
// Returns ErrEmptyKeyPath for an empty string.
func ParseKeyPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyKeyPath
	}
	return strings.Split(path, "."), nil
}

// GetNestedValue navigates a YAML node tree along keyPath and returns the
// value node, or nil if any segment is missing. Works on document or
// mapping roots.
func GetNestedValue(root *yaml.Node, keyPath []string) *yaml.Node {
	if root == nil || len(keyPath) == 0 {
		return nil
	}

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}

	for _, key := range keyPath {
		if node.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// SetNestedValue sets a value in a YAML node tree along keyPath, creating
// intermediate mappings as needed. The root may be a zero Node (e.g. from
// an empty file); it is initialized to a document with an empty mapping.
// Comments attached to existing nodes are preserved.
func SetNestedValue(root *yaml.Node, keyPath []string, value interface{}) error {
	if len(keyPath) == 0 {
		return ErrEmptyKeyPath
	}

	if root.Kind == 0 {
		root.Kind = yaml.DocumentNode
		root.Content = []*yaml.Node{{Kind: yaml.MappingNode}}
	}

	mapping := root
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			root.Content = []*yaml.Node{{Kind: yaml.MappingNode}}
		}
		mapping = root.Content[0]
	}

	return setInMapping(mapping, keyPath, value)
}

// setInMapping recursively sets keyPath within a mapping node.
func setInMapping(mapping *yaml.Node, keyPath []string, value interface{}) error {
	if mapping.Kind != yaml.MappingNode {
		return fmt.Errorf("cannot set %q: parent is not a mapping", keyPath[0])
	}

	key := keyPath[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		if len(keyPath) == 1 {
			return encodeValue(mapping.Content[i+1], value)
		}
		child := mapping.Content[i+1]
		if child.Kind != yaml.MappingNode {
			*child = yaml.Node{Kind: yaml.MappingNode}
		}
		return setInMapping(child, keyPath[1:], value)
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
	if len(keyPath) == 1 {
		valNode := &yaml.Node{}
		if err := encodeValue(valNode, value); err != nil {
			return err
		}
		mapping.Content = append(mapping.Content, keyNode, valNode)
		return nil
	}

	child := &yaml.Node{Kind: yaml.MappingNode}
	mapping.Content = append(mapping.Content, keyNode, child)
	return setInMapping(child, keyPath[1:], value)
}

// encodeValue re-encodes a node in place, keeping its comments.
func encodeValue(node *yaml.Node, value interface{}) error {
	var tmp yaml.Node
	if err := tmp.Encode(value); err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	head, line, foot := node.HeadComment, node.LineComment, node.FootComment
	*node = tmp
	node.HeadComment, node.LineComment, node.FootComment = head, line, foot
	return nil
}

// GetConfigValue reads the config file at path and returns the node for key,
// or nil if the file or key does not exist.
func GetConfigValue(path, key string) (*yaml.Node, error) {
	keyPath, err := ParseKeyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return GetNestedValue(&root, keyPath), nil
}

// SetConfigValue validates key/value against the schema and writes the value
// into the config file at path, creating the file and parent directories as
// needed. Existing keys, ordering, and comments are preserved.
func SetConfigValue(path, key, value string) error {
	parsed, err := ValidateValue(key, value)
	if err != nil {
		return err
	}

	keyPath, err := ParseKeyPath(key)
	if err != nil {
		return err
	}

	var root yaml.Node
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &root); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := SetNestedValue(&root, keyPath, parsed.Parsed); err != nil {
		return err
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ToggleConfigValue flips a boolean key in the config file at path.
// A missing key counts as false, so the first toggle sets it to true.
// Returns the old and new values.
func ToggleConfigValue(path, key string) (oldValue, newValue bool, err error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return false, false, err
	}
	if schema.Type != TypeBool {
		return false, false, fmt.Errorf("key %s is not a boolean (type %s)", key, schema.Type)
	}

	node, err := GetConfigValue(path, key)
	if err != nil {
		return false, false, err
	}

	current := node != nil && node.Value == "true"
	if err := SetConfigValue(path, key, strconv.FormatBool(!current)); err != nil {
		return false, false, err
	}
	return current, !current, nil
}
