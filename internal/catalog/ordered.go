package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed mapping that remembers the order keys were
// first inserted in.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set stores value under key. New keys are appended to the key order;
// existing keys keep their position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// First returns the first key in insertion order.
func (m OrderedMap[V]) First() (string, bool) {
	if len(m.keys) == 0 {
		return "", false
	}
	return m.keys[0], true
}

// Len returns the number of keys.
func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// UnmarshalJSON decodes an object token by token, keeping the document's key
// order.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = OrderedMap[V]{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a mapping, found %s", jsonKindName(tok))
	}

	decoded := OrderedMap[V]{values: make(map[string]V)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, found %s", jsonKindName(tok))
		}
		if decoded.Has(key) {
			return fmt.Errorf("duplicate key %q", key)
		}

		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		decoded.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = decoded
	return nil
}

func jsonKindName(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return "delimiter " + v.String()
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}

// UnmarshalYAML decodes a mapping node, keeping the document's key order.
func (m *OrderedMap[V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = OrderedMap[V]{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{
			fmt.Sprintf("line %d: expected a mapping, found %s", value.Line, kindName(value.Kind)),
		}}
	}

	decoded := OrderedMap[V]{values: make(map[string]V, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		if decoded.Has(key) {
			return &yaml.TypeError{Errors: []string{
				fmt.Sprintf("line %d: duplicate key %q", keyNode.Line, key),
			}}
		}

		var v V
		if err := valueNode.Decode(&v); err != nil {
			return err
		}
		decoded.Set(key, v)
	}

	*m = decoded
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
