package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a token document's top level is not a mapping.
var ErrNotMapping = errors.New("token document must be an object at the top level")

// Decode parses a JSON or YAML document into a Map.
// An empty document decodes to an empty map.
func Decode(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse token document: %w", err)
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return NewMap(), nil
		}
		root = doc.Content[0]
	}
	if root.Kind == 0 {
		return NewMap(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	return decodeMap(root)
}

// UnmarshalYAML lets a Map be used as a field of a yaml-decoded struct while
// keeping key order and duplicate bookkeeping.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w", value.Line, ErrNotMapping)
	}
	decoded, err := decodeMap(value)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

func decodeMap(n *yaml.Node) (*Map, error) {
	m := NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		v, err := decodeNode(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if m.Has(key) {
			m.markDuplicate(key)
		}
		m.Set(key, v)
	}
	return m, nil
}

func decodeNode(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias", n.Line)
		}
		return decodeNode(n.Alias)
	case yaml.MappingNode:
		m, err := decodeMap(n)
		if err != nil {
			return nil, err
		}
		return FromMap(m), nil
	case yaml.SequenceNode:
		items := make([]*Node, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			return Number(n.Value), nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return String(n.Value), nil
			}
			return Bool(b), nil
		case "!!null":
			return Null(), nil
		default:
			return String(n.Value), nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

// MarshalYAML encodes the map as an ordered YAML mapping.
func (m *Map) MarshalYAML() (any, error) {
	return m.yamlNode(), nil
}

func (m *Map) yamlNode() *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			v.yamlNode())
	}
	return out
}

func (n *Node) yamlNode() *yaml.Node {
	switch n.kind {
	case KindMap:
		return n.m.yamlNode()
	case KindList:
		out := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range n.list {
			out.Content = append(out.Content, item.yamlNode())
		}
		return out
	case KindNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: n.text}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: n.text}
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.text}
	}
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, _ := m.Get(key)
		b, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the node. Numbers keep their literal text.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case KindMap:
		return n.m.MarshalJSON()
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range n.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindNumber:
		if !json.Valid([]byte(n.text)) {
			return json.Marshal(n.text)
		}
		return []byte(n.text), nil
	case KindBool, KindNull:
		return []byte(n.text), nil
	default:
		return json.Marshal(n.text)
	}
}
