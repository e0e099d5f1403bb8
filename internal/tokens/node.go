// Package tokens models the loosely typed design-token tree: an ordered mapping
// whose leaves are scalars or lists, decoded from JSON or YAML documents.
package tokens

import "strings"

// Kind identifies the shape of a Node.
type Kind int

// Node kinds
const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindList
	KindMap
)

// String returns the JSON-style type name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindList:
		return "array"
	case KindMap:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a single value in a token tree.
// Scalars keep their literal text so that "8" and 8 stay distinguishable.
type Node struct {
	kind Kind
	text string
	list []*Node
	m    *Map
}

// String creates a string leaf.
func String(s string) *Node {
	return &Node{kind: KindString, text: s}
}

// Number creates a numeric leaf from its literal text ("8", "0.25").
func Number(raw string) *Node {
	return &Node{kind: KindNumber, text: raw}
}

// Bool creates a boolean leaf.
func Bool(b bool) *Node {
	if b {
		return &Node{kind: KindBool, text: "true"}
	}
	return &Node{kind: KindBool, text: "false"}
}

// Null creates an explicit null leaf.
func Null() *Node {
	return &Node{kind: KindNull, text: "null"}
}

// List creates a list leaf. Lists are atomic: merges replace them wholesale.
func List(items ...*Node) *Node {
	return &Node{kind: KindList, list: items}
}

// FromMap wraps a mapping as a node.
func FromMap(m *Map) *Node {
	if m == nil {
		m = NewMap()
	}
	return &Node{kind: KindMap, m: m}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Str returns the string value and true only for string leaves.
func (n *Node) Str() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// Text returns a display form of the node: the literal text for scalars,
// a bracketed list for lists and "{...}" for mappings.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.kind {
	case KindList:
		parts := make([]string, len(n.list))
		for i, item := range n.list {
			parts[i] = item.Text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		return "{...}"
	default:
		return n.text
	}
}

// Map returns the mapping held by a map node.
func (n *Node) Map() (*Map, bool) {
	if n == nil || n.kind != KindMap {
		return nil, false
	}
	return n.m, true
}

// Items returns the elements of a list node.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindList {
		return nil
	}
	return n.list
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{kind: n.kind, text: n.text}
	switch n.kind {
	case KindList:
		out.list = make([]*Node, len(n.list))
		for i, item := range n.list {
			out.list[i] = item.Clone()
		}
	case KindMap:
		out.m = n.m.Clone()
	}
	return out
}
