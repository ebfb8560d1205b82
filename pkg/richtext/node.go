package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the variant of a parsed Node.
type Kind uint8

const (
	KindText Kind = iota
	KindUnorderedList
	KindOrderedList
	KindListItem
	KindBold
	KindLineBreak
	KindBlock
	KindInline
)

var kindNames = [...]string{
	KindText:          "text",
	KindUnorderedList: "unordered-list",
	KindOrderedList:   "ordered-list",
	KindListItem:      "list-item",
	KindBold:          "bold",
	KindLineBreak:     "line-break",
	KindBlock:         "block",
	KindInline:        "inline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes the kind using its stable name.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("richtext: unknown kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, candidate := range kindNames {
		if candidate == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("richtext: unknown kind %q", name)
}

// KindForTag maps an element name onto its node kind. Matching is
// case-insensitive and total: unsupported tags map to KindInline.
func KindForTag(tag string) Kind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "ul":
		return KindUnorderedList
	case "ol":
		return KindOrderedList
	case "li":
		return KindListItem
	case "strong", "b":
		return KindBold
	case "br":
		return KindLineBreak
	case "div", "p":
		return KindBlock
	default:
		return KindInline
	}
}

// Node is an immutable description of one piece of rendered rich text.
// Text nodes only use Text; element nodes use Tag and Children.
type Node struct {
	Kind     Kind   `json:"kind"`
	Tag      string `json:"tag,omitempty"`
	Key      int    `json:"key"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// IsText reports whether the node is a text leaf.
func (n Node) IsText() bool {
	return n.Kind == KindText
}

// TextContent concatenates the text of the node and all its descendants in
// document order. Line breaks contribute a newline.
func (n Node) TextContent() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n Node) writeText(b *strings.Builder) {
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindLineBreak:
		b.WriteByte('\n')
	default:
		for _, child := range n.Children {
			child.writeText(b)
		}
	}
}

// Equal reports whether two nodes describe the same tree.
func (n Node) Equal(other Node) bool {
	if n.Kind != other.Kind || n.Tag != other.Tag || n.Key != other.Key || n.Text != other.Text {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Text builds a text leaf.
func Text(key int, text string) Node {
	return Node{Kind: KindText, Key: key, Text: text}
}

// Element builds an element node for tag with the given children. Children
// are re-keyed by position.
func Element(key int, tag string, children ...Node) Node {
	tag = strings.ToLower(strings.TrimSpace(tag))
	node := Node{Kind: KindForTag(tag), Tag: tag, Key: key}
	if len(children) > 0 {
		node.Children = make([]Node, len(children))
		for i, child := range children {
			child.Key = i
			node.Children[i] = child
		}
	}
	return node
}

// Nodes is an ordered sequence of sibling nodes.
type Nodes []Node

// TextContent concatenates the text content of every node.
func (ns Nodes) TextContent() string {
	var b strings.Builder
	for _, n := range ns {
		n.writeText(&b)
	}
	return b.String()
}

// MarshalJSON always encodes an array so empty content stays "[]".
func (ns Nodes) MarshalJSON() ([]byte, error) {
	if ns == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Node(ns))
}
