package render

import (
	"fmt"
	"strings"
)

// Kind is the type of a visual node.
type Kind uint8

const (
	KindContainer Kind = iota
	KindTitle
	KindBadge
	KindText
	KindLabel
	KindBracket
	KindElement
	KindSeparator
	KindScalar
	KindComment
	KindCode
)

var kindNames = [...]string{
	KindContainer: "container",
	KindTitle:     "title",
	KindBadge:     "badge",
	KindText:      "text",
	KindLabel:     "label",
	KindBracket:   "bracket",
	KindElement:   "element",
	KindSeparator: "separator",
	KindScalar:    "scalar",
	KindComment:   "comment",
	KindCode:      "code",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Roles attached to nodes. Value nodes carry the value's kind instead
// ("number", "string", "bool", "list").
const (
	RoleCard        = "card"
	RoleHeader      = "header"
	RoleDescription = "description"
	RoleSnapshot    = "snapshot"
	RoleBefore      = "before"
	RoleAfter       = "after"
	RoleField       = "field"
	RoleSequence    = "sequence"
	RoleResult      = "result"
	RoleCodeBlock   = "code"
	RoleMutates     = "mutates"
	RoleReturns     = "returns"
)

// Node is one element of the visual tree. Containers have children; every
// other kind is a leaf carrying display text.
type Node struct {
	Kind     Kind   `json:"kind"`
	Role     string `json:"role,omitempty"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Tree is what the view layer consumes for one step.
type Tree struct {
	Root Node `json:"root"`
}

// Find returns the first node with the given role in depth-first order.
func (t Tree) Find(role string) (Node, bool) {
	return find(t.Root, role)
}

func find(n Node, role string) (Node, bool) {
	if n.Role == role {
		return n, true
	}
	for _, c := range n.Children {
		if got, ok := find(c, role); ok {
			return got, true
		}
	}
	return Node{}, false
}

// Inline flattens a node's leaves into one line of text.
func (n Node) Inline() string {
	if n.Kind != KindContainer {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Kind {
		case KindSeparator:
			b.WriteString(c.Text + " ")
		case KindLabel:
			b.WriteString(c.Text + " ")
		default:
			b.WriteString(c.Inline())
		}
	}
	return b.String()
}

// Text renders the tree as uncoloured text.
func (t Tree) Text() string {
	var b strings.Builder
	writeText(&b, t.Root)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeText(b *strings.Builder, n Node) {
	switch n.Role {
	case RoleHeader:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			if c.Kind == KindBadge {
				parts = append(parts, "["+c.Text+"]")
				continue
			}
			parts = append(parts, c.Text)
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
		return
	case RoleDescription:
		b.WriteString(n.Text + "\n\n")
		return
	case RoleBefore, RoleAfter:
		for _, c := range n.Children {
			if c.Kind == KindLabel {
				b.WriteString(c.Text + "\n")
				continue
			}
			b.WriteString("  " + c.Inline() + "\n")
		}
		return
	case RoleCodeBlock:
		b.WriteString("\n")
		for _, c := range n.Children {
			b.WriteString(c.Text + "\n")
		}
		return
	}
	if n.Kind != KindContainer {
		b.WriteString(n.Text + "\n")
		return
	}
	for _, c := range n.Children {
		writeText(b, c)
	}
}
