package render

import "github.com/san-kum/arrayviz/internal/demo"

const (
	beforeHeading = "Before Operation:"
	afterHeading  = "After Operation:"
	mutatesBadge  = "Mutates"
	returnsBadge  = "Returns New"
)

// Render projects a snapshot into its before and after sections. It does not
// modify s and returns equal trees for equal snapshots.
func Render(s demo.Snapshot) Tree {
	return Tree{Root: snapshotNode(s)}
}

// Card renders a full step: header, description, snapshot sections and the
// code block.
func Card(e demo.Entry, s demo.Snapshot) Tree {
	snap := snapshotNode(s)
	children := make([]Node, 0, 3+len(snap.Children))
	children = append(children, headerNode(e), Node{Kind: KindText, Role: RoleDescription, Text: e.Description})
	children = append(children, snap.Children...)
	children = append(children, codeNode(s))
	return Tree{Root: Node{Kind: KindContainer, Role: RoleCard, Children: children}}
}

func headerNode(e demo.Entry) Node {
	badge := Node{Kind: KindBadge, Role: RoleReturns, Text: returnsBadge}
	if e.Mutates {
		badge = Node{Kind: KindBadge, Role: RoleMutates, Text: mutatesBadge}
	}
	return Node{
		Kind: KindContainer,
		Role: RoleHeader,
		Children: []Node{
			{Kind: KindTitle, Text: e.Name},
			badge,
		},
	}
}

func snapshotNode(s demo.Snapshot) Node {
	return Node{
		Kind: KindContainer,
		Role: RoleSnapshot,
		Children: []Node{
			sectionNode(RoleBefore, beforeHeading, s.Before),
			sectionNode(RoleAfter, afterHeading, s.After),
		},
	}
}

func sectionNode(role, heading string, fields []demo.Field) Node {
	children := make([]Node, 0, len(fields)+1)
	children = append(children, Node{Kind: KindLabel, Text: heading})
	for _, f := range fields {
		children = append(children, fieldNode(f))
	}
	return Node{Kind: KindContainer, Role: role, Children: children}
}

func fieldNode(f demo.Field) Node {
	return Node{
		Kind: KindContainer,
		Role: RoleField,
		Children: []Node{
			{Kind: KindLabel, Text: f.Label + ":"},
			valueNode(f.Value),
		},
	}
}

func valueNode(v demo.Value) Node {
	if !v.IsList() {
		return Node{
			Kind:     KindContainer,
			Role:     RoleResult,
			Children: []Node{{Kind: KindScalar, Role: v.Kind().String(), Text: v.String()}},
		}
	}
	items := v.Items()
	children := make([]Node, 0, 2*len(items)+1)
	children = append(children, Node{Kind: KindBracket, Text: "["})
	for i, it := range items {
		children = append(children, Node{Kind: KindElement, Role: it.Kind().String(), Text: it.String()})
		if i < len(items)-1 {
			children = append(children, Node{Kind: KindSeparator, Text: ","})
		}
	}
	children = append(children, Node{Kind: KindBracket, Text: "]"})
	return Node{Kind: KindContainer, Role: RoleSequence, Children: children}
}

func codeNode(s demo.Snapshot) Node {
	return Node{
		Kind: KindContainer,
		Role: RoleCodeBlock,
		Children: []Node{
			{Kind: KindComment, Text: "// " + s.Explanation},
			{Kind: KindCode, Text: s.Code},
		},
	}
}
