package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/arrayviz/internal/render"
)

var indent = lipgloss.NewStyle().PaddingLeft(2)

// Materialize draws a visual tree with the given theme.
func Materialize(t render.Tree, theme Theme) string {
	return newStyles(theme).node(t.Root)
}

func (s styles) node(n render.Node) string {
	switch n.Role {
	case render.RoleCard, render.RoleSnapshot:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, s.node(c))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	case render.RoleHeader:
		return s.header(n)
	case render.RoleDescription:
		return s.desc.Render(n.Text)
	case render.RoleBefore, render.RoleAfter:
		return s.section(n)
	case render.RoleField:
		return s.field(n)
	case render.RoleSequence:
		return s.sequence(n)
	case render.RoleResult:
		return s.result(n)
	case render.RoleCodeBlock:
		return s.codeBlock(n)
	}
	return s.leaf(n)
}

func (s styles) header(n render.Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, s.leaf(c))
	}
	return strings.Join(parts, "  ")
}

func (s styles) section(n render.Node) string {
	lines := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == render.KindLabel {
			lines = append(lines, s.heading.Render(c.Text))
			continue
		}
		lines = append(lines, indent.Render(s.node(c)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s styles) field(n render.Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, s.node(c))
	}
	if len(parts) == 2 {
		parts[0] += " "
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (s styles) sequence(n render.Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(s.leaf(c))
	}
	return b.String()
}

func (s styles) result(n render.Node) string {
	if len(n.Children) == 0 {
		return ""
	}
	c := n.Children[0]
	if c.Role == "string" {
		return s.scalar.Foreground(s.str.GetForeground()).Render(c.Text)
	}
	return s.scalar.Render(c.Text)
}

func (s styles) codeBlock(n render.Node) string {
	lines := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		lines = append(lines, s.leaf(c))
	}
	return s.codeBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s styles) leaf(n render.Node) string {
	switch n.Kind {
	case render.KindTitle:
		return s.title.Render(n.Text)
	case render.KindBadge:
		if n.Role == render.RoleMutates {
			return s.mutates.Render(n.Text)
		}
		return s.returns.Render(n.Text)
	case render.KindLabel:
		return s.label.Render(n.Text)
	case render.KindBracket:
		return s.bracket.Render(n.Text)
	case render.KindSeparator:
		return s.sep.Render(n.Text + " ")
	case render.KindElement, render.KindScalar:
		switch n.Role {
		case "string":
			return s.str.Render(n.Text)
		case "list":
			return s.nested.Render(n.Text)
		}
		return s.number.Render(n.Text)
	case render.KindComment:
		return s.comment.Render(n.Text)
	case render.KindCode:
		return s.code.Render(n.Text)
	}
	return n.Text
}
