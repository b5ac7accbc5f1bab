package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from one Theme.
type styles struct {
	panel    lipgloss.Style
	title    lipgloss.Style
	mutates  lipgloss.Style
	returns  lipgloss.Style
	desc     lipgloss.Style
	heading  lipgloss.Style
	label    lipgloss.Style
	bracket  lipgloss.Style
	number   lipgloss.Style
	str      lipgloss.Style
	nested   lipgloss.Style
	sep      lipgloss.Style
	scalar   lipgloss.Style
	codeBox  lipgloss.Style
	code     lipgloss.Style
	comment  lipgloss.Style
	muted    lipgloss.Style
	keyHint  lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles(t Theme) styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		mutates: badge.Foreground(t.Mutates).Border(lipgloss.NormalBorder(), false, true).BorderForeground(t.Mutates),
		returns: badge.Foreground(t.Returns).Border(lipgloss.NormalBorder(), false, true).BorderForeground(t.Returns),
		desc:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		heading: lipgloss.NewStyle().Bold(true).Foreground(t.Label).MarginTop(1),
		label:   lipgloss.NewStyle().Bold(true).Foreground(t.Label),
		bracket: lipgloss.NewStyle().Bold(true).Foreground(t.Bracket),
		number:  lipgloss.NewStyle().Foreground(t.Number),
		str:     lipgloss.NewStyle().Foreground(t.String),
		nested:  lipgloss.NewStyle().Foreground(t.Muted),
		sep:     lipgloss.NewStyle().Foreground(t.Muted),
		scalar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Bracket).
			Foreground(t.Number).
			Padding(0, 1),
		codeBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			PaddingLeft(1).
			MarginTop(1),
		code:     lipgloss.NewStyle().Foreground(t.Code),
		comment:  lipgloss.NewStyle().Foreground(t.Comment).Italic(true),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		keyHint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		running:  lipgloss.NewStyle().Bold(true).Foreground(t.Returns),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Mutates),
		barFull:  lipgloss.NewStyle().Foreground(t.Title),
		barEmpty: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// progressBar renders step out of total as a bar of the given width.
func (s styles) progressBar(step, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := step * width / total
	filled = max(0, min(filled, width))
	return s.barFull.Render(strings.Repeat("█", filled)) + s.barEmpty.Render(strings.Repeat("░", width-filled))
}

// separator draws a muted rule with a centre mark.
func (s styles) separator(width int) string {
	if width < 8 {
		return s.muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.muted.Render(left + " ◆ " + right)
}
