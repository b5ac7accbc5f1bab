package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/arrayviz/internal/player"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	barWidth      = 20
)

// TickMsg is delivered when an auto-advance timer fires. Token ties it to the
// run that scheduled it.
type TickMsg struct {
	Token player.Token
	Time  time.Time
}

// Options configures the interactive model.
type Options struct {
	Theme      string
	PlotWidth  int
	PlotHeight int
}

// Model is the bubbletea model for the walkthrough.
type Model struct {
	session   *player.Session
	frame     player.Frame
	theme     Theme
	styles    styles
	plotW     int
	plotH     int
	showGraph bool
	showHelp  bool
	width     int
	height    int
}

// NewModel wraps a session. The session's current step is shown first.
func NewModel(s *player.Session, opts Options) Model {
	theme := GetTheme(opts.Theme)
	plotW, plotH := opts.PlotWidth, opts.PlotHeight
	if plotW <= 0 {
		plotW = 60
	}
	if plotH <= 0 {
		plotH = 10
	}
	return Model{
		session: s,
		frame:   s.Frame(),
		theme:   theme,
		styles:  newStyles(theme),
		plotW:   plotW,
		plotH:   plotH,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) tick(t player.Token) tea.Cmd {
	return tea.Tick(m.session.Interval(), func(at time.Time) tea.Msg {
		return TickMsg{Token: t, Time: at}
	})
}

// Update handles key presses and auto-advance ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "n":
			m.session.Next()
		case "left", "h", "p":
			m.session.Previous()
		case "r":
			m.session.Reset()
		case " ", "a":
			if t, started := m.session.Toggle(); started {
				cmd = m.tick(t)
			}
		case "g":
			m.showGraph = !m.showGraph
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.session.Tick(msg.Token) == player.TickAdvanced {
			cmd = m.tick(msg.Token)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	m.frame = m.session.Frame()
	return m, cmd
}

// Frame returns the frame currently on screen.
func (m Model) Frame() player.Frame { return m.frame }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.styles.separator(min(m.width, defaultWidth)))
	b.WriteString("\n")

	card := m.styles.panel.Render(Materialize(m.frame.Tree, m.theme))
	if m.showGraph {
		if g, ok := Graph(m.frame.Snapshot, m.plotW, m.plotH); ok {
			card = lipgloss.JoinVertical(lipgloss.Left, card, m.styles.panel.Render(g))
		} else {
			card = lipgloss.JoinVertical(lipgloss.Left, card, m.styles.muted.Render("  no numeric sequences to plot"))
		}
	}
	b.WriteString(card)
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.help())
	} else {
		b.WriteString(m.styles.keyHint.Render("←/→ step · space auto-play · r reset · g graph · t theme · ? help · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	status := m.styles.paused.Render("PAUSED")
	if m.frame.AutoPlaying {
		status = m.styles.running.Render(fmt.Sprintf("AUTO %s", m.session.Interval()))
	}
	return fmt.Sprintf("%s  %s %s  %s  %s",
		m.styles.title.Render("ARRAY OPERATIONS"),
		m.styles.label.Render(fmt.Sprintf("step %d / %d", m.frame.Step, m.frame.Total)),
		m.styles.progressBar(m.frame.Step, m.frame.Total, barWidth),
		status,
		m.styles.muted.Render(m.theme.Name),
	)
}

func (m Model) help() string {
	rows := [][2]string{
		{"→ l n", "next step"},
		{"← h p", "previous step"},
		{"space a", "toggle auto-play"},
		{"r", "reset to first step"},
		{"g", "toggle graph panel"},
		{"t", "cycle theme"},
		{"?", "toggle help"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(m.styles.label.Width(10).Render(r[0]))
		b.WriteString(m.styles.muted.Render(r[1]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the interactive program on the terminal.
func Run(s *player.Session, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
