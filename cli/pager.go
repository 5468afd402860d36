package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ka2n/minigrep/grep"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// pagerModel represents the state for the results pager
type pagerModel struct {
	viewport viewport.Model
	header   string
	content  string
	ready    bool
}

// NewPager creates a new pager model showing results for cfg.
// Matches are highlighted with r; a nil r leaves them plain.
func NewPager(cfg grep.Config, results []string, r *lipgloss.Renderer) *pagerModel {
	mode := "case-sensitive"
	if cfg.IgnoreCase {
		mode = "ignore case"
	}

	lines := results
	if r != nil {
		style := matchStyle(r)
		lines = make([]string, len(results))
		for i, line := range results {
			lines[i] = highlight(line, cfg.Query, cfg.IgnoreCase, style)
		}
	}

	return &pagerModel{
		header:  fmt.Sprintf("%q in %s (%s): %d matches", cfg.Query, cfg.FilePath, mode, len(results)),
		content: strings.Join(lines, "\n"),
	}
}

// Init initializes the pager model
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update handles user input and updates the model state
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		// header and help line
		height := msg.Height - 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the current state of the model
func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}
	help := fmt.Sprintf("↑/k up • ↓/j down • space/f forward • b back • g top • G bottom • q quit • %3.f%%",
		m.viewport.ScrollPercent()*100)
	return headerStyle.Render(m.header) + "\n" + m.viewport.View() + "\n" + helpStyle.Render(help)
}

// RunPager starts the pager program with the given results
func RunPager(cfg grep.Config, results []string, r *lipgloss.Renderer) error {
	p := tea.NewProgram(
		NewPager(cfg, results, r),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
