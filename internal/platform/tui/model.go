package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/render"
)

// Animation speed bounds, in expanded cells per tick.
const (
	minSpeed = 1
	maxSpeed = 64
)

// ReportSource produces a fresh comparison report, typically by generating
// a new maze. Used by the regenerate key.
type ReportSource func(ctx context.Context) (*bench.Report, error)

// ViewerConfig configures a Model.
type ViewerConfig struct {
	TickRate int
	Theme    render.Theme
	// Source is optional. Without it the regenerate key does nothing.
	Source ReportSource
	// Saver is optional. Regenerated reports are saved through it.
	Saver bench.ReportSaver
	Width  int
	Height int
}

// reportMsg delivers a regenerated report.
type reportMsg struct {
	report *bench.Report
	err    error
}

// Model is the Bubble Tea model that replays each strategy's expansion
// order over the maze and then shows the path it found.
type Model struct {
	report *bench.Report
	config ViewerConfig
	keys   ViewerKeyMap
	help   help.Model
	table  table.Model

	cursor       int // selected strategy row
	step         int // expanded cells shown
	speed        int // cells per tick
	playing      bool
	gen          int // animation generation, see tickMsg
	showExplored bool
	showTable    bool
	loading      bool
	status       string
	quitting     bool
}

// NewModel creates a viewer for the given report. Playback starts at once.
func NewModel(report *bench.Report, cfg ViewerConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		report:       report,
		config:       cfg,
		keys:         DefaultViewerKeyMap(),
		help:         h,
		speed:        minSpeed,
		showExplored: true,
		showTable:    true,
		playing:      true,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable builds the comparison table shown under the maze.
func (m *Model) createTable() table.Model {
	columns := make([]table.Column, len(render.ComparisonHeaders))
	for i, title := range render.ComparisonHeaders {
		width := len(title) + 2
		if i == 0 {
			width = 18
		}
		columns[i] = table.Column{Title: title, Width: width}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(m.report.Results)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *Model) updateTableRows() {
	cells := render.ComparisonRows(m.report)
	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = table.Row(c)
	}
	m.table.SetRows(rows)
	m.table.SetCursor(m.cursor)
}

// Init starts the animation.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.Width = msg.Width
		m.config.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case reportMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "regenerate failed: " + msg.err.Error()
			return m, nil
		}
		m.report = msg.report
		m.status = ""
		if m.cursor >= len(m.report.Results) {
			m.cursor = 0
		}
		m.table = m.createTable()
		m.updateTableRows()
		return m.restart()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.selectRow(m.cursor + 1)

	case key.Matches(msg, m.keys.Prev):
		return m.selectRow(m.cursor - 1)

	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.done() {
			return m.restart()
		}
		m.playing = true
		m.gen++
		return m, tickCmd(m.config.TickRate, m.gen)

	case key.Matches(msg, m.keys.Step):
		m.playing = false
		m.advance(1)
		return m, nil

	case key.Matches(msg, m.keys.Finish):
		m.playing = false
		m.step = m.total()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Faster):
		m.speed = min(m.speed*2, maxSpeed)
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.speed = max(m.speed/2, minSpeed)
		return m, nil

	case key.Matches(msg, m.keys.Explored):
		m.showExplored = !m.showExplored
		return m, nil

	case key.Matches(msg, m.keys.Table):
		m.showTable = !m.showTable
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		if m.config.Source == nil || m.loading {
			return m, nil
		}
		m.loading = true
		m.playing = false
		m.status = "generating..."
		return m, m.regenerate()
	}

	return m, nil
}

// handleTick advances playback by the current speed.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.playing {
		return m, nil
	}
	m.advance(m.speed)
	if m.done() {
		m.playing = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m Model) selectRow(i int) (tea.Model, tea.Cmd) {
	n := len(m.report.Results)
	if n == 0 {
		return m, nil
	}
	m.cursor = (i%n + n) % n
	m.table.SetCursor(m.cursor)
	return m.restart()
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.step = 0
	m.playing = true
	m.gen++
	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m Model) regenerate() tea.Cmd {
	source, saver := m.config.Source, m.config.Saver
	return func() tea.Msg {
		ctx := context.Background()
		report, err := source(ctx)
		if err == nil && saver != nil {
			//nolint:errcheck // Best-effort save, viewer continues regardless
			saver.SaveReport(ctx, report)
		}
		return reportMsg{report: report, err: err}
	}
}

func (m *Model) advance(n int) {
	m.step = min(m.step+n, m.total())
}

// total is the number of animation steps for the selected strategy.
func (m Model) total() int {
	row, ok := m.current()
	if !ok {
		return 0
	}
	return len(row.Result.Expanded)
}

func (m Model) done() bool {
	return m.step >= m.total()
}

func (m Model) current() (bench.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.report.Results) {
		return bench.Row{}, false
	}
	return m.report.Results[m.cursor], true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	theme := m.config.Theme

	var b strings.Builder
	row, ok := m.current()
	title := "pathlab"
	if ok {
		title = fmt.Sprintf("pathlab - %s (%d/%d)", row.Title, m.cursor+1, len(m.report.Results))
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(render.Summary(m.report, theme))
	b.WriteString("\n\n")

	overlay := render.Overlay{Start: &m.report.Start, Destination: &m.report.Destination}
	if ok {
		if m.showExplored {
			overlay.Explored = row.Result.Expanded[:m.step]
		}
		if m.done() {
			overlay.Path = row.Result.Path
		}
	}
	b.WriteString(render.Styled(m.report.Grid, overlay, theme))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine(row, ok))
	b.WriteString("\n")

	if m.showTable {
		b.WriteString("\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(render.Legend(theme))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine(row bench.Row, ok bool) string {
	theme := m.config.Theme
	if !ok {
		return theme.Bad.Render("no strategies")
	}

	state := "paused"
	switch {
	case m.loading:
		state = "loading"
	case m.done():
		state = "done"
	case m.playing:
		state = "playing"
	}

	parts := []string{
		fmt.Sprintf("step %d/%d", m.step, m.total()),
		fmt.Sprintf("speed x%d", m.speed),
		state,
	}
	if m.done() {
		if row.Result.Found() {
			parts = append(parts, fmt.Sprintf("movements %d", row.Movements()))
		} else {
			parts = append(parts, "no path")
		}
		parts = append(parts, fmt.Sprintf("work %d", row.Result.Work))
	}
	line := theme.Label.Render(strings.Join(parts, "  "))
	if m.status != "" {
		line += "  " + theme.Bad.Render(m.status)
	}
	return line
}

// Report returns the report currently shown.
func (m Model) Report() *bench.Report {
	return m.report
}

// Run starts the Bubble Tea program with the given report.
func Run(report *bench.Report, cfg ViewerConfig) error {
	model := NewModel(report, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
