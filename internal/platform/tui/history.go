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

	"github.com/vovakirdan/pathlab/internal/render"
	"github.com/vovakirdan/pathlab/internal/storage"
)

// History layout constants
const (
	minWidthForDetail = 100 // Minimum width to show run details beside the table
	maxRuns           = 100 // Max runs to load
)

// HistorySource is the subset of storage the history browser reads.
type HistorySource interface {
	RecentRuns(ctx context.Context, limit int) ([]storage.RunSummary, error)
	RunResults(ctx context.Context, runID string) ([]storage.ResultEntry, error)
	StrategyStats(ctx context.Context) ([]storage.StrategyStats, error)
}

type historyPane int

const (
	paneRuns historyPane = iota
	paneStrategies
)

// HistoryModel is the Bubble Tea model for browsing stored runs.
type HistoryModel struct {
	source   HistorySource
	pane     historyPane
	runs     []storage.RunSummary
	results  []storage.ResultEntry // results of the selected run
	stats    []storage.StrategyStats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	err      error
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history browser and loads the newest runs.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *HistoryModel) reload() {
	ctx := context.Background()
	m.err = nil

	runs, err := m.source.RecentRuns(ctx, maxRuns)
	if err != nil {
		m.err = err
		runs = nil
	}
	m.runs = runs

	stats, err := m.source.StrategyStats(ctx)
	if err != nil {
		m.err = err
		stats = nil
	}
	m.stats = stats

	m.table = m.createTable()
	m.updateTableRows()
	m.loadResults()
}

// createTable creates a new table with columns for the active pane.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	switch m.pane {
	case paneStrategies:
		columns = []table.Column{
			{Title: "Strategy", Width: 18},
			{Title: "Runs", Width: 6},
			{Title: "Found", Width: 6},
			{Title: "Optimal", Width: 8},
			{Title: "Avg work", Width: 10},
			{Title: "Avg moves", Width: 10},
			{Title: "Avg time", Width: 12},
		}
	default:
		columns = []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Grid", Width: 8},
			{Title: "Seed", Width: 20},
			{Title: "Walls", Width: 6},
			{Title: "Shortest", Width: 9},
		}
	}

	height := m.height - 10 // Leave room for header, details, help
	if height < 5 {
		height = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the table for the active pane.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.pane {
	case paneStrategies:
		rows = make([]table.Row, len(m.stats))
		for i, st := range m.stats {
			rows[i] = table.Row{
				st.Strategy,
				fmt.Sprintf("%d", st.Runs),
				fmt.Sprintf("%d", st.Found),
				fmt.Sprintf("%d", st.Optimal),
				fmt.Sprintf("%.1f", st.AvgWork),
				fmt.Sprintf("%.1f", st.AvgMovements),
				render.FormatElapsed(st.AvgElapsed),
			}
		}
	default:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			shortest := "none"
			if r.BestEdges >= 0 {
				shortest = fmt.Sprintf("%d", r.BestEdges)
			}
			rows[i] = table.Row{
				r.CreatedAt.Local().Format("Jan 02 15:04"),
				fmt.Sprintf("%dx%d", r.Rows, r.Cols),
				fmt.Sprintf("%d", r.Seed),
				fmt.Sprintf("%.2f", r.WallProbability),
				shortest,
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// loadResults loads the strategy rows of the selected run.
func (m *HistoryModel) loadResults() {
	m.results = nil
	if m.pane != paneRuns || len(m.runs) == 0 {
		return
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return
	}
	results, err := m.source.RunResults(context.Background(), m.runs[i].ID)
	if err != nil {
		m.err = err
		return
	}
	m.results = results
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.pane == paneRuns {
				m.pane = paneStrategies
			} else {
				m.pane = paneRuns
			}
			m.table = m.createTable()
			m.updateTableRows()
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadResults()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.loadResults()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := "RUN HISTORY"
	if m.pane == paneStrategies {
		title = "STRATEGY STATS"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	main := boxStyle.Render(m.renderTableContent())
	if m.pane == paneRuns && len(m.results) > 0 {
		detail := boxStyle.Render(m.renderResults())
		if m.width >= minWidthForDetail {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", detail)
		} else {
			main = lipgloss.JoinVertical(lipgloss.Left, main, detail)
		}
	}
	b.WriteString(main)

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	empty := m.pane == paneRuns && len(m.runs) == 0 ||
		m.pane == paneStrategies && len(m.stats) == 0
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nRun 'pathlab run' to record one!")
	}
	return m.table.View()
}

// renderResults lists the strategies of the selected run.
func (m HistoryModel) renderResults() string {
	var b strings.Builder
	b.WriteString("Strategies\n")
	for _, r := range m.results {
		moves := "-"
		if r.Found {
			moves = fmt.Sprintf("%d", r.Movements)
		}
		mark := " "
		if r.Optimal {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-16s moves %4s  work %5d\n", mark, r.Strategy, moves, r.Work)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Selected returns the run under the cursor, if any.
func (m HistoryModel) Selected() (storage.RunSummary, bool) {
	if m.pane != paneRuns {
		return storage.RunSummary{}, false
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunSummary{}, false
	}
	return m.runs[i], true
}

// RunHistory runs the history browser.
func RunHistory(source HistorySource, width, height int) error {
	model := NewHistoryModel(source, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
