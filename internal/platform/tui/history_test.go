package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/storage"
)

type fakeHistory struct {
	runs    []storage.RunSummary
	results map[string][]storage.ResultEntry
	stats   []storage.StrategyStats
}

func (f *fakeHistory) RecentRuns(ctx context.Context, limit int) ([]storage.RunSummary, error) {
	return f.runs, nil
}

func (f *fakeHistory) RunResults(ctx context.Context, runID string) ([]storage.ResultEntry, error) {
	return f.results[runID], nil
}

func (f *fakeHistory) StrategyStats(ctx context.Context) ([]storage.StrategyStats, error) {
	return f.stats, nil
}

func newFakeHistory() *fakeHistory {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeHistory{
		runs: []storage.RunSummary{
			{ID: "a", Seed: 11, Rows: 20, Cols: 20, WallProbability: 0.3, Start: grid.C(1, 1), Destination: grid.C(18, 18), BestEdges: 34, CreatedAt: at},
			{ID: "b", Seed: 22, Rows: 10, Cols: 12, WallProbability: 0.5, Start: grid.C(1, 1), Destination: grid.C(8, 10), BestEdges: -1, CreatedAt: at},
		},
		results: map[string][]storage.ResultEntry{
			"a": {{RunID: "a", Strategy: "flood", Found: true, Movements: 61, Work: 120}},
			"b": {{RunID: "b", Strategy: "astar:manhattan", Found: false, Work: 17}},
		},
		stats: []storage.StrategyStats{
			{Strategy: "astar:manhattan", Runs: 2, Found: 1, Optimal: 1, AvgWork: 40},
			{Strategy: "flood", Runs: 2, Found: 1, AvgWork: 70},
		},
	}
}

func updateHistory(t *testing.T, m HistoryModel, msg tea.Msg) HistoryModel {
	t.Helper()
	next, _ := m.Update(msg)
	hm, ok := next.(HistoryModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return hm
}

func TestHistoryLoadsRunsAndResults(t *testing.T) {
	m := NewHistoryModel(newFakeHistory(), 120, 40)

	view := m.View()
	if !strings.Contains(view, "RUN HISTORY") {
		t.Error("missing title")
	}
	if !strings.Contains(view, "20x20") {
		t.Error("runs table should list grid sizes")
	}
	run, ok := m.Selected()
	if !ok || run.ID != "a" {
		t.Fatalf("Selected() = %v, %v", run.ID, ok)
	}
	if len(m.results) != 1 || m.results[0].Strategy != "flood" {
		t.Errorf("results for first run not loaded: %+v", m.results)
	}

	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyDown})
	run, _ = m.Selected()
	if run.ID != "b" {
		t.Errorf("after down, selected %q", run.ID)
	}
	if len(m.results) != 1 || m.results[0].Strategy != "astar:manhattan" {
		t.Errorf("results not reloaded on cursor move: %+v", m.results)
	}
}

func TestHistorySwitchToStrategies(t *testing.T) {
	m := NewHistoryModel(newFakeHistory(), 120, 40)

	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.pane != paneStrategies {
		t.Fatal("tab should switch panes")
	}
	if _, ok := m.Selected(); ok {
		t.Error("no run is selected on the strategies pane")
	}
	if !strings.Contains(m.View(), "STRATEGY STATS") {
		t.Error("missing strategies title")
	}

	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.pane != paneRuns {
		t.Error("tab should switch back to runs")
	}
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(&fakeHistory{}, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}
}
