package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/render"
	"github.com/vovakirdan/pathlab/internal/search"
)

func testReport(t *testing.T) *bench.Report {
	t.Helper()
	g := grid.MustParse(`
		..#..
		..#..
		..#..
		..#..
		.....
	`)
	report, err := bench.Compare(context.Background(), g, grid.C(0, 0), grid.C(0, 4), bench.Options{
		Strategies: []search.Strategy{search.FloodFillStrategy, search.AStarWith("manhattan")},
	})
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	return report
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestViewerPlaysToCompletion(t *testing.T) {
	m := NewModel(testReport(t), ViewerConfig{Theme: render.PlainTheme()})
	total := m.total()
	if total == 0 {
		t.Fatal("flood fill should expand cells")
	}

	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		m, cmd = update(t, m, tickMsg{gen: m.gen})
	}
	if !m.done() {
		t.Fatalf("expected done after %d ticks, step=%d", total, m.step)
	}
	if m.playing {
		t.Error("playback should stop when done")
	}
	if cmd != nil {
		t.Error("no further tick should be scheduled when done")
	}
	if !strings.Contains(m.View(), "done") {
		t.Error("status line should say done")
	}
}

func TestViewerIgnoresStaleTicks(t *testing.T) {
	m := NewModel(testReport(t), ViewerConfig{Theme: render.PlainTheme()})
	stale := m.gen

	m, _ = update(t, m, runeKey('l')) // next strategy bumps the generation
	m, _ = update(t, m, tickMsg{gen: stale})
	if m.step != 0 {
		t.Errorf("stale tick advanced playback to %d", m.step)
	}

	m, _ = update(t, m, tickMsg{gen: m.gen})
	if m.step != 1 {
		t.Errorf("current tick should advance to 1, got %d", m.step)
	}
}

func TestViewerCyclesStrategies(t *testing.T) {
	m := NewModel(testReport(t), ViewerConfig{Theme: render.PlainTheme()})

	m, _ = update(t, m, runeKey('l'))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m, _ = update(t, m, runeKey('l'))
	if m.cursor != 0 {
		t.Fatalf("cursor should wrap to 0, got %d", m.cursor)
	}
	m, _ = update(t, m, runeKey('h'))
	if m.cursor != 1 {
		t.Fatalf("cursor should wrap back to 1, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "A* (Manhattan)") {
		t.Error("view should name the selected strategy")
	}
}

func TestViewerStepFinishAndSpeed(t *testing.T) {
	m := NewModel(testReport(t), ViewerConfig{Theme: render.PlainTheme()})

	m, _ = update(t, m, runeKey('.'))
	if m.step != 1 || m.playing {
		t.Errorf("step key: step=%d playing=%v", m.step, m.playing)
	}

	m, _ = update(t, m, runeKey('+'))
	m, _ = update(t, m, runeKey('+'))
	if m.speed != 4 {
		t.Errorf("speed = %d, want 4", m.speed)
	}
	m, _ = update(t, m, runeKey('-'))
	if m.speed != 2 {
		t.Errorf("speed = %d, want 2", m.speed)
	}

	m, _ = update(t, m, runeKey('e'))
	if !m.done() {
		t.Error("finish key should jump to the end")
	}
	if !strings.Contains(m.View(), string(render.GlyphPath)) {
		t.Error("path should be drawn once playback is done")
	}

	// Play on a finished animation replays it.
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.step != 0 || !m.playing || cmd == nil {
		t.Errorf("replay: step=%d playing=%v cmd=%v", m.step, m.playing, cmd != nil)
	}
}

func TestViewerRegenerate(t *testing.T) {
	fresh := testReport(t)
	saved := 0
	saver := saverFunc(func(ctx context.Context, r *bench.Report) (string, error) {
		saved++
		return "id", nil
	})

	m := NewModel(testReport(t), ViewerConfig{
		Theme:  render.PlainTheme(),
		Source: func(ctx context.Context) (*bench.Report, error) { return fresh, nil },
		Saver:  saver,
	})

	m, cmd := update(t, m, runeKey('n'))
	if cmd == nil || !m.loading {
		t.Fatal("regenerate should start loading")
	}
	msg := cmd()
	if saved != 1 {
		t.Errorf("regenerated report saved %d times, want 1", saved)
	}

	m, _ = update(t, m, msg)
	if m.loading {
		t.Error("loading should clear after report arrives")
	}
	if m.Report() != fresh {
		t.Error("viewer should show the regenerated report")
	}
}

func TestViewerRegenerateError(t *testing.T) {
	m := NewModel(testReport(t), ViewerConfig{
		Theme: render.PlainTheme(),
		Source: func(ctx context.Context) (*bench.Report, error) {
			return nil, errors.New("boom")
		},
	})
	original := m.Report()

	m, cmd := update(t, m, runeKey('n'))
	m, _ = update(t, m, cmd())
	if m.Report() != original {
		t.Error("failed regenerate must keep the old report")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("error should be shown in the status line")
	}
}

func TestViewerQuit(t *testing.T) {
	m := NewModel(testReport(t), ViewerConfig{Theme: render.PlainTheme()})
	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

type saverFunc func(ctx context.Context, r *bench.Report) (string, error)

func (f saverFunc) SaveReport(ctx context.Context, r *bench.Report) (string, error) {
	return f(ctx, r)
}
