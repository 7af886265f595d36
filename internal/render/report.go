package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/pathlab/internal/bench"
)

// ComparisonHeaders are the columns of the comparison table.
var ComparisonHeaders = []string{"Strategy", "Found", "Movements", "Work", "Optimal", "Time"}

// ComparisonRows formats report rows as table cells, in report order.
func ComparisonRows(r *bench.Report) [][]string {
	rows := make([][]string, len(r.Results))
	for i, row := range r.Results {
		movements := "-"
		if row.Result.Found() {
			movements = strconv.Itoa(row.Movements())
		}
		rows[i] = []string{
			row.Title,
			yesNo(row.Result.Found()),
			movements,
			strconv.Itoa(row.Result.Work),
			yesNo(row.Optimal),
			FormatElapsed(row.Elapsed),
		}
	}
	return rows
}

// Comparison renders the report as a bordered table.
func Comparison(r *bench.Report, theme Theme) string {
	rows := ComparisonRows(r)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Border).
		Headers(ComparisonHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Title.Inherit(cell)
			}
			if row < 0 || row >= len(r.Results) {
				return cell
			}
			res := r.Results[row]
			switch ComparisonHeaders[col] {
			case "Found":
				if res.Result.Found() {
					return theme.Good.Inherit(cell)
				}
				return theme.Bad.Inherit(cell)
			case "Optimal":
				if res.Optimal {
					return theme.Good.Inherit(cell)
				}
				return theme.Label.Inherit(cell)
			}
			return theme.Value.Inherit(cell)
		})
	return t.String()
}

// Summary describes the grid a report was run on, in one line.
func Summary(r *bench.Report, theme Theme) string {
	parts := []string{
		field(theme, "grid", fmt.Sprintf("%dx%d", r.Grid.Rows(), r.Grid.Cols())),
	}
	if r.Seed != 0 || r.WallProbability != 0 {
		parts = append(parts,
			field(theme, "seed", strconv.FormatUint(r.Seed, 10)),
			field(theme, "walls", fmt.Sprintf("%.2f", r.WallProbability)),
		)
	}
	parts = append(parts,
		field(theme, "start", r.Start.String()),
		field(theme, "destination", r.Destination.String()),
		field(theme, "reachable", strconv.Itoa(r.Reachable)),
	)
	if r.Found() {
		parts = append(parts, field(theme, "shortest", fmt.Sprintf("%d moves", r.BestEdges)))
	} else {
		parts = append(parts, theme.Bad.Render("no path"))
	}
	return strings.Join(parts, theme.Border.Render(" | "))
}

// StrategyBlock renders one strategy's maze with its headline numbers,
// the way the comparison prints each strategy in turn.
func StrategyBlock(r *bench.Report, row bench.Row, theme Theme) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(row.Title))
	sb.WriteByte('\n')
	sb.WriteString(Styled(r.Grid, Overlay{
		Path:        row.Result.Path,
		Start:       &r.Start,
		Destination: &r.Destination,
	}, theme))
	sb.WriteByte('\n')
	if row.Result.Found() {
		sb.WriteString(field(theme, "Total movements", strconv.Itoa(row.Movements())))
	} else {
		sb.WriteString(theme.Bad.Render("No path found"))
	}
	sb.WriteString("  ")
	sb.WriteString(field(theme, "Comparisons", strconv.Itoa(row.Result.Work)))
	sb.WriteString("  ")
	sb.WriteString(field(theme, "Time", FormatElapsed(row.Elapsed)))
	return sb.String()
}

// FormatElapsed rounds a duration for display.
func FormatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}

func field(theme Theme, label, value string) string {
	return theme.Label.Render(label+":") + " " + theme.Value.Render(value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
