package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used to draw grids and reports.
type Theme struct {
	// Grid cells
	Empty       lipgloss.Style
	Wall        lipgloss.Style
	Start       lipgloss.Style
	Destination lipgloss.Style
	Path        lipgloss.Style
	Explored    lipgloss.Style

	// Report text
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Border lipgloss.Style
}

// DefaultTheme returns the standard colors: green path, dark walls,
// blue start, red destination.
func DefaultTheme() Theme {
	return Theme{
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Wall:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("0")),
		Start:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true), // Bright blue
		Destination: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Bright red
		Path:        lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true), // Lime green
		Explored:    lipgloss.NewStyle().Foreground(lipgloss.Color("178")),           // Muted yellow

		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// MonochromeTheme keeps the layout but drops colors, for dumb terminals.
func MonochromeTheme() Theme {
	theme := PlainTheme()
	theme.Wall = lipgloss.NewStyle().Reverse(true)
	theme.Path = lipgloss.NewStyle().Bold(true)
	theme.Title = lipgloss.NewStyle().Bold(true)
	return theme
}

// PlainTheme applies no styling at all.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Empty: plain, Wall: plain, Start: plain, Destination: plain, Path: plain, Explored: plain,
		Title: plain, Label: plain, Value: plain, Good: plain, Bad: plain, Border: plain,
	}
}

// ThemeByName resolves a theme name used in configuration.
// Unknown names fall back to the default theme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	case "plain", "none":
		return PlainTheme()
	default:
		return DefaultTheme()
	}
}
