package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathlab/internal/heuristic"
	"github.com/vovakirdan/pathlab/internal/search"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List available strategies",
	Long: `Shows every strategy that run and view accept. A* strategies marked
optimal always return a shortest path; the others may not.`,
	Args: cobra.NoArgs,
	Run:  runStrategies,
}

func runStrategies(_ *cobra.Command, _ []string) {
	strategies := []search.Strategy{search.FloodFillStrategy}
	for _, info := range heuristic.List() {
		strategies = append(strategies, search.AStarWith(info.Name))
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s) > maxIDLen {
			maxIDLen = len(s)
		}
	}

	fmt.Println("Available strategies:")
	fmt.Println()
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Optimal")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "-------")
	for _, s := range strategies {
		optimal := "no"
		if s.Admissible() {
			optimal = "yes"
		}
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, s, s.Title(), optimal)
	}

	fmt.Println()
	fmt.Println("Default comparison order:")
	for _, s := range search.DefaultStrategies() {
		fmt.Printf("  %s\n", s)
	}
	fmt.Println()
	fmt.Println("Pass a strategy with 'pathlab run --strategy <id>'; a bare heuristic name means A*.")
}
