package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/pathlab/internal/grid"
)

func TestGenerateDeterminism(t *testing.T) {
	a, err := grid.Generate(20, 20, 0.3, 12345)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := grid.Generate(20, 20, 0.3, 12345)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for r := 0; r < 20; r++ {
		for c := 0; c < 20; c++ {
			cell := grid.C(r, c)
			if a.Grid.At(cell) != b.Grid.At(cell) {
				t.Fatalf("same seed produced different mazes at %v", cell)
			}
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	gen, err := grid.Generate(10, 12, 0.5, 7)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	g := gen.Grid

	if gen.Start != grid.C(1, 1) {
		t.Errorf("Start = %v; want (1,1)", gen.Start)
	}
	if gen.Destination != grid.C(8, 10) {
		t.Errorf("Destination = %v; want (8,10)", gen.Destination)
	}
	if g.At(gen.Start) != grid.Start || g.At(gen.Destination) != grid.Destination {
		t.Error("endpoints are not marked on the grid")
	}

	// The outer ring never holds walls.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			border := r == 0 || c == 0 || r == g.Rows()-1 || c == g.Cols()-1
			if border && g.At(grid.C(r, c)) == grid.Wall {
				t.Fatalf("wall on outer ring at %v", grid.C(r, c))
			}
		}
	}
}

func TestGenerateProbabilityExtremes(t *testing.T) {
	open, err := grid.Generate(6, 6, 0, 1)
	if err != nil {
		t.Fatalf("Generate(p=0) failed: %v", err)
	}
	if open.Grid.PassableCount() != 36 {
		t.Errorf("p=0: PassableCount() = %d; want 36", open.Grid.PassableCount())
	}

	full, err := grid.Generate(6, 6, 1, 1)
	if err != nil {
		t.Fatalf("Generate(p=1) failed: %v", err)
	}
	// 16 interior cells, two of them are endpoints.
	if full.Grid.PassableCount() != 36-14 {
		t.Errorf("p=1: PassableCount() = %d; want %d", full.Grid.PassableCount(), 36-14)
	}
}

func TestGenerateErrors(t *testing.T) {
	testCases := []struct {
		name       string
		rows, cols int
		p          float64
		err        error
	}{
		{"TooFewRows", 2, 10, 0.3, grid.ErrInvalidSize},
		{"TooFewCols", 10, 2, 0.3, grid.ErrInvalidSize},
		{"ThreeByThree", 3, 3, 0.3, grid.ErrInvalidSize},
		{"NegativeProbability", 10, 10, -0.1, grid.ErrInvalidProbability},
		{"ProbabilityAboveOne", 10, 10, 1.5, grid.ErrInvalidProbability},
		{"ProbabilityNaN", 10, 10, math.NaN(), grid.ErrInvalidProbability},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Generate(tc.rows, tc.cols, tc.p, 1)
			if !errors.Is(err, tc.err) {
				t.Errorf("Generate() error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestRNGFloatRange(t *testing.T) {
	rng := grid.NewRNG(0)
	for i := 0; i < 1000; i++ {
		f := rng.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %v; want [0, 1)", f)
		}
	}
}
