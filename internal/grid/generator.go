package grid

import "fmt"

// DefaultRows, DefaultCols and DefaultWallProbability match the classic
// 20x20 demo maze.
const (
	DefaultRows            = 20
	DefaultCols            = 20
	DefaultWallProbability = 0.3
)

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *SimpleRNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Generated is a random maze together with its endpoints.
type Generated struct {
	Grid            *Grid
	Start           Cell
	Destination     Cell
	Seed            uint64
	WallProbability float64
}

// Generate builds a rows x cols maze. Each interior cell (excluding the
// outer ring) becomes a wall with probability wallProbability. Start is
// placed at (1,1) and Destination at (rows-2, cols-2); both are marked on
// the grid and never walls. The same seed always yields the same maze.
func Generate(rows, cols int, wallProbability float64, seed uint64) (Generated, error) {
	if rows < 3 || cols < 3 || (rows == 3 && cols == 3) {
		return Generated{}, fmt.Errorf("%w: %dx%d cannot hold distinct interior endpoints", ErrInvalidSize, rows, cols)
	}
	if !(wallProbability >= 0 && wallProbability <= 1) { // rejects NaN too
		return Generated{}, fmt.Errorf("%w: got %v", ErrInvalidProbability, wallProbability)
	}

	rng := NewRNG(seed)
	states := make([][]State, rows)
	for r := range states {
		states[r] = make([]State, cols)
	}
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if rng.Float() < wallProbability {
				states[r][c] = Wall
			}
		}
	}

	start := C(1, 1)
	dest := C(rows-2, cols-2)
	states[start.Row][start.Col] = Start
	states[dest.Row][dest.Col] = Destination

	g, err := FromStates(states)
	if err != nil {
		return Generated{}, err
	}
	return Generated{Grid: g, Start: start, Destination: dest, Seed: seed, WallProbability: wallProbability}, nil
}
