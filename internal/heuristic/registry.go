package heuristic

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown indicates a heuristic name that is not registered.
var ErrUnknown = errors.New("heuristic: unknown heuristic")

// Names of the built-in heuristics.
const (
	NameManhattan = "manhattan"
	NameEuclidean = "euclidean"
	NameDiagonal  = "diagonal"
	NameChebyshev = "chebyshev"
	NameZero      = "zero"
)

// Info describes a registered heuristic.
type Info struct {
	Name  string
	Title string
	Func  Func
	// Admissible marks heuristics that are guaranteed optimal for
	// 4-directional movement in comparison reports.
	Admissible bool
}

var (
	entries = make(map[string]Info)
	mu      sync.RWMutex
)

func init() {
	Register(Info{Name: NameManhattan, Title: "Manhattan", Func: Manhattan, Admissible: true})
	Register(Info{Name: NameEuclidean, Title: "Euclidean", Func: Euclidean, Admissible: true})
	Register(Info{Name: NameDiagonal, Title: "Diagonal", Func: Diagonal})
	Register(Info{Name: NameChebyshev, Title: "Chebyshev", Func: Chebyshev})
	Register(Info{Name: NameZero, Title: "Zero (Dijkstra)", Func: Zero, Admissible: true})
}

// Register adds a heuristic to the registry.
// Panics if the name is empty, already registered, or has no Func.
func Register(info Info) {
	mu.Lock()
	defer mu.Unlock()

	if info.Name == "" || info.Func == nil {
		panic("heuristic: Register requires a name and a func")
	}
	if _, exists := entries[info.Name]; exists {
		panic(fmt.Sprintf("heuristic: %q already registered", info.Name))
	}
	if info.Title == "" {
		info.Title = info.Name
	}
	entries[info.Name] = info
}

// Lookup returns the heuristic registered under name.
func Lookup(name string) (Info, error) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := entries[name]
	if !ok {
		return Info{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return info, nil
}

// List returns all registered heuristics, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, info := range entries {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Names returns the sorted names of all registered heuristics.
func Names() []string {
	list := List()
	names := make([]string, len(list))
	for i, info := range list {
		names[i] = info.Name
	}
	return names
}
