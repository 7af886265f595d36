package config

import (
	_ "embed"

	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/search"
)

//go:embed defaults/pathlab.yaml
var defaultYAML []byte

// DefaultDBPath is where run history is kept unless configured otherwise.
const DefaultDBPath = "~/.pathlab/history.db"

// Default returns the built-in configuration. It matches the embedded
// defaults/pathlab.yaml.
func Default() Config {
	strategies := search.DefaultStrategies()
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.String()
	}

	return Config{
		Grid: GridConfig{
			Rows:            grid.DefaultRows,
			Cols:            grid.DefaultCols,
			WallProbability: grid.DefaultWallProbability,
		},
		Search: SearchConfig{
			Strategies: names,
		},
		Storage: StorageConfig{
			Path: DefaultDBPath,
			Keep: 500,
		},
		Viewer: ViewerConfig{
			TickRate: 30,
			Theme:    "default",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        23234,
			HostKeyPath: ".ssh/pathlab_ed25519",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
