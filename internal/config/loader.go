package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the pathlab configuration.
// Search order: customPath -> ~/.pathlab/config.yaml -> ./configs/pathlab.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is validated.
func Load(customPath string) (Config, error) {
	return LoadWithOverrides(customPath, nil)
}

// LoadWithOverrides is Load with a hook that adjusts the loaded config,
// typically from command-line flags. Validation runs once, after apply.
func LoadWithOverrides(customPath string, apply func(*Config)) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if apply != nil {
		apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pathlab.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config configs/pathlab.yaml: %w", err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathlab", filename)
}
