package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "planets.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.planets/configs/planets.yaml -> ./configs/planets.yaml -> embedded default.
// Files only need to set the fields they override; everything else keeps its default.
func Load(customPath string) (PlanetsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlanetsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultPlanetsConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPlanetsYAML)
	if err != nil {
		return DefaultPlanetsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (PlanetsConfig, error) {
	cfg := DefaultPlanetsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPlanetsConfig(), err
	}
	if len(cfg.Scenes.Build) == 0 {
		cfg.Scenes.Build = DefaultPlanetsConfig().Scenes.Build
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planets", "configs", filename)
}
