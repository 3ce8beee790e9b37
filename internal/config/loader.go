package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSilverball loads the tilt-ball configuration.
// Search order: customPath -> ~/.silverball/configs/silverball.yaml -> ./configs/silverball.yaml -> embedded default
func LoadSilverball(customPath string) (SilverballConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultSilverballConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("silverball.yaml"), "configs/silverball.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultSilverballConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	embedded := DefaultSilverballConfig()
	if err := yaml.Unmarshal(defaultSilverballYAML, &embedded); err != nil {
		return DefaultSilverballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".silverball", "configs", filename)
}

// ApplySilverballPreset modifies the config based on a difficulty preset.
func ApplySilverballPreset(cfg *SilverballConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TimeScale *= 1.5
		cfg.Physics.BounceFactor = 0.2
	case DifficultyHard:
		cfg.Gameplay.TimeScale *= 0.75
		cfg.Physics.BounceFactor = 0.35
	}
}
