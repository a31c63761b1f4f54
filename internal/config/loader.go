package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "brickbot.yaml"

// Load loads the brickbot configuration.
// Search order: customPath -> ~/.brickbot/configs/brickbot.yaml -> ./configs/brickbot.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only changes what it names.
func Load(customPath string) (BrickbotConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickbotConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BrickbotConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBrickbotYAML)
	if err != nil {
		return DefaultBrickbotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, clamps the pose and
// validates the result.
func Parse(data []byte) (BrickbotConfig, error) {
	cfg := DefaultBrickbotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrickbotConfig{}, err
	}
	cfg.clampPose()
	if err := cfg.Validate(); err != nil {
		return BrickbotConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func Marshal(cfg BrickbotConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbot", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BrickbotConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyFixed {
		return
	}
	cfg.Difficulty.Level = LevelForPreset(preset)

	// Harder presets also shrink the energy budget
	switch preset {
	case DifficultyEasy:
		cfg.Robot.MaxEnergy += cfg.Robot.MaxEnergy / 2
	case DifficultyHard:
		cfg.Robot.MaxEnergy -= cfg.Robot.MaxEnergy / 4
	}
}
