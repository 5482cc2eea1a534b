package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunnerFile is the config file name looked up in the search directories.
const RunnerFile = "runner.yaml"

// Source names used when reporting where a config came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadRunner loads the lane runner configuration and reports where it came from.
// Search order: customPath -> ~/.lanerun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file may override only some keys.
func LoadRunner(customPath string) (RunnerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeRunner(data)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RunnerConfig{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// A broken file here is skipped rather than fatal.
	for _, path := range []string{userConfigPath(RunnerFile), filepath.Join("configs", RunnerFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeRunner(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeRunner(defaultRunnerYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func decodeRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	// Lane positions are a list; drop the default so the file replaces it wholesale.
	cfg.Lanes.Positions = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if cfg.Lanes.Positions == nil {
		cfg.Lanes.Positions = DefaultRunnerConfig().Lanes.Positions
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c RunnerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanerun", "configs", filename)
}
