package registry

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values can be written as "30s" or "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ReportConfig selects the run's output surfaces.
type ReportConfig struct {
	Table bool `yaml:"table"`
	Text  bool `yaml:"text"`
}

// RunConfig is the optional yaml run configuration file. Report is nil when
// the file has no report section, so callers can keep their defaults.
type RunConfig struct {
	DefaultTimeout Duration      `yaml:"default_timeout,omitempty"`
	OutDir         string        `yaml:"out_dir,omitempty"`
	RunInterval    Duration      `yaml:"run_interval,omitempty"`
	Report         *ReportConfig `yaml:"report,omitempty"`
}

// LoadRunConfig reads and validates a yaml run configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.DefaultTimeout < 0 {
		return nil, fmt.Errorf("default_timeout must not be negative, got %s", cfg.DefaultTimeout.Std())
	}
	if cfg.RunInterval < 0 {
		return nil, fmt.Errorf("run_interval must not be negative, got %s", cfg.RunInterval.Std())
	}

	return &cfg, nil
}
