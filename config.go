// Package suitekit orchestrates the execution engine: it wires the registry,
// runner, reporting sinks and metrics into a runnable service.
package suitekit

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/suitekit/suitekit/flags"
	"github.com/suitekit/suitekit/registry"
)

// Config is the resolved run configuration of a suitekit service.
type Config struct {
	Log zerolog.Logger

	// OutDir is where per-run summary files are written.
	OutDir string
	// RunInterval is the pause between runs; zero means run-once mode.
	RunInterval time.Duration
	// RunOnce runs the registered classes a single time and exits.
	RunOnce bool
	// DefaultTimeout bounds tests without an explicit TimeoutSpec; zero
	// leaves them unbounded.
	DefaultTimeout time.Duration
	// ReportTable enables the console result table.
	ReportTable bool
	// ReportText enables the plain-text summary file sink.
	ReportText bool
}

// NewConfig resolves a Config from CLI flags and the optional yaml run
// configuration file. Flags win over file values.
func NewConfig(ctx *cli.Context, log zerolog.Logger) (*Config, error) {
	cfg := &Config{
		Log:            log,
		OutDir:         ctx.String(flags.OutDir.Name),
		RunInterval:    ctx.Duration(flags.RunInterval.Name),
		DefaultTimeout: ctx.Duration(flags.DefaultTimeout.Name),
		ReportTable:    true,
	}

	if path := ctx.String(flags.ConfigFile.Name); path != "" {
		fileCfg, err := registry.LoadRunConfig(path)
		if err != nil {
			return nil, err
		}
		if cfg.OutDir == flags.OutDir.Value && fileCfg.OutDir != "" {
			cfg.OutDir = fileCfg.OutDir
		}
		if cfg.RunInterval == 0 {
			cfg.RunInterval = fileCfg.RunInterval.Std()
		}
		if cfg.DefaultTimeout == 0 {
			cfg.DefaultTimeout = fileCfg.DefaultTimeout.Std()
		}
		if fileCfg.Report != nil {
			cfg.ReportTable = fileCfg.Report.Table
			cfg.ReportText = fileCfg.Report.Text
		}
	}

	cfg.RunOnce = cfg.RunInterval == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.RunInterval < 0 {
		return errors.New("run interval must not be negative")
	}
	if c.DefaultTimeout < 0 {
		return errors.New("default timeout must not be negative")
	}
	if c.ReportText && c.OutDir == "" {
		return errors.New("text report requires an output directory")
	}
	return nil
}
