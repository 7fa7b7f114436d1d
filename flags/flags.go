// Package flags defines the CLI flags of a suitekit entrypoint.
package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "SUITEKIT"

// prefixEnvVars prefixes each env var name with the SUITEKIT namespace.
func prefixEnvVars(name string) []string {
	return []string{fmt.Sprintf("%s_%s", EnvVarPrefix, name)}
}

var (
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Value:   "",
		EnvVars: prefixEnvVars("CONFIG"),
		Usage:   "Path to the optional yaml run configuration file (eg. 'suitekit.yaml')",
	}
	OutDir = &cli.StringFlag{
		Name:    "outdir",
		Value:   "results",
		EnvVars: prefixEnvVars("OUTDIR"),
		Usage:   "Directory to write per-run summary files to",
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: prefixEnvVars("RUN_INTERVAL"),
		Usage:   "Interval between test runs (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
	DefaultTimeout = &cli.DurationFlag{
		Name:    "default-timeout",
		Value:   0,
		EnvVars: prefixEnvVars("DEFAULT_TIMEOUT"),
		Usage:   "Deadline applied to tests without an explicit timeout. 0 leaves them unbounded.",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Log level (trace, debug, info, warn, error)",
	}
	Serve = &cli.BoolFlag{
		Name:    "serve",
		Value:   false,
		EnvVars: prefixEnvVars("SERVE"),
		Usage:   "Start the healthz and metrics HTTP servers for the duration of the run",
	}
)

var requiredFlags = []cli.Flag{}

var optionalFlags = []cli.Flag{
	ConfigFile,
	OutDir,
	RunInterval,
	DefaultTimeout,
	LogLevel,
	Serve,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
