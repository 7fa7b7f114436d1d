package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	suitekit "github.com/suitekit/suitekit"
	"github.com/suitekit/suitekit/exitcodes"
	"github.com/suitekit/suitekit/flags"
	"github.com/suitekit/suitekit/service"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "suitekit"
	app.Usage = "Annotation-driven test lifecycle runner"
	app.Description = "suitekit discovers annotated test methods, runs them with lifecycle hooks and deadlines, and reports each outcome"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if suitekit.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if suitekit.IsTestFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcodes.RuntimeErr)
	}
}

func run(ctx *cli.Context) error {
	log := newLogger(ctx.String(flags.LogLevel.Name))

	if err := flags.CheckRequired(ctx); err != nil {
		return suitekit.NewRuntimeError(err)
	}

	// Start telemetry
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(ctx.App.Name),
		otelconfig.WithServiceVersion(ctx.App.Version),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to set up open telemetry, continuing without it")
	} else {
		defer otelShutdown()
	}

	cfg, err := suitekit.NewConfig(ctx, log)
	if err != nil {
		return suitekit.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	if ctx.Bool(flags.Serve.Name) {
		svc := service.New()
		svc.Start(ctx.Context)
		defer svc.Shutdown()
	}

	// Demo suites; embedding programs register their own classes here.
	svc, err := suitekit.New(ctx.Context, cfg, Version, nil, demoClasses()...)
	if err != nil {
		return suitekit.NewRuntimeError(fmt.Errorf("failed to create service: %w", err))
	}

	if err := svc.Start(ctx.Context); err != nil {
		return err
	}
	if cfg.RunOnce {
		return nil
	}

	<-ctx.Context.Done()
	return svc.Stop(context.Background())
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
