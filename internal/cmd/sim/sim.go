// Package sim wires configuration and platform setup for the mission
// simulator CLI.
package sim

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/emberworks/skirmish/internal/platform/otel"
	"github.com/emberworks/skirmish/internal/tools/sim"
)

// Config holds sim command configuration.
type Config struct {
	Mission  string  `env:"SKIRMISH_MISSION_FILE"`
	MaxTicks int     `env:"SKIRMISH_SIM_MAX_TICKS" envDefault:"3600"`
	Delta    float64 `env:"SKIRMISH_SIM_DELTA"     envDefault:"0.0166667"`
	Passive  bool    `env:"SKIRMISH_SIM_PASSIVE"`
	Verbose  bool    `env:"SKIRMISH_SIM_VERBOSE"`
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Mission, "mission", cfg.Mission, "path to mission lua file")
	fs.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "tick budget before the run stalls out")
	fs.Float64Var(&cfg.Delta, "delta", cfg.Delta, "simulated seconds per tick")
	fs.BoolVar(&cfg.Passive, "passive", cfg.Passive, "run without completion authority")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the sim command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Mission == "" {
		return errors.New("mission path is required")
	}

	shutdown, err := otel.Setup(ctx, "skirmish-sim")
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			fmt.Fprintf(errOut, "otel shutdown: %v\n", err)
		}
	}()

	logger := log.New(errOut, "", 0)
	result, err := sim.RunFile(ctx, sim.Config{
		MaxTicks: cfg.MaxTicks,
		Delta:    cfg.Delta,
		Passive:  cfg.Passive,
		Verbose:  cfg.Verbose,
		Logger:   logger,
	}, cfg.Mission)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d/%d objectives completed in %d ticks\n",
		result.Completed, result.Total, result.Ticks)
	if !result.AllComplete {
		return errors.New("mission did not complete")
	}
	return nil
}
