// Package sim runs authored missions against an in-memory world. It drives
// the objective executor tick by tick, applying the mission's scripted world
// mutations at their ticks, and reports how the objective graph resolved.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/emberworks/skirmish/internal/mission"
	"github.com/emberworks/skirmish/internal/mission/script"
	"github.com/emberworks/skirmish/internal/platform/i18n"
	"github.com/emberworks/skirmish/internal/world"
)

// Config controls mission simulation.
type Config struct {
	MaxTicks int
	Delta    float64 // simulated seconds per tick
	Passive  bool    // run the session without completion authority
	Verbose  bool
	Logger   *log.Logger
}

// DefaultConfig returns default simulation configuration: one simulated
// minute at sixty ticks per second, authoritative.
func DefaultConfig() Config {
	return Config{
		MaxTicks: 3600,
		Delta:    1.0 / 60,
	}
}

// Result summarises a finished simulation.
type Result struct {
	Ticks       int
	Completed   int
	Total       int
	AllComplete bool
}

// Runner executes one mission against a fresh world.
type Runner struct {
	exec    *mission.Executor
	world   *world.World
	bundle  *i18n.Bundle
	logger  *log.Logger
	verbose bool
	ticks   int
	delta   float64
}

// NewRunner prepares a runner with a fresh world and executor.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	ticks := cfg.MaxTicks
	if ticks <= 0 {
		ticks = DefaultConfig().MaxTicks
	}
	delta := cfg.Delta
	if delta <= 0 {
		delta = DefaultConfig().Delta
	}

	w := world.New("sharded", "crux")
	w.SetAuthoritative(!cfg.Passive)
	w.SetDelta(delta)

	r := &Runner{
		world:   w,
		bundle:  i18n.Default(),
		logger:  logger,
		verbose: cfg.Verbose,
		ticks:   ticks,
		delta:   delta,
	}
	r.exec = mission.NewExecutor(mission.Hooks{
		ObjectiveCompleted: func(removed, added []string) {
			w.ObjectiveCompleted(removed, added)
			r.logf("objective completed: flags -%v +%v", removed, added)
		},
		MarkerAdded: func(m mission.Marker) {
			r.logf("marker shown: %s", m.Kind())
		},
		MarkerRemoved: func(m mission.Marker) {
			r.logf("marker hidden: %s", m.Kind())
		},
	})
	return r
}

// World exposes the runner's world so callers can stage state before a run.
func (r *Runner) World() *world.World { return r.world }

// RunFile loads a mission script from disk and simulates it.
func RunFile(ctx context.Context, cfg Config, path string) (Result, error) {
	m, err := script.LoadFile(path)
	if err != nil {
		return Result{}, err
	}
	return NewRunner(cfg).Run(ctx, m)
}

// Run simulates the mission until every objective completes, the tick budget
// runs out, or the context is cancelled.
func (r *Runner) Run(ctx context.Context, m *script.Mission) (Result, error) {
	if m == nil {
		return Result{}, errors.New("mission is required")
	}

	var span trace.Span
	ctx, span = otel.Tracer("skirmish/sim").Start(ctx, "mission.run",
		trace.WithAttributes(attribute.String("mission.name", m.Name)))
	defer span.End()

	r.exec.Add(m.Roots...)
	r.logf("mission start: %s (%d objectives, %d steps)", m.Name, r.exec.Len(), len(m.Steps))

	result := Result{Total: r.exec.Len()}
	for tick := 1; tick <= r.ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		for _, step := range m.Steps {
			if step.Tick != tick {
				continue
			}
			if err := r.applyStep(step); err != nil {
				return result, fmt.Errorf("step %s at tick %d: %w", step.Kind, tick, err)
			}
			r.logf("step applied at tick %d: %s", tick, step.Kind)
		}

		r.exec.Update(r.world)
		result.Ticks = tick
		if r.exec.CheckChanged() {
			r.logObjectives()
		}
		if !r.exec.Any() {
			result.AllComplete = true
			break
		}
	}

	r.exec.Each(func(o *mission.Objective) {
		if o.Completed() {
			result.Completed++
		}
	})
	span.SetAttributes(
		attribute.Int("mission.ticks", result.Ticks),
		attribute.Int("mission.objectives.completed", result.Completed),
		attribute.Int("mission.objectives.total", result.Total),
		attribute.Bool("mission.complete", result.AllComplete),
	)
	r.logf("mission done: %s (%d/%d objectives after %d ticks)",
		m.Name, result.Completed, result.Total, result.Ticks)
	return result, nil
}

func (r *Runner) logObjectives() {
	if !r.verbose {
		return
	}
	r.exec.EachRunning(func(o *mission.Objective) {
		text := o.Text(r.world, r.bundle)
		if text == "" {
			text = o.TypeName(r.bundle)
		}
		if p, ok := o.Goal.(mission.Progressive); ok {
			done, total := p.Progress(r.world)
			r.logf("running: %s (%d/%d)", text, done, total)
			return
		}
		r.logf("running: %s", text)
	})
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}
