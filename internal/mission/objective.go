// Package mission implements the in-map objective engine: a registry of
// goal variants, a dependency-gated objective state machine, and the
// executor that evaluates objectives once per simulation tick.
//
// The engine owns no game state. Predicates read from a host-supplied World
// and completion side effects are delivered through Hooks; rendering,
// persistence, and networking are collaborator concerns.
package mission

import (
	"strings"

	"github.com/emberworks/skirmish/internal/platform/i18n"
)

// Goal is one objective variant: the predicate evaluated while the owning
// objective is qualified. Update must be a pure read of w (the Timer variant
// additionally accumulates injected delta) and safe to call repeatedly.
type Goal interface {
	// Kind returns the stable type tag used by registries and map encoding.
	Kind() string
	// Update reports whether the objective is now satisfied.
	Update(w World) bool
}

// Resettable goals accumulate internal state that a host may restart before
// completion. Reset has no effect on completed objectives because the
// executor never revisits them.
type Resettable interface {
	Reset()
}

// Describer goals produce player-facing mission text.
type Describer interface {
	Describe(w World, b *i18n.Bundle) string
}

// Progressive goals report partial completion for UI display.
type Progressive interface {
	// Progress returns satisfied and total sub-goal counts.
	Progress(w World) (done, total int)
}

// Objective is one node in the mission graph. Configure it with the With*
// builders before handing it to Executor.Add; after that only the read
// accessors are part of the contract.
type Objective struct {
	// Goal is the variant predicate. Never nil for a usable objective.
	Goal Goal
	// Details is optional text shown when the player inspects the objective.
	Details string
	// FlagsAdded and FlagsRemoved are applied exactly once on completion,
	// removal before addition.
	FlagsAdded   []string
	FlagsRemoved []string
	// Markers are opaque overlay handles. The engine only times their
	// add/remove lifecycle.
	Markers []Marker

	// parents gate qualification. Fixed once the objective is flattened into
	// an executor; the store owns every node, so these are back-references.
	parents []*Objective
	// children exists only between authoring and flattening.
	children []*Objective

	completed    bool
	depFinished  bool
	changed      bool
	markersShown bool
}

// New returns an objective wrapping the given goal.
func New(g Goal) *Objective {
	return &Objective{Goal: g}
}

// WithChild records child as dependent on o and returns o for chaining.
func (o *Objective) WithChild(child *Objective) *Objective {
	child.parents = append(child.parents, o)
	o.children = append(o.children, child)
	return o
}

// WithParent adds a parent dependency and returns o for chaining.
func (o *Objective) WithParent(parent *Objective) *Objective {
	o.parents = append(o.parents, parent)
	return o
}

// WithDetails sets the inspection text and returns o for chaining.
func (o *Objective) WithDetails(details string) *Objective {
	o.Details = details
	return o
}

// WithFlagsAdded sets the flags applied on completion and returns o.
func (o *Objective) WithFlagsAdded(flags ...string) *Objective {
	o.FlagsAdded = flags
	return o
}

// WithFlagsRemoved sets the flags cleared on completion and returns o.
func (o *Objective) WithFlagsRemoved(flags ...string) *Objective {
	o.FlagsRemoved = flags
	return o
}

// WithMarkers sets the overlay markers and returns o for chaining.
func (o *Objective) WithMarkers(markers ...Marker) *Objective {
	o.Markers = markers
	return o
}

// Completed reports whether the objective has been done. Completion is
// monotonic: once true it never reverts.
func (o *Objective) Completed() bool {
	return o.completed
}

// Parents returns the objective's dependency back-references. Callers must
// not modify the returned slice.
func (o *Objective) Parents() []*Objective {
	return o.parents
}

// DependencyFinished reports whether every parent has completed. The result
// latches: once all parents are done the parent scan is skipped forever,
// which is sound because completion is monotonic.
func (o *Objective) DependencyFinished() bool {
	if o.depFinished {
		return true
	}
	for _, parent := range o.parents {
		if !parent.Completed() {
			return false
		}
	}
	o.depFinished = true
	return true
}

// Qualified reports whether the objective should be evaluated this tick.
func (o *Objective) Qualified() bool {
	return !o.completed && o.DependencyFinished()
}

// Reset restarts any internal accumulation the goal carries. Most variants
// have none.
func (o *Objective) Reset() {
	if r, ok := o.Goal.(Resettable); ok {
		r.Reset()
	}
}

// markChanged requests a rule-state sync on the next executor drain.
func (o *Objective) markChanged() {
	o.changed = true
}

// done fires the one-time completion side effects: the dirty bit and the
// completion notification, removed flags before added flags.
func (o *Objective) done(h Hooks) {
	o.markChanged()
	if h.ObjectiveCompleted != nil {
		h.ObjectiveCompleted(o.FlagsRemoved, o.FlagsAdded)
	}
}

// Text returns the objective's mission text, or "" when the variant has
// none. Display is best-effort by contract.
func (o *Objective) Text(w World, b *i18n.Bundle) string {
	if d, ok := o.Goal.(Describer); ok {
		return d.Describe(w, b)
	}
	return ""
}

// TypeName returns the localized variant name, falling back to the type tag.
func (o *Objective) TypeName(b *i18n.Bundle) string {
	kind := o.Goal.Kind()
	return b.Get("objective."+strings.ToLower(kind)+".name", kind)
}
