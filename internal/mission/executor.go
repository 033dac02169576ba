package mission

// Hooks carries the collaborator callbacks the executor fires during a tick.
// Nil funcs are skipped. All callbacks run synchronously inside Update.
type Hooks struct {
	// ObjectiveCompleted delivers the completion notification for the flag
	// subsystem: flags to remove first, then flags to add.
	ObjectiveCompleted func(flagsRemoved, flagsAdded []string)
	// MarkerAdded fires once when an objective first qualifies.
	MarkerAdded func(m Marker)
	// MarkerRemoved fires once when an objective completes.
	MarkerRemoved func(m Marker)
}

// Executor owns the flattened objective list for one game session and runs
// the per-tick update pass. It is single-writer by contract: exactly one
// driver calls Update and exactly one consumer drains CheckChanged between
// ticks, so no locking is used.
type Executor struct {
	// all is the insertion-ordered flat store of every objective, roots and
	// former children alike. Do not modify directly.
	all     []*Objective
	changed bool
	hooks   Hooks
}

// NewExecutor returns an empty executor with the given collaborator hooks.
func NewExecutor(hooks Hooks) *Executor {
	return &Executor{hooks: hooks}
}

// Add flattens each root's subtree into the store, children before the node
// itself. Parent links were established at authoring time, so flattening
// changes only storage shape, never dependency semantics. Author-time child
// links are cleared; a former child is an ordinary flat-list member
// afterwards.
func (e *Executor) Add(roots ...*Objective) {
	for _, root := range roots {
		e.flatten(root)
	}
}

func (e *Executor) flatten(o *Objective) {
	for _, child := range o.children {
		e.flatten(child)
	}
	o.children = nil
	e.all = append(e.all, o)
}

// Update runs one evaluation pass over the qualified objectives: lazy
// marker-add on first visit, predicate evaluation, and completion. Passive
// sessions still evaluate predicates (timers keep counting) but only an
// authoritative session completes objectives locally.
func (e *Executor) Update(w World) {
	for _, o := range e.all {
		if !o.Qualified() {
			continue
		}

		if !o.markersShown {
			o.markersShown = true
			if e.hooks.MarkerAdded != nil {
				for _, m := range o.Markers {
					e.hooks.MarkerAdded(m)
				}
			}
		}

		if o.Goal.Update(w) && w.Authoritative() {
			o.completed = true
			o.done(e.hooks)
			if o.markersShown {
				o.markersShown = false
				if e.hooks.MarkerRemoved != nil {
					for _, m := range o.Markers {
						e.hooks.MarkerRemoved(m)
					}
				}
			}
		}

		e.changed = e.changed || o.changed
		o.changed = false
	}
}

// CheckChanged reports whether rule state changed since the last call and
// clears the bit. Single-consumer read-and-clear; calling it twice without
// intervening changes returns true then false.
func (e *Executor) CheckChanged() bool {
	has := e.changed
	e.changed = false
	return has
}

// Any reports whether at least one objective is currently qualified.
func (e *Executor) Any() bool {
	for _, o := range e.all {
		if o.Qualified() {
			return true
		}
	}
	return false
}

// Clear empties the store, marking rule state dirty if anything was held.
func (e *Executor) Clear() {
	if len(e.all) > 0 {
		e.changed = true
	}
	e.all = nil
}

// Len returns the number of objectives in the store.
func (e *Executor) Len() int {
	return len(e.all)
}

// Each visits every objective in flatten order, qualified or not.
func (e *Executor) Each(fn func(*Objective)) {
	for _, o := range e.all {
		fn(o)
	}
}

// EachRunning visits every currently qualified objective in flatten order.
func (e *Executor) EachRunning(fn func(*Objective)) {
	for _, o := range e.all {
		if o.Qualified() {
			fn(o)
		}
	}
}
