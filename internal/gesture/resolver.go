package gesture

import "github.com/ayusman/mudra/internal/detector"

// Resolver selects at most one pointer action per frame by iterating the
// detector set in priority order. It owns the previous-frame memory that
// swipe predicates evaluate against.
type Resolver struct {
	defs []Definition
	prev *detector.Frame
}

// NewResolver creates a Resolver using the detector set for cfg.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{defs: Definitions(cfg)}
}

// Resolve classifies cur against the detector set and returns the first
// matching definition's action. The stored previous frame is read before any
// predicate runs and replaced exactly once, after all predicates, so swipe
// deltas always compare against the prior cycle regardless of the match
// outcome.
//
// A nil or invalid frame returns no action and leaves the previous-frame
// memory untouched; the caller treats that cycle as "no hand present".
func (r *Resolver) Resolve(cur *detector.Frame) (Action, bool) {
	if !cur.Valid() {
		return "", false
	}

	prev := r.prev

	var action Action
	matched := false
	for _, d := range r.defs {
		if d.Match(cur, prev) {
			action = d.Action
			matched = true
			break
		}
	}

	// Copy so a caller reusing its frame buffer cannot mutate our memory.
	stored := *cur
	r.prev = &stored

	return action, matched
}

// Reset clears the previous-frame memory. Call when the detection loop
// stops or is disabled so a later restart does not compute a swipe delta
// against a stale frame.
func (r *Resolver) Reset() {
	r.prev = nil
}

// Previous returns the stored previous frame, or nil before the first
// successful resolution. Exposed for tests.
func (r *Resolver) Previous() *detector.Frame {
	return r.prev
}
