package workflow

import (
	"context"
	"log/slog"
)

// Router maps repository events onto workflows. Every matching workflow is
// triggered exactly once per event; workflows never see events they do not
// match, and runs are fully independent of each other.
type Router struct {
	workflows []Workflow
	runner    *Runner
	logger    *slog.Logger
}

// NewRouter creates a router over a fixed set of workflows. Duplicate
// workflow names are ignored after the first occurrence so a misdeclared
// set can never double-trigger.
func NewRouter(runner *Runner, workflows []Workflow, logger *slog.Logger) *Router {
	seen := make(map[string]bool, len(workflows))
	deduped := make([]Workflow, 0, len(workflows))
	for _, wf := range workflows {
		if seen[wf.Name] {
			logger.Warn("duplicate workflow ignored", "workflow", wf.Name)
			continue
		}
		seen[wf.Name] = true
		deduped = append(deduped, wf)
	}
	return &Router{workflows: deduped, runner: runner, logger: logger}
}

// Dispatch runs every workflow the event triggers, sequentially, and
// returns their results. A manual dispatch with a target runs only the
// named workflow (if it allows dispatch).
func (r *Router) Dispatch(ctx context.Context, ev Event) []RunResult {
	var results []RunResult
	for _, wf := range r.workflows {
		if ev.Kind == EventDispatch && ev.Target != "" && ev.Target != wf.Name {
			continue
		}
		if !wf.On.Matches(ev) {
			continue
		}
		results = append(results, r.runner.Run(ctx, wf, ev))
	}
	if len(results) == 0 {
		r.logger.Info("event matched no workflow", "event", ev.Kind, "ref", ev.Ref)
	}
	return results
}
