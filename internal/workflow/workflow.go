package workflow

import "path"

// Trigger declares which events start a workflow.
type Trigger struct {
	Branches      []string // push to a matching branch
	Tags          []string // push of a matching tag, "*" matches any
	PullRequestTo []string // pull request targeting a matching branch
	Dispatch      bool     // manual runs allowed
}

// Matches reports whether the event starts a workflow with this trigger.
func (t Trigger) Matches(ev Event) bool {
	switch ev.Kind {
	case EventPush:
		return matchAny(t.Branches, ev.Ref)
	case EventTag:
		return matchAny(t.Tags, ev.Ref)
	case EventPullRequest:
		return matchAny(t.PullRequestTo, ev.Base)
	case EventDispatch:
		return t.Dispatch
	}
	return false
}

// matchAny matches a name against glob patterns (path.Match syntax).
// Unparseable patterns never match.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Step is one command in a workflow. Steps run strictly in declared order
// with no branching; the first failure aborts the remainder.
type Step struct {
	Name    string
	Run     string            // shell command
	Env     map[string]string // extra environment for this step only
	Secrets []string          // secret names this step receives, subset of the workflow's
}

// Workflow is an ordered, linear pipeline of steps bound to a trigger.
// Secrets lists every secret the run resolves up front; each value is
// visible only to the steps that declare it.
type Workflow struct {
	Name    string
	On      Trigger
	Steps   []Step
	Secrets []string
}
