package workflow

import "fmt"

// EventKind identifies what repository activity triggered a dispatch.
type EventKind string

const (
	// EventPush is a push to a branch.
	EventPush EventKind = "push"
	// EventPullRequest is a pull request opened against or updated on a base branch.
	EventPullRequest EventKind = "pull_request"
	// EventTag is a tag push.
	EventTag EventKind = "tag"
	// EventDispatch is an operator-initiated manual run.
	EventDispatch EventKind = "dispatch"
)

// Event is one repository event. It is produced once and consumed once per
// dispatch; nothing mutates it after creation.
type Event struct {
	Kind EventKind
	Ref  string // branch name for push, tag name for tag
	Base string // target branch for pull_request
	// Target optionally names a single workflow for manual dispatch.
	// Empty means every dispatchable workflow runs.
	Target string
}

// ParseEventKind validates a user-supplied event name.
func ParseEventKind(s string) (EventKind, error) {
	switch EventKind(s) {
	case EventPush, EventPullRequest, EventTag, EventDispatch:
		return EventKind(s), nil
	}
	return "", fmt.Errorf("unknown event kind %q", s)
}
