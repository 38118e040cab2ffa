package workflow

import (
	"testing"
)

func TestTriggerMatches(t *testing.T) {
	opts := Options{Runtime: "3.11", MainBranch: "main"}
	quality := QualityGate(opts).On
	release := Release(opts).On

	tests := []struct {
		name    string
		trigger Trigger
		event   Event
		want    bool
	}{
		{"push to main triggers quality gate", quality, Event{Kind: EventPush, Ref: "main"}, true},
		{"push to feature branch does not", quality, Event{Kind: EventPush, Ref: "feature/x"}, false},
		{"pr targeting main triggers quality gate", quality, Event{Kind: EventPullRequest, Base: "main"}, true},
		{"pr targeting other branch does not", quality, Event{Kind: EventPullRequest, Base: "develop"}, false},
		{"tag does not trigger quality gate", quality, Event{Kind: EventTag, Ref: "v1.2.3"}, false},
		{"dispatch triggers quality gate", quality, Event{Kind: EventDispatch}, true},
		{"any tag triggers release", release, Event{Kind: EventTag, Ref: "v1.2.3"}, true},
		{"weird tag still triggers release", release, Event{Kind: EventTag, Ref: "nightly"}, true},
		{"push does not trigger release", release, Event{Kind: EventPush, Ref: "main"}, false},
		{"pr does not trigger release", release, Event{Kind: EventPullRequest, Base: "main"}, false},
		{"dispatch triggers release", release, Event{Kind: EventDispatch}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trigger.Matches(tt.event); got != tt.want {
				t.Errorf("Matches(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestTriggerMatches_TagPatterns(t *testing.T) {
	trigger := Trigger{Tags: []string{"v*"}}

	if !trigger.Matches(Event{Kind: EventTag, Ref: "v1.0.0"}) {
		t.Error("expected v1.0.0 to match v*")
	}
	if trigger.Matches(Event{Kind: EventTag, Ref: "nightly"}) {
		t.Error("expected nightly not to match v*")
	}
}

func TestParseEventKind(t *testing.T) {
	for _, valid := range []string{"push", "pull_request", "tag", "dispatch"} {
		if _, err := ParseEventKind(valid); err != nil {
			t.Errorf("ParseEventKind(%q): %v", valid, err)
		}
	}
	if _, err := ParseEventKind("merge"); err == nil {
		t.Error("expected error for unknown event kind")
	}
}
