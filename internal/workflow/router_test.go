package workflow

import (
	"context"
	"testing"
)

func testRouter(exec *fakeExec) *Router {
	runner := NewRunner(mapSecrets{"PYPI_TOKEN": "tok"}, "", discardLogger())
	runner.execCmd = exec.run
	defs := Definitions(Options{Runtime: "3.11", MainBranch: "main"})
	return NewRouter(runner, defs, discardLogger())
}

func workflowNames(results []RunResult) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Workflow)
	}
	return names
}

func TestDispatch_PushToMainTriggersQualityGateOnce(t *testing.T) {
	results := testRouter(&fakeExec{}).Dispatch(context.Background(), Event{Kind: EventPush, Ref: "main"})

	if len(results) != 1 || results[0].Workflow != QualityGateName {
		t.Fatalf("expected exactly one quality-gate run, got %v", workflowNames(results))
	}
}

func TestDispatch_PullRequestTriggersQualityGateOnce(t *testing.T) {
	results := testRouter(&fakeExec{}).Dispatch(context.Background(), Event{Kind: EventPullRequest, Base: "main"})

	if len(results) != 1 || results[0].Workflow != QualityGateName {
		t.Fatalf("expected exactly one quality-gate run, got %v", workflowNames(results))
	}
}

func TestDispatch_TagTriggersOnlyRelease(t *testing.T) {
	results := testRouter(&fakeExec{}).Dispatch(context.Background(), Event{Kind: EventTag, Ref: "v0.3.0"})

	if len(results) != 1 || results[0].Workflow != ReleaseName {
		t.Fatalf("expected exactly one release run, got %v", workflowNames(results))
	}
}

func TestDispatch_PushToFeatureBranchTriggersNothing(t *testing.T) {
	results := testRouter(&fakeExec{}).Dispatch(context.Background(), Event{Kind: EventPush, Ref: "feature/x"})

	if len(results) != 0 {
		t.Fatalf("expected no runs, got %v", workflowNames(results))
	}
}

func TestDispatch_ManualRunsBothWorkflows(t *testing.T) {
	results := testRouter(&fakeExec{}).Dispatch(context.Background(), Event{Kind: EventDispatch})

	if len(results) != 2 {
		t.Fatalf("expected both workflows to run, got %v", workflowNames(results))
	}
}

func TestDispatch_ManualTargetRunsOnlyNamedWorkflow(t *testing.T) {
	results := testRouter(&fakeExec{}).Dispatch(context.Background(), Event{Kind: EventDispatch, Target: ReleaseName})

	if len(results) != 1 || results[0].Workflow != ReleaseName {
		t.Fatalf("expected only release, got %v", workflowNames(results))
	}
}

func TestNewRouter_DropsDuplicateWorkflows(t *testing.T) {
	exec := &fakeExec{}
	runner := NewRunner(mapSecrets{}, "", discardLogger())
	runner.execCmd = exec.run

	wf := Workflow{Name: "dup", On: Trigger{Branches: []string{"main"}}, Steps: []Step{{Name: "a", Run: "true"}}}
	router := NewRouter(runner, []Workflow{wf, wf}, discardLogger())

	results := router.Dispatch(context.Background(), Event{Kind: EventPush, Ref: "main"})
	if len(results) != 1 {
		t.Fatalf("duplicate declaration must not double-trigger, got %d runs", len(results))
	}
}
