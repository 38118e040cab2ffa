package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Status is the terminal state of a run or a step.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	// StatusSkipped marks steps after the first failure; they never execute.
	StatusSkipped Status = "skipped"
)

// StepResult records one step's outcome.
type StepResult struct {
	Name     string
	Status   Status
	Output   string // combined stdout/stderr, secrets redacted
	Err      error
	Duration time.Duration
}

// RunResult is the terminal report of a single workflow run. There is no
// retry and no persisted history; a failed run is re-triggered by a human
// after fixing the cause.
type RunResult struct {
	Workflow string
	Event    Event
	Status   Status
	Steps    []StepResult
	// FailedStep names the step that aborted the run, empty on success.
	FailedStep string
}

// SecretSource resolves named secrets for a run.
type SecretSource interface {
	Secret(name string) (string, bool)
}

// EnvSecrets resolves secrets from the process environment.
type EnvSecrets struct{}

func (EnvSecrets) Secret(name string) (string, bool) {
	return os.LookupEnv(name)
}

// execFunc runs one step and returns its combined output. Split out so
// tests can observe execution without spawning shells.
type execFunc func(ctx context.Context, step Step, env []string) (string, error)

// Runner executes workflows: provision nothing, run steps in order, stop
// at the first non-zero exit. Each run is independent; no state is shared
// between runs.
type Runner struct {
	logger  *slog.Logger
	secrets SecretSource
	workdir string
	execCmd execFunc
}

// NewRunner creates a runner resolving secrets from the given source.
// workdir is the directory steps execute in; empty means inherit.
func NewRunner(secrets SecretSource, workdir string, logger *slog.Logger) *Runner {
	r := &Runner{
		logger:  logger,
		secrets: secrets,
		workdir: workdir,
	}
	r.execCmd = r.shellExec
	return r
}

func (r *Runner) shellExec(ctx context.Context, step Step, env []string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", step.Run)
	cmd.Dir = r.workdir
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Run executes the workflow for the event. Secrets are resolved once per
// run but each value enters only the environments of steps declaring it;
// they are never logged and are redacted from captured output. A missing
// secret fails the run before any step executes, so a misconfigured
// release can never half-publish.
func (r *Runner) Run(ctx context.Context, wf Workflow, ev Event) RunResult {
	result := RunResult{Workflow: wf.Name, Event: ev, Status: StatusSuccess}

	secrets := make(map[string]string, len(wf.Secrets))
	for _, name := range wf.Secrets {
		value, ok := r.secrets.Secret(name)
		if !ok || value == "" {
			result.Status = StatusFailure
			result.FailedStep = ""
			result.Steps = skippedSteps(wf.Steps)
			r.logger.Error("workflow aborted: secret not set", "workflow", wf.Name, "secret", name)
			return result
		}
		secrets[name] = value
	}

	r.logger.Info("workflow started", "workflow", wf.Name, "event", ev.Kind, "ref", ev.Ref, "steps", len(wf.Steps))

	failed := false
	for _, step := range wf.Steps {
		if failed {
			result.Steps = append(result.Steps, StepResult{Name: step.Name, Status: StatusSkipped})
			continue
		}

		env := stepEnv(step, secrets)
		start := time.Now()
		out, err := r.execCmd(ctx, step, env)
		sr := StepResult{
			Name:     step.Name,
			Status:   StatusSuccess,
			Output:   redact(out, secrets),
			Duration: time.Since(start),
		}

		if err != nil {
			sr.Status = StatusFailure
			sr.Err = err
			failed = true
			result.Status = StatusFailure
			result.FailedStep = step.Name
			r.logger.Error("step failed",
				"workflow", wf.Name,
				"step", step.Name,
				"duration", sr.Duration,
				"error", err,
			)
		} else {
			r.logger.Info("step succeeded",
				"workflow", wf.Name,
				"step", step.Name,
				"duration", sr.Duration,
			)
		}
		result.Steps = append(result.Steps, sr)
	}

	r.logger.Info("workflow finished", "workflow", wf.Name, "status", result.Status)
	return result
}

// stepEnv builds the step environment: inherited process env, the step's
// own vars, then only the secrets the step declares. A secret never
// reaches a step that doesn't name it.
func stepEnv(step Step, secrets map[string]string) []string {
	env := os.Environ()
	for k, v := range step.Env {
		env = append(env, k+"="+v)
	}
	for _, name := range step.Secrets {
		if v, ok := secrets[name]; ok {
			env = append(env, name+"="+v)
		}
	}
	return env
}

// redact replaces secret values in captured output.
func redact(out string, secrets map[string]string) string {
	for _, v := range secrets {
		out = strings.ReplaceAll(out, v, "***")
	}
	return out
}

func skippedSteps(steps []Step) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for _, s := range steps {
		results = append(results, StepResult{Name: s.Name, Status: StatusSkipped})
	}
	return results
}

// Err returns an error describing the failed run, or nil on success.
func (r RunResult) Err() error {
	if r.Status == StatusSuccess {
		return nil
	}
	if r.FailedStep == "" {
		return fmt.Errorf("workflow %s failed before any step ran", r.Workflow)
	}
	return fmt.Errorf("workflow %s failed at step %s", r.Workflow, r.FailedStep)
}
