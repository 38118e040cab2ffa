package workflow

import (
	"fmt"
)

const (
	// QualityGateName is the workflow gating pushes and pull requests.
	QualityGateName = "quality-gate"
	// ReleaseName is the workflow publishing a tagged version.
	ReleaseName = "release"
)

// Options configures the built-in workflow definitions.
type Options struct {
	Runtime    string // pinned runtime version, e.g. "3.11"
	MainBranch string // branch gated by the quality gate
	Hooks      []Step // ordered checks run by the quality gate
	Build      string // release build command
	Publish    string // release publish command
	TokenEnv   string // secret name for the package-index token
}

// provisionSteps reproduces a clean toolchain before any real work: verify
// the pinned runtime, install the dependency manager, install declared
// dependencies. Both workflows share these steps.
func provisionSteps(opts Options) []Step {
	return []Step{
		{Name: "check-runtime", Run: fmt.Sprintf("python%s --version", opts.Runtime)},
		{Name: "install-poetry", Run: fmt.Sprintf("python%s -m pip install poetry", opts.Runtime)},
		{Name: "install-deps", Run: "poetry install"},
	}
}

// QualityGate builds the check workflow: it runs on every push to the main
// branch and every pull request targeting it, plus manual dispatch. It
// produces no artifact; its only output is the terminal pass/fail status.
func QualityGate(opts Options) Workflow {
	steps := provisionSteps(opts)

	hooks := opts.Hooks
	if len(hooks) == 0 {
		hooks = []Step{{Name: "pre-commit", Run: "poetry run pre-commit run --all-files"}}
	}
	steps = append(steps, hooks...)

	return Workflow{
		Name: QualityGateName,
		On: Trigger{
			Branches:      []string{opts.MainBranch},
			PullRequestTo: []string{opts.MainBranch},
			Dispatch:      true,
		},
		Steps: steps,
	}
}

// Release builds the publish workflow: it runs on any tag push and on
// manual dispatch. The build step always precedes publish, so a broken
// build can never push a partial artifact to the index. Only the publish
// step sees the index token; provisioning and build run without it.
// Publication is irreversible; there is no retry and no unpublish.
func Release(opts Options) Workflow {
	build := opts.Build
	if build == "" {
		build = "poetry build"
	}
	publish := opts.Publish
	if publish == "" {
		publish = "poetry publish --no-interaction"
	}
	tokenEnv := opts.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "PYPI_TOKEN"
	}

	steps := provisionSteps(opts)
	steps = append(steps,
		Step{Name: "build", Run: build},
		Step{Name: "publish", Run: publish, Secrets: []string{tokenEnv}},
	)

	return Workflow{
		Name: ReleaseName,
		On: Trigger{
			Tags:     []string{"*"},
			Dispatch: true,
		},
		Steps:   steps,
		Secrets: []string{tokenEnv},
	}
}

// Definitions returns both built-in workflows.
func Definitions(opts Options) []Workflow {
	return []Workflow{QualityGate(opts), Release(opts)}
}
