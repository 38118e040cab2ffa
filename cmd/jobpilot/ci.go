package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobpilot-dev/jobpilot/internal/workflow"
)

var (
	ciEvent    string
	ciRef      string
	ciBase     string
	ciWorkflow string
	ciWorkdir  string
)

var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Run the repository's automation workflows",
	Long: `Evaluate an event against the built-in workflows and run every one
that matches. Pushes and pull requests to the main branch run the
quality gate; tag pushes run the release pipeline. A dispatch event
runs everything, or only the workflow named with --workflow.`,
	RunE: runCI,
}

func init() {
	ciCmd.Flags().StringVarP(&ciEvent, "event", "e", "", "event kind: push, pull_request, tag or dispatch (required)")
	ciCmd.Flags().StringVarP(&ciRef, "ref", "r", "", "branch or tag the event refers to")
	ciCmd.Flags().StringVarP(&ciBase, "base", "b", "", "target branch of a pull_request event")
	ciCmd.Flags().StringVarP(&ciWorkflow, "workflow", "w", "", "restrict a dispatch event to one workflow")
	ciCmd.Flags().StringVar(&ciWorkdir, "workdir", "", "directory to run steps in (default: current directory)")
	ciCmd.MarkFlagRequired("event")
	rootCmd.AddCommand(ciCmd)
}

func runCI(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kind, err := workflow.ParseEventKind(ciEvent)
	if err != nil {
		return err
	}
	ev := workflow.Event{
		Kind:   kind,
		Ref:    ciRef,
		Base:   ciBase,
		Target: ciWorkflow,
	}

	opts := workflow.Options{
		Runtime:    cfg.CI.Runtime,
		MainBranch: cfg.CI.MainBranch,
		Build:      cfg.CI.Build,
		Publish:    cfg.CI.Publish,
		TokenEnv:   cfg.CI.TokenEnv,
	}
	for _, hook := range cfg.CI.Hooks {
		opts.Hooks = append(opts.Hooks, workflow.Step{Name: hook.Name, Run: hook.Run})
	}

	runner := workflow.NewRunner(workflow.EnvSecrets{}, ciWorkdir, logger)
	router := workflow.NewRouter(runner, workflow.Definitions(opts), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := router.Dispatch(ctx, ev)
	if len(results) == 0 {
		logger.Info("no workflow matched", "event", ciEvent, "ref", ciRef)
		return nil
	}

	failed := false
	for _, res := range results {
		for _, step := range res.Steps {
			logger.Info("step finished",
				"workflow", res.Workflow,
				"step", step.Name,
				"status", string(step.Status),
			)
		}
		if err := res.Err(); err != nil {
			failed = true
			logger.Error("workflow failed", "workflow", res.Workflow, "error", err)
		} else {
			logger.Info("workflow succeeded", "workflow", res.Workflow)
		}
	}
	if failed {
		return fmt.Errorf("one or more workflows failed")
	}
	return nil
}
