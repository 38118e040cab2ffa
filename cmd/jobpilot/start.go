package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobpilot-dev/jobpilot/internal/model"
	"github.com/jobpilot-dev/jobpilot/internal/scheduler"
	"github.com/jobpilot-dev/jobpilot/internal/store"
)

var dryRun bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the polling daemon",
	Long:  "Start the scheduler daemon; blocks until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().BoolVar(&dryRun, "dry-run", false, "poll and notify without persisting, so jobs are never marked seen")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"interval", cfg.PollingInterval.String(),
		"searches", len(cfg.Searches),
		"title_keywords", len(cfg.Filters.TitleKeywords),
		"locations", len(cfg.Filters.Locations),
	)

	var jobStore model.JobStore
	if dryRun {
		logger.Info("dry run, jobs will not be persisted")
		jobStore = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()

		if err := sqlStore.Cleanup(cfg.Store.Retention); err != nil {
			logger.Warn("store cleanup failed", "error", err)
		}
		jobStore = sqlStore
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	n := setupNotifier(cfg, httpClient, logger)

	pollers := buildPollers(cfg, jobStore, n, httpClient, logger)
	if len(pollers) == 0 {
		logger.Error("no searches to poll")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(pollers, cfg.PollingInterval, cfg.RateLimit.MinDelay, logger)
	if err := sched.Run(ctx); err != nil {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
