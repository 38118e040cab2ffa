package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jobpilot-dev/jobpilot/internal/browse"
	"github.com/jobpilot-dev/jobpilot/internal/store"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved jobs in an interactive view",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	jobs, err := sqlStore.List()
	if err != nil {
		logger.Error("failed to list jobs", "error", err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		logger.Info("no saved jobs yet, run `jobpilot start` first")
		return nil
	}

	return browse.Run(jobs)
}
