package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobpilot-dev/jobpilot/internal/notifier"
)

var notifyCmd = &cobra.Command{
	Use:   "notify-test",
	Short: "Send a test message to the configured notifier",
	RunE:  runNotifyTest,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

func runNotifyTest(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Notification.Type != "slack" {
		return fmt.Errorf("notify-test requires notification.type \"slack\", got %q", cfg.Notification.Type)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	n := notifier.NewSlackNotifier(cfg.Notification.WebhookURL, httpClient, logger)

	if err := notifier.SendTestMessage(n); err != nil {
		logger.Error("test message failed", "error", err)
		os.Exit(1)
	}
	logger.Info("test message sent")
	return nil
}
