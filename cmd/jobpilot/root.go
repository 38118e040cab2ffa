package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobpilot-dev/jobpilot/internal/config"
	"github.com/jobpilot-dev/jobpilot/internal/filter"
	"github.com/jobpilot-dev/jobpilot/internal/model"
	"github.com/jobpilot-dev/jobpilot/internal/notifier"
	"github.com/jobpilot-dev/jobpilot/internal/poller"
	"github.com/jobpilot-dev/jobpilot/internal/ratelimit"
	"github.com/jobpilot-dev/jobpilot/internal/retry"
	"github.com/jobpilot-dev/jobpilot/internal/scraper"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobpilot",
	Short: "LinkedIn job radar",
	Long:  "jobpilot scrapes LinkedIn job searches and alerts you to new matches.",
	// Default to `start` so that `jobpilot` with no args runs the daemon.
	RunE: runStart,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBPILOT_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBPILOT_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBPILOT_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupNotifier(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) model.Notifier {
	switch cfg.Notification.Type {
	case "slack":
		logger.Info("using slack notifier")
		return notifier.NewSlackNotifier(cfg.Notification.WebhookURL, httpClient, logger)
	default:
		return notifier.NewLogNotifier(logger)
	}
}

// newLinkedInScraper builds the decorated scraper stack: LinkedIn client,
// source-level rate limiting, then whole-search retries on top.
func newLinkedInScraper(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (model.JobScraper, model.JobDetailScraper) {
	linkedin := scraper.NewLinkedInScraper(httpClient, logger)

	limiter := ratelimit.NewSourceRateLimiter(cfg.RateLimit.MinDelay)
	var s model.JobScraper = ratelimit.NewRateLimitedScraper(linkedin, limiter, "linkedin")
	s = retry.NewRetryScraper(s, 2, 30*time.Second, logger)
	return s, linkedin
}

func buildPollers(cfg *config.Config, jobStore model.JobStore, n model.Notifier, httpClient *http.Client, logger *slog.Logger) []*poller.SearchPoller {
	jobFilter := filter.NewKeywordFilter(
		cfg.Filters.TitleKeywords,
		cfg.Filters.TitleExcludeKeywords,
		cfg.Filters.Locations,
		cfg.Filters.ExcludeLocations,
	)
	jobScraper, detailScraper := newLinkedInScraper(cfg, httpClient, logger)

	var pollers []*poller.SearchPoller
	for _, search := range cfg.Searches {
		if !search.Enabled {
			continue
		}

		var details model.JobDetailScraper
		if search.Details {
			details = detailScraper
		}

		query := model.Query{
			Keywords: search.Keywords,
			Location: search.Location,
			Limit:    search.Limit,
		}
		name := search.Name
		if name == "" {
			name = search.Keywords + " / " + search.Location
		}

		p := poller.NewSearchPoller(name, query, jobScraper, details, jobFilter, jobStore, n, logger)
		pollers = append(pollers, p)
		logger.Info("registered search", "name", name, "limit", search.Limit, "details", search.Details)
	}
	return pollers
}
