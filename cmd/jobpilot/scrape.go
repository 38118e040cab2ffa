package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

var (
	scrapeKeywords string
	scrapeLocation string
	scrapeLimit    int
	scrapeDetails  bool
	scrapeOutput   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one search and print the jobs as JSON",
	Long:  "Scrape a single LinkedIn search once, without filters or persistence, and write the results as JSON.",
	RunE:  runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeKeywords, "keywords", "k", "", "search keywords (required)")
	scrapeCmd.Flags().StringVarP(&scrapeLocation, "location", "l", "", "search location (required)")
	scrapeCmd.Flags().IntVarP(&scrapeLimit, "limit", "n", 50, "maximum listings to collect")
	scrapeCmd.Flags().BoolVar(&scrapeDetails, "details", false, "also scrape each job's view page")
	scrapeCmd.Flags().StringVarP(&scrapeOutput, "output", "o", "", "write JSON to file instead of stdout")
	scrapeCmd.MarkFlagRequired("keywords")
	scrapeCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	jobScraper, detailScraper := newLinkedInScraper(cfg, httpClient, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	query := model.Query{
		Keywords: scrapeKeywords,
		Location: scrapeLocation,
		Limit:    scrapeLimit,
	}
	jobs, err := jobScraper.Scrape(ctx, query)
	if err != nil {
		logger.Error("scrape failed", "error", err)
		os.Exit(1)
	}

	if scrapeDetails {
		for i, job := range jobs {
			enriched, err := detailScraper.ScrapeDetails(ctx, job)
			if err != nil {
				logger.Warn("detail scrape failed", "link", job.Link, "error", err)
				continue
			}
			jobs[i] = enriched
		}
	}

	out := os.Stdout
	if scrapeOutput != "" {
		f, err := os.Create(scrapeOutput)
		if err != nil {
			logger.Error("failed to create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jobs); err != nil {
		logger.Error("failed to write jobs", "error", err)
		os.Exit(1)
	}

	if scrapeOutput != "" {
		logger.Info("jobs saved", "path", scrapeOutput, "jobs", len(jobs))
	}
	return nil
}
