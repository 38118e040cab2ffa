package poller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// SearchPoller owns the full poll cycle for a single saved search:
// scrape → filter → dedup → enrich → notify → save.
type SearchPoller struct {
	Name     string
	query    model.Query
	scraper  model.JobScraper
	details  model.JobDetailScraper // nil when detail scraping is disabled
	filter   model.JobFilter
	store    model.JobStore
	notifier model.Notifier
	logger   *slog.Logger
}

// NewSearchPoller creates a poller wired with all its dependencies.
// details may be nil to skip per-job detail scraping.
func NewSearchPoller(
	name string,
	query model.Query,
	scraper model.JobScraper,
	details model.JobDetailScraper,
	filter model.JobFilter,
	store model.JobStore,
	notifier model.Notifier,
	logger *slog.Logger,
) *SearchPoller {
	return &SearchPoller{
		Name:     name,
		query:    query,
		scraper:  scraper,
		details:  details,
		filter:   filter,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Poll runs one poll cycle for the search.
func (p *SearchPoller) Poll(ctx context.Context) error {
	jobs, err := p.scraper.Scrape(ctx, p.query)
	if err != nil {
		return fmt.Errorf("polling %s: %w", p.Name, err)
	}

	var matched []model.Job
	for _, job := range jobs {
		if p.filter.Match(job) {
			matched = append(matched, job)
		}
	}

	var newJobs []model.Job
	for _, job := range matched {
		seen, err := p.store.HasSeen(job.ID)
		if err != nil {
			return fmt.Errorf("polling %s: checking seen status: %w", p.Name, err)
		}
		if !seen {
			newJobs = append(newJobs, job)
		}
	}

	if p.details != nil {
		for i, job := range newJobs {
			enriched, err := p.details.ScrapeDetails(ctx, job)
			if err != nil {
				// A job without details is still worth reporting.
				p.logger.Warn("detail scrape failed", "search", p.Name, "link", job.Link, "error", err)
				continue
			}
			newJobs[i] = enriched
		}
	}

	if len(newJobs) > 0 {
		if err := p.notifier.Notify(newJobs); err != nil {
			return fmt.Errorf("polling %s: notifying: %w", p.Name, err)
		}
	}

	for _, job := range newJobs {
		if err := p.store.Save(job); err != nil {
			return fmt.Errorf("polling %s: saving: %w", p.Name, err)
		}
	}

	p.logger.Info("polled search",
		"search", p.Name,
		"scraped", len(jobs),
		"matched", len(matched),
		"new", len(newJobs),
	)

	return nil
}
