package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

const (
	searchBaseURL  = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	jobViewBaseURL = "https://www.linkedin.com/jobs/view"

	// LinkedIn rejects start offsets of 1000 and above, 25 results per page.
	startLimit     = 1000
	resultsPerPage = 25

	defaultMaxRetries  = 5
	defaultRetryDelay  = 5 * time.Second
	defaultPageWorkers = 5
)

// Ensure LinkedInScraper implements both scraper interfaces.
var (
	_ model.JobScraper       = (*LinkedInScraper)(nil)
	_ model.JobDetailScraper = (*LinkedInScraper)(nil)
)

// LinkedInScraper scrapes job listings from LinkedIn's guest search API.
// The guest endpoints need no authentication but rate limit aggressively,
// so every request goes through a bounded retry loop and callers are
// expected to wrap the scraper with the ratelimit decorator.
type LinkedInScraper struct {
	client      *http.Client
	logger      *slog.Logger
	searchURL   string // overridable for tests
	viewURL     string
	maxRetries  int
	retryDelay  time.Duration
	pageWorkers int
}

// NewLinkedInScraper creates a scraper using the given HTTP client.
func NewLinkedInScraper(client *http.Client, logger *slog.Logger) *LinkedInScraper {
	return &LinkedInScraper{
		client:      client,
		logger:      logger,
		searchURL:   searchBaseURL,
		viewURL:     jobViewBaseURL,
		maxRetries:  defaultMaxRetries,
		retryDelay:  defaultRetryDelay,
		pageWorkers: defaultPageWorkers,
	}
}

// Scrape collects listings for the query, paging through the guest search
// API until the limit is reached or a page comes back empty. Pages are
// fetched concurrently; once some page is empty, every page at a greater
// offset is abandoned since LinkedIn has no more results there.
func (s *LinkedInScraper) Scrape(ctx context.Context, q model.Query) ([]model.Job, error) {
	limit := q.Limit
	if limit <= 0 || limit > startLimit {
		limit = startLimit
	}

	var starts []int
	for start := 0; start < limit; start += resultsPerPage {
		starts = append(starts, start)
	}

	var mu sync.Mutex
	pages := make(map[int][]model.Job, len(starts))
	emptyFloor := limit // lowest offset known to have returned no results

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.pageWorkers)
	for _, start := range starts {
		g.Go(func() error {
			mu.Lock()
			skip := start > emptyFloor
			mu.Unlock()
			if skip {
				return nil
			}

			jobs, err := s.scrapePage(gctx, q, start)
			if err != nil {
				return err
			}

			mu.Lock()
			pages[start] = jobs
			if len(jobs) == 0 && start < emptyFloor {
				emptyFloor = start
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Ints(starts)
	var jobs []model.Job
	for _, start := range starts {
		if start > emptyFloor {
			break
		}
		jobs = append(jobs, pages[start]...)
	}
	if q.Limit > 0 && len(jobs) > q.Limit {
		jobs = jobs[:q.Limit]
	}

	s.logger.Info("scrape complete",
		"keywords", q.Keywords,
		"location", q.Location,
		"jobs", len(jobs),
	)
	return jobs, nil
}

// scrapePage fetches one page of results, retrying transient failures with
// a linearly growing delay.
func (s *LinkedInScraper) scrapePage(ctx context.Context, q model.Query, start int) ([]model.Job, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		jobs, err := s.fetchPage(ctx, q, start)
		if err == nil {
			s.logger.Debug("scraped page", "start", start, "jobs", len(jobs))
			return jobs, nil
		}
		if !isTransient(err) {
			return nil, err
		}

		s.logger.Warn("rate limited while getting jobs",
			"keywords", q.Keywords,
			"start", start,
			"attempt", attempt,
			"error", err,
		)
		if err := sleep(ctx, s.retryDelay*time.Duration(attempt)); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("getting jobs for %q at start %d: %w", q.Keywords, start, model.ErrTooManyRetries)
}

func (s *LinkedInScraper) fetchPage(ctx context.Context, q model.Query, start int) ([]model.Job, error) {
	params := url.Values{}
	params.Set("keywords", q.Keywords)
	params.Set("location", q.Location)
	params.Set("pageNum", "0")
	params.Set("_l", "en_US")
	params.Set("start", fmt.Sprintf("%d", start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("linkedin search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	return parseJobs(resp.Body, s.viewURL)
}

// ScrapeDetails fetches the job's view page and fills in Details. A page
// served without the description section is LinkedIn rate limiting in
// disguise, so it is retried like any transient failure.
func (s *LinkedInScraper) ScrapeDetails(ctx context.Context, job model.Job) (model.Job, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		details, err := s.fetchDetails(ctx, job)
		if err == nil {
			job.Details = details
			s.logger.Debug("scraped job details", "link", job.Link)
			return job, nil
		}
		if !isTransient(err) {
			return job, err
		}

		s.logger.Warn("rate limited while getting job details",
			"link", job.Link,
			"attempt", attempt,
			"error", err,
		)
		if err := sleep(ctx, s.retryDelay*time.Duration(attempt)); err != nil {
			return job, err
		}
	}
	return job, fmt.Errorf("getting job details from %s: %w", job.Link, model.ErrTooManyRetries)
}

func (s *LinkedInScraper) fetchDetails(ctx context.Context, job model.Job) (*model.JobDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.Link+"?_l=en_US", nil)
	if err != nil {
		return nil, fmt.Errorf("linkedin details request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	return parseDetails(resp.Body)
}

// isTransient reports whether a failed request is worth retrying. HTTP
// status errors, timeouts, and bad pages are transient; parse errors and
// context cancellation are not.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		return true
	}
	if errors.Is(err, model.ErrBadPage) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("retry cancelled: %w", ctx.Err())
	case <-time.After(d):
		return nil
	}
}
