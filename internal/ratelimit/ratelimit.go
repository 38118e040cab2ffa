package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// SourceRateLimiter enforces a minimum delay between scrapes of the same
// source (e.g. "linkedin"). All scrapers hitting the same backend should
// share one instance.
type SourceRateLimiter struct {
	mu       sync.Mutex
	lastCall map[string]time.Time // key: source name
	minDelay time.Duration
}

// NewSourceRateLimiter creates a rate limiter that enforces minDelay
// between consecutive scrapes of the same source.
func NewSourceRateLimiter(minDelay time.Duration) *SourceRateLimiter {
	return &SourceRateLimiter{
		lastCall: make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until enough time has passed since the last scrape of the
// given source. Returns an error if the context is cancelled while waiting.
func (r *SourceRateLimiter) Wait(ctx context.Context, source string) error {
	r.mu.Lock()
	last, ok := r.lastCall[source]
	now := time.Now()

	if !ok {
		// First request for this source, no wait needed.
		r.lastCall[source] = now
		r.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(last)
	if elapsed >= r.minDelay {
		r.lastCall[source] = now
		r.mu.Unlock()
		return nil
	}

	remaining := r.minDelay - elapsed
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", source, ctx.Err())
	case <-time.After(remaining):
	}

	r.mu.Lock()
	r.lastCall[source] = time.Now()
	r.mu.Unlock()

	return nil
}

// RateLimitedScraper is a decorator that enforces source-level rate
// limiting before delegating to the wrapped JobScraper.
type RateLimitedScraper struct {
	inner   model.JobScraper
	limiter *SourceRateLimiter
	source  string
}

// NewRateLimitedScraper wraps a JobScraper with source-level rate limiting.
func NewRateLimitedScraper(inner model.JobScraper, limiter *SourceRateLimiter, source string) *RateLimitedScraper {
	return &RateLimitedScraper{
		inner:   inner,
		limiter: limiter,
		source:  source,
	}
}

// Scrape waits for the rate limiter to allow a request, then delegates to
// the wrapped scraper.
func (s *RateLimitedScraper) Scrape(ctx context.Context, q model.Query) ([]model.Job, error) {
	if err := s.limiter.Wait(ctx, s.source); err != nil {
		return nil, err
	}
	return s.inner.Scrape(ctx, q)
}
