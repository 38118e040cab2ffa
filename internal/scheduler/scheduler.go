package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobpilot-dev/jobpilot/internal/poller"
)

// Scheduler owns the main loop: ticks on an interval and runs each search
// sequentially. Searches within a cycle are paced by the same minimum
// delay the scrapers use toward LinkedIn, so a cycle never bursts past
// the rate budget a single search is held to.
type Scheduler struct {
	pollers     []*poller.SearchPoller
	interval    time.Duration
	searchPause time.Duration
	logger      *slog.Logger
}

// NewScheduler creates a scheduler that polls all searches at the given
// interval, waiting searchPause between consecutive searches.
func NewScheduler(pollers []*poller.SearchPoller, interval, searchPause time.Duration, logger *slog.Logger) *Scheduler {
	if searchPause <= 0 {
		searchPause = time.Second
	}
	return &Scheduler{
		pollers:     pollers,
		interval:    interval,
		searchPause: searchPause,
		logger:      logger,
	}
}

// Run starts the polling loop. It runs one immediate cycle, then ticks on the
// configured interval. It returns nil when ctx is cancelled (graceful shutdown).
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting scheduler",
		"interval", s.interval.String(),
		"search_pause", s.searchPause.String(),
		"searches", len(s.pollers),
	)

	// Run one immediate poll cycle.
	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("shutting down scheduler")
			return nil
		case <-time.After(s.interval):
			s.runCycle(ctx)
		}
	}
}

// runCycle polls every search once, paced by searchPause, and reports how
// the cycle went. With many searches and an aggressive pause a cycle can
// outlast the interval; that only delays the next tick, cycles never
// overlap.
func (s *Scheduler) runCycle(ctx context.Context) {
	start := time.Now()
	failures := 0

	for i, p := range s.pollers {
		if ctx.Err() != nil {
			return
		}

		if err := p.Poll(ctx); err != nil {
			failures++
			s.logger.Error("poll failed",
				"search", p.Name,
				"error", err,
			)
		}

		if i < len(s.pollers)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.searchPause):
			}
		}
	}

	elapsed := time.Since(start)
	s.logger.Info("poll cycle complete",
		"searches", len(s.pollers),
		"failures", failures,
		"duration", elapsed.Round(time.Millisecond).String(),
	)
	if elapsed > s.interval {
		s.logger.Warn("poll cycle outlasted the polling interval",
			"duration", elapsed.Round(time.Millisecond).String(),
			"interval", s.interval.String(),
		)
	}
}
