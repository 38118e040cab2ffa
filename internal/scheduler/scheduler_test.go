package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jobpilot-dev/jobpilot/internal/model"
	"github.com/jobpilot-dev/jobpilot/internal/poller"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingScraper struct {
	calls atomic.Int64
}

func (c *countingScraper) Scrape(_ context.Context, _ model.Query) ([]model.Job, error) {
	c.calls.Add(1)
	return nil, nil
}

type matchAll struct{}

func (matchAll) Match(model.Job) bool { return true }

type nopNotifier struct{}

func (nopNotifier) Notify([]model.Job) error { return nil }

type nopStore struct{}

func (nopStore) HasSeen(string) (bool, error) { return false, nil }
func (nopStore) Save(model.Job) error         { return nil }
func (nopStore) List() ([]model.Job, error)   { return nil, nil }
func (nopStore) Cleanup(time.Duration) error  { return nil }

func TestRun_ImmediateCycleThenGracefulShutdown(t *testing.T) {
	scraper := &countingScraper{}
	p := poller.NewSearchPoller("s", model.Query{}, scraper, nil, matchAll{}, nopStore{}, nopNotifier{}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler([]*poller.SearchPoller{p}, time.Hour, time.Millisecond, discardLogger())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// The first cycle runs immediately, long before the hour tick.
	deadline := time.After(2 * time.Second)
	for scraper.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("immediate poll cycle never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil on graceful shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	if scraper.calls.Load() != 1 {
		t.Errorf("expected exactly 1 cycle before the first tick, got %d", scraper.calls.Load())
	}
}

func TestRunCycle_PacesConsecutiveSearches(t *testing.T) {
	scraper := &countingScraper{}
	newPoller := func(name string) *poller.SearchPoller {
		return poller.NewSearchPoller(name, model.Query{}, scraper, nil, matchAll{}, nopStore{}, nopNotifier{}, discardLogger())
	}

	pause := 30 * time.Millisecond
	s := NewScheduler([]*poller.SearchPoller{newPoller("a"), newPoller("b")}, time.Hour, pause, discardLogger())

	start := time.Now()
	s.runCycle(context.Background())

	if scraper.calls.Load() != 2 {
		t.Fatalf("expected both searches polled, got %d", scraper.calls.Load())
	}
	if elapsed := time.Since(start); elapsed < pause {
		t.Errorf("expected at least the pause between searches, cycle took %v", elapsed)
	}
}

func TestNewScheduler_DefaultsPause(t *testing.T) {
	s := NewScheduler(nil, time.Hour, 0, discardLogger())
	if s.searchPause != time.Second {
		t.Errorf("expected 1s default pause, got %v", s.searchPause)
	}
}
