package retry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockScraper calls a function on each invocation, tracking call count.
type mockScraper struct {
	calls int
	fn    func(attempt int) ([]model.Job, error)
}

func (m *mockScraper) Scrape(_ context.Context, _ model.Query) ([]model.Job, error) {
	m.calls++
	return m.fn(m.calls)
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	jobs := []model.Job{{ID: "1", Title: "engineer"}}
	mock := &mockScraper{fn: func(_ int) ([]model.Job, error) {
		return jobs, nil
	}}

	rs := NewRetryScraper(mock, 2, 10*time.Millisecond, discardLogger())
	got, err := rs.Scrape(context.Background(), model.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected jobs: %v", got)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.calls)
	}
}

func TestRetry_RetriesOn5xx_SucceedsOnSecondAttempt(t *testing.T) {
	jobs := []model.Job{{ID: "1"}}
	mock := &mockScraper{fn: func(attempt int) ([]model.Job, error) {
		if attempt == 1 {
			return nil, &model.HTTPError{StatusCode: 503, Err: errors.New("service unavailable")}
		}
		return jobs, nil
	}}

	rs := NewRetryScraper(mock, 2, 10*time.Millisecond, discardLogger())
	got, err := rs.Scrape(context.Background(), model.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
	if mock.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.calls)
	}
}

func TestRetry_DoesNotRetryOn4xx(t *testing.T) {
	mock := &mockScraper{fn: func(_ int) ([]model.Job, error) {
		return nil, &model.HTTPError{StatusCode: 404, Err: errors.New("not found")}
	}}

	rs := NewRetryScraper(mock, 2, 10*time.Millisecond, discardLogger())
	_, err := rs.Scrape(context.Background(), model.Query{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 404 {
		t.Fatalf("expected HTTPError with status 404, got %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.calls)
	}
}

func TestRetry_RetriesExhaustedScraper(t *testing.T) {
	mock := &mockScraper{fn: func(attempt int) ([]model.Job, error) {
		if attempt == 1 {
			return nil, model.ErrTooManyRetries
		}
		return []model.Job{{ID: "1"}}, nil
	}}

	rs := NewRetryScraper(mock, 2, 10*time.Millisecond, discardLogger())
	got, err := rs.Scrape(context.Background(), model.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || mock.calls != 2 {
		t.Fatalf("expected success on second attempt, jobs=%d calls=%d", len(got), mock.calls)
	}
}

func TestRetry_GivesUpAfterMaxRetries(t *testing.T) {
	mock := &mockScraper{fn: func(_ int) ([]model.Job, error) {
		return nil, &model.HTTPError{StatusCode: 500, Err: errors.New("internal error")}
	}}

	rs := NewRetryScraper(mock, 2, 10*time.Millisecond, discardLogger())
	_, err := rs.Scrape(context.Background(), model.Query{})
	if err == nil {
		t.Fatal("expected error after max retries, got nil")
	}
	// 1 initial + 2 retries = 3
	if mock.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.calls)
	}
}

func TestRetry_UsesRetryAfterFromError(t *testing.T) {
	mock := &mockScraper{fn: func(attempt int) ([]model.Job, error) {
		if attempt == 1 {
			return nil, &model.HTTPError{StatusCode: 429, RetryAfter: 20 * time.Millisecond}
		}
		return []model.Job{{ID: "1"}}, nil
	}}

	rs := NewRetryScraper(mock, 1, 10*time.Second, discardLogger())
	start := time.Now()
	_, err := rs.Scrape(context.Background(), model.Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Retry-After should override the huge base delay.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected Retry-After to take precedence, waited %v", elapsed)
	}
}

func TestRetry_DoesNotRetryCancelledContext(t *testing.T) {
	mock := &mockScraper{fn: func(_ int) ([]model.Job, error) {
		return nil, context.Canceled
	}}

	rs := NewRetryScraper(mock, 3, 10*time.Millisecond, discardLogger())
	_, err := rs.Scrape(context.Background(), model.Query{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.calls)
	}
}
