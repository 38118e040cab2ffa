package notifier

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

func TestLogNotifier_WritesEachJob(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	n := NewLogNotifier(logger)

	jobs := []model.Job{
		{Title: "software engineer", Company: model.Company{Name: "acme"}, Link: "https://example.com/1"},
		{Title: "backend engineer", Company: model.Company{Name: "globex"}, Link: "https://example.com/2"},
	}
	if err := n.Notify(jobs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "acme") || !strings.Contains(out, "globex") {
		t.Errorf("expected both companies in output, got %q", out)
	}
	if strings.Count(out, "new job") != 2 {
		t.Errorf("expected 2 log lines, got %q", out)
	}
}
