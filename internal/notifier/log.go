package notifier

import (
	"log/slog"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes new job matches to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs each job via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs each job with company, title, location, and link.
// Returns nil (stdout logging does not fail).
func (n *LogNotifier) Notify(jobs []model.Job) error {
	for _, j := range jobs {
		n.logger.Info("new job",
			"company", j.Company.Name,
			"title", j.Title,
			"location", j.Location.String(),
			"link", j.Link,
		)
	}
	return nil
}
