package store

import (
	"time"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// Ensure NopStore implements model.JobStore.
var _ model.JobStore = (*NopStore)(nil)

// NopStore is a store that persists nothing. Used in dry-run mode so a
// scrape never marks jobs as seen.
type NopStore struct{}

// NewNopStore returns a store that does nothing.
func NewNopStore() *NopStore {
	return &NopStore{}
}

func (*NopStore) HasSeen(string) (bool, error) { return false, nil }
func (*NopStore) Save(model.Job) error         { return nil }
func (*NopStore) List() ([]model.Job, error)   { return nil, nil }
func (*NopStore) Cleanup(time.Duration) error  { return nil }
