package model

import (
	"context"
	"time"
)

// Job is a normalized LinkedIn job listing.
type Job struct {
	ID        string      `json:"id"` // numeric LinkedIn job ID, extracted from the card link
	Title     string      `json:"title"`
	Link      string      `json:"link"` // canonical view link: https://www.linkedin.com/jobs/view/<id>
	Company   Company     `json:"company"`
	Location  Location    `json:"location"`
	FirstSeen time.Time   `json:"first_seen"` // our clock (set on first encounter)
	Details   *JobDetails `json:"details,omitempty"`
}

// Company identifies the employer behind a listing.
type Company struct {
	Name string `json:"name"`
	Link string `json:"link"` // LinkedIn company page
}

// Location is the parsed "City, Region, Country" string from a job card.
// Any part may be empty; Country falls back to Worldwide when the card
// doesn't name a recognizable country.
type Location struct {
	City    string  `json:"city,omitempty"`
	Region  string  `json:"region,omitempty"`
	Country Country `json:"country"`
}

// String reassembles the non-empty parts in card order.
func (l Location) String() string {
	out := ""
	for _, part := range []string{l.City, l.Region, string(l.Country)} {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}

// JobDetails holds fields only available on the job view page.
type JobDetails struct {
	Description    string         `json:"description,omitempty"`
	EmploymentType EmploymentType `json:"employment_type,omitempty"`
	SeniorityLevel string         `json:"seniority_level,omitempty"`
	JobFunction    string         `json:"job_function,omitempty"`
	Industries     string         `json:"industries,omitempty"`
}

// Query describes a single job search.
type Query struct {
	Keywords string
	Location string
	Limit    int // maximum listings to collect
}

// JobScraper fetches job listings for a search query.
type JobScraper interface {
	Scrape(ctx context.Context, q Query) ([]Job, error)
}

// JobDetailScraper enriches a job with fields from its view page.
type JobDetailScraper interface {
	ScrapeDetails(ctx context.Context, job Job) (Job, error)
}

// JobStore persists jobs for deduplication and later browsing.
type JobStore interface {
	HasSeen(jobID string) (bool, error)
	Save(job Job) error
	List() ([]Job, error)
	Cleanup(olderThan time.Duration) error
}

// Notifier sends notifications for new job matches.
type Notifier interface {
	Notify(jobs []Job) error
}

// JobFilter decides whether a job matches the user's criteria.
type JobFilter interface {
	Match(job Job) bool
}
