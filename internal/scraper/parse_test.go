package scraper

import (
	"errors"
	"strings"
	"testing"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

const sampleCard = `
<div class="base-card">
	<a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/software-engineer-at-acme-3791234567?refId=abc&amp;trackingId=xyz">
		Software Engineer
	</a>
	<h4 class="base-search-card__subtitle">
		<a class="hidden-nested-link" href="https://www.linkedin.com/company/acme">Acme Corp</a>
	</h4>
	<span class="job-search-card__location">Milan, Lombardy, Italy</span>
</div>`

func TestParseJobs_Card(t *testing.T) {
	jobs, err := parseJobs(strings.NewReader(sampleCard), jobViewBaseURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.ID != "3791234567" {
		t.Errorf("expected ID 3791234567, got %s", j.ID)
	}
	if j.Title != "software engineer" {
		t.Errorf("expected lowercased title, got %q", j.Title)
	}
	if j.Link != "https://www.linkedin.com/jobs/view/3791234567" {
		t.Errorf("unexpected link %q", j.Link)
	}
	if j.Company.Name != "acme corp" {
		t.Errorf("expected company acme corp, got %q", j.Company.Name)
	}
	if j.Company.Link != "https://www.linkedin.com/company/acme" {
		t.Errorf("unexpected company link %q", j.Company.Link)
	}
	if j.Location.City != "milan" || j.Location.Region != "Lombardy" || j.Location.Country != model.CountryItaly {
		t.Errorf("unexpected location %+v", j.Location)
	}
}

func TestParseJobs_MissingTitleLink(t *testing.T) {
	html := `<div class="base-card"><span class="job-search-card__location">Rome, Italy</span></div>`
	_, err := parseJobs(strings.NewReader(html), jobViewBaseURL)
	if err == nil {
		t.Fatal("expected error for card without title link")
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Location
	}{
		{
			name: "city region country",
			raw:  "Milan, Lombardy, Italy",
			want: model.Location{City: "milan", Region: "Lombardy", Country: model.CountryItaly},
		},
		{
			name: "region is kept uppercase when all caps",
			raw:  "San Francisco, CA, United States",
			want: model.Location{City: "san francisco", Region: "CA", Country: model.CountryUSA},
		},
		{
			name: "country alias code",
			raw:  "London, England, UK",
			want: model.Location{City: "london", Region: "england", Country: model.CountryUK},
		},
		{
			name: "unknown trailing part becomes city",
			raw:  "Berlin Metropolitan Area",
			want: model.Location{City: "berlin metropolitan area", Country: model.CountryWorldwide},
		},
		{
			name: "country only",
			raw:  "Italy",
			want: model.Location{Country: model.CountryItaly},
		},
		{
			name: "empty",
			raw:  "",
			want: model.Location{Country: model.CountryWorldwide},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLocation(tt.raw)
			if got != tt.want {
				t.Errorf("parseLocation(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

const sampleDetailsPage = `
<html><body>
<div class="show-more-less-html__markup">
	We build rockets. You will write Go.
</div>
<ul>
	<li class="description__job-criteria-item"><h3>Seniority level</h3><span>Mid-Senior level</span></li>
	<li class="description__job-criteria-item"><h3>Employment type</h3><span>Full-time</span></li>
	<li class="description__job-criteria-item"><h3>Job function</h3><span>Engineering</span></li>
	<li class="description__job-criteria-item"><h3>Industries</h3><span>Software Development</span></li>
</ul>
</body></html>`

func TestParseDetails(t *testing.T) {
	details, err := parseDetails(strings.NewReader(sampleDetailsPage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if details.Description != "We build rockets. You will write Go." {
		t.Errorf("unexpected description %q", details.Description)
	}
	if details.SeniorityLevel != "midseniorlevel" {
		t.Errorf("expected normalized seniority, got %q", details.SeniorityLevel)
	}
	if details.EmploymentType != model.EmploymentFullTime {
		t.Errorf("expected fulltime, got %q", details.EmploymentType)
	}
	if details.JobFunction != "engineering" {
		t.Errorf("unexpected job function %q", details.JobFunction)
	}
	if details.Industries != "software development" {
		t.Errorf("unexpected industries %q", details.Industries)
	}
}

func TestParseDetails_MissingDescriptionIsBadPage(t *testing.T) {
	_, err := parseDetails(strings.NewReader(`<html><body><p>loading…</p></body></html>`))
	if !errors.Is(err, model.ErrBadPage) {
		t.Fatalf("expected ErrBadPage, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("120"); got.Seconds() != 120 {
		t.Errorf("expected 120s, got %v", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Errorf("expected 0 for empty header, got %v", got)
	}
	if got := parseRetryAfter("soon"); got != 0 {
		t.Errorf("expected 0 for unparseable header, got %v", got)
	}
}
