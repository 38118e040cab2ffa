package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// parseJobs extracts job cards from a guest search API response.
func parseJobs(r io.Reader, viewURL string) ([]model.Job, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}

	var jobs []model.Job
	var parseErr error
	doc.Find("div.base-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		job, err := parseJobCard(card, viewURL)
		if err != nil {
			parseErr = err
			return false
		}
		jobs = append(jobs, job)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return jobs, nil
}

// parseJobCard extracts a single listing from a div.base-card element.
func parseJobCard(card *goquery.Selection, viewURL string) (model.Job, error) {
	titleLink := card.Find("a.base-card__full-link").First()
	href, ok := titleLink.Attr("href")
	if titleLink.Length() == 0 || !ok {
		return model.Job{}, fmt.Errorf("job title or link not found")
	}
	title := strings.ToLower(strings.TrimSpace(titleLink.Text()))

	// The card href carries tracking params and a slug; the numeric job ID
	// is the last dash-separated segment of the path.
	clean := strings.SplitN(href, "?", 2)[0]
	segments := strings.Split(clean, "-")
	jobID := segments[len(segments)-1]
	link := fmt.Sprintf("%s/%s", viewURL, jobID)

	companyLink := card.Find("h4.base-search-card__subtitle").Find("a.hidden-nested-link").First()
	companyHref, ok := companyLink.Attr("href")
	if companyLink.Length() == 0 || !ok {
		return model.Job{}, fmt.Errorf("company name or link not found")
	}
	company := model.Company{
		Name: strings.ToLower(strings.TrimSpace(companyLink.Text())),
		Link: companyHref,
	}

	location := parseLocation(card.Find("span.job-search-card__location").Text())

	return model.Job{
		ID:        jobID,
		Title:     title,
		Link:      link,
		Company:   company,
		Location:  location,
		FirstSeen: time.Now(),
	}, nil
}

// parseLocation splits a "City, Region, Country" card string. When the
// last part is not a recognizable country (LinkedIn sometimes puts things
// like "metropolitan area" there) it is treated as a city and the country
// stays Worldwide.
func parseLocation(raw string) model.Location {
	loc := model.Location{Country: model.CountryWorldwide}

	parts := strings.Split(raw, ",")
	if len(parts) >= 1 {
		last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
		if last != "" {
			if country, err := model.CountryFromAlias(last); err == nil {
				loc.Country = country
			} else {
				loc.City = last
			}
		}
	}
	if len(parts) >= 2 {
		region := strings.TrimSpace(parts[len(parts)-2])
		if region != strings.ToUpper(region) {
			region = strings.ToLower(region)
		}
		loc.Region = region
	}
	if len(parts) >= 3 {
		loc.City = strings.ToLower(strings.TrimSpace(parts[len(parts)-3]))
	}
	return loc
}

// parseDetails extracts the description and criteria from a job view page.
// A missing description section means the page content was withheld, which
// is reported as ErrBadPage so the caller retries.
func parseDetails(r io.Reader) (*model.JobDetails, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing details page: %w", err)
	}

	descSection := doc.Find("div.show-more-less-html__markup").First()
	if descSection.Length() == 0 {
		return nil, fmt.Errorf("job description section not found: %w", model.ErrBadPage)
	}

	details := &model.JobDetails{
		Description: strings.TrimSpace(descSection.Text()),
	}

	var criteriaErr error
	doc.Find("li.description__job-criteria-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		criteriaTitle := strings.TrimSpace(item.Find("h3").First().Text())
		criteriaValue := strings.ToLower(strings.TrimSpace(item.Find("span").First().Text()))

		switch criteriaTitle {
		case "Seniority level":
			details.SeniorityLevel = normalizeCriteria(criteriaValue)
		case "Employment type":
			et, err := model.EmploymentTypeFromAlias(normalizeCriteria(criteriaValue))
			if err != nil {
				criteriaErr = err
				return false
			}
			details.EmploymentType = et
		case "Job function":
			details.JobFunction = criteriaValue
		case "Industries":
			details.Industries = criteriaValue
		}
		return true
	})
	if criteriaErr != nil {
		return nil, criteriaErr
	}
	return details, nil
}

// normalizeCriteria strips dashes and spaces so localized criteria values
// line up with the alias tables.
func normalizeCriteria(value string) string {
	value = strings.ReplaceAll(value, "-", "")
	return strings.ReplaceAll(value, " ", "")
}

// parseRetryAfter parses the Retry-After header value into a duration.
// Supports seconds format (e.g. "120"). Returns zero if absent or unparseable.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
