package filter

import (
	"testing"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

func job(title, city string, country model.Country) model.Job {
	return model.Job{
		Title:    title,
		Location: model.Location{City: city, Country: country},
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		filter  *KeywordFilter
		job     model.Job
		matches bool
	}{
		{
			name:    "title and location match",
			filter:  NewKeywordFilter([]string{"engineer"}, nil, []string{"italy"}, nil),
			job:     job("software engineer", "milan", model.CountryItaly),
			matches: true,
		},
		{
			name:    "title mismatch",
			filter:  NewKeywordFilter([]string{"designer"}, nil, nil, nil),
			job:     job("software engineer", "milan", model.CountryItaly),
			matches: false,
		},
		{
			name:    "case insensitive keywords",
			filter:  NewKeywordFilter([]string{"ENGINEER"}, nil, []string{"Italy"}, nil),
			job:     job("software engineer", "milan", model.CountryItaly),
			matches: true,
		},
		{
			name:    "empty lists match everything",
			filter:  NewKeywordFilter(nil, nil, nil, nil),
			job:     job("anything", "anywhere", model.CountryWorldwide),
			matches: true,
		},
		{
			name:    "title exclude wins",
			filter:  NewKeywordFilter([]string{"engineer"}, []string{"staff"}, nil, nil),
			job:     job("staff engineer", "milan", model.CountryItaly),
			matches: false,
		},
		{
			name:    "location exclude wins",
			filter:  NewKeywordFilter(nil, nil, []string{"united states"}, []string{"new york"}),
			job:     job("engineer", "new york", model.CountryUSA),
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.job); got != tt.matches {
				t.Errorf("Match() = %v, want %v", got, tt.matches)
			}
		})
	}
}
