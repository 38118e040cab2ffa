package filter

import (
	"strings"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// KeywordFilter matches jobs whose title contains any of the title
// keywords and whose location contains any of the location keywords,
// while rejecting titles and locations matching the exclude lists.
// Matching is case-insensitive. Empty keyword lists are treated as
// "match all".
type KeywordFilter struct {
	titleKeywords        []string
	titleExcludeKeywords []string
	locations            []string
	excludeLocations     []string
}

// NewKeywordFilter returns a filter over job titles and locations
// (case-insensitive substring matching).
func NewKeywordFilter(titleKeywords, titleExcludeKeywords, locations, excludeLocations []string) *KeywordFilter {
	return &KeywordFilter{
		titleKeywords:        titleKeywords,
		titleExcludeKeywords: titleExcludeKeywords,
		locations:            locations,
		excludeLocations:     excludeLocations,
	}
}

// Match returns true if the job passes all four keyword lists.
func (f *KeywordFilter) Match(job model.Job) bool {
	titleLower := strings.ToLower(job.Title)
	locationLower := strings.ToLower(job.Location.String())

	if !containsAny(titleLower, f.titleKeywords, true) {
		return false
	}
	if containsAny(titleLower, f.titleExcludeKeywords, false) {
		return false
	}
	if !containsAny(locationLower, f.locations, true) {
		return false
	}
	if containsAny(locationLower, f.excludeLocations, false) {
		return false
	}
	return true
}

// containsAny reports whether s contains any keyword. An empty keyword
// list returns emptyResult (include lists pass everything, exclude lists
// reject nothing).
func containsAny(s string, keywords []string, emptyResult bool) bool {
	if len(keywords) == 0 {
		return emptyResult
	}
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
