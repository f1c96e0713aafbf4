package intern

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

// fallbackCompany carries the careers-search deep link template for one of
// the static fallback companies. %s receives the URL-encoded query.
type fallbackCompany struct {
	name     string
	location string
	linkFmt  string
}

var fallbackCompanies = []fallbackCompany{
	{"Google", "Mountain View, CA", "https://www.google.com/about/careers/applications/jobs/results?q=%s"},
	{"Microsoft", "Redmond, WA", "https://jobs.careers.microsoft.com/global/en/search?q=%s"},
	{"Amazon", "Seattle, WA", "https://www.amazon.jobs/en/search?base_query=%s"},
	{"Meta", "Menlo Park, CA", "https://www.metacareers.com/jobs?q=%s"},
	{"Apple", "Cupertino, CA", "https://jobs.apple.com/en-us/search?search=%s"},
	{"Netflix", "Los Gatos, CA", "https://jobs.netflix.com/search?q=%s"},
	{"Tesla", "Austin, TX", "https://www.tesla.com/careers/search/?query=%s"},
	{"Spotify", "New York, NY", "https://www.lifeatspotify.com/jobs?q=%s"},
	{"Adobe", "San Jose, CA", "https://careers.adobe.com/us/en/search-results?keywords=%s"},
	{"Salesforce", "San Francisco, CA", "https://careers.salesforce.com/en/search-results?keywords=%s"},
	{"Uber", "San Francisco, CA", "https://www.uber.com/global/en/careers/list/?keywords=%s"},
	{"Airbnb", "San Francisco, CA", "https://careers.airbnb.com/positions/?keyword=%s"},
}

// FallbackCandidates builds the static candidate pool served when every live
// source fails or returns nothing. Each entry deep-links into the company's
// careers search for the query.
func FallbackCandidates(query string) []engine.Candidate {
	engine.IncrFallbackServed()

	query = strings.TrimSpace(query)
	if query == "" {
		query = defaultQuery
	}
	encoded := url.QueryEscape(query)

	candidates := make([]engine.Candidate, 0, len(fallbackCompanies))
	for i, fc := range fallbackCompanies {
		title := fmt.Sprintf("%s - %s Intern", query, fc.name)
		desc := fmt.Sprintf(
			"Join %s as a %s intern. Work on cutting-edge technology and collaborate with world-class engineers on scalable systems.",
			fc.name, query)
		candidates = append(candidates, engine.Candidate{
			ID:          fmt.Sprintf("sample-%d", i+1),
			Title:       title,
			Company:     fc.name,
			Location:    fc.location,
			Description: desc,
			Tags:        ExtractTags(title + " " + desc),
			URL:         fmt.Sprintf(fc.linkFmt, encoded),
			Salary:      fmt.Sprintf("$%d-60/hour", 40+i),
			Posted:      fmt.Sprintf("%d days ago", i+1),
			Source:      "sample",
		})
	}
	return candidates
}
