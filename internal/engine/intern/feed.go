package intern

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

// Default filters applied when the caller leaves them blank.
const (
	defaultQuery       = "internship"
	defaultLocation    = "Remote"
	defaultExperience  = "intern;entry;associate"
	defaultWorkplace   = "remote;hybrid;onSite"
	defaultDatePosted  = "month"
	defaultJobType     = "intern;fulltime;parttime"
	feedResponseMaxLen = 2 * 1024 * 1024
)

// feedLimiter throttles calls to the job feed. Initialized lazily from
// config so tests can run without Init.
var (
	feedLimiterOnce sync.Once
	feedLimiter     *rate.Limiter
)

func getFeedLimiter() *rate.Limiter {
	feedLimiterOnce.Do(func() {
		rps := engine.Cfg.JobFeedRPS
		if rps <= 0 {
			rps = 2
		}
		feedLimiter = rate.NewLimiter(rate.Limit(rps), 1)
	})
	return feedLimiter
}

// feedJob is the job feed API item shape. The feed mixes camelCase and
// snake_case across versions, so both spellings are decoded.
type feedJob struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Snippet         string   `json:"snippet"`
	Salary          string   `json:"salary"`
	DatePosted      string   `json:"datePosted"`
	DatePostedSnake string   `json:"date_posted"`
	URL             string   `json:"url"`
	JobURL          string   `json:"job_url"`
	JobURLCamel     string   `json:"jobUrl"`
	Tags            []string `json:"tags"`
}

type feedResponse struct {
	Data []feedJob `json:"data"`
}

// FeedParams are the query filters for the external job feed.
type FeedParams struct {
	Query      string
	Location   string
	Experience string
	JobType    string
	DatePosted string
}

func (p FeedParams) withDefaults() FeedParams {
	if p.Query == "" {
		p.Query = defaultQuery
	}
	if p.Location == "" {
		p.Location = defaultLocation
	}
	if p.Experience == "" {
		p.Experience = defaultExperience
	}
	if p.JobType == "" {
		p.JobType = defaultJobType
	}
	if p.DatePosted == "" {
		p.DatePosted = defaultDatePosted
	}
	return p
}

// SearchFeed queries the external job feed and returns normalized candidates.
// Malformed or partial records are normalized, not rejected.
func SearchFeed(ctx context.Context, params FeedParams) ([]engine.Candidate, error) {
	engine.IncrFeedRequests()

	if engine.Cfg.JobFeedURL == "" {
		return nil, fmt.Errorf("job feed URL not configured")
	}
	params = params.withDefaults()

	if err := getFeedLimiter().Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(engine.Cfg.JobFeedURL + "/api/jobs")
	if err != nil {
		return nil, fmt.Errorf("parse feed URL: %w", err)
	}
	q := u.Query()
	q.Set("query", params.Query)
	q.Set("location", params.Location)
	q.Set("experienceLevels", params.Experience)
	q.Set("workplaceTypes", defaultWorkplace)
	q.Set("datePosted", params.DatePosted)
	q.Set("employmentTypes", params.JobType)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("Accept", "application/json")
	if engine.Cfg.JobFeedAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+engine.Cfg.JobFeedAPIKey)
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		engine.IncrFeedErrors()
		return nil, fmt.Errorf("job feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		engine.IncrFeedErrors()
		return nil, fmt.Errorf("job feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, feedResponseMaxLen))
	if err != nil {
		engine.IncrFeedErrors()
		return nil, err
	}

	candidates := parseFeedResponse(body)
	slog.Debug("feed: search complete",
		slog.String("query", params.Query),
		slog.Int("candidates", len(candidates)))
	return candidates, nil
}

// parseFeedResponse decodes the feed payload. A missing or non-array data
// field yields an empty slice, never an error.
func parseFeedResponse(body []byte) []engine.Candidate {
	var data feedResponse
	if err := json.Unmarshal(body, &data); err != nil {
		slog.Warn("feed: unexpected response shape", slog.Any("error", err))
		return nil
	}

	candidates := make([]engine.Candidate, 0, len(data.Data))
	for i, j := range data.Data {
		candidates = append(candidates, normalizeFeedJob(j, i))
	}
	return candidates
}

func normalizeFeedJob(j feedJob, index int) engine.Candidate {
	c := engine.Candidate{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		Salary:      j.Salary,
		Posted:      j.DatePosted,
		URL:         j.URL,
		Tags:        j.Tags,
		Source:      "feed",
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("job-%d", index)
	}
	if c.Title == "" {
		c.Title = "Untitled Position"
	}
	if c.Company == "" {
		c.Company = "Company"
	}
	if c.Location == "" {
		c.Location = "Location not specified"
	}
	if c.Description == "" {
		c.Description = j.Snippet
	}
	if c.Posted == "" {
		c.Posted = j.DatePostedSnake
	}
	if c.URL == "" {
		c.URL = j.JobURL
	}
	if c.URL == "" {
		c.URL = j.JobURLCamel
	}
	if len(c.Tags) == 0 {
		c.Tags = ExtractTags(c.Title + " " + c.Description)
	}
	c.IsNew = IsNewPosting(c.Posted, time.Now())
	return c
}

// IsNewPosting reports whether the posting date falls within the last 7 days.
// Unparseable dates are not new.
func IsNewPosting(posted string, now time.Time) bool {
	posted = strings.TrimSpace(posted)
	if posted == "" {
		return false
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		time.RFC1123Z,
		time.RFC1123,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, posted); err == nil {
			return now.Sub(t) <= 7*24*time.Hour
		}
	}
	return false
}
