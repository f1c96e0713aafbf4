package intern

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

const wwrRSSURL = "https://weworkremotely.com/remote-jobs.rss"

const wwrResponseMaxLen = 2 * 1024 * 1024

// --- WeWorkRemotely RSS types ---

type wwrRSS struct {
	XMLName xml.Name   `xml:"rss"`
	Channel wwrChannel `xml:"channel"`
}

type wwrChannel struct {
	Items []wwrItem `xml:"item"`
}

type wwrItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Category    string `xml:"category"`
	Region      string `xml:"region"`
	Skills      string `xml:"skills"`
	Description string `xml:"description"`
}

// SearchWWR fetches the WeWorkRemotely RSS feed and returns listings matching
// the query keywords.
func SearchWWR(ctx context.Context, query string, limit int) ([]engine.Candidate, error) {
	engine.IncrWWRRequests()

	if limit <= 0 || limit > 30 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", wwrRSSURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("Accept", "application/xml, application/rss+xml")

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("WWR RSS returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, wwrResponseMaxLen))
	if err != nil {
		return nil, err
	}

	candidates, err := parseWWRResponse(body)
	if err != nil {
		return nil, err
	}

	filtered := filterCandidates(candidates, query)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	slog.Debug("wwr: search complete", slog.Int("raw", len(candidates)), slog.Int("filtered", len(filtered)))
	return filtered, nil
}

// parseWWRResponse parses the RSS XML feed into candidates.
func parseWWRResponse(body []byte) ([]engine.Candidate, error) {
	var rss wwrRSS
	if err := xml.Unmarshal(body, &rss); err != nil {
		return nil, fmt.Errorf("wwr rss parse error: %w", err)
	}

	var candidates []engine.Candidate
	for i, item := range rss.Channel.Items {
		if item.Title == "" {
			continue
		}

		title, company := parseWWRTitle(item.Title)

		var tags []string
		for _, s := range strings.Split(item.Skills, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				tags = append(tags, s)
			}
		}

		posted := ""
		if item.PubDate != "" {
			if t, err := time.Parse(time.RFC1123Z, item.PubDate); err == nil {
				posted = t.UTC().Format("2006-01-02")
			} else if t, err := time.Parse(time.RFC1123, item.PubDate); err == nil {
				posted = t.UTC().Format("2006-01-02")
			}
		}

		location := item.Region
		if location == "" {
			location = "Remote (Anywhere)"
		}

		desc := engine.TruncateAtWord(htmlToText(item.Description), 500)
		if len(tags) == 0 {
			tags = ExtractTags(title + " " + desc)
		}

		candidates = append(candidates, engine.Candidate{
			ID:          fmt.Sprintf("wwr-%d", i),
			Title:       title,
			Company:     company,
			Location:    location,
			Description: desc,
			Tags:        tags,
			URL:         item.Link,
			Posted:      posted,
			Source:      "weworkremotely",
			IsNew:       IsNewPosting(posted, time.Now()),
		})
	}

	return candidates, nil
}

// parseWWRTitle extracts company and title from "Company: Title" format.
func parseWWRTitle(raw string) (title, company string) {
	if idx := strings.Index(raw, ": "); idx > 0 {
		return strings.TrimSpace(raw[idx+2:]), strings.TrimSpace(raw[:idx])
	}
	return raw, ""
}

// htmlToText strips markup from an RSS description, keeping the text content.
// Malformed HTML degrades to whatever text the tokenizer can recover.
func htmlToText(s string) string {
	if s == "" {
		return ""
	}
	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			text := strings.TrimSpace(string(tok.Text()))
			if text != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(text)
			}
		}
	}
	return b.String()
}

// filterCandidates keeps candidates matching all query keywords across
// title, company, and tags; if none match all, falls back to any-keyword.
func filterCandidates(candidates []engine.Candidate, query string) []engine.Candidate {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return candidates
	}

	haystack := func(c engine.Candidate) string {
		return strings.ToLower(c.Title + " " + c.Company + " " + strings.Join(c.Tags, " "))
	}

	var filtered []engine.Candidate
	for _, c := range candidates {
		h := haystack(c)
		all := true
		for _, kw := range keywords {
			if !strings.Contains(h, kw) {
				all = false
				break
			}
		}
		if all {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) > 0 {
		return filtered
	}

	for _, c := range candidates {
		h := haystack(c)
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered
}
