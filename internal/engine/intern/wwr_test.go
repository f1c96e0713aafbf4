package intern

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

const wwrSampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>We Work Remotely</title>
<item>
<title>TechCo: Frontend Engineering Intern</title>
<link>https://weworkremotely.com/jobs/1</link>
<pubDate>Mon, 31 Aug 2026 10:00:00 +0000</pubDate>
<region>Anywhere in the World</region>
<skills>React, TypeScript</skills>
<description><![CDATA[<p>Build <strong>user interfaces</strong> with React.</p>]]></description>
</item>
<item>
<title>DataWorks: Analytics Intern</title>
<link>https://weworkremotely.com/jobs/2</link>
<pubDate>Tue, 01 Jul 2026 10:00:00 +0000</pubDate>
<description><![CDATA[SQL and dashboards.]]></description>
</item>
<item>
<title></title>
<link>https://weworkremotely.com/jobs/3</link>
</item>
</channel>
</rss>`

// --- parseWWRResponse ---

func TestParseWWRResponse(t *testing.T) {
	got, err := parseWWRResponse([]byte(wwrSampleFeed))
	if err != nil {
		t.Fatalf("parseWWRResponse() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("parseWWRResponse() returned %d candidates, want 2 (titleless item skipped)", len(got))
	}

	first := got[0]
	if first.Title != "Frontend Engineering Intern" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Company != "TechCo" {
		t.Errorf("Company = %q", first.Company)
	}
	if first.Location != "Anywhere in the World" {
		t.Errorf("Location = %q", first.Location)
	}
	if first.Posted != "2026-08-31" {
		t.Errorf("Posted = %q, want 2026-08-31", first.Posted)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "React" || first.Tags[1] != "TypeScript" {
		t.Errorf("Tags = %v", first.Tags)
	}
	if strings.Contains(first.Description, "<") {
		t.Errorf("Description still has markup: %q", first.Description)
	}
	if !strings.Contains(first.Description, "user interfaces") {
		t.Errorf("Description lost text: %q", first.Description)
	}
	if first.Source != "weworkremotely" {
		t.Errorf("Source = %q", first.Source)
	}

	second := got[1]
	if second.Location != "Remote (Anywhere)" {
		t.Errorf("default Location = %q", second.Location)
	}
	// No skills element: tags come from keyword extraction over the text.
	if len(second.Tags) == 0 || second.Tags[0] != "SQL" {
		t.Errorf("extracted Tags = %v, want SQL first", second.Tags)
	}
}

func TestParseWWRResponseMalformed(t *testing.T) {
	if _, err := parseWWRResponse([]byte("not xml at all")); err == nil {
		t.Error("parseWWRResponse(garbage) expected error")
	}
}

// --- parseWWRTitle ---

func TestParseWWRTitle(t *testing.T) {
	tests := []struct {
		raw         string
		wantTitle   string
		wantCompany string
	}{
		{"Acme: Backend Intern", "Backend Intern", "Acme"},
		{"Acme Corp: SRE: Platform", "SRE: Platform", "Acme Corp"},
		{"Just A Title", "Just A Title", ""},
	}
	for _, tt := range tests {
		title, company := parseWWRTitle(tt.raw)
		if title != tt.wantTitle || company != tt.wantCompany {
			t.Errorf("parseWWRTitle(%q) = (%q, %q), want (%q, %q)",
				tt.raw, title, company, tt.wantTitle, tt.wantCompany)
		}
	}
}

// --- htmlToText ---

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text passes through", "hello world", "hello world"},
		{"tags stripped", "<p>one</p><p>two</p>", "one two"},
		{"nested markup", "<div><b>bold</b> and <i>italic</i></div>", "bold and italic"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlToText(tt.in); got != tt.want {
				t.Errorf("htmlToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- filterCandidates ---

func TestFilterCandidates(t *testing.T) {
	pool := []engine.Candidate{
		{Title: "React Intern", Company: "A"},
		{Title: "Data Intern", Company: "B", Tags: []string{"SQL"}},
		{Title: "Chef", Company: "C"},
	}

	got := filterCandidates(pool, "react intern")
	if len(got) != 1 || got[0].Company != "A" {
		t.Errorf("AND filter = %v", got)
	}

	// No candidate matches both words, so any-keyword fallback applies.
	got = filterCandidates(pool, "react sql")
	if len(got) != 2 {
		t.Errorf("OR fallback returned %d, want 2", len(got))
	}

	got = filterCandidates(pool, "")
	if len(got) != 3 {
		t.Errorf("empty query returned %d, want all 3", len(got))
	}
}
