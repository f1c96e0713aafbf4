package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// User-Agent string used across HTTP clients.
const UserAgentBot = "GoCampus/1.0"

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}

// CanonicalJobKey returns a normalized dedup key for cross-source candidate
// deduplication. The same posting from the job feed and the RSS source will
// have the same key (same title, same company). Collapses punctuation,
// lowercases everything.
func CanonicalJobKey(title, company string) string {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		// Strip " at CompanyName" suffix that some boards append to titles.
		if idx := strings.LastIndex(s, " at "); idx > 0 {
			s = s[:idx]
		}
		var b strings.Builder
		prevSpace := true
		for _, r := range s {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
				prevSpace = false
			} else if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
		return strings.TrimRight(b.String(), " ")
	}
	return norm(title) + "|" + norm(company)
}
