package intern

import "strings"

const maxTags = 5

// skillKeywords is the fixed vocabulary scanned for when a posting carries no
// tags of its own. Order matters: earlier entries win the 5-tag cap.
var skillKeywords = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Node.js", "AWS", "Azure",
	"ML", "Machine Learning", "AI", "Data Science", "SQL", "MongoDB", "GraphQL",
	"Full Stack", "Frontend", "Backend", "DevOps", "Cloud", "Docker", "Kubernetes",
	"UI/UX", "Design", "Figma", "Swift", "iOS", "Android", "Mobile", "Web",
	"C++", "C#", "Go", "Rust", "Ruby", "PHP", "Django", "Flask", "Spring",
	"Angular", "Vue", "Next.js", "Express", "PostgreSQL", "Redis", "Git",
}

// ExtractTags scans text for known skill keywords, preserving canonical
// casing, capped at 5.
func ExtractTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(skill)) {
			tags = append(tags, skill)
			if len(tags) == maxTags {
				break
			}
		}
	}
	return tags
}
