package resume

import "strings"

// knownSkills is the vocabulary recognized in resume text. Entries keep
// their canonical casing in the output.
var knownSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Node.js", "AWS", "Azure",
	"GCP", "Machine Learning", "Deep Learning", "Data Science", "SQL", "NoSQL",
	"MongoDB", "GraphQL", "REST", "DevOps", "Docker", "Kubernetes", "Terraform",
	"CI/CD", "Git", "Linux", "C++", "C#", "Go", "Rust", "Ruby", "PHP", "Kotlin",
	"Swift", "iOS", "Android", "Flutter", "Django", "Flask", "Spring", "Angular",
	"Vue", "Next.js", "Express", "PostgreSQL", "MySQL", "Redis", "Kafka",
	"Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn", "Tableau",
	"Figma", "Agile", "Scrum",
}

// ExtractSkills scans resume text for known skills. Short names match on
// word boundaries so "Go" is not found inside "Google"; longer names match
// as substrings the way job boards list them.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var skills []string
	for _, skill := range knownSkills {
		kw := strings.ToLower(skill)
		if len(kw) <= 3 {
			if containsWord(lower, kw) {
				skills = append(skills, skill)
			}
		} else if strings.Contains(lower, kw) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// containsWord reports whether kw occurs in s delimited by non-alphanumeric
// runes on both sides.
func containsWord(s, kw string) bool {
	for start := 0; ; {
		idx := strings.Index(s[start:], kw)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(kw)

		leftOK := idx == 0 || !isWordRune(rune(s[idx-1]))
		rightOK := end == len(s) || !isWordRune(rune(s[end]))
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
