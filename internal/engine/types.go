package engine

// --- Internship search types ---

// InternshipSearchInput is the input for the internship_search tool.
type InternshipSearchInput struct {
	Query      string `json:"query" jsonschema:"Search keywords (e.g. software engineering, machine learning)"`
	Location   string `json:"location,omitempty" jsonschema:"City, country, or Remote (default: Remote)"`
	Experience string `json:"experience,omitempty" jsonschema:"Experience filter: intern, entry, associate (default: intern;entry;associate)"`
	JobType    string `json:"job_type,omitempty" jsonschema:"Employment type filter: intern, fulltime, parttime"`
	DatePosted string `json:"date_posted,omitempty" jsonschema:"Time posted: day, week, month (default: month)"`
}

// Candidate is a structured representation of an internship/job posting.
type Candidate struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url"`
	Salary      string   `json:"salary,omitempty"`
	Posted      string   `json:"posted,omitempty"` // raw posting date from the source
	Source      string   `json:"source,omitempty"`
	IsNew       bool     `json:"is_new,omitempty"` // posted within the last 7 days
}

// InternshipSearchOutput is the structured output for internship_search.
type InternshipSearchOutput struct {
	Query      string      `json:"query"`
	Candidates []Candidate `json:"candidates"`
	Summary    string      `json:"summary"`
}

// --- Internship match types ---

// InternshipMatchInput is the input for the internship_match tool.
type InternshipMatchInput struct {
	Skills      []string `json:"skills,omitempty" jsonschema:"Skills extracted from the student's resume or profile"`
	Preferences string   `json:"preferences,omitempty" jsonschema:"Free-text preferences (e.g. backend roles at startups, Bay Area)"`
	Resume      string   `json:"resume,omitempty" jsonschema:"Raw resume text; used to extract skills when none are given"`
	Query       string   `json:"query,omitempty" jsonschema:"Search keywords for the candidate pool (default: internship)"`
	Location    string   `json:"location,omitempty" jsonschema:"Location filter for the candidate pool"`
}

// ScoredCandidate is a Candidate annotated with a keyword match score.
type ScoredCandidate struct {
	Candidate
	MatchScore   int      `json:"match_score"`             // 60–98 once any scoring occurs
	MatchedTerms []string `json:"matched_terms,omitempty"` // query terms/skills found, keyword order
}

// InternshipMatchOutput is the structured output for internship_match.
type InternshipMatchOutput struct {
	Query   string            `json:"query"`
	Matches []ScoredCandidate `json:"matches"`
	Summary string            `json:"summary"`
}

// --- Resume types ---

// ResumeSkillsInput is the input for the resume_skills tool.
// Exactly one of data (with file_name) or text must be provided.
type ResumeSkillsInput struct {
	FileName string `json:"file_name,omitempty" jsonschema:"Resume file name; extension selects the parser (.pdf, .docx, .txt)"`
	Data     string `json:"data,omitempty" jsonschema:"Base64-encoded resume file contents"`
	Text     string `json:"text,omitempty" jsonschema:"Raw resume text (skips file parsing)"`
}

// ResumeSkillsOutput is the structured output for resume_skills.
type ResumeSkillsOutput struct {
	Skills      []string `json:"skills"`
	TextPreview string   `json:"text_preview,omitempty"`
}

// --- Roadmap types ---

// RoadmapGenerateInput is the input for the roadmap_generate tool.
type RoadmapGenerateInput struct {
	UserID      string `json:"user_id" jsonschema:"Student identifier owning the roadmap progress"`
	ResourceID  string `json:"resource_id" jsonschema:"Learning resource identifier"`
	Title       string `json:"title" jsonschema:"Resource title"`
	Description string `json:"description,omitempty" jsonschema:"Resource description"`
	Content     string `json:"content,omitempty" jsonschema:"Resource content (plain text or HTML) to base the roadmap on"`
	Regenerate  bool   `json:"regenerate,omitempty" jsonschema:"Discard any saved progress and generate a fresh roadmap"`
}

// RoadmapToggleInput is the input for the roadmap_toggle tool.
type RoadmapToggleInput struct {
	UserID     string `json:"user_id"`
	ResourceID string `json:"resource_id"`
	NodeID     string `json:"node_id" jsonschema:"Topic node id to toggle (e.g. t-0-2)"`
}

// RoadmapProgressInput is the input for the roadmap_progress tool.
type RoadmapProgressInput struct {
	UserID     string `json:"user_id"`
	ResourceID string `json:"resource_id"`
}

// --- Skill profile types ---

// SkillProfileGetInput is the input for the skill_profile_get tool.
type SkillProfileGetInput struct {
	UserID string `json:"user_id" jsonschema:"Student identifier"`
}

// SkillProfileSaveInput is the input for the skill_profile_save tool.
type SkillProfileSaveInput struct {
	UserID      string   `json:"user_id" jsonschema:"Student identifier"`
	Skills      []string `json:"skills,omitempty" jsonschema:"Skills to store"`
	Preferences string   `json:"preferences,omitempty" jsonschema:"Free-text internship preferences"`
}

// SkillProfileOutput is the structured output for the skill profile tools.
type SkillProfileOutput struct {
	UserID      string   `json:"user_id"`
	Skills      []string `json:"skills"`
	Preferences string   `json:"preferences,omitempty"`
	Found       bool     `json:"found"`
	Message     string   `json:"message,omitempty"`
}

// --- Campus chat types ---

// CampusChatInput is the input for the campus_chat tool.
type CampusChatInput struct {
	Message string `json:"message" jsonschema:"Student question for CampusBot"`
}

// CampusChatOutput is the structured output for campus_chat.
type CampusChatOutput struct {
	Reply string `json:"reply"`
}

// --- Mock interview types ---

// InterviewTurn is one prior exchange in a mock interview.
type InterviewTurn struct {
	Sender string `json:"sender" jsonschema:"Who spoke: user or ai"`
	Text   string `json:"text"`
}

// MockInterviewInput is the input for the mock_interview tool. Without a
// message the interview starts; with one it continues.
type MockInterviewInput struct {
	Role       string          `json:"role,omitempty" jsonschema:"Position being interviewed for (default: Frontend Developer)"`
	Topic      string          `json:"topic,omitempty" jsonschema:"Subject focus (default: React & JavaScript)"`
	Difficulty string          `json:"difficulty,omitempty" jsonschema:"Easy, Medium, or Hard (default: Medium)"`
	Message    string          `json:"message,omitempty" jsonschema:"Candidate answer for the current turn; omit to start the interview"`
	History    []InterviewTurn `json:"history,omitempty" jsonschema:"Prior turns, oldest first"`
}

// MockInterviewOutput is the structured output for mock_interview.
type MockInterviewOutput struct {
	Message    string `json:"message"`
	Role       string `json:"role"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}
