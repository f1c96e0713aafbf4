package portalserver

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/resume"
)

func registerResumeSkills(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_skills",
		Description: "Extract skills from a resume. Accepts either raw resume text or a base64-encoded file (.pdf, .docx, or plain text, selected by file_name extension). Returns the recognized skills and a short text preview.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ResumeSkillsInput) (*mcp.CallToolResult, engine.ResumeSkillsOutput, error) {
		text, err := resumeText(input)
		if err != nil {
			return nil, engine.ResumeSkillsOutput{}, err
		}

		skills := resume.ExtractSkills(text)
		out := engine.ResumeSkillsOutput{
			Skills:      skills,
			TextPreview: engine.TruncateAtWord(text, 300),
		}
		if out.Skills == nil {
			out.Skills = []string{}
		}
		return nil, out, nil
	})
}

// resumeText resolves the input to plain text: direct text wins, otherwise
// the file is decoded and parsed.
func resumeText(input engine.ResumeSkillsInput) (string, error) {
	if input.Text != "" {
		return input.Text, nil
	}
	if input.Data == "" {
		return "", fmt.Errorf("either text or data is required")
	}
	if input.FileName == "" {
		return "", fmt.Errorf("file_name is required with data")
	}

	raw, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return "", fmt.Errorf("decode data: %w", err)
	}
	return resume.ExtractText(input.FileName, raw)
}
