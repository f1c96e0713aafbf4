package portalserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

// maxInterviewTurns bounds the transcript sent back to the model.
const maxInterviewTurns = 30

func interviewSystem(role, topic, difficulty string) string {
	return fmt.Sprintf("You are a professional interviewer running a mock interview for a %s position. "+
		"Focus on %s at %s difficulty. Ask one question at a time, react briefly to the candidate's "+
		"answer before moving on, and keep every reply under 120 words.", role, topic, difficulty)
}

// interviewTranscript renders the conversation so far plus the candidate's
// new answer as a single prompt. Only the most recent turns are kept.
func interviewTranscript(history []engine.InterviewTurn, message string) string {
	if len(history) > maxInterviewTurns {
		history = history[len(history)-maxInterviewTurns:]
	}

	var b strings.Builder
	for _, turn := range history {
		speaker := "Candidate"
		if turn.Sender == "ai" {
			speaker = "Interviewer"
		}
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(turn.Text))
		b.WriteString("\n\n")
	}
	b.WriteString("Candidate: ")
	b.WriteString(strings.TrimSpace(message))
	b.WriteString("\n\nRespond as the interviewer.")
	return b.String()
}

func registerMockInterview(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "mock_interview",
		Description: "Run a mock interview with an AI interviewer. Without a message it opens the interview for the given role, topic, and difficulty; with a message (and prior turns in history) it continues the conversation.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.MockInterviewInput) (*mcp.CallToolResult, engine.MockInterviewOutput, error) {
		role := input.Role
		if role == "" {
			role = "Frontend Developer"
		}
		topic := input.Topic
		if topic == "" {
			topic = "React & JavaScript"
		}
		difficulty := input.Difficulty
		if difficulty == "" {
			difficulty = "Medium"
		}

		prompt := "Greet the candidate in one or two sentences and ask your first question."
		if input.Message != "" {
			prompt = interviewTranscript(input.History, input.Message)
		}

		reply, err := engine.CallLLMWithSystem(ctx, interviewSystem(role, topic, difficulty), prompt)
		if err != nil {
			return nil, engine.MockInterviewOutput{}, fmt.Errorf("interview failed: %w", err)
		}
		return nil, engine.MockInterviewOutput{
			Message:    reply,
			Role:       role,
			Topic:      topic,
			Difficulty: difficulty,
		}, nil
	})
}
