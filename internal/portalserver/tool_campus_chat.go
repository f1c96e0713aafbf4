package portalserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

const campusBotSystem = "You are CampusBot, a friendly campus assistant for students. " +
	"Answer questions about courses, internships, resumes, and campus life. " +
	"Keep replies concise and practical."

func registerCampusChat(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "campus_chat",
		Description: "Ask CampusBot a question. A general-purpose campus assistant for study, internship, and career questions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.CampusChatInput) (*mcp.CallToolResult, engine.CampusChatOutput, error) {
		if input.Message == "" {
			return nil, engine.CampusChatOutput{}, fmt.Errorf("message is required")
		}

		reply, err := engine.CallLLMWithSystem(ctx, campusBotSystem, input.Message)
		if err != nil {
			return nil, engine.CampusChatOutput{}, fmt.Errorf("chat failed: %w", err)
		}
		return nil, engine.CampusChatOutput{Reply: reply}, nil
	})
}
