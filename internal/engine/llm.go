package engine

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	IncrLLMCalls()
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		IncrLLMErrors()
		return "", err
	}
	return stripFences(resp), nil
}

// CallLLMWithSystem sends a prompt with a system instruction, for the
// conversational tools (CampusBot).
func CallLLMWithSystem(ctx context.Context, system, prompt string) (string, error) {
	IncrLLMCalls()
	resp, err := cfg.LLMClient.Complete(ctx, system, prompt,
		llm.WithChatTemperature(0.7),
	)
	if err != nil {
		IncrLLMErrors()
		return "", err
	}
	return strings.TrimSpace(resp), nil
}
