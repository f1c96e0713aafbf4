package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/anatolykoptev/go_campus/internal/engine"
)

const roadmapPrompt = `You are a curriculum designer. Build a learning roadmap for the resource below.

TITLE: %s

DESCRIPTION: %s

CONTENT:
%s

Break the material into 3-6 sequential modules. Each module has a short title, a one-line description, and 2-6 concrete topics a student can tick off one by one.

Return a JSON object with this exact structure:
{
  "title": "<roadmap title>",
  "description": "<one-sentence summary of the learning path>",
  "modules": [
    {
      "title": "<module title>",
      "description": "<one-line module summary>",
      "topics": ["<topic>", "<topic>"]
    }
  ]
}

Return ONLY the JSON object, no markdown, no explanation.`

// Generate asks the LLM for a structured roadmap. Any failure degrades to a
// single-module fallback roadmap; the error return is only for context
// cancellation.
func Generate(ctx context.Context, title, description, content string) (Roadmap, error) {
	engine.IncrRoadmapGenerations()

	prompt := fmt.Sprintf(roadmapPrompt, title, description, prepareContent(content))

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return Roadmap{}, ctx.Err()
		}
		slog.Warn("roadmap: generation failed, using fallback",
			slog.String("title", title), slog.Any("error", err))
		return fallbackRoadmap(title, description), nil
	}

	r, err := parseRoadmap(raw)
	if err != nil {
		slog.Warn("roadmap: unparseable response, using fallback",
			slog.String("title", title), slog.Any("error", err))
		return fallbackRoadmap(title, description), nil
	}
	if r.Title == "" {
		r.Title = title
	}
	return r, nil
}

// prepareContent normalizes resource content for the prompt. HTML is
// converted to markdown so structure survives; everything is capped at the
// configured limit.
func prepareContent(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return "(no content provided)"
	}
	if looksLikeHTML(content) {
		if md, err := htmltomarkdown.ConvertString(content); err == nil {
			content = md
		}
	}
	limit := engine.Cfg.MaxContentChars
	if limit <= 0 {
		limit = 6000
	}
	return engine.TruncateRunes(content, limit, "")
}

func looksLikeHTML(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "<p") || strings.Contains(s, "<div") ||
		strings.Contains(s, "<h1") || strings.Contains(s, "<html") ||
		strings.Contains(s, "<br")
}

// parseRoadmap decodes the LLM response into a Roadmap, dropping empty
// modules and topics.
func parseRoadmap(raw string) (Roadmap, error) {
	var r Roadmap
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Roadmap{}, fmt.Errorf("roadmap parse error: %w", err)
	}

	var modules []Module
	for _, m := range r.Modules {
		if strings.TrimSpace(m.Title) == "" {
			continue
		}
		m.Description = strings.TrimSpace(m.Description)
		var topics []string
		for _, t := range m.Topics {
			if strings.TrimSpace(t) != "" {
				topics = append(topics, strings.TrimSpace(t))
			}
		}
		m.Topics = topics
		modules = append(modules, m)
	}
	if len(modules) == 0 {
		return Roadmap{}, fmt.Errorf("roadmap has no usable modules")
	}
	r.Modules = modules
	return r, nil
}

// fallbackRoadmap is the degraded single-module roadmap served when
// generation or parsing fails.
func fallbackRoadmap(title, description string) Roadmap {
	engine.IncrRoadmapFallbacks()
	if description == "" {
		description = "A starting point for working through this resource."
	}
	return Roadmap{
		Title:       title,
		Description: description,
		Modules: []Module{{
			Title:       "Getting Started",
			Description: "Work through the resource from start to finish.",
			Topics:      []string{"Overview"},
		}},
	}
}
