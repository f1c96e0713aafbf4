// Package portalserver registers the campus portal MCP tools: internship
// search and matching, resume skill extraction, roadmap generation with
// progress tracking, skill profiles, CampusBot chat, and mock interviews.
package portalserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine/roadmap"
)

// sessions is the shared roadmap session manager, set from main.go.
var sessions *roadmap.Manager

// SetSessions sets the package-level roadmap session manager.
func SetSessions(m *roadmap.Manager) { sessions = m }

// Sessions returns the package-level session manager (may be nil in tests).
func Sessions() *roadmap.Manager { return sessions }

// RegisterTools registers all campus portal tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerInternshipSearch(server)
	registerInternshipMatch(server)
	registerResumeSkills(server)
	registerRoadmapGenerate(server)
	registerRoadmapToggle(server)
	registerRoadmapProgress(server)
	registerSkillProfileGet(server)
	registerSkillProfileSave(server)
	registerCampusChat(server)
	registerMockInterview(server)
}
