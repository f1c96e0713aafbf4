package portalserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/profile"
)

func registerSkillProfileGet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_profile_get",
		Description: "Load a student's saved skill profile (skills and internship preferences). Requires the profile database to be configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SkillProfileGetInput) (*mcp.CallToolResult, engine.SkillProfileOutput, error) {
		if input.UserID == "" {
			return nil, engine.SkillProfileOutput{}, fmt.Errorf("user_id is required")
		}
		db := profile.GetProfileDB()
		if db == nil {
			return nil, engine.SkillProfileOutput{}, fmt.Errorf("profile storage is not configured (DATABASE_URL unset)")
		}

		p, found, err := db.Get(ctx, input.UserID)
		if err != nil {
			return nil, engine.SkillProfileOutput{}, err
		}
		if !found {
			return nil, engine.SkillProfileOutput{
				UserID:  input.UserID,
				Skills:  []string{},
				Message: "No profile saved yet.",
			}, nil
		}
		return nil, engine.SkillProfileOutput{
			UserID:      p.UserID,
			Skills:      p.Skills,
			Preferences: p.Preferences,
			Found:       true,
		}, nil
	})
}

func registerSkillProfileSave(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_profile_save",
		Description: "Save or update a student's skill profile. Overwrites the stored skills and preferences for the user.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SkillProfileSaveInput) (*mcp.CallToolResult, engine.SkillProfileOutput, error) {
		if input.UserID == "" {
			return nil, engine.SkillProfileOutput{}, fmt.Errorf("user_id is required")
		}
		db := profile.GetProfileDB()
		if db == nil {
			return nil, engine.SkillProfileOutput{}, fmt.Errorf("profile storage is not configured (DATABASE_URL unset)")
		}

		p := profile.Profile{
			UserID:      input.UserID,
			Skills:      input.Skills,
			Preferences: input.Preferences,
		}
		if err := db.Save(ctx, p); err != nil {
			return nil, engine.SkillProfileOutput{}, err
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		return nil, engine.SkillProfileOutput{
			UserID:      p.UserID,
			Skills:      p.Skills,
			Preferences: p.Preferences,
			Found:       true,
			Message:     "Profile saved.",
		}, nil
	})
}
