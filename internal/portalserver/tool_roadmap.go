package portalserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/roadmap"
)

func registerRoadmapGenerate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "roadmap_generate",
		Description: "Generate (or restore) an interactive learning roadmap for a resource. Returns a mind-map graph: a root node, module nodes, and completable topic nodes with layout positions. Saved progress for the same user and resource is restored unless regenerate is set. Generation failures degrade to a minimal single-module roadmap.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RoadmapGenerateInput) (*mcp.CallToolResult, roadmap.View, error) {
		v, err := generateRoadmapView(ctx, input)
		return nil, v, err
	})
}

// generateRoadmapView restores the saved roadmap when one exists and
// generates a fresh one otherwise. A stored snapshot is only discarded on an
// explicit regenerate; load failures surface instead of triggering
// regeneration.
func generateRoadmapView(ctx context.Context, input engine.RoadmapGenerateInput) (roadmap.View, error) {
	if input.UserID == "" || input.ResourceID == "" {
		return roadmap.View{}, fmt.Errorf("user_id and resource_id are required")
	}
	if input.Title == "" {
		return roadmap.View{}, fmt.Errorf("title is required")
	}

	if !input.Regenerate {
		s, found, err := sessions.Load(ctx, input.UserID, input.ResourceID)
		if err != nil {
			return roadmap.View{}, err
		}
		if found {
			return roadmap.BuildView(s), nil
		}
	}

	r, err := roadmap.Generate(ctx, input.Title, input.Description, input.Content)
	if err != nil {
		return roadmap.View{}, err
	}

	s, err := sessions.Start(ctx, input.UserID, input.ResourceID, r)
	if err != nil {
		return roadmap.View{}, err
	}
	return roadmap.BuildView(s), nil
}

func registerRoadmapToggle(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "roadmap_toggle",
		Description: "Toggle the completion state of a roadmap topic node. The change is applied immediately and persisted in the background after a short debounce; rapid toggles coalesce into a single write. Only topic nodes (t-*) can be toggled.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RoadmapToggleInput) (*mcp.CallToolResult, roadmap.View, error) {
		if input.UserID == "" || input.ResourceID == "" || input.NodeID == "" {
			return nil, roadmap.View{}, fmt.Errorf("user_id, resource_id and node_id are required")
		}

		s, found, err := sessions.Load(ctx, input.UserID, input.ResourceID)
		if err != nil {
			return nil, roadmap.View{}, err
		}
		if !found {
			return nil, roadmap.View{}, fmt.Errorf("no roadmap for this user and resource; call roadmap_generate first")
		}

		if _, ok := s.Graph.Toggle(input.NodeID); !ok {
			return nil, roadmap.View{}, fmt.Errorf("node %q is not a toggleable topic", input.NodeID)
		}
		s.Autosaver.MarkDirty()

		return nil, roadmap.BuildView(s), nil
	})
}

func registerRoadmapProgress(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "roadmap_progress",
		Description: "Report completion progress for a user's roadmap: total topics, completed topics, percentage, and save status.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RoadmapProgressInput) (*mcp.CallToolResult, roadmap.View, error) {
		if input.UserID == "" || input.ResourceID == "" {
			return nil, roadmap.View{}, fmt.Errorf("user_id and resource_id are required")
		}

		s, found, err := sessions.Load(ctx, input.UserID, input.ResourceID)
		if err != nil {
			return nil, roadmap.View{}, err
		}
		if !found {
			return nil, roadmap.View{}, fmt.Errorf("no roadmap for this user and resource")
		}
		return nil, roadmap.BuildView(s), nil
	})
}
