package portalserver

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/anatolykoptev/go_campus/internal/engine"
	"github.com/anatolykoptev/go_campus/internal/engine/roadmap"
)

// brokenStore fails every read, standing in for a snapshot row that no
// longer decodes.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, userID, resourceID string) (roadmap.Snapshot, bool, error) {
	return roadmap.Snapshot{}, false, errors.New("decode snapshot: unexpected end of JSON input")
}

func (brokenStore) Put(ctx context.Context, userID, resourceID string, s roadmap.Snapshot) error {
	return errors.New("store unavailable")
}

func (brokenStore) Delete(ctx context.Context, userID, resourceID string) error {
	return errors.New("store unavailable")
}

func (brokenStore) Close() error { return nil }

func TestGenerateRoadmapViewSurfacesLoadError(t *testing.T) {
	prev := Sessions()
	SetSessions(roadmap.NewManager(brokenStore{}, time.Hour))
	t.Cleanup(func() { SetSessions(prev) })

	_, err := generateRoadmapView(context.Background(), engine.RoadmapGenerateInput{
		UserID:     "u1",
		ResourceID: "r1",
		Title:      "Operating Systems",
	})
	if err == nil {
		t.Fatal("expected the load error to surface, not a regeneration")
	}
}

func TestGenerateRoadmapViewRestoresSaved(t *testing.T) {
	store, err := roadmap.OpenStore(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	m := roadmap.NewManager(store, time.Hour)
	prev := Sessions()
	SetSessions(m)
	t.Cleanup(func() { SetSessions(prev) })

	r := roadmap.Roadmap{
		Title: "Learn Go",
		Modules: []roadmap.Module{
			{Title: "Basics", Description: "Start here", Topics: []string{"Syntax"}},
		},
	}
	if _, err := m.Start(context.Background(), "u1", "r1", r); err != nil {
		t.Fatal(err)
	}

	// Without the regenerate flag the saved roadmap comes back as is.
	v, err := generateRoadmapView(context.Background(), engine.RoadmapGenerateInput{
		UserID:     "u1",
		ResourceID: "r1",
		Title:      "Learn Go",
	})
	if err != nil {
		t.Fatalf("generateRoadmapView() error = %v", err)
	}
	if v.Title != "Learn Go" {
		t.Errorf("Title = %q", v.Title)
	}
	if len(v.Nodes) != 3 {
		t.Errorf("restored %d nodes, want 3", len(v.Nodes))
	}
}
