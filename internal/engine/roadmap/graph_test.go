package roadmap

import (
	"testing"
	"time"
)

func TestTogglePairIdempotent(t *testing.T) {
	g := NewGraph(sampleRoadmap())

	before := g.Snapshot(time.Time{})

	completed, ok := g.Toggle("t-0-1")
	if !ok || !completed {
		t.Fatalf("first toggle = (%v, %v), want (true, true)", completed, ok)
	}
	completed, ok = g.Toggle("t-0-1")
	if !ok || completed {
		t.Fatalf("second toggle = (%v, %v), want (false, true)", completed, ok)
	}

	after := g.Snapshot(time.Time{})
	if len(before.Nodes) != len(after.Nodes) {
		t.Fatal("node count changed")
	}
	for i := range before.Nodes {
		if before.Nodes[i] != after.Nodes[i] {
			t.Errorf("node %s changed after toggle pair: %+v -> %+v",
				before.Nodes[i].ID, before.Nodes[i], after.Nodes[i])
		}
	}
}

func TestToggleOnlyTopics(t *testing.T) {
	g := NewGraph(sampleRoadmap())

	for _, id := range []string{"root", "m-0", "no-such-node"} {
		if _, ok := g.Toggle(id); ok {
			t.Errorf("Toggle(%q) = ok, want no-op", id)
		}
	}
}

func TestToggleTouchesOnlyTarget(t *testing.T) {
	g := NewGraph(sampleRoadmap())
	g.Toggle("t-1-0")

	snap := g.Snapshot(time.Time{})
	for _, n := range snap.Nodes {
		want := n.ID == "t-1-0"
		if n.Completed != want {
			t.Errorf("node %s completed = %v, want %v", n.ID, n.Completed, want)
		}
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := NewGraph(sampleRoadmap())
	snap := g.Snapshot(time.Time{})

	// Mutating the snapshot must not leak into the graph.
	for i := range snap.Nodes {
		snap.Nodes[i].Completed = true
	}
	if got := g.Progress(); got.Completed != 0 {
		t.Errorf("graph progress = %+v after snapshot mutation, want untouched", got)
	}
}

func TestFromSnapshotRestoresCompletion(t *testing.T) {
	g := NewGraph(sampleRoadmap())
	g.Toggle("t-0-0")
	g.Toggle("t-1-0")

	restored := FromSnapshot(g.Snapshot(time.Now()))

	p := restored.Progress()
	if p.Total != 4 || p.Completed != 2 || p.Percent != 50 {
		t.Errorf("restored progress = %+v, want 2/4", p)
	}

	// Restored graph keeps working: untoggle one.
	if completed, ok := restored.Toggle("t-0-0"); !ok || completed {
		t.Errorf("toggle on restored graph = (%v, %v)", completed, ok)
	}
}

func TestProgressEmptyGraph(t *testing.T) {
	g := NewGraph(Roadmap{Title: "Bare"})
	if p := g.Progress(); p.Total != 0 || p.Percent != 0 {
		t.Errorf("Progress() = %+v, want zeros", p)
	}
}
