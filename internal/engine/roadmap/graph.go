package roadmap

import (
	"sync"
	"time"
)

// Graph owns the mutable node set for one (user, resource) roadmap. Toggling
// goes through the graph by node id; nodes themselves stay plain data.
type Graph struct {
	mu          sync.Mutex
	title       string
	description string
	nodes       []Node
	edges       []Edge
	index       map[string]int // node id to nodes slice position
}

// NewGraph lays out a roadmap and wraps it in a Graph.
func NewGraph(r Roadmap) *Graph {
	nodes, edges := Layout(r)
	return newGraph(r.Title, r.Description, nodes, edges)
}

// FromSnapshot rebuilds a Graph from a persisted snapshot, keeping the saved
// positions and completion flags.
func FromSnapshot(s Snapshot) *Graph {
	nodes := make([]Node, len(s.Nodes))
	copy(nodes, s.Nodes)
	edges := make([]Edge, len(s.Edges))
	copy(edges, s.Edges)
	return newGraph(s.Title, s.Description, nodes, edges)
}

func newGraph(title, description string, nodes []Node, edges []Edge) *Graph {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}
	return &Graph{
		title:       title,
		description: description,
		nodes:       nodes,
		edges:       edges,
		index:       index,
	}
}

// Toggle flips the completed flag of a topic node and returns the new value.
// Unknown ids and non-topic nodes are no-ops with ok=false.
func (g *Graph) Toggle(nodeID string) (completed, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, found := g.index[nodeID]
	if !found || g.nodes[i].Kind != KindTopic {
		return false, false
	}
	g.nodes[i].Completed = !g.nodes[i].Completed
	return g.nodes[i].Completed, true
}

// Snapshot returns a deep copy of the current graph state, stamped with now.
func (g *Graph) Snapshot(now time.Time) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return Snapshot{
		Title:       g.title,
		Description: g.description,
		Nodes:       nodes,
		Edges:       edges,
		UpdatedAt:   now,
	}
}

// Progress counts completed topics.
func (g *Graph) Progress() Progress {
	g.mu.Lock()
	defer g.mu.Unlock()

	var p Progress
	for _, n := range g.nodes {
		if n.Kind != KindTopic {
			continue
		}
		p.Total++
		if n.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Completed * 100 / p.Total
	}
	return p
}
