// Package roadmap turns a learning resource into an interactive mind-map
// graph with per-topic completion tracking and debounced persistence.
package roadmap

import "time"

// Roadmap is the structured learning path for one resource.
type Roadmap struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Modules     []Module `json:"modules"`
}

// Module is one stage of the roadmap with its topics.
type Module struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// NodeKind distinguishes the three node levels in the laid-out graph.
type NodeKind string

const (
	KindRoot   NodeKind = "root"
	KindModule NodeKind = "module"
	KindTopic  NodeKind = "topic"
)

// Position is a node's layout coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a laid-out graph node. Only topic nodes carry completion state.
type Node struct {
	ID        string   `json:"id"`
	Kind      NodeKind `json:"kind"`
	Label     string   `json:"label"`
	Position  Position `json:"position"`
	Completed bool     `json:"completed,omitempty"`
}

// Edge connects a parent node to a child node.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Snapshot is the persisted form of a graph: plain data, no behavior.
type Snapshot struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Nodes       []Node    `json:"nodes"`
	Edges       []Edge    `json:"edges"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Progress summarizes topic completion for a graph.
type Progress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}
