package roadmap

import "time"

// View is the tool-facing rendering of a live session: the full graph plus
// progress and save status.
type View struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Nodes       []Node     `json:"nodes"`
	Edges       []Edge     `json:"edges"`
	Progress    Progress   `json:"progress"`
	SaveState   string     `json:"save_state"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
}

// BuildView snapshots a session into a View.
func BuildView(s *Session) View {
	snap := s.Graph.Snapshot(time.Now().UTC())
	v := View{
		Title:       snap.Title,
		Description: snap.Description,
		Nodes:       snap.Nodes,
		Edges:       snap.Edges,
		Progress:    s.Graph.Progress(),
		SaveState:   s.Autosaver.State().String(),
	}
	if at := s.Autosaver.LastSavedAt(); !at.IsZero() {
		v.LastSavedAt = &at
	}
	return v
}
