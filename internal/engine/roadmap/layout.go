package roadmap

import "fmt"

// Horizontal tree layout: root on the left, modules in the middle column,
// topics on the right. Each module's topic block stacks below the previous
// module's block with a fixed gap, so vertical ranges never overlap.
const (
	rootX     = 0.0
	rootY     = 300.0
	moduleX   = 300.0
	topicX    = 600.0
	rowHeight = 80.0
	moduleGap = 40.0
)

// Layout converts a Roadmap into a node/edge graph with deterministic ids
// and positions. A roadmap with no modules yields a root-only graph.
func Layout(r Roadmap) ([]Node, []Edge) {
	nodes := []Node{{
		ID:       "root",
		Kind:     KindRoot,
		Label:    r.Title,
		Position: Position{X: rootX, Y: rootY},
	}}
	var edges []Edge

	yOffset := 0.0
	for mi, mod := range r.Modules {
		moduleID := fmt.Sprintf("m-%d", mi)
		blockHeight := float64(len(mod.Topics)) * rowHeight

		nodes = append(nodes, Node{
			ID:       moduleID,
			Kind:     KindModule,
			Label:    mod.Title,
			Position: Position{X: moduleX, Y: yOffset + blockHeight/2},
		})
		edges = append(edges, Edge{
			ID:     fmt.Sprintf("e-root-%s", moduleID),
			Source: "root",
			Target: moduleID,
		})

		for ti, topic := range mod.Topics {
			topicID := fmt.Sprintf("t-%d-%d", mi, ti)
			nodes = append(nodes, Node{
				ID:       topicID,
				Kind:     KindTopic,
				Label:    topic,
				Position: Position{X: topicX, Y: yOffset + float64(ti)*rowHeight},
			})
			edges = append(edges, Edge{
				ID:     fmt.Sprintf("e-%s-%s", moduleID, topicID),
				Source: moduleID,
				Target: topicID,
			})
		}

		yOffset += blockHeight + moduleGap
	}

	return nodes, edges
}
