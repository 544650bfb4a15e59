package levelgraph

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of a generated graph: layer
// sizes in range, single-node first and last layers, edges only between
// consecutive layers, every non-terminal node with an outgoing edge, every
// node past the first with an incoming edge, and exactly one special node.
func (g *Graph) Validate() error {
	if len(g.Layers) < 2 {
		return fmt.Errorf("graph has %d layers, need at least 2", len(g.Layers))
	}
	if len(g.Adjacency) != len(g.Nodes) {
		return fmt.Errorf("adjacency has %d lists for %d nodes", len(g.Adjacency), len(g.Nodes))
	}
	var errs []error
	last := len(g.Layers) - 1
	if len(g.Layers[0]) != 1 || len(g.Layers[last]) != 1 {
		errs = append(errs, errors.New("first and last layers must hold exactly one node"))
	}
	for i, layer := range g.Layers {
		if len(layer) < MinLayerSize || len(layer) > MaxLayerSize {
			errs = append(errs, fmt.Errorf("layer %d has %d nodes", i, len(layer)))
		}
	}

	incoming := make([]int, len(g.Nodes))
	for id, edges := range g.Adjacency {
		n := g.Nodes[id]
		if n.Layer != last && len(edges) == 0 {
			errs = append(errs, fmt.Errorf("node %d on layer %d has no outgoing edge", id, n.Layer))
		}
		if n.Layer == last && len(edges) != 0 {
			errs = append(errs, fmt.Errorf("terminal node %d has outgoing edges", id))
		}
		for _, e := range edges {
			if int(e.From) != id {
				errs = append(errs, fmt.Errorf("edge %d->%d filed under node %d", e.From, e.To, id))
				continue
			}
			if int(e.To) < 0 || int(e.To) >= len(g.Nodes) {
				errs = append(errs, fmt.Errorf("edge %d->%d points outside the graph", e.From, e.To))
				continue
			}
			if g.Nodes[e.To].Layer != n.Layer+1 {
				errs = append(errs, fmt.Errorf("edge %d->%d skips layers", e.From, e.To))
			}
			incoming[e.To]++
		}
	}
	for id, in := range incoming {
		if g.Nodes[id].Layer > 0 && in == 0 {
			errs = append(errs, fmt.Errorf("node %d on layer %d is unreachable", id, g.Nodes[id].Layer))
		}
	}

	specials := 0
	for i := range g.Nodes {
		if g.Nodes[i].Special {
			specials++
		}
	}
	if specials != 1 {
		errs = append(errs, fmt.Errorf("expected exactly one special node, found %d", specials))
	}
	return errors.Join(errs...)
}
