// Package levelgraph generates the layered map of encounters a run crosses:
// a small DAG whose layers are joined by a fixed table of connection rules.
package levelgraph

import (
	"fmt"

	"gradquest/internal/geom"
)

// NodeID indexes Graph.Nodes and Graph.Adjacency.
type NodeID int

// Node is one encounter on the map.
type Node struct {
	ID         NodeID
	Layer      int
	Position   geom.Vec2
	Unlocked   bool
	Completed  bool
	Special    bool
	NumEnemies int
}

// Edge connects a node to one in the following layer.
type Edge struct {
	From NodeID
	To   NodeID
}

// Graph is the generated map. Nodes are numbered layer by layer, so the
// single first-layer node is always 0 and the terminal node is always last.
type Graph struct {
	Nodes     []Node
	Layers    [][]NodeID
	Adjacency [][]Edge
}

// Node returns the node with the given id. An unknown id panics.
func (g *Graph) Node(id NodeID) *Node {
	if int(id) < 0 || int(id) >= len(g.Nodes) {
		panic(fmt.Sprintf("levelgraph: node %d out of range [0, %d)", id, len(g.Nodes)))
	}
	return &g.Nodes[id]
}

// Start is the single node of the first layer.
func (g *Graph) Start() NodeID { return g.Layers[0][0] }

// Terminal is the single node of the last layer.
func (g *Graph) Terminal() NodeID { return g.Layers[len(g.Layers)-1][0] }

// IsTerminal reports whether id sits on the last layer.
func (g *Graph) IsTerminal(id NodeID) bool {
	return g.Node(id).Layer == len(g.Layers)-1
}

// Neighbors lists the nodes reachable in one step from id, in edge order.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	g.Node(id)
	out := make([]NodeID, 0, len(g.Adjacency[id]))
	for _, e := range g.Adjacency[id] {
		out = append(out, e.To)
	}
	return out
}

// Predecessors lists the nodes with an edge into id.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	var out []NodeID
	for _, edges := range g.Adjacency {
		for _, e := range edges {
			if e.To == id {
				out = append(out, e.From)
			}
		}
	}
	return out
}

// Special returns the bonus node, if one was placed.
func (g *Graph) Special() (NodeID, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].Special {
			return g.Nodes[i].ID, true
		}
	}
	return 0, false
}

// Edges returns every edge in source order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, edges := range g.Adjacency {
		out = append(out, edges...)
	}
	return out
}

// Unlocked lists the ids of all currently unlocked nodes.
func (g *Graph) Unlocked() []NodeID {
	var out []NodeID
	for i := range g.Nodes {
		if g.Nodes[i].Unlocked {
			out = append(out, g.Nodes[i].ID)
		}
	}
	return out
}
