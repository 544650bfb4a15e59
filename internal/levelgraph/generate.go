package levelgraph

import (
	"errors"
	"fmt"

	"gradquest/internal/geom"
	"gradquest/internal/rng"
)

// Layout positions nodes on the map screen.
type Layout struct {
	Left         int `yaml:"left"`          // x of the leftmost node in a four-node layer
	Width        int `yaml:"width"`         // horizontal span shared by narrower layers
	NodeSpacing  int `yaml:"node_spacing"`  // per-node spacing unit
	Top          int `yaml:"top"`           // y of the first layer
	LayerSpacing int `yaml:"layer_spacing"` // vertical distance between layers
}

// Config controls graph generation.
type Config struct {
	NumLayers        int    `yaml:"num_layers"`
	BonusGateEnemies int    `yaml:"bonus_gate_enemies"`
	Layout           Layout `yaml:"layout"`
}

// DefaultConfig is the five-layer map the game ships with.
func DefaultConfig() Config {
	return Config{
		NumLayers:        5,
		BonusGateEnemies: 4,
		Layout: Layout{
			Left:         300,
			Width:        400,
			NodeSpacing:  100,
			Top:          150,
			LayerSpacing: 125,
		},
	}
}

// Validate rejects configurations the generator cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.NumLayers < 4 {
		errs = append(errs, fmt.Errorf("num_layers must be at least 4, got %d", c.NumLayers))
	}
	if c.BonusGateEnemies < 1 {
		errs = append(errs, fmt.Errorf("bonus_gate_enemies must be positive, got %d", c.BonusGateEnemies))
	}
	if c.Layout.NodeSpacing <= 0 || c.Layout.LayerSpacing <= 0 {
		errs = append(errs, errors.New("layout spacing must be positive"))
	}
	return errors.Join(errs...)
}

// Generate builds a fresh graph. Only the start node is unlocked.
func Generate(r rng.Source, cfg Config) *Graph {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("levelgraph: invalid config: %v", err))
	}
	g := &Graph{}
	last := cfg.NumLayers - 1

	for i := 0; i < cfg.NumLayers; i++ {
		n := r.Intn(MinLayerSize, MaxLayerSize)
		if i == 0 || i == last {
			n = 1
		} else if n == 1 {
			// Keep interior single-node layers rare.
			n += r.Intn(0, 1)
		}

		layer := make([]NodeID, 0, n)
		for j := 0; j < n; j++ {
			id := NodeID(len(g.Nodes))
			enemies := r.Intn(1, i+1)
			if i == 0 || i == last {
				enemies = 1
			}
			g.Nodes = append(g.Nodes, Node{
				ID:         id,
				Layer:      i,
				Position:   cfg.Layout.position(i, j, n),
				NumEnemies: enemies,
			})
			layer = append(layer, id)
		}
		g.Layers = append(g.Layers, layer)
	}

	g.Adjacency = make([][]Edge, len(g.Nodes))
	connect(g.Adjacency, g.Layers[0], g.Layers[1], fanOut(len(g.Layers[1])))
	for i := 1; i < last-1; i++ {
		src, dst := g.Layers[i], g.Layers[i+1]
		connect(g.Adjacency, src, dst, RuleFor(len(src), len(dst)))
	}
	connect(g.Adjacency, g.Layers[last-1], g.Layers[last], fanIn(len(g.Layers[last-1])))

	placeSpecial(g, r, cfg)

	g.Nodes[g.Start()].Unlocked = true
	return g
}

// placeSpecial marks one interior node as the bonus node and makes every
// node leading into it a harder fight.
func placeSpecial(g *Graph, r rng.Source, cfg Config) {
	layer := r.Intn(2, len(g.Layers)-2)
	idx := r.Intn(0, len(g.Layers[layer])-1)
	special := g.Layers[layer][idx]
	g.Nodes[special].Special = true
	for _, from := range g.Predecessors(special) {
		n := &g.Nodes[from]
		n.NumEnemies = max(n.NumEnemies, cfg.BonusGateEnemies)
	}
}

// position centres a layer of n nodes horizontally. Two- and four-node
// layers use a wider spacing so they fill the same band as three nodes.
func (l Layout) position(layer, j, n int) geom.Vec2 {
	base := l.Left
	if n < 4 {
		base += l.Width / (n + 1)
	}
	divisor := n
	if n == 4 {
		divisor--
	}
	multiplier := n * l.NodeSpacing
	if n == 2 {
		multiplier *= 2
		divisor++
	}
	x := base + (multiplier/divisor)*j
	y := l.LayerSpacing*layer + l.Top
	return geom.V(float64(x), float64(y))
}
