package mapgen

import (
	"bytes"
	"testing"

	"gradquest/internal/levelgraph"
	"gradquest/internal/rng"
)

func TestGenerate_NilGraph(t *testing.T) {
	b, err := Generate(nil, -1, "Test")
	if err == nil {
		t.Fatal("expected error for nil graph")
	}
	if b != nil {
		t.Error("expected nil PDF for nil graph")
	}
}

func TestGenerate_FreshRun(t *testing.T) {
	g := levelgraph.Generate(rng.New(7), levelgraph.DefaultConfig())

	b, err := Generate(g, -1, "Seed 7")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b) < 100 {
		t.Errorf("PDF too short: %d bytes", len(b))
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestGenerate_MidRun(t *testing.T) {
	g := levelgraph.Generate(rng.New(11), levelgraph.DefaultConfig())
	start := g.Start()
	g.Node(start).Completed = true
	for _, id := range g.Neighbors(start) {
		g.Node(id).Unlocked = true
	}

	b, err := Generate(g, start, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestProjection_FlipsAxis(t *testing.T) {
	g := levelgraph.Generate(rng.New(3), levelgraph.DefaultConfig())
	project := projection(g)

	for _, n := range g.Nodes {
		x, y := project(n.Position.X, n.Position.Y)
		if x < plotLeft-0.001 || x > plotRight+0.001 {
			t.Errorf("node %d x=%.1f outside plot", n.ID, x)
		}
		if y < plotTop-0.001 || y > plotBottom+0.001 {
			t.Errorf("node %d y=%.1f outside plot", n.ID, y)
		}
	}

	// A point higher in the world lands higher on the page.
	_, low := project(0, 0)
	_, high := project(0, 100)
	if high >= low {
		t.Errorf("expected y axis flipped, got %.1f >= %.1f", high, low)
	}
}
