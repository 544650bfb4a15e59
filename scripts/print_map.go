// print_map rebuilds the campus map of the run started with a seed, checks
// it and writes it as a printable PDF.
// Usage: go run scripts/print_map.go <seed> <out.pdf>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gradquest/internal/game"
	"gradquest/internal/mapgen"
	"gradquest/internal/rng"
)

func main() {
	code := run()
	if code != 0 {
		os.Exit(code)
	}
}

func run() int {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: go run scripts/print_map.go <seed> <out.pdf>\n")
		return 1
	}
	seed, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		return 1
	}
	outPath := filepath.Clean(os.Args[2])
	if strings.Contains(outPath, "..") {
		fmt.Fprintf(os.Stderr, "path must not escape current directory\n")
		return 1
	}

	// Build the map the way a run does, so the seed printed on a run's map
	// reproduces it here.
	run, err := game.NewRun(game.Env{Rand: rng.New(seed)}, game.DefaultBalance())
	if err != nil {
		fmt.Fprintf(os.Stderr, "new run: %v\n", err)
		return 1
	}
	g := run.Graph()
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "graph for seed %d: %v\n", seed, err)
		return 1
	}
	for i, layer := range g.Layers {
		fmt.Printf("layer %d: %d nodes\n", i, len(layer))
	}

	pdf, err := mapgen.Generate(g, -1, fmt.Sprintf("Seed %d", seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		return 1
	}
	if err := os.WriteFile(outPath, pdf, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		return 1
	}
	fmt.Println(outPath)
	return 0
}
