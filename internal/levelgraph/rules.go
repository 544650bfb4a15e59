package levelgraph

import "fmt"

// MinLayerSize and MaxLayerSize bound the node count of any layer.
const (
	MinLayerSize = 1
	MaxLayerSize = 4
)

// Link sends one source index to one or more destination indices.
type Link struct {
	From int
	To   []int
}

// Rule is the connection pattern between two consecutive layers.
type Rule struct {
	Name  string
	Links []Link
}

// Pair keys the rule table by (source layer size, destination layer size).
type Pair struct {
	Src int
	Dst int
}

func identity(n int) Rule {
	r := Rule{Name: "identity"}
	for i := 0; i < n; i++ {
		r.Links = append(r.Links, Link{From: i, To: []int{i}})
	}
	return r
}

func fanOut(n int) Rule {
	to := make([]int, n)
	for i := range to {
		to[i] = i
	}
	return Rule{Name: "fan-out", Links: []Link{{From: 0, To: to}}}
}

func fanIn(n int) Rule {
	r := Rule{Name: "fan-in"}
	for i := 0; i < n; i++ {
		r.Links = append(r.Links, Link{From: i, To: []int{0}})
	}
	return r
}

func explicit(links ...Link) Rule {
	return Rule{Name: "explicit", Links: links}
}

func l(from int, to ...int) Link { return Link{From: from, To: to} }

var rules = map[Pair]Rule{
	{1, 1}: identity(1),
	{2, 2}: identity(2),
	{3, 3}: identity(3),
	{4, 4}: identity(4),

	{1, 2}: fanOut(2),
	{1, 3}: fanOut(3),
	{1, 4}: fanOut(4),
	{2, 1}: fanIn(2),
	{3, 1}: fanIn(3),
	{4, 1}: fanIn(4),

	{4, 3}: explicit(l(0, 0), l(1, 1), l(2, 2), l(3, 2)),
	{4, 2}: explicit(l(0, 0), l(1, 0), l(2, 1), l(3, 1)),
	{3, 2}: explicit(l(0, 0), l(1, 1), l(2, 1)),
	{2, 3}: explicit(l(0, 0), l(1, 1, 2)),
	{2, 4}: explicit(l(0, 0, 1), l(1, 2, 3)),
	{3, 4}: explicit(l(0, 0), l(1, 1), l(2, 2, 3)),
}

// RuleFor returns the connection rule for a pair of layer sizes. Sizes
// outside [MinLayerSize, MaxLayerSize] are a contract violation and panic.
func RuleFor(src, dst int) Rule {
	r, ok := rules[Pair{Src: src, Dst: dst}]
	if !ok {
		panic(fmt.Sprintf("levelgraph: no adjacency rule for layer sizes %d -> %d", src, dst))
	}
	return r
}

// Rules returns a copy of the full rule table.
func Rules() map[Pair]Rule {
	out := make(map[Pair]Rule, len(rules))
	for k, v := range rules {
		out[k] = v
	}
	return out
}

// connect appends the edges rule r produces between two layers to adj.
func connect(adj [][]Edge, src, dst []NodeID, r Rule) {
	for _, link := range r.Links {
		from := src[link.From]
		for _, to := range link.To {
			adj[from] = append(adj[from], Edge{From: from, To: dst[to]})
		}
	}
}
