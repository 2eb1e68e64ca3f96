package exchange

// Edge is a directed exchange rate between two currencies.
type Edge struct {
	From      string
	To        string
	Rate      float64
	Timestamp int64
}

// Graph answers multi-hop exchange rate queries over a set of directed edges.
// Edges supplied at construction time get a synthesized reciprocal; edges
// appended mid-run via AddEdge do not. Payments rely on that: they register
// only the direction they observed.
type Graph struct {
	edges []Edge
}

// NewGraph builds the graph from the configured edges and synthesizes the
// reciprocal of every one of them.
func NewGraph(edges []Edge) *Graph {
	g := &Graph{edges: make([]Edge, 0, len(edges)*2)}
	g.edges = append(g.edges, edges...)
	for _, e := range edges {
		g.edges = append(g.edges, Edge{From: e.To, To: e.From, Rate: 1 / e.Rate})
	}
	return g
}

// AddEdge appends a single directed edge. No reciprocal is synthesized.
func (g *Graph) AddEdge(from, to string, rate float64) {
	g.edges = append(g.edges, Edge{From: from, To: to, Rate: rate})
}

type pathNode struct {
	currency string
	rate     float64
}

// Rate returns the multiplied exchange rate along the shortest hop-count path
// from one currency to another. The second return value reports whether any
// path exists; callers must check it before using the rate.
func (g *Graph) Rate(from, to string) (float64, bool) {
	if from == to {
		return 1.0, true
	}

	queue := []pathNode{{currency: from, rate: 1.0}}
	visited := map[string]bool{from: true}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.currency == to {
			return node.rate, true
		}

		for _, e := range g.edges {
			if e.From == node.currency && !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, pathNode{currency: e.To, rate: node.rate * e.Rate})
			}
		}
	}

	return 0, false
}

// Edges returns the current edge list, setup reciprocals included.
func (g *Graph) Edges() []Edge {
	return g.edges
}
