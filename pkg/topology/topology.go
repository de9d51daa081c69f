// Package topology analyses the adjacency of a frame model as an undirected
// graph: connected sub-structures, free-standing members and whether each
// sub-structure reaches the base level.
//
// Every adjacency entry becomes one edge regardless of its role, so a beam
// framing into a column mid-height and a beam sitting on its top both count
// as connections.
package topology

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

// Graph is the member adjacency of one model.
type Graph struct {
	g       *simple.UndirectedGraph
	members []*frame.Member // indexed by node ID
	ids     map[string]int64
}

// Build converts the adjacency sets of model into a graph. Node order
// follows the model's canonical order. References to missing members are
// skipped.
func Build(model *frame.Model) *Graph {
	all := model.All()
	out := &Graph{
		g:       simple.NewUndirectedGraph(),
		members: all,
		ids:     make(map[string]int64, len(all)),
	}
	for i, mem := range all {
		out.g.AddNode(simple.Node(int64(i)))
		out.ids[mem.Name] = int64(i)
	}
	for i, mem := range all {
		for _, l := range mem.Links() {
			j, ok := out.ids[l.Name]
			if !ok || j == int64(i) {
				continue
			}
			out.g.SetEdge(out.g.NewEdge(simple.Node(int64(i)), simple.Node(j)))
		}
	}
	return out
}

// Len returns the number of members.
func (g *Graph) Len() int { return len(g.members) }

// Edges returns the number of distinct connected member pairs.
func (g *Graph) Edges() int { return g.g.Edges().Len() }

// Degree returns how many distinct members name is connected to, or -1 if
// the member is unknown.
func (g *Graph) Degree(name string) int {
	id, ok := g.ids[name]
	if !ok {
		return -1
	}
	return g.g.From(id).Len()
}

// Component is one connected sub-structure.
type Component struct {
	Members  []string // canonical model order
	Grounded bool     // some member reaches the base level
}

// Components returns the connected sub-structures, ordered by their first
// member in canonical order. A member is grounded when one of its end
// points lies at the base elevation (Y = base) on grid.
func (g *Graph) Components(base float64, grid geom.Grid) []Component {
	groups := topo.ConnectedComponents(g.g)
	out := make([]Component, 0, len(groups))
	for _, nodes := range groups {
		ids := nodeIDs(nodes)
		c := Component{Members: make([]string, len(ids))}
		for i, id := range ids {
			mem := g.members[id]
			c.Members[i] = mem.Name
			if onBase(mem, base, grid) {
				c.Grounded = true
			}
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Component) int {
		return int(g.ids[a.Members[0]] - g.ids[b.Members[0]])
	})
	return out
}

// Isolated returns members with no connections, in canonical order.
func (g *Graph) Isolated() []string {
	var out []string
	for i, mem := range g.members {
		if g.g.From(int64(i)).Len() == 0 {
			out = append(out, mem.Name)
		}
	}
	return out
}

// Floating returns the members of every component that does not reach the
// base level.
func (g *Graph) Floating(base float64, grid geom.Grid) []string {
	var out []string
	for _, c := range g.Components(base, grid) {
		if !c.Grounded {
			out = append(out, c.Members...)
		}
	}
	return out
}

func nodeIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	return ids
}

func onBase(mem *frame.Member, base float64, grid geom.Grid) bool {
	y := geom.RoundTo(base, grid.Precision)
	return geom.RoundTo(mem.Start.Y, grid.Precision) == y || geom.RoundTo(mem.End.Y, grid.Precision) == y
}
