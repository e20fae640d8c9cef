package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/digraph"
)

func TestFullGraphCounts(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 13} {
		g := digraph.NewFullGraph(n)
		require.Equal(t, n, g.NodeNum())
		require.Equal(t, n*(n-1)/2, g.EdgeNum())
		require.Equal(t, n*(n-1), g.ArcNum())
		require.Len(t, g.Edges(), g.EdgeNum())
		require.Len(t, g.Arcs(), g.ArcNum())
	}
}

// The fold must be a bijection: every unordered pair maps to a distinct
// in-range edge id and decodes back to itself.
func TestFullGraphEdgeEncodingBijective(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 9, 16} {
		g := digraph.NewFullGraph(n)
		seen := make(map[digraph.Edge]bool, g.EdgeNum())
		for u := digraph.Node(0); int(u) < n; u++ {
			for v := u + 1; int(v) < n; v++ {
				e := g.Edge(u, v)
				require.GreaterOrEqual(t, int(e), 0, "n=%d {%d,%d}", n, u, v)
				require.Less(t, int(e), g.EdgeNum(), "n=%d {%d,%d}", n, u, v)
				require.False(t, seen[e], "n=%d edge id %d duplicated", n, e)
				seen[e] = true

				eu, ev := g.Ends(e)
				require.Equal(t, u, eu, "n=%d edge %d", n, e)
				require.Equal(t, v, ev, "n=%d edge %d", n, e)
				require.Equal(t, e, g.Edge(v, u), "symmetry n=%d", n)
			}
		}
		require.Len(t, seen, g.EdgeNum())
	}
}

// Even arc ids run smaller→larger, odd ids the other way, and both share
// the edge id in their upper bits.
func TestFullGraphArcParity(t *testing.T) {
	g := digraph.NewFullGraph(6)
	for u := digraph.Node(0); int(u) < 6; u++ {
		for v := u + 1; int(v) < 6; v++ {
			fwd := g.Arc(u, v)
			rev := g.Arc(v, u)
			require.Equal(t, digraph.Arc(0), fwd&1)
			require.Equal(t, digraph.Arc(1), rev&1)
			require.Equal(t, g.Edge(u, v), g.EdgeOf(fwd))
			require.Equal(t, g.Edge(u, v), g.EdgeOf(rev))

			require.Equal(t, u, g.Source(fwd))
			require.Equal(t, v, g.Target(fwd))
			require.Equal(t, v, g.Source(rev))
			require.Equal(t, u, g.Target(rev))
		}
	}
}

func TestFullGraphLoopsRejected(t *testing.T) {
	g := digraph.NewFullGraph(4)
	require.Equal(t, digraph.InvalidEdge, g.Edge(2, 2))
	require.Equal(t, digraph.InvalidArc, g.Arc(2, 2))
}

func TestFullGraphIncidence(t *testing.T) {
	g := digraph.NewFullGraph(5)
	out := g.OutArcs(3)
	require.Len(t, out, 4)
	for _, a := range out {
		require.Equal(t, digraph.Node(3), g.Source(a))
	}
	in := g.InArcs(0)
	require.Len(t, in, 4)
	for _, a := range in {
		require.Equal(t, digraph.Node(0), g.Target(a))
	}
}

func TestFullGraphFindOneShot(t *testing.T) {
	g := digraph.NewFullGraph(4)
	e := g.FindEdge(1, 3, digraph.InvalidEdge)
	require.Equal(t, g.Edge(1, 3), e)
	require.Equal(t, digraph.InvalidEdge, g.FindEdge(1, 3, e))

	a := g.FindArc(3, 1, digraph.InvalidArc)
	require.Equal(t, g.Arc(3, 1), a)
	require.Equal(t, digraph.InvalidArc, g.FindArc(3, 1, a))
}
