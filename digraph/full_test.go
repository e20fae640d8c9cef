package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/digraph"
)

func TestFullCounts(t *testing.T) {
	g := digraph.NewFull(5)
	require.Equal(t, 5, g.NodeNum())
	require.Equal(t, 25, g.ArcNum())
	require.Equal(t, 4, g.MaxNodeID())
	require.Equal(t, 24, g.MaxArcID())
	require.Len(t, g.Nodes(), 5)
	require.Len(t, g.Arcs(), 25)
}

// Round trip id→endpoints→id over every ordered pair, loops included.
func TestFullEncodingRoundTrip(t *testing.T) {
	const n = 7
	g := digraph.NewFull(n)
	seen := make(map[digraph.Arc]bool, n*n)
	for u := digraph.Node(0); u < n; u++ {
		for v := digraph.Node(0); v < n; v++ {
			a := g.Arc(u, v)
			require.Equal(t, digraph.Arc(int(u)*n+int(v)), a)
			require.Equal(t, u, g.Source(a))
			require.Equal(t, v, g.Target(a))
			require.False(t, seen[a], "arc id %d duplicated", a)
			seen[a] = true
		}
	}
	require.Len(t, seen, n*n)
}

func TestFullIncidence(t *testing.T) {
	g := digraph.NewFull(4)
	out := g.OutArcs(2)
	require.Len(t, out, 4)
	for i, a := range out {
		require.Equal(t, digraph.Arc(2*4+i), a)
		require.Equal(t, digraph.Node(2), g.Source(a))
	}
	in := g.InArcs(1)
	require.Len(t, in, 4)
	for _, a := range in {
		require.Equal(t, digraph.Node(1), g.Target(a))
	}
}

func TestFullFindArcOneShot(t *testing.T) {
	g := digraph.NewFull(3)
	a := g.FindArc(1, 2, digraph.InvalidArc)
	require.Equal(t, g.Arc(1, 2), a)
	require.Equal(t, digraph.InvalidArc, g.FindArc(1, 2, a))
	require.Equal(t, digraph.InvalidArc, g.Arc(1, 5))
}

func TestFullIndexAccessors(t *testing.T) {
	g := digraph.NewFull(6)
	for i := 0; i < 6; i++ {
		require.Equal(t, digraph.Node(i), g.NodeAt(i))
		require.Equal(t, i, g.Index(digraph.Node(i)))
	}
}
