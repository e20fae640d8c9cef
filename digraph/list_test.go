package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/digraph"
)

func TestListGrowth(t *testing.T) {
	g := digraph.NewList()
	require.Zero(t, g.NodeNum())
	require.Zero(t, g.ArcNum())
	require.Equal(t, -1, g.MaxNodeID())
	require.Equal(t, -1, g.MaxArcID())

	u := g.AddNode()
	v := g.AddNode()
	require.Equal(t, digraph.Node(0), u)
	require.Equal(t, digraph.Node(1), v)

	a, err := g.AddArc(u, v)
	require.NoError(t, err)
	require.Equal(t, digraph.Arc(0), a)
	require.Equal(t, u, g.Source(a))
	require.Equal(t, v, g.Target(a))
	require.Equal(t, 2, g.NodeNum())
	require.Equal(t, 1, g.ArcNum())
	require.Equal(t, 1, g.MaxNodeID())
	require.Equal(t, 0, g.MaxArcID())
}

func TestListAddNodesBlock(t *testing.T) {
	g := digraph.NewList()
	first := g.AddNodes(5)
	require.Equal(t, digraph.Node(0), first)
	require.Equal(t, 5, g.NodeNum())
	require.Len(t, g.Nodes(), 5)
}

func TestListRejectsUnknownEndpoints(t *testing.T) {
	g := digraph.NewList()
	g.AddNode()
	_, err := g.AddArc(0, 7)
	require.ErrorIs(t, err, digraph.ErrNodeRange)
	_, err = g.AddArc(-1, 0)
	require.ErrorIs(t, err, digraph.ErrNodeRange)
}

func TestListIncidence(t *testing.T) {
	g := digraph.NewList()
	g.AddNodes(3)
	a0, _ := g.AddArc(0, 1)
	a1, _ := g.AddArc(0, 2)
	a2, _ := g.AddArc(2, 0)
	loop, _ := g.AddArc(1, 1)

	require.Equal(t, []digraph.Arc{a0, a1}, g.OutArcs(0))
	require.Equal(t, []digraph.Arc{a2}, g.InArcs(0))
	require.Equal(t, []digraph.Arc{loop}, g.OutArcs(1))
	require.Contains(t, g.InArcs(1), loop)
	require.Contains(t, g.InArcs(1), a0)
}

// FindArc walks parallel arcs in insertion order and ends on the sentinel.
func TestListFindArcParallel(t *testing.T) {
	g := digraph.NewList()
	g.AddNodes(2)
	a0, _ := g.AddArc(0, 1)
	_, _ = g.AddArc(1, 0)
	a2, _ := g.AddArc(0, 1)

	got := g.FindArc(0, 1, digraph.InvalidArc)
	require.Equal(t, a0, got)
	got = g.FindArc(0, 1, got)
	require.Equal(t, a2, got)
	got = g.FindArc(0, 1, got)
	require.Equal(t, digraph.InvalidArc, got)

	require.Equal(t, digraph.InvalidArc, g.FindArc(1, 1, digraph.InvalidArc))
}

func TestListMultigraphCounts(t *testing.T) {
	g := digraph.NewList()
	g.AddNodes(2)
	for i := 0; i < 4; i++ {
		_, err := g.AddArc(0, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 4, g.ArcNum())
	require.Len(t, g.OutArcs(0), 4)
	require.Len(t, g.InArcs(1), 4)
}
