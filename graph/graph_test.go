package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/graph"
	"github.com/ugparu/mxfheader/mxfuid"
)

func uid(b byte) mxfuid.MXFUid {
	return mxfuid.New([]byte{b})
}

func TestTopologicalSortOrdersDependenciesBeforeDependents(t *testing.T) {
	t.Parallel()

	g := graph.New()
	g.AddNode(uid(1))
	g.AddEdge(uid(1), uid(2))
	g.AddEdge(uid(2), uid(3))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Equal(t, []mxfuid.MXFUid{uid(3), uid(2), uid(1)}, order)
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	t.Parallel()

	g := graph.New()
	g.AddEdge(uid(1), uid(2))
	g.AddEdge(uid(2), uid(1))

	_, err := g.TopologicalSort()
	require.Error(t, err)
}

func TestTopologicalSortHandlesDanglingDependency(t *testing.T) {
	t.Parallel()

	g := graph.New()
	g.AddEdge(uid(1), uid(99)) // 99 never registered via AddNode

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Equal(t, []mxfuid.MXFUid{uid(99), uid(1)}, order)
}

func TestTopologicalSortIsDeterministicForIndependentNodes(t *testing.T) {
	t.Parallel()

	g := graph.New()
	g.AddNode(uid(1))
	g.AddNode(uid(2))
	g.AddNode(uid(3))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Equal(t, []mxfuid.MXFUid{uid(1), uid(2), uid(3)}, order)
}
