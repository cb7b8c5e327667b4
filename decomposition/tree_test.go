package decomposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// triangleGraph returns the hypergraph with vertices 1..3 and edges
// {1,2}, {2,3}, {1,3}.
func triangleGraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	for _, e := range [][]hypergraph.Vertex{{1, 2}, {2, 3}, {1, 3}} {
		_, err := g.AddEdge(e...)
		require.NoError(t, err)
	}

	return g
}

func TestNew_NilGraph(t *testing.T) {
	_, err := decomposition.New(nil)
	assert.ErrorIs(t, err, decomposition.ErrNilGraph)
}

func TestAddRoot_Twice(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)

	r, err := td.AddRoot(decomposition.NewBag(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, r, td.Root())

	_, err = td.AddRoot(decomposition.NewBag(1))
	assert.ErrorIs(t, err, decomposition.ErrRootExists)
}

func TestAddRoot_UnknownVertex(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)

	_, err = td.AddRoot(decomposition.NewBag(9))
	assert.ErrorIs(t, err, decomposition.ErrUnknownVertex)
	assert.Equal(t, decomposition.NodeID(0), td.Root())
}

func TestAddChild_And_Accessors(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)

	c, err := td.AddChild(r)
	require.NoError(t, err)
	assert.Equal(t, r, td.Parent(c))
	assert.Equal(t, []decomposition.NodeID{c}, td.Children(r))
	assert.True(t, td.Bag(c).IsEmpty())
	assert.Equal(t, 0, td.Induced(c).Len())

	_, err = td.AddChild(99)
	assert.ErrorIs(t, err, decomposition.ErrNodeNotFound)
}

func TestAddRoot_InducedEdges(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)

	// only edge {1,2} fits into the bag
	assert.Equal(t, []hypergraph.EdgeID{1}, td.Induced(r).IDs())
}

func TestAddParent_InheritsBag(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)
	c, err := td.AddChild(r)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(c, decomposition.NewBag(2, 3)))

	p, err := td.AddParent(c)
	require.NoError(t, err)
	assert.Equal(t, td.Bag(c), td.Bag(p))
	assert.Equal(t, r, td.Parent(p))
	assert.Equal(t, p, td.Parent(c))
	assert.Equal(t, []decomposition.NodeID{p}, td.Children(r))
}

func TestAddParent_OnRoot(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2, 3))
	require.NoError(t, err)

	p, err := td.AddParent(r)
	require.NoError(t, err)
	assert.Equal(t, p, td.Root())
	assert.Equal(t, p, td.Parent(r))
	assert.Equal(t, td.Bag(r), td.Bag(p))
}

func TestRemoveNode_SplicesChildren(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2, 3))
	require.NoError(t, err)
	a, err := td.AddChild(r)
	require.NoError(t, err)
	mid, err := td.AddChild(r)
	require.NoError(t, err)
	b, err := td.AddChild(r)
	require.NoError(t, err)
	x, err := td.AddChild(mid)
	require.NoError(t, err)
	y, err := td.AddChild(mid)
	require.NoError(t, err)

	require.NoError(t, td.RemoveNode(mid))
	// mid's children take mid's slot, in order
	assert.Equal(t, []decomposition.NodeID{a, x, y, b}, td.Children(r))
	assert.Equal(t, r, td.Parent(x))
	assert.Equal(t, r, td.Parent(y))
	assert.False(t, td.ContainsNode(mid))
}

func TestRemoveNode_Root(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2, 3))
	require.NoError(t, err)

	// root with zero children cannot be removed
	assert.ErrorIs(t, td.RemoveNode(r), decomposition.ErrRemoveRoot)

	c, err := td.AddChild(r)
	require.NoError(t, err)
	require.NoError(t, td.RemoveNode(r))
	assert.Equal(t, c, td.Root())
	assert.Equal(t, decomposition.NodeID(0), td.Parent(c))

	// root with two children cannot be removed either
	c1, err := td.AddChild(c)
	require.NoError(t, err)
	_, err = td.AddChild(c)
	require.NoError(t, err)
	_ = c1
	assert.ErrorIs(t, td.RemoveNode(c), decomposition.ErrRemoveRoot)
}

func TestSetParent_MovesSubtree(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2, 3))
	require.NoError(t, err)
	a, err := td.AddChild(r)
	require.NoError(t, err)
	b, err := td.AddChild(r)
	require.NoError(t, err)
	x, err := td.AddChild(a)
	require.NoError(t, err)

	require.NoError(t, td.SetParent(x, b))
	assert.Equal(t, b, td.Parent(x))
	assert.Empty(t, td.Children(a))

	// moving a node under its own descendant must fail
	assert.ErrorIs(t, td.SetParent(r, x), decomposition.ErrCycle)
	assert.ErrorIs(t, td.SetParent(x, x), decomposition.ErrCycle)
}

func TestSwapSubtrees(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2, 3))
	require.NoError(t, err)
	a, err := td.AddChild(r)
	require.NoError(t, err)
	b, err := td.AddChild(r)
	require.NoError(t, err)
	x, err := td.AddChild(a)
	require.NoError(t, err)
	y, err := td.AddChild(b)
	require.NoError(t, err)

	require.NoError(t, td.SwapSubtrees(x, y))
	assert.Equal(t, []decomposition.NodeID{y}, td.Children(a))
	assert.Equal(t, []decomposition.NodeID{x}, td.Children(b))

	// ancestor/descendant pairs are rejected
	assert.ErrorIs(t, td.SwapSubtrees(a, y), decomposition.ErrCycle)
	assert.ErrorIs(t, td.SwapSubtrees(r, a), decomposition.ErrCycle)
}

func TestSetBag_RecomputesInduced(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1))
	require.NoError(t, err)

	require.NoError(t, td.SetBag(r, decomposition.NewBag(1, 2, 3)))
	assert.Equal(t, []hypergraph.EdgeID{1, 2, 3}, td.Induced(r).IDs())

	require.NoError(t, td.SetBag(r, decomposition.NewBag(2, 3)))
	assert.Equal(t, []hypergraph.EdgeID{2}, td.Induced(r).IDs())

	assert.ErrorIs(t, td.SetBag(r, decomposition.NewBag(42)), decomposition.ErrUnknownVertex)
	assert.ErrorIs(t, td.SetBag(99, nil), decomposition.ErrNodeNotFound)
}

func TestNodeIDs_NeverReused(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1))
	require.NoError(t, err)
	c, err := td.AddChild(r)
	require.NoError(t, err)
	require.NoError(t, td.RemoveNode(c))

	d, err := td.AddChild(r)
	require.NoError(t, err)
	assert.Greater(t, d, c)
}

func TestLabels_RemovedWithNode(t *testing.T) {
	td, err := decomposition.New(triangleGraph(t))
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1))
	require.NoError(t, err)
	c, err := td.AddChild(r)
	require.NoError(t, err)

	td.Labelings().SetVertexLabel("weight", int(c), intLabel(7))
	require.NoError(t, td.RemoveNode(c))

	_, err = td.Labelings().VertexLabel("weight", int(c))
	assert.Error(t, err)
}
