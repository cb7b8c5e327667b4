package manip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/manip"
)

func TestNewLimitChildCount_RejectsDegenerateLimit(t *testing.T) {
	for _, limit := range []int{-1, 0, 1} {
		_, err := manip.NewLimitChildCount(limit)
		assert.ErrorIs(t, err, manip.ErrInvalidLimit, "limit %d", limit)
	}

	op, err := manip.NewLimitChildCount(2)
	require.NoError(t, err)
	assert.True(t, op.Flags().Safe())
	assert.Equal(t, manip.ScopeTree, op.Scope())
}

// The star scenario: root 1 with four leaf children is stretched into a
// chain of two extra copies of the root.
func TestLimitChildCount_Star(t *testing.T) {
	g := vertexGraph(t, 1)
	td := newTree(t, g)
	r, err := td.AddRoot(nil)
	require.NoError(t, err)
	c2 := addChild(t, td, r, decomposition.NewBag(1))
	c3 := addChild(t, td, r, decomposition.NewBag(1))
	c4 := addChild(t, td, r, decomposition.NewBag(1))
	c5 := addChild(t, td, r, decomposition.NewBag(1))

	op, err := manip.NewLimitChildCount(2)
	require.NoError(t, err)
	require.NoError(t, op.Apply(g, td))

	n6 := decomposition.NodeID(6)
	n7 := decomposition.NodeID(7)
	assert.Equal(t, []decomposition.NodeID{c2, n6}, td.Children(r))
	assert.Equal(t, []decomposition.NodeID{c3, n7}, td.Children(n6))
	assert.Equal(t, []decomposition.NodeID{c4, c5}, td.Children(n7))
	assert.True(t, td.Bag(n6).IsEmpty())
	assert.True(t, td.Bag(n7).IsEmpty())
	assert.Equal(t, 3, td.Height())
}

func TestLimitChildCount_NoOpWithinLimit(t *testing.T) {
	g := vertexGraph(t, 1)
	td := newTree(t, g)
	r, err := td.AddRoot(decomposition.NewBag(1))
	require.NoError(t, err)
	addChild(t, td, r, decomposition.NewBag(1))
	addChild(t, td, r, decomposition.NewBag(1))

	op, err := manip.NewLimitChildCount(2)
	require.NoError(t, err)
	require.NoError(t, op.Apply(g, td))
	assert.Equal(t, 3, td.NodeCount())
}

func TestLimitChildCount_LocalMatchesGlobal(t *testing.T) {
	build := func() *decomposition.Tree {
		td := newTree(t, vertexGraph(t, 1))
		r, err := td.AddRoot(decomposition.NewBag(1))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			addChild(t, td, r, decomposition.NewBag(1))
		}

		return td
	}

	op, err := manip.NewLimitChildCount(3)
	require.NoError(t, err)

	global := build()
	require.NoError(t, op.Apply(global.Graph(), global))

	local := build()
	trace, err := op.ApplyLocal(local.Graph(), local, local.Nodes())
	require.NoError(t, err)

	assert.Equal(t, global.NodeCount(), local.NodeCount())
	assert.Len(t, trace.Created, 1)
	assert.Empty(t, trace.Removed)
	for _, v := range trace.Created {
		assert.True(t, local.ContainsNode(v))
	}
}

func TestLimitChildCount_LabelsCreatedNodes(t *testing.T) {
	g := vertexGraph(t, 1)
	td := newTree(t, g)
	r, err := td.AddRoot(decomposition.NewBag(1))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		addChild(t, td, r, decomposition.NewBag(1))
	}

	op, err := manip.NewLimitChildCount(2)
	require.NoError(t, err)
	trace, err := op.ApplyLocal(g, td, td.Nodes(), manip.WithLabelingFunctions(bagSizeFunction{}))
	require.NoError(t, err)
	require.NotEmpty(t, trace.Created)

	for _, v := range trace.Created {
		val, err := td.Labelings().VertexLabel("bag-size", int(v))
		require.NoError(t, err)
		assert.True(t, val.Equal(bagSizeLabel(len(td.Bag(v)))))
	}
}

func TestLimitChildCount_UnknownRelevantNode(t *testing.T) {
	g := vertexGraph(t, 1)
	td := newTree(t, g)
	_, err := td.AddRoot(decomposition.NewBag(1))
	require.NoError(t, err)

	op, err := manip.NewLimitChildCount(2)
	require.NoError(t, err)
	_, err = op.ApplyLocal(g, td, []decomposition.NodeID{42})
	assert.ErrorIs(t, err, decomposition.ErrNodeNotFound)
	assert.Equal(t, 1, td.NodeCount())
}
