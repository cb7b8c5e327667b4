package decomposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

func TestValidate_ValidChain(t *testing.T) {
	g := pathGraph(t, 4)
	td, err := decomposition.New(g)
	require.NoError(t, err)

	r, err := td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)
	a, err := td.AddChild(r)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(a, decomposition.NewBag(2, 3)))
	b, err := td.AddChild(a)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(b, decomposition.NewBag(3, 4)))

	assert.NoError(t, decomposition.Validate(g, td))
}

func TestValidate_MissingVertex(t *testing.T) {
	g := pathGraph(t, 3)
	td, err := decomposition.New(g)
	require.NoError(t, err)

	_, err = td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)

	// vertex 3 occurs in no bag
	assert.ErrorIs(t, decomposition.Validate(g, td), decomposition.ErrNotConnected)
}

func TestValidate_DisconnectedOccurrence(t *testing.T) {
	g := pathGraph(t, 3)
	td, err := decomposition.New(g)
	require.NoError(t, err)

	// chain {1,2} → {2} → {1,2,3}: all edges covered, but vertex 1 is
	// re-introduced below the gap
	r, err := td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)
	a, err := td.AddChild(r)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(a, decomposition.NewBag(2)))
	b, err := td.AddChild(a)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(b, decomposition.NewBag(1, 2, 3)))

	assert.ErrorIs(t, decomposition.Validate(g, td), decomposition.ErrNotConnected)
}

func TestValidate_UncoveredEdge(t *testing.T) {
	g := hypergraph.New()
	_, err := g.AddEdge(1, 2, 3)
	require.NoError(t, err)

	td, err := decomposition.New(g)
	require.NoError(t, err)
	r, err := td.AddRoot(decomposition.NewBag(1, 2))
	require.NoError(t, err)
	c, err := td.AddChild(r)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(c, decomposition.NewBag(2, 3)))

	// {1,2,3} fits in no bag
	assert.ErrorIs(t, decomposition.Validate(g, td), decomposition.ErrEdgeNotCovered)
}

func TestValidate_EmptyTreeEmptyGraph(t *testing.T) {
	g := hypergraph.New()
	td, err := decomposition.New(g)
	require.NoError(t, err)
	assert.NoError(t, decomposition.Validate(g, td))
}

func TestValidate_EmptyTreeNonEmptyGraph(t *testing.T) {
	g := pathGraph(t, 2)
	td, err := decomposition.New(g)
	require.NoError(t, err)
	assert.ErrorIs(t, decomposition.Validate(g, td), decomposition.ErrBrokenTree)
}
