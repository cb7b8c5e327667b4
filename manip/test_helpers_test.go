package manip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/labeling"
)

// bagSizeLabel records the bag size of the node it was computed for.
type bagSizeLabel int

func (l bagSizeLabel) Clone() labeling.Value { return l }

func (l bagSizeLabel) Equal(o labeling.Value) bool {
	other, ok := o.(bagSizeLabel)

	return ok && other == l
}

// bagSizeFunction labels every created node with its bag size.
type bagSizeFunction struct{}

func (bagSizeFunction) Name() string { return "bag-size" }

func (bagSizeFunction) Compute(bag []hypergraph.Vertex, _ *labeling.Collection) (labeling.Value, error) {
	return bagSizeLabel(len(bag)), nil
}

// vertexGraph returns a hypergraph holding the given vertices and no edges.
func vertexGraph(t *testing.T, vs ...hypergraph.Vertex) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	require.NoError(t, g.AddVertices(vs...))

	return g
}

// newTree wraps decomposition.New for tests.
func newTree(t *testing.T, g hypergraph.Reader) *decomposition.Tree {
	t.Helper()
	td, err := decomposition.New(g)
	require.NoError(t, err)

	return td
}

// addChild adds a child with the given bag.
func addChild(t *testing.T, td *decomposition.Tree, p decomposition.NodeID, bag decomposition.Bag) decomposition.NodeID {
	t.Helper()
	c, err := td.AddChild(p)
	require.NoError(t, err)
	require.NoError(t, td.SetBag(c, bag))

	return c
}

// checkNormalized asserts the normalization post-condition: every inner node
// is a single-vertex introduce, a single-vertex forget, or a binary join
// whose children's bags equal its own.
func checkNormalized(t *testing.T, td *decomposition.Tree) {
	t.Helper()
	for _, v := range td.Nodes() {
		if td.IsLeaf(v) {
			continue
		}
		children := td.Children(v)
		if len(children) >= 2 {
			require.Len(t, children, 2, "join node %d has %d children", v, len(children))
			for _, c := range children {
				require.True(t, td.Bag(c).Equal(td.Bag(v)), "join child %d bag differs from %d", c, v)
			}
			continue
		}

		c := children[0]
		intro := td.Bag(v).Diff(td.Bag(c))
		forgotten := td.Bag(c).Diff(td.Bag(v))
		if td.Parent(v) == 0 && len(intro) == 0 && len(forgotten) == 0 {
			continue // equal-bag root over a join is permitted
		}
		ok := (len(intro) == 1 && len(forgotten) == 0) || (len(intro) == 0 && len(forgotten) == 1)
		require.True(t, ok, "node %d: introduces %v, forgets %v", v, intro, forgotten)
	}
}
