// Package optimize: fitness values, fitness functions, and selection
// strategies.
package optimize

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// Sentinel errors for optimization.
var (
	// ErrEmptySelection indicates the vertex-selection strategy produced no
	// candidate roots although a fitness function is configured.
	ErrEmptySelection = errors.New("optimize: empty root candidate selection")

	// ErrNotLocal indicates ApplyLocal was called on the optimization
	// operation, which only supports global passes.
	ErrNotLocal = errors.New("optimize: optimization is not a local operation")
)

// Evaluation is a lexicographic fitness value: the first level decides,
// later levels break ties. Bigger is better. A missing level counts as zero.
type Evaluation []float64

// Compare returns -1, 0, or +1 as e is worse than, equal to, or better
// than o under lexicographic order.
func (e Evaluation) Compare(o Evaluation) int {
	n := len(e)
	if len(o) > n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		var a, b float64
		if i < len(e) {
			a = e[i]
		}
		if i < len(o) {
			b = o[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	return 0
}

// FitnessFunction scores a decomposition. Implementations must be
// deterministic; monotonicity under pipeline application is not required.
type FitnessFunction interface {
	// Evaluate returns the fitness of td as a decomposition of g.
	Evaluate(g hypergraph.Reader, td *decomposition.Tree) Evaluation
}

// WidthFitness prefers decompositions of smaller width, breaking ties by
// smaller height.
type WidthFitness struct{}

// Evaluate returns (-width, -height).
func (WidthFitness) Evaluate(_ hypergraph.Reader, td *decomposition.Tree) Evaluation {
	return Evaluation{-float64(td.Width()), -float64(td.Height())}
}

// HeightFitness prefers shallow decompositions, breaking ties by fewer
// join nodes.
type HeightFitness struct{}

// Evaluate returns (-height, -joinNodeCount).
func (HeightFitness) Evaluate(_ hypergraph.Reader, td *decomposition.Tree) Evaluation {
	return Evaluation{-float64(td.Height()), -float64(td.JoinNodeCount())}
}

// VertexSelectionStrategy produces the candidate roots for optimization.
// The returned order is the preference order: among equally fit candidates
// the earliest wins.
type VertexSelectionStrategy interface {
	// Select returns candidate root nodes of td.
	Select(td *decomposition.Tree) []decomposition.NodeID
}

// ExhaustiveSelection offers every node as a candidate root, in ascending
// id order.
type ExhaustiveSelection struct{}

// Select returns all nodes of td.
func (ExhaustiveSelection) Select(td *decomposition.Tree) []decomposition.NodeID {
	return td.Nodes()
}

// RandomSelection offers a fixed number of distinct candidate roots drawn
// from a seeded source, so runs are reproducible.
type RandomSelection struct {
	count int
	rng   *rand.Rand
}

// NewRandomSelection creates a strategy drawing count distinct candidates
// using the given seed.
func NewRandomSelection(count int, seed int64) *RandomSelection {
	return &RandomSelection{count: count, rng: rand.New(rand.NewSource(seed))}
}

// Select draws up to count distinct nodes of td.
func (s *RandomSelection) Select(td *decomposition.Tree) []decomposition.NodeID {
	nodes := td.Nodes()
	if s.count >= len(nodes) {
		return nodes
	}
	s.rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return nodes[:s.count]
}
