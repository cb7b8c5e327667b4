// Package labeling: the labeling-function contract.
package labeling

import "github.com/katalvlaran/treedec/hypergraph"

// Function computes a label for a freshly created decomposition node from its
// bag and the labels already stored at that node. Implementations must be
// deterministic and side-effect free: identical inputs yield equal values.
//
// Manipulation operations invoke the configured functions on every node they
// create, in list order, storing each result under the function's Name.
type Function interface {
	// Name returns the label name the computed values are stored under.
	Name() string

	// Compute derives the label value for a node with the given bag.
	// at holds the node's current labels (read-only).
	Compute(bag []hypergraph.Vertex, at *Collection) (Value, error)
}
