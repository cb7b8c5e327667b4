// Package manip: Compression.
//
// Chains of single-child nodes with equal bags carry no information; the
// pass walks the tree bottom-up and removes the child of every such pair,
// keeping the parent so existing parent links stay intact.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// Compression removes redundant equal-bag chain nodes.
type Compression struct{}

// NewCompression creates the operation.
func NewCompression() *Compression {
	return &Compression{}
}

// Name returns the operation name.
func (op *Compression) Name() string { return "Compression" }

// Flags returns the operation metadata. Compression removes nodes, so it is
// never a safe operation for the optimizer's quick path.
func (op *Compression) Flags() Flags {
	return Flags{Local: true, RemovesNodes: true}
}

// Scope reports applicability to trees and paths alike.
func (op *Compression) Scope() Scope { return ScopeBoth }

// Apply compresses the whole decomposition bottom-up.
// Complexity: O(n · bag size)
func (op *Compression) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, td.PostOrder(), &o)

	return err
}

// ApplyLocal compresses around the relevant nodes only.
func (op *Compression) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
	if err := checkArgs(g, td); err != nil {
		return nil, err
	}
	if err := checkRelevant(td, relevant); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return op.run(td, relevant, &o)
}

func (op *Compression) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}
		if !td.ContainsNode(v) {
			continue
		}

		// absorb equal-bag single children until v's step carries information
		for td.ChildCount(v) == 1 {
			c := td.Children(v)[0]
			if !td.Bag(v).Equal(td.Bag(c)) {
				break
			}
			if err := td.RemoveNode(c); err != nil {
				return trace, err
			}
			trace.Removed = append(trace.Removed, c)
		}
	}

	return trace, nil
}

var _ Operation = (*Compression)(nil)
