// Package manip: AddEmptyRoot and AddEmptyLeaves.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// AddEmptyRoot puts a fresh root with an empty bag above the current root
// when the current root's bag is non-empty.
type AddEmptyRoot struct{}

// NewAddEmptyRoot creates the operation.
func NewAddEmptyRoot() *AddEmptyRoot {
	return &AddEmptyRoot{}
}

// Name returns the operation name.
func (op *AddEmptyRoot) Name() string { return "AddEmptyRoot" }

// Flags returns the operation metadata.
func (op *AddEmptyRoot) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports applicability to trees and paths alike.
func (op *AddEmptyRoot) Scope() Scope { return ScopeBoth }

// Apply inserts the empty root when needed. Complexity: O(1).
func (op *AddEmptyRoot) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, &o)

	return err
}

// ApplyLocal behaves like Apply: the root check is O(1), so no restriction
// is needed for the pass to stay local.
func (op *AddEmptyRoot) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

	return op.run(td, &o)
}

func (op *AddEmptyRoot) run(td *decomposition.Tree, o *Options) (*Trace, error) {
	trace := &Trace{}
	root := td.Root()
	if root == 0 || td.Bag(root).IsEmpty() {
		return trace, nil
	}

	p, err := td.AddParent(root)
	if err != nil {
		return trace, err
	}
	if err = td.SetBag(p, nil); err != nil {
		return trace, err
	}
	if err = applyLabels(td, p, o.LabelingFunctions); err != nil {
		return trace, err
	}
	trace.Created = append(trace.Created, p)

	return trace, nil
}

var _ Operation = (*AddEmptyRoot)(nil)

// AddEmptyLeaves gives every leaf with a non-empty bag a single child with
// an empty bag.
type AddEmptyLeaves struct{}

// NewAddEmptyLeaves creates the operation.
func NewAddEmptyLeaves() *AddEmptyLeaves {
	return &AddEmptyLeaves{}
}

// Name returns the operation name.
func (op *AddEmptyLeaves) Name() string { return "AddEmptyLeaves" }

// Flags returns the operation metadata.
func (op *AddEmptyLeaves) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports applicability to trees and paths alike.
func (op *AddEmptyLeaves) Scope() Scope { return ScopeBoth }

// Apply extends every non-empty leaf. Complexity: O(n).
func (op *AddEmptyLeaves) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, td.Leaves(), &o)

	return err
}

// ApplyLocal extends only the relevant leaves.
func (op *AddEmptyLeaves) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

func (op *AddEmptyLeaves) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}
		if !td.IsLeaf(v) || td.Bag(v).IsEmpty() {
			continue
		}

		c, err := td.AddChild(v)
		if err != nil {
			return trace, err
		}
		if err = applyLabels(td, c, o.LabelingFunctions); err != nil {
			return trace, err
		}
		trace.Created = append(trace.Created, c)
	}

	return trace, nil
}

var _ Operation = (*AddEmptyLeaves)(nil)
