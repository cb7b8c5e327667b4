// Package manip: AddIdenticalJoinNodeParent and JoinNodeNormalization.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// AddIdenticalJoinNodeParent gives join nodes a parent carrying the same bag.
// With enforcement on, a fresh parent is inserted above every join node;
// otherwise only where the existing parent's bag differs. A join node at the
// root gets a fresh root above it.
type AddIdenticalJoinNodeParent struct {
	enforce bool
}

// NewAddIdenticalJoinNodeParent creates the operation. enforce selects
// unconditional insertion.
func NewAddIdenticalJoinNodeParent(enforce bool) *AddIdenticalJoinNodeParent {
	return &AddIdenticalJoinNodeParent{enforce: enforce}
}

// Name returns the operation name.
func (op *AddIdenticalJoinNodeParent) Name() string { return "AddIdenticalJoinNodeParent" }

// Flags returns the operation metadata.
func (op *AddIdenticalJoinNodeParent) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports tree decompositions only.
func (op *AddIdenticalJoinNodeParent) Scope() Scope { return ScopeTree }

// Apply processes every join node.
func (op *AddIdenticalJoinNodeParent) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, td.JoinNodes(), &o)

	return err
}

// ApplyLocal processes only the relevant join nodes.
func (op *AddIdenticalJoinNodeParent) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

func (op *AddIdenticalJoinNodeParent) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}
		if !td.IsJoinNode(v) {
			continue
		}

		p := td.Parent(v)
		if !op.enforce && p != 0 && td.Bag(p).Equal(td.Bag(v)) {
			continue
		}

		// AddParent inherits v's bag and induced hyperedges.
		q, err := td.AddParent(v)
		if err != nil {
			return trace, err
		}
		if err = applyLabels(td, q, o.LabelingFunctions); err != nil {
			return trace, err
		}
		trace.Created = append(trace.Created, q)
	}

	return trace, nil
}

var _ Operation = (*AddIdenticalJoinNodeParent)(nil)

// JoinNodeNormalization gives every join node children whose bags equal its
// own: a node with the join's bag is inserted above each child with a
// different bag. Optionally the join also receives an identical parent.
type JoinNodeNormalization struct {
	identicalParent bool
}

// NewJoinNodeNormalization creates the operation. identicalParent also
// applies AddIdenticalJoinNodeParent (non-enforcing) to each join node.
func NewJoinNodeNormalization(identicalParent bool) *JoinNodeNormalization {
	return &JoinNodeNormalization{identicalParent: identicalParent}
}

// Name returns the operation name.
func (op *JoinNodeNormalization) Name() string { return "JoinNodeNormalization" }

// Flags returns the operation metadata.
func (op *JoinNodeNormalization) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports tree decompositions only.
func (op *JoinNodeNormalization) Scope() Scope { return ScopeTree }

// Apply normalizes every join node.
func (op *JoinNodeNormalization) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, td.JoinNodes(), &o)

	return err
}

// ApplyLocal normalizes only the relevant join nodes.
func (op *JoinNodeNormalization) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

func (op *JoinNodeNormalization) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	identical := NewAddIdenticalJoinNodeParent(false)
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}
		if !td.IsJoinNode(v) {
			continue
		}

		for _, c := range td.Children(v) {
			if td.Bag(c).Equal(td.Bag(v)) {
				continue
			}
			m, err := td.AddParent(c)
			if err != nil {
				return trace, err
			}
			if err = td.SetBagFrom(m, v); err != nil {
				return trace, err
			}
			if err = applyLabels(td, m, o.LabelingFunctions); err != nil {
				return trace, err
			}
			trace.Created = append(trace.Created, m)
		}

		if op.identicalParent {
			tr, err := identical.run(td, []decomposition.NodeID{v}, o)
			if err != nil {
				return trace, err
			}
			trace.merge(tr)
		}
	}

	return trace, nil
}

var _ Operation = (*JoinNodeNormalization)(nil)
