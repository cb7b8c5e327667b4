// Package manip: LimitIntroducedVertexCount and LimitForgottenVertexCount.
//
// An introduce step of more than limit vertices is split into a chain of
// intermediate nodes whose bags grow the child's bag by limit vertices at a
// time, in ascending vertex order; forget steps are split symmetrically with
// shrinking bags. Only parent/child pairs whose bags are strictly nested are
// rewritten — incomparable pairs belong to ExchangeNodeReplacement.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// LimitIntroducedVertexCount bounds how many vertices any node introduces
// relative to each child.
type LimitIntroducedVertexCount struct {
	limit       int
	treatLeaves bool
}

// LimitOption configures the introduce-limiting operation.
type LimitOption func(*LimitIntroducedVertexCount)

// WithLeavesAsIntroduceNodes makes leaves count as introducing their whole
// bag from an implicit empty child, so oversized leaf bags are split too.
func WithLeavesAsIntroduceNodes() LimitOption {
	return func(op *LimitIntroducedVertexCount) { op.treatLeaves = true }
}

// NewLimitIntroducedVertexCount creates the operation.
// Returns ErrInvalidLimit when limit < 1.
func NewLimitIntroducedVertexCount(limit int, opts ...LimitOption) (*LimitIntroducedVertexCount, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	op := &LimitIntroducedVertexCount{limit: limit}
	for _, fn := range opts {
		fn(op)
	}

	return op, nil
}

// Name returns the operation name.
func (op *LimitIntroducedVertexCount) Name() string { return "LimitIntroducedVertexCount" }

// Flags returns the operation metadata.
func (op *LimitIntroducedVertexCount) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports applicability to trees and paths alike.
func (op *LimitIntroducedVertexCount) Scope() Scope { return ScopeBoth }

// Apply splits every oversized introduce step in the decomposition.
func (op *LimitIntroducedVertexCount) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, td.Nodes(), &o)

	return err
}

// ApplyLocal splits oversized introduce steps at the relevant nodes only.
func (op *LimitIntroducedVertexCount) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

func (op *LimitIntroducedVertexCount) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}

		bag := td.Bag(v)

		// 1. Oversized leaf bags split against the implicit empty child.
		if op.treatLeaves && td.IsLeaf(v) && len(bag) > op.limit {
			cur := v
			for size := len(bag) - op.limit; size > 0; size -= op.limit {
				c, err := td.AddChild(cur)
				if err != nil {
					return trace, err
				}
				if err = td.SetBag(c, bag[:size].Clone()); err != nil {
					return trace, err
				}
				if err = applyLabels(td, c, o.LabelingFunctions); err != nil {
					return trace, err
				}
				trace.Created = append(trace.Created, c)
				cur = c
			}
			continue
		}

		// 2. For each strictly nested child, grow the child's bag upward in
		//    steps of limit vertices.
		for _, c := range td.Children(v) {
			cb := td.Bag(c)
			if !cb.SubsetOf(bag) || bag.Equal(cb) {
				continue
			}
			introduced := bag.Diff(cb)
			if len(introduced) <= op.limit {
				continue
			}

			cur := c
			for i := op.limit; i < len(introduced); i += op.limit {
				m, err := td.AddParent(cur)
				if err != nil {
					return trace, err
				}
				if err = td.SetBag(m, cb.Union(introduced[:i])); err != nil {
					return trace, err
				}
				if err = applyLabels(td, m, o.LabelingFunctions); err != nil {
					return trace, err
				}
				trace.Created = append(trace.Created, m)
				cur = m
			}
		}
	}

	return trace, nil
}

var _ Operation = (*LimitIntroducedVertexCount)(nil)

// LimitForgottenVertexCount bounds how many vertices any node forgets
// relative to each child.
type LimitForgottenVertexCount struct {
	limit int
}

// NewLimitForgottenVertexCount creates the operation.
// Returns ErrInvalidLimit when limit < 1.
func NewLimitForgottenVertexCount(limit int) (*LimitForgottenVertexCount, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	return &LimitForgottenVertexCount{limit: limit}, nil
}

// Name returns the operation name.
func (op *LimitForgottenVertexCount) Name() string { return "LimitForgottenVertexCount" }

// Flags returns the operation metadata.
func (op *LimitForgottenVertexCount) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports applicability to trees and paths alike.
func (op *LimitForgottenVertexCount) Scope() Scope { return ScopeBoth }

// Apply splits every oversized forget step in the decomposition.
func (op *LimitForgottenVertexCount) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	_, err := op.run(td, td.Nodes(), &o)

	return err
}

// ApplyLocal splits oversized forget steps at the relevant nodes only.
func (op *LimitForgottenVertexCount) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

func (op *LimitForgottenVertexCount) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}

		bag := td.Bag(v)
		for _, c := range td.Children(v) {
			cb := td.Bag(c)
			if !bag.SubsetOf(cb) || bag.Equal(cb) {
				continue
			}
			forgotten := cb.Diff(bag)
			if len(forgotten) <= op.limit {
				continue
			}

			// shrink the child's bag upward in steps of limit vertices
			cur := c
			for i := op.limit; i < len(forgotten); i += op.limit {
				m, err := td.AddParent(cur)
				if err != nil {
					return trace, err
				}
				if err = td.SetBag(m, bag.Union(forgotten[i:])); err != nil {
					return trace, err
				}
				if err = applyLabels(td, m, o.LabelingFunctions); err != nil {
					return trace, err
				}
				trace.Created = append(trace.Created, m)
				cur = m
			}
		}
	}

	return trace, nil
}

var _ Operation = (*LimitForgottenVertexCount)(nil)
