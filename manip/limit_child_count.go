// Package manip: LimitChildCount.
//
// Join nodes with more than limit children are stretched into a chain of
// copies of the original node; the surplus children are re-parented onto
// successive chain nodes so that no node keeps more than limit children.
// Every chain node carries the original bag and shares its induced
// hyperedges, so the rewrite never touches coverage.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// LimitChildCount bounds the fan-out of every node to a fixed limit.
type LimitChildCount struct {
	limit int
}

// NewLimitChildCount creates the operation. A limit below two is rejected
// with ErrInvalidLimit: with a single allowed child no chain node could both
// keep a child and attach the next chain link, so the rewrite cannot make
// progress.
func NewLimitChildCount(limit int) (*LimitChildCount, error) {
	if limit < 2 {
		return nil, ErrInvalidLimit
	}

	return &LimitChildCount{limit: limit}, nil
}

// Name returns the operation name.
func (op *LimitChildCount) Name() string { return "LimitChildCount" }

// Flags returns the operation metadata.
func (op *LimitChildCount) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports tree decompositions only; a path has no fan-out to bound.
func (op *LimitChildCount) Scope() Scope { return ScopeTree }

// Apply rewrites every join node with more than limit children.
// Complexity: O(n + created·E)
func (op *LimitChildCount) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
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

// ApplyLocal rewrites only the relevant nodes.
func (op *LimitChildCount) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

// run stretches each candidate with excess children into a chain.
func (op *LimitChildCount) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}

		childCount := td.ChildCount(v)
		if childCount <= op.limit {
			continue
		}
		children := td.Children(v)

		// 1. The first limit-1 children stay in place; the rest move onto a
		//    chain of copies of v.
		index := op.limit - 1
		attachment := v

		// 2. While more than one chain link is still needed, each new link
		//    takes limit-1 children and the next link.
		for childCount-index > op.limit {
			newNode, err := op.chainLink(td, attachment, v, o)
			if err != nil {
				return trace, err
			}
			attachment = newNode
			for pos := index; pos < index+op.limit-1; pos++ {
				if err := td.SetParent(children[pos], attachment); err != nil {
					return trace, err
				}
			}
			trace.Created = append(trace.Created, newNode)
			index += op.limit - 1
		}

		// 3. A final link absorbs the tail.
		if index < childCount {
			newNode, err := op.chainLink(td, attachment, v, o)
			if err != nil {
				return trace, err
			}
			attachment = newNode
			for pos := index; pos < childCount; pos++ {
				if err := td.SetParent(children[pos], attachment); err != nil {
					return trace, err
				}
			}
			trace.Created = append(trace.Created, newNode)
		}
	}

	return trace, nil
}

// chainLink appends a copy of src below attachment and labels it.
func (op *LimitChildCount) chainLink(td *decomposition.Tree, attachment, src decomposition.NodeID, o *Options) (decomposition.NodeID, error) {
	newNode, err := td.AddChild(attachment)
	if err != nil {
		return 0, err
	}
	if err = td.SetBagFrom(newNode, src); err != nil {
		return 0, err
	}
	if err = applyLabels(td, newNode, o.LabelingFunctions); err != nil {
		return 0, err
	}

	return newNode, nil
}

var _ Operation = (*LimitChildCount)(nil)
