// Package manip: ExchangeNodeReplacement.
//
// An exchange node both introduces and forgets vertices relative to its
// single child. Inserting an intermediate node carrying the bag intersection
// turns the step into a forget (below) stacked under an introduce (above),
// so after a full pass every non-join inner node is nested with its child:
// strictly, except where the two bags are equal, which this pass leaves as
// they are.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// ExchangeNodeReplacement splits every exchange node into an introduce over
// a forget.
type ExchangeNodeReplacement struct{}

// NewExchangeNodeReplacement creates the operation.
func NewExchangeNodeReplacement() *ExchangeNodeReplacement {
	return &ExchangeNodeReplacement{}
}

// Name returns the operation name.
func (op *ExchangeNodeReplacement) Name() string { return "ExchangeNodeReplacement" }

// Flags returns the operation metadata.
func (op *ExchangeNodeReplacement) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports applicability to trees and paths alike.
func (op *ExchangeNodeReplacement) Scope() Scope { return ScopeBoth }

// Apply splits every exchange node in the decomposition.
func (op *ExchangeNodeReplacement) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
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

// ApplyLocal splits exchange nodes among the relevant set only.
func (op *ExchangeNodeReplacement) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
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

func (op *ExchangeNodeReplacement) run(td *decomposition.Tree, candidates []decomposition.NodeID, o *Options) (*Trace, error) {
	trace := &Trace{}
	for _, v := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return trace, err
		}
		if !td.IsExchangeNode(v) {
			continue
		}

		c := td.Children(v)[0]
		m, err := td.AddParent(c)
		if err != nil {
			return trace, err
		}
		if err = td.SetBag(m, td.Bag(v).Intersect(td.Bag(c))); err != nil {
			return trace, err
		}
		if err = applyLabels(td, m, o.LabelingFunctions); err != nil {
			return trace, err
		}
		trace.Created = append(trace.Created, m)
	}

	return trace, nil
}

var _ Operation = (*ExchangeNodeReplacement)(nil)
