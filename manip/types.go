// Package manip: the operation contract, metadata flags, apply options, and
// the Pipeline runner.
package manip

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/labeling"
)

// Sentinel errors for manipulation operations.
var (
	// ErrNilGraph indicates a nil graph reader was passed to Apply.
	ErrNilGraph = errors.New("manip: graph is nil")

	// ErrNilDecomposition indicates a nil decomposition was passed to Apply.
	ErrNilDecomposition = errors.New("manip: decomposition is nil")

	// ErrInvalidLimit indicates a limit parameter outside the accepted range.
	ErrInvalidLimit = errors.New("manip: invalid limit")
)

// Scope declares which decomposition kinds an operation applies to.
// A path decomposition is a Tree in which every node has at most one child.
type Scope int

const (
	// ScopeBoth marks operations valid on tree and path decompositions.
	ScopeBoth Scope = iota

	// ScopeTree marks operations meaningful only on tree decompositions.
	ScopeTree

	// ScopePath marks operations meaningful only on path decompositions.
	ScopePath
)

// Flags is the declarative metadata record of an operation. The optimizer
// uses it to decide whether an operation may be cheaply re-applied locally
// after re-rooting instead of rerunning the full pipeline on a copy.
type Flags struct {
	// Local reports that the operation supports restricted passes over a
	// relevant node set.
	Local bool

	// CreatesNodes reports that the operation may add nodes.
	CreatesNodes bool

	// RemovesNodes reports that the operation may delete nodes.
	RemovesNodes bool

	// ModifiesBags reports that the operation may change existing bags.
	ModifiesBags bool

	// CreatesSubsetMaximalBags reports that new bags may be subset-maximal
	// within their neighborhood.
	CreatesSubsetMaximalBags bool

	// CreatesLocationDependentLabels reports that computed labels depend on
	// the node's position, invalidating them under re-rooting.
	CreatesLocationDependentLabels bool
}

// Safe reports whether the operation can be re-applied locally after a
// re-rooting without global recomputation.
func (f Flags) Safe() bool {
	return f.Local && !f.RemovesNodes && !f.ModifiesBags && !f.CreatesLocationDependentLabels
}

// Trace records the nodes an operation created and removed, in application
// order.
type Trace struct {
	Created []decomposition.NodeID
	Removed []decomposition.NodeID
}

// merge appends another trace, dropping created nodes that were removed again.
func (tr *Trace) merge(o *Trace) {
	removed := make(map[decomposition.NodeID]bool, len(o.Removed))
	for _, v := range o.Removed {
		removed[v] = true
	}
	kept := tr.Created[:0]
	for _, v := range tr.Created {
		if !removed[v] {
			kept = append(kept, v)
		}
	}
	tr.Created = append(kept, o.Created...)
	tr.Removed = append(tr.Removed, o.Removed...)
}

// Option configures an Apply/ApplyLocal invocation.
type Option func(*Options)

// Options holds the per-invocation parameters of an operation.
type Options struct {
	// Ctx allows cooperative cancellation between node rewrites; defaults to
	// context.Background().
	Ctx context.Context

	// LabelingFunctions are invoked, in order, on every node the operation
	// creates; each result is stored under the function's declared name.
	LabelingFunctions []labeling.Function
}

// DefaultOptions returns Options with a background context and no labeling
// functions.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that installs ctx for cancellation.
// A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLabelingFunctions returns an Option appending fns to the labeling
// functions applied to created nodes.
func WithLabelingFunctions(fns ...labeling.Function) Option {
	return func(o *Options) {
		o.LabelingFunctions = append(o.LabelingFunctions, fns...)
	}
}

// Operation is the contract every manipulation operation obeys.
//
// Apply rewrites the whole decomposition; ApplyLocal restricts the pass to
// the given relevant nodes and their immediate surroundings and reports the
// nodes it created and removed. ApplyLocal is only meaningful when
// Flags().Local holds. Both forms restore the decomposition invariants
// before returning; on invalid input they return without mutating.
type Operation interface {
	// Name returns the operation's diagnostic name.
	Name() string

	// Flags returns the operation's declarative metadata.
	Flags() Flags

	// Scope reports which decomposition kinds the operation applies to.
	Scope() Scope

	// Apply runs a full pass over the decomposition.
	Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error

	// ApplyLocal runs a pass restricted to relevant and returns the trace of
	// created and removed nodes.
	ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error)
}

// Pipeline applies a list of operations strictly in order.
type Pipeline struct {
	ops []Operation
}

// NewPipeline creates a pipeline over the given operations.
func NewPipeline(ops ...Operation) *Pipeline {
	return &Pipeline{ops: append([]Operation(nil), ops...)}
}

// Operations returns the pipeline's operations in application order.
func (p *Pipeline) Operations() []Operation {
	return append([]Operation(nil), p.ops...)
}

// Append adds further operations to the end of the pipeline.
func (p *Pipeline) Append(ops ...Operation) {
	p.ops = append(p.ops, ops...)
}

// Run applies every operation in order. Each operation completes fully
// before the next starts; cancellation is checked between operations.
func (p *Pipeline) Run(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	for _, op := range p.ops {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		if err := op.Apply(g, td, opts...); err != nil {
			return fmt.Errorf("manip: %s: %w", op.Name(), err)
		}
	}

	return nil
}

// RunLocal applies every operation's local variant in order, feeding nodes
// created by earlier operations into the relevant set of later ones, and
// returns the merged trace.
func (p *Pipeline) RunLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	total := &Trace{}
	current := append([]decomposition.NodeID(nil), relevant...)
	for _, op := range p.ops {
		if err := o.Ctx.Err(); err != nil {
			return total, err
		}
		tr, err := op.ApplyLocal(g, td, current, opts...)
		if err != nil {
			return total, fmt.Errorf("manip: %s: %w", op.Name(), err)
		}
		total.merge(tr)
		current = appendLive(td, current, tr)
	}

	return total, nil
}

// appendLive extends relevant with a trace's created nodes and drops entries
// the trace removed.
func appendLive(td *decomposition.Tree, relevant []decomposition.NodeID, tr *Trace) []decomposition.NodeID {
	out := relevant[:0]
	for _, v := range relevant {
		if td.ContainsNode(v) {
			out = append(out, v)
		}
	}

	return append(out, tr.Created...)
}

// checkArgs validates the common Apply preconditions.
func checkArgs(g hypergraph.Reader, td *decomposition.Tree) error {
	if g == nil {
		return ErrNilGraph
	}
	if td == nil {
		return ErrNilDecomposition
	}

	return nil
}

// checkRelevant verifies every relevant node exists before any mutation.
func checkRelevant(td *decomposition.Tree, relevant []decomposition.NodeID) error {
	for _, v := range relevant {
		if !td.ContainsNode(v) {
			return fmt.Errorf("manip: relevant node %d: %w", v, decomposition.ErrNodeNotFound)
		}
	}

	return nil
}

// applyLabels invokes each labeling function on a freshly created node and
// stores the results under the functions' names.
func applyLabels(td *decomposition.Tree, v decomposition.NodeID, fns []labeling.Function) error {
	for _, fn := range fns {
		value, err := fn.Compute([]hypergraph.Vertex(td.Bag(v)), td.Labelings())
		if err != nil {
			return fmt.Errorf("manip: labeling function %q: %w", fn.Name(), err)
		}
		td.Labelings().SetVertexLabel(fn.Name(), int(v), value)
	}

	return nil
}
