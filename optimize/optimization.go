// Package optimize: the Optimization operation.
//
// The operation re-roots the decomposition at each candidate produced by the
// selection strategy, re-applies the configured manipulation pipeline, and
// keeps the root with the best fitness. Three internal strategies trade
// copying against journaling depending on the pipeline's metadata flags.

package optimize

import (
	"fmt"

	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/manip"
)

// Optimization is a manip.Operation maximizing a fitness function over root
// choices of a tree decomposition.
type Optimization struct {
	fitness      FitnessFunction
	strategy     VertexSelectionStrategy
	ops          []manip.Operation
	enforceNaive bool
}

// OptimizationOption configures an Optimization.
type OptimizationOption func(*Optimization)

// WithFitnessFunction installs the fitness function. Without one the
// operation only runs its pipeline.
func WithFitnessFunction(f FitnessFunction) OptimizationOption {
	return func(op *Optimization) { op.fitness = f }
}

// WithVertexSelectionStrategy replaces the default ExhaustiveSelection.
func WithVertexSelectionStrategy(s VertexSelectionStrategy) OptimizationOption {
	return func(op *Optimization) {
		if s != nil {
			op.strategy = s
		}
	}
}

// WithManipulationOperations appends operations to the pipeline applied to
// every candidate, in the given order.
func WithManipulationOperations(ops ...manip.Operation) OptimizationOption {
	return func(op *Optimization) { op.ops = append(op.ops, ops...) }
}

// WithEnforcedNaiveOptimization makes every candidate start from a deep copy
// running the full pipeline, regardless of the operations' metadata.
func WithEnforcedNaiveOptimization() OptimizationOption {
	return func(op *Optimization) { op.enforceNaive = true }
}

// NewOptimization creates the operation.
func NewOptimization(opts ...OptimizationOption) *Optimization {
	op := &Optimization{strategy: ExhaustiveSelection{}}
	for _, fn := range opts {
		fn(op)
	}

	return op
}

// Name returns the operation name.
func (op *Optimization) Name() string { return "TreeDecompositionOptimization" }

// Flags returns the union of the configured operations' metadata; the
// optimization itself is never local and may re-root the whole tree.
func (op *Optimization) Flags() manip.Flags {
	f := manip.Flags{}
	for _, sub := range op.ops {
		sf := sub.Flags()
		f.CreatesNodes = f.CreatesNodes || sf.CreatesNodes
		f.RemovesNodes = f.RemovesNodes || sf.RemovesNodes
		f.ModifiesBags = f.ModifiesBags || sf.ModifiesBags
		f.CreatesSubsetMaximalBags = f.CreatesSubsetMaximalBags || sf.CreatesSubsetMaximalBags
		f.CreatesLocationDependentLabels = f.CreatesLocationDependentLabels || sf.CreatesLocationDependentLabels
	}

	return f
}

// Scope reports tree decompositions only.
func (op *Optimization) Scope() manip.Scope { return manip.ScopeTree }

// ApplyLocal is not supported; optimization is a global pass.
func (op *Optimization) ApplyLocal(hypergraph.Reader, *decomposition.Tree, []decomposition.NodeID, ...manip.Option) (*manip.Trace, error) {
	return nil, ErrNotLocal
}

// Apply optimizes td in place. Without a fitness function the configured
// pipeline runs once and no re-rooting happens. With one, the candidate
// roots are probed in strategy order and the best decomposition replaces td;
// on ties the earliest candidate wins.
func (op *Optimization) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...manip.Option) error {
	if g == nil {
		return manip.ErrNilGraph
	}
	if td == nil {
		return manip.ErrNilDecomposition
	}

	pipeline := manip.NewPipeline(op.ops...)
	if op.fitness == nil || td.Root() == 0 {
		return pipeline.Run(g, td, opts...)
	}

	candidates := op.strategy.Select(td)
	if len(candidates) == 0 {
		return ErrEmptySelection
	}

	switch {
	case op.enforceNaive:
		return op.naive(g, td, pipeline, candidates, opts...)
	case op.allSafe():
		return op.quick(g, td, pipeline, candidates, opts...)
	default:
		return op.intelligent(g, td, candidates, opts...)
	}
}

// allSafe reports whether every configured operation may be re-applied
// locally after a re-rooting.
func (op *Optimization) allSafe() bool {
	for _, sub := range op.ops {
		if !sub.Flags().Safe() {
			return false
		}
	}

	return true
}

// quick probes every candidate in place: safe operations only create nodes,
// so successive probes stay valid and the final re-rooting to the winner
// needs no cleanup.
func (op *Optimization) quick(g hypergraph.Reader, td *decomposition.Tree, pipeline *manip.Pipeline, candidates []decomposition.NodeID, opts ...manip.Option) error {
	o := manip.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Establish the pipeline's shape once.
	if err := pipeline.Run(g, td, opts...); err != nil {
		return err
	}

	// 2. Probe each candidate root.
	var bestEval Evaluation
	bestRoot := decomposition.NodeID(0)
	for _, r := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		touched, err := td.MakeRoot(r)
		if err != nil {
			return fmt.Errorf("optimize: re-rooting at %d: %w", r, err)
		}
		if _, err = pipeline.RunLocal(g, td, touched, opts...); err != nil {
			return err
		}
		eval := op.fitness.Evaluate(g, td)
		if bestRoot == 0 || eval.Compare(bestEval) > 0 {
			bestEval = eval
			bestRoot = r
		}
	}

	// 3. Settle on the winner.
	touched, err := td.MakeRoot(bestRoot)
	if err != nil {
		return fmt.Errorf("optimize: re-rooting at %d: %w", bestRoot, err)
	}
	_, err = pipeline.RunLocal(g, td, touched, opts...)

	return err
}

// naive probes every candidate on a deep copy running the full pipeline and
// installs the best copy.
func (op *Optimization) naive(g hypergraph.Reader, td *decomposition.Tree, pipeline *manip.Pipeline, candidates []decomposition.NodeID, opts ...manip.Option) error {
	o := manip.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var best *decomposition.Tree
	var bestEval Evaluation
	for _, r := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		probe := td.Clone()
		if _, err := probe.MakeRoot(r); err != nil {
			return fmt.Errorf("optimize: re-rooting at %d: %w", r, err)
		}
		if err := pipeline.Run(g, probe, opts...); err != nil {
			return err
		}
		eval := op.fitness.Evaluate(g, probe)
		if best == nil || eval.Compare(bestEval) > 0 {
			best = probe
			bestEval = eval
		}
	}
	td.CopyFrom(best)

	return nil
}

// intelligent runs the safe prefix globally once, probes candidates with
// journaled rollback of the nodes each probe creates, and applies the unsafe
// tail only on the winning root.
func (op *Optimization) intelligent(g hypergraph.Reader, td *decomposition.Tree, candidates []decomposition.NodeID, opts ...manip.Option) error {
	o := manip.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var safe, unsafe []manip.Operation
	for _, sub := range op.ops {
		if sub.Flags().Safe() {
			safe = append(safe, sub)
		} else {
			unsafe = append(unsafe, sub)
		}
	}
	safePipeline := manip.NewPipeline(safe...)

	// 1. The safe prefix shapes the tree once.
	if err := safePipeline.Run(g, td, opts...); err != nil {
		return err
	}

	// 2. Probe candidates, journaling and rolling back created nodes.
	var bestEval Evaluation
	bestRoot := decomposition.NodeID(0)
	for _, r := range candidates {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		touched, err := td.MakeRoot(r)
		if err != nil {
			return fmt.Errorf("optimize: re-rooting at %d: %w", r, err)
		}
		trace, err := safePipeline.RunLocal(g, td, touched, opts...)
		if err != nil {
			return err
		}
		eval := op.fitness.Evaluate(g, td)
		if bestRoot == 0 || eval.Compare(bestEval) > 0 {
			bestEval = eval
			bestRoot = r
		}
		// replay the journal backwards to restore the pre-probe shape
		for i := len(trace.Created) - 1; i >= 0; i-- {
			if err = td.RemoveNode(trace.Created[i]); err != nil {
				return fmt.Errorf("optimize: rolling back node %d: %w", trace.Created[i], err)
			}
		}
	}

	// 3. Settle on the winner and finish with the unsafe tail.
	touched, err := td.MakeRoot(bestRoot)
	if err != nil {
		return fmt.Errorf("optimize: re-rooting at %d: %w", bestRoot, err)
	}
	if _, err = safePipeline.RunLocal(g, td, touched, opts...); err != nil {
		return err
	}

	return manip.NewPipeline(unsafe...).Run(g, td, opts...)
}

var _ manip.Operation = (*Optimization)(nil)
