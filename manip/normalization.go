// Package manip: the normalization compositions.
//
// WeakNormalization bounds fan-out to two and aligns join-node bags;
// SemiNormalization additionally removes exchange nodes; Normalization
// further splits introduce and forget steps down to single vertices. Each is
// a fixed pipeline over the primitives, so local application and traces come
// from the pipeline machinery.

package manip

import (
	"github.com/katalvlaran/treedec/decomposition"
	"github.com/katalvlaran/treedec/hypergraph"
)

// normalizationConfig collects the shape switches shared by the
// normalization compositions.
type normalizationConfig struct {
	emptyRoot           bool
	emptyLeaves         bool
	identicalJoinParent bool
	splitLeafBags       bool
}

// NormalizationOption configures the normalization compositions.
type NormalizationOption func(*normalizationConfig)

// WithEmptyRoot requests a root node with an empty bag.
func WithEmptyRoot() NormalizationOption {
	return func(c *normalizationConfig) { c.emptyRoot = true }
}

// WithEmptyLeaves requests an empty bag on every leaf.
func WithEmptyLeaves() NormalizationOption {
	return func(c *normalizationConfig) { c.emptyLeaves = true }
}

// WithIdenticalJoinNodeParent requests a parent with equal bag above every
// join node.
func WithIdenticalJoinNodeParent() NormalizationOption {
	return func(c *normalizationConfig) { c.identicalJoinParent = true }
}

// WithLeafBagSplitting makes Normalization treat leaves as introduce nodes,
// splitting oversized leaf bags into single-vertex steps.
func WithLeafBagSplitting() NormalizationOption {
	return func(c *normalizationConfig) { c.splitLeafBags = true }
}

// composite is the shared chassis of the normalization compositions: a name
// plus a fixed pipeline.
type composite struct {
	name     string
	pipeline *Pipeline
}

// Name returns the composition name.
func (op *composite) Name() string { return op.name }

// Flags returns the union of the composed operations' metadata.
func (op *composite) Flags() Flags {
	return Flags{Local: true, CreatesNodes: true}
}

// Scope reports applicability to trees and paths alike; the join-node stages
// are no-ops on a path.
func (op *composite) Scope() Scope { return ScopeBoth }

// Apply runs the composition's pipeline in order.
func (op *composite) Apply(g hypergraph.Reader, td *decomposition.Tree, opts ...Option) error {
	if err := checkArgs(g, td); err != nil {
		return err
	}

	return op.pipeline.Run(g, td, opts...)
}

// ApplyLocal runs the pipeline's local variants, feeding created nodes into
// later stages.
func (op *composite) ApplyLocal(g hypergraph.Reader, td *decomposition.Tree, relevant []decomposition.NodeID, opts ...Option) (*Trace, error) {
	if err := checkArgs(g, td); err != nil {
		return nil, err
	}
	if err := checkRelevant(td, relevant); err != nil {
		return nil, err
	}

	return op.pipeline.RunLocal(g, td, relevant, opts...)
}

// weakStages builds the WeakNormalization stage list for cfg.
func weakStages(cfg normalizationConfig) []Operation {
	ops := []Operation{&LimitChildCount{limit: 2}}
	if cfg.emptyRoot {
		ops = append(ops, NewAddEmptyRoot())
	}
	if cfg.emptyLeaves {
		ops = append(ops, NewAddEmptyLeaves())
	}

	return append(ops, NewJoinNodeNormalization(cfg.identicalJoinParent))
}

// WeakNormalization bounds every node to two children and aligns the bags
// around join nodes: LimitChildCount(2), optionally AddEmptyRoot and
// AddEmptyLeaves, then JoinNodeNormalization.
type WeakNormalization struct {
	composite
}

// NewWeakNormalization creates the composition.
func NewWeakNormalization(opts ...NormalizationOption) *WeakNormalization {
	var cfg normalizationConfig
	for _, fn := range opts {
		fn(&cfg)
	}

	return &WeakNormalization{composite{
		name:     "WeakNormalization",
		pipeline: NewPipeline(weakStages(cfg)...),
	}}
}

// SemiNormalization is WeakNormalization followed by
// ExchangeNodeReplacement: afterwards every node is a leaf (with an empty bag
// under WithEmptyLeaves), a pure introduce, a pure forget, a binary join, the
// empty root (under WithEmptyRoot), or a node whose bag equals its only
// child's (identical join parents, and equal-bag chains already present in
// the input, are kept).
type SemiNormalization struct {
	composite
}

// NewSemiNormalization creates the composition.
func NewSemiNormalization(opts ...NormalizationOption) *SemiNormalization {
	var cfg normalizationConfig
	for _, fn := range opts {
		fn(&cfg)
	}
	stages := append(weakStages(cfg), NewExchangeNodeReplacement())

	return &SemiNormalization{composite{
		name:     "SemiNormalization",
		pipeline: NewPipeline(stages...),
	}}
}

// Normalization is SemiNormalization followed by single-vertex introduce and
// forget splitting: afterwards every introduce node introduces exactly one
// vertex and every forget node forgets exactly one.
type Normalization struct {
	composite
}

// NewNormalization creates the composition.
func NewNormalization(opts ...NormalizationOption) *Normalization {
	var cfg normalizationConfig
	for _, fn := range opts {
		fn(&cfg)
	}

	intro := &LimitIntroducedVertexCount{limit: 1, treatLeaves: cfg.splitLeafBags}
	forget := &LimitForgottenVertexCount{limit: 1}
	stages := append(weakStages(cfg), NewExchangeNodeReplacement(), intro, forget)

	return &Normalization{composite{
		name:     "Normalization",
		pipeline: NewPipeline(stages...),
	}}
}

var (
	_ Operation = (*WeakNormalization)(nil)
	_ Operation = (*SemiNormalization)(nil)
	_ Operation = (*Normalization)(nil)
)
