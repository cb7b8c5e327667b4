// Package manip provides the manipulation-operation framework and the
// primitive operations that rewrite tree decompositions into normalized
// shapes.
//
// What:
//
//   - Operation: the contract every manipulation obeys — a global pass
//     (Apply) and a restricted pass over a relevant node set (ApplyLocal)
//     reporting created and removed nodes, plus declarative Flags metadata
//     consumed by the optimizer.
//   - Primitives: LimitChildCount, LimitIntroducedVertexCount,
//     LimitForgottenVertexCount, ExchangeNodeReplacement, AddEmptyRoot,
//     AddEmptyLeaves, AddIdenticalJoinNodeParent, JoinNodeNormalization,
//     Compression.
//   - Compositions: WeakNormalization, SemiNormalization, Normalization —
//     fixed pipelines over the primitives.
//   - Pipeline: applies a list of operations strictly in order with
//     cancellation checks between steps.
//
// Why:
//   - Dynamic-programming algorithms over decompositions want trees of a
//     particular shape: binary joins with identical bags, introduce and
//     forget steps of exactly one vertex, empty roots and leaves. Each
//     primitive restores the decomposition invariants before it returns, so
//     pipelines compose freely.
//
// Error model:
//   - Misconfiguration (limit of zero, unknown node in the relevant set) is
//     reported before any mutation. An error returned by a labeling function
//     ends the pass right after the node it was labeling was created; nodes
//     created up to that point stay in the decomposition. Cancellation via WithContext
//     stops between node rewrites and leaves a valid, possibly partially
//     rewritten decomposition.
//
// Errors:
//
//   - ErrNilGraph          - nil graph reader.
//   - ErrNilDecomposition  - nil decomposition.
//   - ErrInvalidLimit      - limit parameter out of range.
package manip
