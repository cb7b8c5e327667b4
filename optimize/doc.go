// Package optimize searches over root choices of a tree decomposition to
// maximize a user-provided fitness function, applying a configured pipeline
// of manipulation operations to every candidate.
//
// What:
//
//   - Evaluation: a lexicographically ordered fitness value (bigger wins).
//   - FitnessFunction: evaluates a decomposition; WidthFitness and
//     HeightFitness are ready-made examples.
//   - VertexSelectionStrategy: produces the candidate roots in preference
//     order; ExhaustiveSelection and RandomSelection are provided.
//   - Optimization: a manip.Operation that re-roots the decomposition at
//     each candidate, re-applies the pipeline, and keeps the best result.
//
// How:
//   - When every configured operation is safe (local, non-removing,
//     bag-preserving, location-independent labels), candidates are probed in
//     place: re-root, re-apply locally around the touched path, evaluate.
//   - With naive optimization enforced, every candidate starts from a deep
//     copy and runs the full pipeline.
//   - Otherwise the safe prefix runs once globally, probes journal the nodes
//     they create and roll them back between candidates, and the unsafe tail
//     runs only on the winning root.
//
// Without a fitness function the operation degenerates to a plain pipeline
// runner: the configured operations and labeling functions are applied once,
// with no re-rooting.
//
// Errors:
//
//   - ErrEmptySelection - the strategy produced no candidates while a
//     fitness function is configured.
//   - ErrNotLocal       - ApplyLocal called; optimization is a global pass.
package optimize
