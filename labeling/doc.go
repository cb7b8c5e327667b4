// Package labeling stores user labels attached to decomposition nodes and
// hyperedges, grouped by label name.
//
// What:
//
//   - Value: the opaque label contract — labels only need to clone and
//     compare; the library never inspects their content.
//   - Labeling: one name's worth of labels, a pair of partial maps from
//     node ids and edge ids to values.
//   - Collection: all labelings of one decomposition, keyed by name, with the
//     bulk operations tree rewrites need (remove every label of a node, swap
//     two nodes' labels across all names, transfer a single label out).
//   - Function: the pluggable contract computing a fresh label from a bag and
//     the labels already present at a node.
//
// Why:
//   - When manipulation operations create, remove, or re-identify nodes they
//     must keep labels consistent without knowing what the labels mean.
//     Transfer moves ownership without cloning; Swap exchanges two nodes'
//     entire label state in one step.
//
// Invariant: for each label name there is at most one value per entity.
//
// Errors:
//
//   - ErrNameNotFound  - unknown label name.
//   - ErrLabelNotFound - entity has no label under the given name.
package labeling
