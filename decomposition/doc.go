// Package decomposition provides the mutable rooted labeled tree at the heart
// of treedec: a tree whose nodes carry a bag of graph vertices and the
// hyperedges induced by that bag.
//
// What:
//
//   - Tree: a rooted tree over NodeID nodes with structural edits (AddRoot,
//     AddChild, AddParent, RemoveNode, SetParent, SwapSubtrees, SetBag) and
//     O(1) accessors. A path decomposition is the degenerate Tree in which
//     every node has at most one child.
//   - Derived queries: join/leaf/introduce/forget/exchange classification and
//     the introduced/forgotten/remembered vertex sets, aggregate or relative
//     to a specific child.
//   - MakeRoot: in-place re-rooting by reversing the parent chain.
//   - Clone / CopyFrom: deep copies for optimization probes.
//   - Validate: checks the classical decomposition invariants (coverage,
//     running intersection, edge coverage, induced-edge correctness).
//
// Why:
//   - Manipulation operations rewrite decompositions into normalized shapes;
//     they need cheap structural surgery plus on-demand classification, not a
//     general graph container. Bags stay sorted and duplicate-free, induced
//     hyperedge sets are recomputed only on SetBag and shared copy-on-write
//     everywhere else.
//
// Concurrency:
//   - A Tree is single-writer. Concurrent readers are safe only while no
//     writer exists; distinct Tree instances are fully independent.
//
// Errors:
//
//   - ErrNilGraph        - constructor received a nil graph reader.
//   - ErrNodeNotFound    - operation referenced an unknown node.
//   - ErrRootExists      - AddRoot on a non-empty tree.
//   - ErrNoRoot          - operation requires a non-empty tree.
//   - ErrRemoveRoot      - RemoveNode on a root without exactly one child.
//   - ErrCycle           - SetParent/SwapSubtrees would break the tree shape.
//   - ErrNotChild        - per-child query with a non-child argument.
//   - ErrUnknownVertex   - bag contains a vertex missing from the graph.
package decomposition
