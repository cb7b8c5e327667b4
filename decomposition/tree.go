// Package decomposition: the mutable Tree and its structural edits.
//
// The tree stores nodes in a map keyed by NodeID; each node keeps its parent
// id (0 for the root), an ordered child list, its bag, and the induced
// hyperedge set. Structural edits keep parent pointers and child lists in
// lock-step, and keep the labeling collection free of entries for removed
// nodes. Invariants spanning several edits (coverage, running intersection)
// are the responsibility of the manipulation operation in progress; Validate
// checks them on demand.

package decomposition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/treedec/hypergraph"
	"github.com/katalvlaran/treedec/labeling"
)

type node struct {
	parent   NodeID // 0 while root
	children []NodeID
	bag      Bag
	induced  EdgeSet
}

// Tree is a mutable rooted tree decomposition of one hypergraph.
// The zero value is not usable; call New.
type Tree struct {
	graph  hypergraph.Reader
	nodes  map[NodeID]*node
	root   NodeID // 0 while empty
	nextID NodeID
	labels *labeling.Collection
}

// New creates an empty decomposition of graph g.
// Returns ErrNilGraph when g is nil.
// Complexity: O(1)
func New(g hypergraph.Reader) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Tree{
		graph:  g,
		nodes:  make(map[NodeID]*node),
		labels: labeling.NewCollection(),
	}, nil
}

// Graph returns the read-only view of the decomposed hypergraph.
func (t *Tree) Graph() hypergraph.Reader { return t.graph }

// Labelings returns the label collection of this decomposition.
func (t *Tree) Labelings() *labeling.Collection { return t.labels }

// newNode allocates a fresh node id. Ids are never reused.
func (t *Tree) newNode() NodeID {
	t.nextID++
	t.nodes[t.nextID] = &node{}

	return t.nextID
}

// AddRoot creates the first node of the tree with the given bag.
// Returns ErrRootExists on a non-empty tree and ErrUnknownVertex when the
// bag contains a vertex missing from the graph.
func (t *Tree) AddRoot(bag Bag) (NodeID, error) {
	if t.root != 0 {
		return 0, ErrRootExists
	}
	if err := t.checkBag(bag); err != nil {
		return 0, err
	}

	id := t.newNode()
	t.root = id
	n := t.nodes[id]
	n.bag = NewBag(bag...)
	n.induced = inducedEdges(t.graph, n.bag)

	return id, nil
}

// AddChild appends a fresh node with empty bag below p and returns its id.
// Returns ErrNodeNotFound when p is unknown.
// Complexity: O(1)
func (t *Tree) AddChild(p NodeID) (NodeID, error) {
	pn, ok := t.nodes[p]
	if !ok {
		return 0, ErrNodeNotFound
	}

	id := t.newNode()
	t.nodes[id].parent = p
	pn.children = append(pn.children, id)

	return id, nil
}

// AddParent inserts a fresh node between v and its old parent. The new node
// inherits v's bag and induced hyperedges; when v is the root, the new node
// becomes the root.
// Complexity: O(children of old parent)
func (t *Tree) AddParent(v NodeID) (NodeID, error) {
	vn, ok := t.nodes[v]
	if !ok {
		return 0, ErrNodeNotFound
	}

	id := t.newNode()
	pn := t.nodes[id]
	pn.bag = vn.bag.Clone()
	pn.induced = vn.induced // shared copy-on-write
	pn.children = []NodeID{v}

	if old := vn.parent; old != 0 {
		on := t.nodes[old]
		on.children[indexOf(on.children, v)] = id
		pn.parent = old
	} else {
		t.root = id
	}
	vn.parent = id

	return id, nil
}

// RemoveNode deletes v and re-parents its children, in their current order,
// onto v's parent at v's former position. Removing the root requires exactly
// one child, which becomes the new root. All labels of v are dropped.
// Complexity: O(children of v + children of parent)
func (t *Tree) RemoveNode(v NodeID) error {
	vn, ok := t.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}

	if vn.parent == 0 {
		if len(vn.children) != 1 {
			return ErrRemoveRoot
		}
		c := vn.children[0]
		t.nodes[c].parent = 0
		t.root = c
	} else {
		pn := t.nodes[vn.parent]
		i := indexOf(pn.children, v)

		// splice v's children into v's slot, preserving order
		merged := make([]NodeID, 0, len(pn.children)-1+len(vn.children))
		merged = append(merged, pn.children[:i]...)
		merged = append(merged, vn.children...)
		merged = append(merged, pn.children[i+1:]...)
		pn.children = merged

		for _, c := range vn.children {
			t.nodes[c].parent = vn.parent
		}
	}

	delete(t.nodes, v)
	t.labels.RemoveVertexLabels(int(v))

	return nil
}

// SetParent moves c together with its subtree under p.
// Returns ErrCycle when p lies inside c's subtree (or c == p).
// Complexity: O(depth of p + children of old parent)
func (t *Tree) SetParent(c, p NodeID) error {
	cn, ok := t.nodes[c]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok = t.nodes[p]; !ok {
		return ErrNodeNotFound
	}
	if c == p || t.inSubtree(p, c) {
		return ErrCycle
	}
	if cn.parent == p {
		return nil
	}

	t.detach(c)
	cn.parent = p
	t.nodes[p].children = append(t.nodes[p].children, c)

	return nil
}

// SwapSubtrees exchanges the subtrees rooted at a and b by swapping their
// attachment points. Fails with ErrCycle when one is an ancestor of the other
// (the root therefore cannot take part).
// Complexity: O(depth)
func (t *Tree) SwapSubtrees(a, b NodeID) error {
	an, ok := t.nodes[a]
	if !ok {
		return ErrNodeNotFound
	}
	bn, ok := t.nodes[b]
	if !ok {
		return ErrNodeNotFound
	}
	if a == b {
		return nil
	}
	if an.parent == 0 || bn.parent == 0 || t.inSubtree(b, a) || t.inSubtree(a, b) {
		return ErrCycle
	}

	ap, bp := t.nodes[an.parent], t.nodes[bn.parent]
	ai, bi := indexOf(ap.children, a), indexOf(bp.children, b)
	ap.children[ai], bp.children[bi] = b, a
	an.parent, bn.parent = bn.parent, an.parent

	return nil
}

// SetBag replaces v's bag with a normalized copy of bag and recomputes the
// induced hyperedges at v. Coverage invariants across the whole tree are not
// enforced here; the caller restores them before returning.
// Complexity: O(E · k) for the induced-edge recomputation.
func (t *Tree) SetBag(v NodeID, bag Bag) error {
	vn, ok := t.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}
	if err := t.checkBag(bag); err != nil {
		return err
	}

	vn.bag = NewBag(bag...)
	vn.induced = inducedEdges(t.graph, vn.bag)

	return nil
}

// SetBagFrom gives dst a copy of src's bag and shares src's induced
// hyperedge set copy-on-write, avoiding the projection rescan of SetBag.
// Complexity: O(bag size)
func (t *Tree) SetBagFrom(dst, src NodeID) error {
	dn, ok := t.nodes[dst]
	if !ok {
		return ErrNodeNotFound
	}
	sn, ok := t.nodes[src]
	if !ok {
		return ErrNodeNotFound
	}

	dn.bag = sn.bag.Clone()
	dn.induced = sn.induced // shared copy-on-write

	return nil
}

// Root returns the root id, or 0 while the tree is empty.
func (t *Tree) Root() NodeID { return t.root }

// Parent returns v's parent id, or 0 for the root and unknown nodes.
func (t *Tree) Parent(v NodeID) NodeID {
	if n, ok := t.nodes[v]; ok {
		return n.parent
	}

	return 0
}

// Children returns a copy of v's ordered child list.
func (t *Tree) Children(v NodeID) []NodeID {
	n, ok := t.nodes[v]
	if !ok || len(n.children) == 0 {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)

	return out
}

// ChildCount returns the number of children of v. O(1).
func (t *Tree) ChildCount(v NodeID) int {
	if n, ok := t.nodes[v]; ok {
		return len(n.children)
	}

	return 0
}

// Bag returns v's bag. The returned slice must not be modified.
func (t *Tree) Bag(v NodeID) Bag {
	if n, ok := t.nodes[v]; ok {
		return n.bag
	}

	return nil
}

// Induced returns the hyperedges induced by v's bag.
func (t *Tree) Induced(v NodeID) EdgeSet {
	if n, ok := t.nodes[v]; ok {
		return n.induced
	}

	return EdgeSet{}
}

// ContainsNode reports whether v is a node of the tree. O(1).
func (t *Tree) ContainsNode(v NodeID) bool {
	_, ok := t.nodes[v]

	return ok
}

// NodeCount returns the number of nodes. O(1).
func (t *Tree) NodeCount() int { return len(t.nodes) }

// Nodes returns all node ids in ascending order.
// Complexity: O(n log n)
func (t *Tree) Nodes() []NodeID {
	out := make([]NodeID, 0, len(t.nodes))
	for id := range t.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// checkBag verifies every bag vertex exists in the graph.
func (t *Tree) checkBag(bag Bag) error {
	for _, v := range bag {
		if !t.graph.ContainsVertex(v) {
			return fmt.Errorf("%w: %d", ErrUnknownVertex, v)
		}
	}

	return nil
}

// detach removes v from its parent's child list (root stays put).
func (t *Tree) detach(v NodeID) {
	vn := t.nodes[v]
	if vn.parent == 0 {
		return
	}
	pn := t.nodes[vn.parent]
	i := indexOf(pn.children, v)
	pn.children = append(pn.children[:i], pn.children[i+1:]...)
	vn.parent = 0
}

// inSubtree reports whether v lies in the subtree rooted at root, walking the
// parent chain upward from v.
func (t *Tree) inSubtree(v, root NodeID) bool {
	for cur := v; cur != 0; cur = t.nodes[cur].parent {
		if cur == root {
			return true
		}
	}

	return false
}

// indexOf returns the position of v in s; -1 when absent.
func indexOf(s []NodeID, v NodeID) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
