package pane

import (
	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// DefaultRatio is the share of a new split given to its left child.
const DefaultRatio = 0.5

// element is either a leaf or a split, never both.
type element struct {
	leaf  *Node
	split *split
}

type split struct {
	id          SplitID
	axis        Axis
	ratio       float64
	left, right *element
}

// Tree is the pane layout. The zero value is not usable; use NewTree.
// A Tree is not safe for concurrent use.
type Tree struct {
	root      *element
	nextLeaf  ID
	nextSplit SplitID
}

// NewTree returns a single-pane tree holding root. The pane gets a fresh ID;
// any ID already set on root is ignored.
func NewTree(root Node) *Tree {
	t := &Tree{}
	root.ID = t.newLeafID()
	t.root = &element{leaf: &root}
	return t
}

func (t *Tree) newLeafID() ID {
	t.nextLeaf++
	return t.nextLeaf
}

func (t *Tree) newSplitID() SplitID {
	t.nextSplit++
	return t.nextSplit
}

// Leaves returns pane IDs in order, left to right.
func (t *Tree) Leaves() []ID {
	var ids []ID
	walk(t.root, func(e *element) {
		if e.leaf != nil {
			ids = append(ids, e.leaf.ID)
		}
	})
	return ids
}

// LeafCount returns the number of panes.
func (t *Tree) LeafCount() int {
	n := 0
	walk(t.root, func(e *element) {
		if e.leaf != nil {
			n++
		}
	})
	return n
}

// Splits returns split IDs in order, outermost first.
func (t *Tree) Splits() []SplitID {
	var ids []SplitID
	var visit func(e *element)
	visit = func(e *element) {
		if e == nil || e.split == nil {
			return
		}
		ids = append(ids, e.split.id)
		visit(e.split.left)
		visit(e.split.right)
	}
	visit(t.root)
	return ids
}

// Node returns a copy of the pane with the given ID.
func (t *Tree) Node(id ID) (Node, bool) {
	e, _ := t.findLeaf(id)
	if e == nil {
		return Node{}, false
	}
	return e.leaf.clone(), true
}

// Ratio returns the ratio of the given split.
func (t *Tree) Ratio(id SplitID) (float64, bool) {
	e := t.findSplit(id)
	if e == nil {
		return 0, false
	}
	return e.split.ratio, true
}

// State reports how many panes are bound to a category.
func (t *Tree) State() State {
	bound := 0
	walk(t.root, func(e *element) {
		if e.leaf != nil && e.leaf.Bound() {
			bound++
		}
	})
	switch {
	case bound == 0:
		return StateEmpty
	case bound == 1:
		return StateOneSelected
	default:
		return StateTwoSelected
	}
}

// Split divides the target pane along axis. The target keeps its content as
// the left child and n becomes the right child with a fresh ID. Split does
// not enforce MaxLeaves; the caller evicts first.
func (t *Tree) Split(target ID, axis Axis, n Node) (ID, SplitID, error) {
	e, _ := t.findLeaf(target)
	if e == nil {
		return 0, 0, errors.NewInvalidPaneReference("pane", target)
	}

	n.ID = t.newLeafID()
	sid := t.newSplitID()

	old := *e
	*e = element{split: &split{
		id:    sid,
		axis:  axis,
		ratio: DefaultRatio,
		left:  &old,
		right: &element{leaf: &n},
	}}
	return n.ID, sid, nil
}

// Close removes a pane; its sibling takes the parent split's place.
// The last remaining pane cannot be closed.
func (t *Tree) Close(id ID) error {
	e, parent := t.findLeaf(id)
	if e == nil {
		return errors.NewInvalidPaneReference("pane", id)
	}
	if parent == nil {
		return errors.New(errors.ErrPane,
			"Cannot close the only pane",
			"Pick a category for it instead.")
	}

	sibling := parent.split.left
	if sibling == e {
		sibling = parent.split.right
	}
	*parent = *sibling
	return nil
}

// Resize sets a split's ratio, clamped to [0, 1]. NaN is treated as 0.
func (t *Tree) Resize(id SplitID, ratio float64) error {
	e := t.findSplit(id)
	if e == nil {
		return errors.NewInvalidPaneReference("split", id)
	}
	e.split.ratio = clamp(ratio)
	return nil
}

// Replace swaps the pane's Snapshot for s. The category binding is kept.
func (t *Tree) Replace(id ID, s snapshot.Snapshot) error {
	e, _ := t.findLeaf(id)
	if e == nil {
		return errors.NewInvalidPaneReference("pane", id)
	}
	e.leaf.Snapshot = s.Clone()
	return nil
}

func clamp(r float64) float64 {
	switch {
	case r >= 1:
		return 1
	case r >= 0:
		return r
	default:
		return 0
	}
}

// walk visits elements in order: left subtree, split, right subtree.
func walk(e *element, fn func(*element)) {
	if e == nil {
		return
	}
	if e.split != nil {
		walk(e.split.left, fn)
		fn(e)
		walk(e.split.right, fn)
		return
	}
	fn(e)
}

// findLeaf returns the leaf element and its parent split element, if any.
func (t *Tree) findLeaf(id ID) (found, parent *element) {
	var search func(e, p *element) bool
	search = func(e, p *element) bool {
		if e == nil {
			return false
		}
		if e.leaf != nil {
			if e.leaf.ID == id {
				found, parent = e, p
				return true
			}
			return false
		}
		return search(e.split.left, e) || search(e.split.right, e)
	}
	search(t.root, nil)
	return found, parent
}

func (t *Tree) findSplit(id SplitID) *element {
	var found *element
	walk(t.root, func(e *element) {
		if found == nil && e.split != nil && e.split.id == id {
			found = e
		}
	})
	return found
}
