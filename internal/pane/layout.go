package pane

import (
	"time"

	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Layout is a read-only projection of a Tree for rendering. It shares no
// memory with the tree it came from.
type Layout struct {
	Root   Element
	Leaves int
}

// Element is one node of a Layout. Exactly one field is set.
type Element struct {
	Split *SplitView
	Leaf  *LeafView
}

// SplitView describes a split.
type SplitView struct {
	ID    SplitID
	Axis  Axis
	Ratio float64
	Left  Element
	Right Element
}

// LeafView describes a pane and its labeled values.
type LeafView struct {
	ID         ID
	Category   snapshot.Category
	Title      string
	Fields     []snapshot.Field
	CapturedAt time.Time
}

// Project builds the Layout for the current tree.
func (t *Tree) Project() Layout {
	return Layout{Root: project(t.root), Leaves: t.LeafCount()}
}

func project(e *element) Element {
	if e.split != nil {
		return Element{Split: &SplitView{
			ID:    e.split.id,
			Axis:  e.split.axis,
			Ratio: e.split.ratio,
			Left:  project(e.split.left),
			Right: project(e.split.right),
		}}
	}

	n := e.leaf
	return Element{Leaf: &LeafView{
		ID:         n.ID,
		Category:   n.Category,
		Title:      n.Category.Title(),
		Fields:     n.Snapshot.Fields(n.Category),
		CapturedAt: n.Snapshot.CapturedAt,
	}}
}

// Find returns the view of the given pane.
func (l Layout) Find(id ID) (*LeafView, bool) {
	var found *LeafView
	l.Walk(func(v *LeafView) {
		if v.ID == id {
			found = v
		}
	})
	return found, found != nil
}

// Walk calls fn for every pane, left to right.
func (l Layout) Walk(fn func(*LeafView)) {
	var visit func(Element)
	visit = func(e Element) {
		switch {
		case e.Split != nil:
			visit(e.Split.Left)
			visit(e.Split.Right)
		case e.Leaf != nil:
			fn(e.Leaf)
		}
	}
	visit(l.Root)
}
