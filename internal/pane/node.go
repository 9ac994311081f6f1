// Package pane implements the split layout tree behind the dashboard.
//
// A Tree is a binary tree whose internal nodes are splits (axis and ratio)
// and whose leaves are panes. Each pane is bound to one snapshot category and
// owns a private Snapshot; refreshing a pane swaps that Snapshot wholesale.
// The tree never becomes empty.
package pane

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// MaxLeaves is the most panes visible at once.
const MaxLeaves = 2

// ID identifies a pane for the lifetime of its Tree.
type ID int

func (id ID) String() string { return fmt.Sprintf("pane #%d", int(id)) }

// SplitID identifies a split for the lifetime of its Tree.
type SplitID int

func (id SplitID) String() string { return fmt.Sprintf("split #%d", int(id)) }

// Axis is the direction a split divides its area in.
type Axis int

const (
	// Vertical places the children side by side.
	Vertical Axis = iota
	// Horizontal stacks the children top to bottom.
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// ParseAxis parses "vertical" or "horizontal".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return Vertical, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown layout axis %q", s),
			"Use 'vertical' or 'horizontal'.")
	}
}

// State summarizes how many panes are bound to a category.
type State int

const (
	// StateEmpty is the start state: a single pane with nothing selected.
	StateEmpty State = iota
	// StateOneSelected has exactly one bound pane.
	StateOneSelected
	// StateTwoSelected has two bound panes.
	StateTwoSelected
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateOneSelected:
		return "one-selected"
	case StateTwoSelected:
		return "two-selected"
	default:
		return "unknown"
	}
}

// Node is a pane: a category binding and the Snapshot captured for it.
type Node struct {
	ID       ID
	Category snapshot.Category
	Snapshot snapshot.Snapshot
}

// Bound reports whether the pane shows a category.
func (n Node) Bound() bool { return n.Category.Bound() }

func (n Node) clone() Node {
	n.Snapshot = n.Snapshot.Clone()
	return n
}
