package dashboard

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/logger"
	"github.com/rileyhilliard/sysview/internal/pane"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Message is something the presentation layer asks the Container to do.
type Message interface {
	isMessage()
}

// RequestCategory asks for a new pane bound to Category, split off Pane.
type RequestCategory struct {
	Pane     pane.ID
	Category snapshot.Category
}

// Resize sets the ratio of a split.
type Resize struct {
	Split pane.SplitID
	Ratio float64
}

// Refresh recaptures a pane's category and replaces its snapshot.
type Refresh struct {
	Pane pane.ID
}

func (RequestCategory) isMessage() {}
func (Resize) isMessage()          {}
func (Refresh) isMessage()         {}

// Capturer captures a snapshot holding one fresh category.
// *snapshot.Aggregator implements it.
type Capturer interface {
	CaptureCategory(ctx context.Context, c snapshot.Category) snapshot.Snapshot
}

// Container owns the pane tree and applies messages to it. Messages are
// handled synchronously: a capture blocks Dispatch until it returns.
// A Container is not safe for concurrent use.
type Container struct {
	tree    *pane.Tree
	leaves  int
	axis    pane.Axis
	capture Capturer
	log     logger.Logger

	created pane.ID
}

// NewContainer returns a Container holding a single unbound pane.
func NewContainer(capture Capturer, axis pane.Axis, log logger.Logger) *Container {
	if log == nil {
		log = logger.Noop()
	}
	return &Container{
		tree:    pane.NewTree(pane.Node{Category: snapshot.Empty, Snapshot: snapshot.Neutral()}),
		leaves:  1,
		axis:    axis,
		capture: capture,
		log:     log,
	}
}

// Dispatch applies one message. Only references to panes or splits missing
// from the tree are errors, and those leave the tree untouched.
func (c *Container) Dispatch(ctx context.Context, msg Message) error {
	switch m := msg.(type) {
	case RequestCategory:
		return c.requestCategory(ctx, m)
	case Resize:
		return c.tree.Resize(m.Split, m.Ratio)
	case Refresh:
		return c.refresh(ctx, m)
	default:
		return errors.New(errors.ErrPane,
			fmt.Sprintf("Unsupported message %T", msg), "")
	}
}

func (c *Container) requestCategory(ctx context.Context, m RequestCategory) error {
	if _, ok := c.tree.Node(m.Pane); !ok {
		return errors.NewInvalidPaneReference("pane", m.Pane)
	}

	if c.leaves >= pane.MaxLeaves {
		victim, ok := c.evictionCandidate(m.Pane)
		if !ok {
			return errors.New(errors.ErrPane, "No pane can be closed to make room", "")
		}
		if err := c.tree.Close(victim); err != nil {
			return err
		}
		c.leaves--
		c.log.Debug("closed %s to make room for %s", victim, m.Category)
	}

	data := c.capture.CaptureCategory(ctx, m.Category)
	id, _, err := c.tree.Split(m.Pane, c.axis, pane.Node{Category: m.Category, Snapshot: data})
	if err != nil {
		return err
	}
	c.leaves++
	c.created = id
	c.log.Debug("opened %s showing %s", id, m.Category)
	return nil
}

// evictionCandidate picks the last pane in layout order other than keep.
func (c *Container) evictionCandidate(keep pane.ID) (pane.ID, bool) {
	leaves := c.tree.Leaves()
	for i := len(leaves) - 1; i >= 0; i-- {
		if leaves[i] != keep {
			return leaves[i], true
		}
	}
	return 0, false
}

func (c *Container) refresh(ctx context.Context, m Refresh) error {
	n, ok := c.tree.Node(m.Pane)
	if !ok {
		return errors.NewInvalidPaneReference("pane", m.Pane)
	}
	return c.tree.Replace(m.Pane, c.capture.CaptureCategory(ctx, n.Category))
}

// Render returns a read-only projection of the current layout.
func (c *Container) Render() pane.Layout {
	return c.tree.Project()
}

// LeafCount returns the number of panes.
func (c *Container) LeafCount() int { return c.leaves }

// Leaves returns pane IDs in layout order.
func (c *Container) Leaves() []pane.ID { return c.tree.Leaves() }

// Splits returns split IDs, outermost first.
func (c *Container) Splits() []pane.SplitID { return c.tree.Splits() }

// Ratio returns a split's current ratio.
func (c *Container) Ratio(id pane.SplitID) (float64, bool) { return c.tree.Ratio(id) }

// Node returns a copy of a pane.
func (c *Container) Node(id pane.ID) (pane.Node, bool) { return c.tree.Node(id) }

// State reports how many panes are bound.
func (c *Container) State() pane.State { return c.tree.State() }

// Created returns the pane opened by the last successful RequestCategory,
// or zero if none has been opened.
func (c *Container) Created() pane.ID { return c.created }
