package dashboard

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/sysview/internal/errors"
	"github.com/rileyhilliard/sysview/internal/pane"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// DefaultResizeStep is how far one resize key press moves a split.
const DefaultResizeStep = 0.05

// Height reserved for the header and footer lines.
const (
	headerHeight = 1
	footerHeight = 1
)

// Options configures the dashboard model.
type Options struct {
	// ResizeStep is the ratio change per resize key press.
	ResizeStep float64
}

// Model is the Bubble Tea model for the dashboard. Every key press that
// changes the layout is dispatched to the Container synchronously, so a
// slow probe holds the UI until its capture returns.
type Model struct {
	ctx        context.Context
	container  *Container
	focus      pane.ID
	cursor     int
	resizeStep float64

	width    int
	height   int
	showHelp bool
	quitting bool
	status   string

	// Scrollable content of the focused pane.
	viewport      viewport.Model
	viewportReady bool
}

// NewModel creates a dashboard model around container, focused on its
// first pane.
func NewModel(ctx context.Context, container *Container, opts Options) Model {
	if opts.ResizeStep <= 0 {
		opts.ResizeStep = DefaultResizeStep
	}
	m := Model{
		ctx:        ctx,
		container:  container,
		resizeStep: opts.ResizeStep,
	}
	if leaves := container.Leaves(); len(leaves) > 0 {
		m.focus = leaves[0]
	}
	return m
}

// Init has nothing to start; all work happens in response to keys.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			m.syncViewport()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// Focus returns the focused pane.
func (m Model) Focus() pane.ID { return m.focus }

// Status returns the last error shown in the footer, if any.
func (m Model) Status() string { return m.status }

func (m *Model) dispatch(msg Message) bool {
	if err := m.container.Dispatch(m.ctx, msg); err != nil {
		m.status = errorText(err)
		return false
	}
	m.status = ""
	return true
}

// request opens category next to the focused pane and focuses the new pane.
func (m *Model) request(c snapshot.Category) {
	if m.dispatch(RequestCategory{Pane: m.focus, Category: c}) {
		m.focus = m.container.Created()
		m.cursor = 0
		m.viewport.GotoTop()
	}
}

func (m *Model) moveFocus(delta int) {
	leaves := m.container.Leaves()
	if len(leaves) == 0 {
		return
	}
	idx := 0
	for i, id := range leaves {
		if id == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(leaves)) % len(leaves)
	m.focus = leaves[idx]
	m.viewport.GotoTop()
}

// resizeFocused grows the focused pane by delta within its enclosing split.
func (m *Model) resizeFocused(delta float64) {
	sid, left, ok := enclosingSplit(m.container.Render().Root, m.focus)
	if !ok {
		return
	}
	ratio, _ := m.container.Ratio(sid)
	if !left {
		delta = -delta
	}
	m.dispatch(Resize{Split: sid, Ratio: ratio + delta})
}

func (m Model) focusedBound() bool {
	n, ok := m.container.Node(m.focus)
	return ok && n.Bound()
}

// syncViewport sizes the viewport to the focused pane and loads its content.
func (m *Model) syncViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	layout := m.container.Render()
	rects := paneRects(layout.Root, m.width, m.bodyHeight())
	r := rects[m.focus]

	w, h := r.w-4, r.h-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(w, h)
		m.viewportReady = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}

	if leaf, ok := layout.Find(m.focus); ok && leaf.Category.Bound() {
		n, _ := m.container.Node(m.focus)
		m.viewport.SetContent(joinLines(paneBody(leaf, n)))
	} else {
		m.viewport.SetContent("")
	}
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// enclosingSplit finds the innermost split that has id as a direct child and
// reports whether id is its left child.
func enclosingSplit(e pane.Element, id pane.ID) (pane.SplitID, bool, bool) {
	if e.Split == nil {
		return 0, false, false
	}
	if l := e.Split.Left.Leaf; l != nil && l.ID == id {
		return e.Split.ID, true, true
	}
	if r := e.Split.Right.Leaf; r != nil && r.ID == id {
		return e.Split.ID, false, true
	}
	if sid, left, ok := enclosingSplit(e.Split.Left, id); ok {
		return sid, left, ok
	}
	return enclosingSplit(e.Split.Right, id)
}

func errorText(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
