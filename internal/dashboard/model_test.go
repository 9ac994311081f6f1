package dashboard

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sysview/internal/pane"
	"github.com/rileyhilliard/sysview/internal/snapshot"
)

func TestMain(m *testing.M) {
	// Plain output keeps rendered strings comparable.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	c, _ := newTestContainer(t)
	m := NewModel(context.Background(), c, Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return updated.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestNewModel(t *testing.T) {
	c, _ := newTestContainer(t)

	m := NewModel(context.Background(), c, Options{})

	assert.Equal(t, c.Leaves()[0], m.Focus())
	assert.Equal(t, DefaultResizeStep, m.resizeStep)
	assert.Nil(t, m.Init())
}

func TestModel_NumberKeyOpensCategory(t *testing.T) {
	m := newTestModel(t)
	root := m.Focus()

	m = press(t, m, runes("4"))

	assert.Equal(t, 2, m.container.LeafCount())
	n, ok := m.container.Node(m.Focus())
	require.True(t, ok)
	assert.Equal(t, snapshot.Memory, n.Category)
	assert.NotEqual(t, root, m.Focus(), "focus moves to the new pane")
}

func TestModel_MenuSelection(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("j"), runes("j"), runes("k"))
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	n, _ := m.container.Node(m.Focus())
	assert.Equal(t, snapshot.Categories[1], n.Category)
	assert.Zero(t, m.cursor)
}

func TestModel_MenuCursorBounds(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("k"))
	assert.Zero(t, m.cursor)

	for i := 0; i < 20; i++ {
		m = press(t, m, runes("j"))
	}
	assert.Equal(t, len(snapshot.Categories)-1, m.cursor)
}

func TestModel_FocusCycles(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("1"))
	leaves := m.container.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, leaves[1], m.Focus())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, leaves[0], m.Focus())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, leaves[1], m.Focus())
}

func TestModel_ResizeKeysGrowFocusedPane(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("1"))
	sid := m.container.Splits()[0]

	// The new pane is the right child; growing it moves the divider left.
	m = press(t, m, runes("]"))
	r, _ := m.container.Ratio(sid)
	assert.InDelta(t, 0.45, r, 1e-9)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("]"), runes("]"))
	r, _ = m.container.Ratio(sid)
	assert.InDelta(t, 0.55, r, 1e-9)

	for i := 0; i < 30; i++ {
		m = press(t, m, runes("]"))
	}
	r, _ = m.container.Ratio(sid)
	assert.Equal(t, 1.0, r, "ratio clamps at 1")
}

func TestModel_ResizeWithoutSplitIsNoop(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("]"))

	assert.Empty(t, m.Status())
	assert.Empty(t, m.container.Splits())
}

func TestModel_Refresh(t *testing.T) {
	c, probes := newTestContainer(t)
	m := NewModel(context.Background(), c, Options{})
	m = press(t, m, runes("2"))
	assert.Equal(t, 1, probes.Calls(snapshot.Graphics))

	m = press(t, m, runes("r"))

	assert.Equal(t, 2, probes.Calls(snapshot.Graphics))
	assert.Empty(t, m.Status())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Keys other than close are swallowed while help is open.
	m = press(t, m, runes("1"))
	assert.Equal(t, 1, m.container.LeafCount())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(runes("q"))
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_InvalidFocusShowsStatus(t *testing.T) {
	m := newTestModel(t)
	m.focus = pane.ID(99)

	m = press(t, m, runes("1"))

	assert.Contains(t, m.Status(), "pane #99")
	assert.Equal(t, 1, m.container.LeafCount())
	assert.Contains(t, m.View(), "✗")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.Status())
}

func TestModel_WindowSizeSizesViewport(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("3"))

	assert.True(t, m.viewportReady)
	assert.Equal(t, 60-4, m.viewport.Width)
	assert.Equal(t, 30-headerHeight-footerHeight-2, m.viewport.Height)
}

func TestEnclosingSplit(t *testing.T) {
	tree := pane.NewTree(pane.Node{})
	a := tree.Leaves()[0]
	b, outer, _ := tree.Split(a, pane.Vertical, pane.Node{})
	c, inner, _ := tree.Split(a, pane.Horizontal, pane.Node{})
	root := tree.Project().Root

	sid, left, ok := enclosingSplit(root, b)
	assert.True(t, ok)
	assert.Equal(t, outer, sid)
	assert.False(t, left)

	sid, left, ok = enclosingSplit(root, a)
	assert.True(t, ok)
	assert.Equal(t, inner, sid)
	assert.True(t, left)

	sid, _, _ = enclosingSplit(root, c)
	assert.Equal(t, inner, sid)

	_, _, ok = enclosingSplit(root, pane.ID(42))
	assert.False(t, ok)
}
