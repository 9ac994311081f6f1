// Package dashboard implements the split-pane system view.
//
// # Architecture
//
// The Container owns the pane tree and is the single entry point for layout
// changes. Everything the UI can do is one of three messages:
//
//	RequestCategory - open a category next to a pane
//	Resize          - move a split's divider
//	Refresh         - recapture a pane's category
//
// At most pane.MaxLeaves panes are visible. A request made while at the cap
// first closes the last pane in layout order other than the one the request
// targets, so the count stays fixed.
//
// Model wraps the Container in a Bubble Tea program (Model-Update-View).
// Key presses become Container messages, dispatched synchronously inside
// Update; the View renders Container.Render's layout projection with
// lipgloss. The focused pane scrolls through a bubbles viewport.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	1-7         - Open a category next to the focused pane
//	j/k, ↑/↓    - Move the category menu, or scroll
//	Enter       - Open the highlighted category
//	Tab         - Cycle focus
//	] / [       - Grow / shrink the focused pane
//	r           - Refresh the focused pane
//	?           - Toggle help overlay
package dashboard
